package main

import (
	"fmt"
	"log"

	"VideoSuite-server/config"
	"VideoSuite-server/routers"
	"VideoSuite-server/routers/api"
	"VideoSuite-server/service"
	"VideoSuite-server/store"
)

func main() {
	config.InitConfig()
	fmt.Println("Server starting on port", config.AppConfig.Server.Port)

	var persister store.Persister
	switch config.AppConfig.Storage.Mode {
	case "mysql":
		var err error
		persister, err = store.NewMySQLStore(config.AppConfig.Storage.DSN, config.AppConfig.Storage.Slot)
		if err != nil {
			log.Fatalf("storage init failed: %v", err)
		}
	default:
		persister = store.NewFileStore(config.AppConfig.Storage.Path)
	}

	st, err := store.New(persister)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	fmt.Println("Project store initialized")

	var gen service.Generator
	if config.AppConfig.AI.Mode == "live" {
		gen = service.NewAIClient(config.AppConfig.AI.BaseURL, config.AppConfig.AI.APIKey)
	} else {
		gen = service.NewMockGenerator()
	}

	app := service.NewApp(st, gen)
	api.Setup(app)

	if config.AppConfig.Redis.Enabled {
		service.InitQueue()
		fmt.Println("Queue initialized")

		processor := service.NewProcessor(st, gen)
		processor.StartProcessor(5)
	}

	if config.AppConfig.MinIO.Enabled {
		service.InitMinIO()
	}

	r := routers.InitRouter()
	r.Run(config.AppConfig.Server.Port)
}
