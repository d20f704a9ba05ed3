package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		// "file" or "mysql"
		Mode string `yaml:"mode"`
		Path string `yaml:"path"`
		DSN  string `yaml:"dsn"`
		Slot string `yaml:"slot"`
	} `yaml:"storage"`
	AI struct {
		// "mock" or "live"
		Mode    string `yaml:"mode"`
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"ai"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	MinIO struct {
		Enabled   bool   `yaml:"enabled"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"minio"`
}

var AppConfig *Config

func InitConfig() {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	AppConfig = &Config{}
	if err := decoder.Decode(AppConfig); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	if AppConfig.Storage.Mode == "" {
		AppConfig.Storage.Mode = "file"
	}
	if AppConfig.Storage.Path == "" {
		AppConfig.Storage.Path = "data/projects.json"
	}
	if AppConfig.Storage.Slot == "" {
		AppConfig.Storage.Slot = "video-suite-projects"
	}
	if AppConfig.AI.Mode == "" {
		AppConfig.AI.Mode = "mock"
	}
}
