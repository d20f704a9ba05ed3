package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"VideoSuite-server/models"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvSlot is a single named slot in a key/value table. The whole project
// collection lives in one row, overwritten wholesale on every save.
type kvSlot struct {
	Slot      string `gorm:"primaryKey;type:varchar(64)"`
	Payload   []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

func (kvSlot) TableName() string {
	return "kv_slot"
}

type MySQLStore struct {
	db   *gorm.DB
	slot string
}

func NewMySQLStore(dsn, slot string) (*MySQLStore, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("init gorm: %w", err)
	}
	if err := db.AutoMigrate(&kvSlot{}); err != nil {
		return nil, fmt.Errorf("migrate kv_slot: %w", err)
	}
	return &MySQLStore{db: db, slot: slot}, nil
}

func (m *MySQLStore) Save(projects map[string]*models.Project) error {
	b, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	row := kvSlot{Slot: m.slot, Payload: b, UpdatedAt: time.Now()}
	return m.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (m *MySQLStore) Load() (map[string]*models.Project, error) {
	var row kvSlot
	if err := m.db.First(&row, "slot = ?", m.slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]*models.Project{}, nil
		}
		return nil, err
	}
	projects := map[string]*models.Project{}
	if err := json.Unmarshal(row.Payload, &projects); err != nil {
		log.Printf("discarding corrupt project slot %q: %v", m.slot, err)
		return map[string]*models.Project{}, nil
	}
	return projects, nil
}
