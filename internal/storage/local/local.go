package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the single-file variant of the entity store, for desks that
// run without a database server. Same method set as the mysql backend.
type Storage struct {
	db *gorm.DB
}

func New(dbPath string) (*Storage, error) {
	const op = "storage.local.New"

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%s: create db directory: %w", op, err)
	}

	// CGO-free sqlite driver
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: open db: %w", op, err)
	}

	if err := db.AutoMigrate(
		&department{},
		&worker{},
		&order{},
		&orderProduct{},
		&orderWorker{},
		&productionEvent{},
		&inventoryItem{},
		&inventoryTransaction{},
	); err != nil {
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
