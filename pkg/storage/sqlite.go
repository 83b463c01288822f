package storage

import (
	"errors"
	"fmt"
	"reflect"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entry is a single key-value row.
type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string {
	return "entries"
}

// SQLite is a Store backed by a single-table SQLite database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens the SQLite database at dsn and migrates the schema.
func OpenSQLite(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load implements the Store interface.
func (s *SQLite) Load(key string) (string, bool, error) {
	var row entry

	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeError(err)
	}

	return row.Value, true, nil
}

// Save implements the Store interface.
func (s *SQLite) Save(key, value string) error {
	err := s.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry{Key: key, Value: value}).
		Error
	if err != nil {
		return storeError(err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// storeError logs the underlying error and wraps it in ErrStore so that
// callers get a stable error to test against. Driver errors carry no
// information a user could act on, so only the class is surfaced.
func storeError(err error) error {
	if reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrStore
	}

	return fmt.Errorf("%w: %s", ErrStore, err)
}
