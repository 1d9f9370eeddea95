package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

// record is one stored identity, keyed by the constant session key.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string // JSON-encoded identity
}

func (record) TableName() string {
	return "session"
}

// SQLiteStore persists the session identity in a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the stored identity. Missing or malformed records yield
// (nil, nil).
func (s *SQLiteStore) Load() (*entities.User, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", sessionKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var user entities.User
	if err := json.Unmarshal([]byte(rec.Value), &user); err != nil {
		// Corrupt record: treat as signed out.
		return nil, nil
	}
	if user.UserID == "" {
		return nil, nil
	}
	return &user, nil
}

// Save replaces the stored identity with user.
func (s *SQLiteStore) Save(user entities.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}
	rec := record{Key: sessionKey, Value: string(value)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the stored identity. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear() error {
	if err := s.db.Delete(&record{}, "key = ?", sessionKey).Error; err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
