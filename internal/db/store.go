package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajitssourat/aji/internal/models"
)

// Persisted keys shared by the app
const (
	KeyUser              = "user"
	KeyMetScore          = "metScore"
	KeyLanguage          = "language"
	KeyCompletedSessions = "completedSessions"
)

// OnboardingKey is the per-user onboarding flag key
func OnboardingKey(email string) string {
	return "onboardingCompleted_" + email
}

// ProfileKey is the per-user IPAQ profile key
func ProfileKey(email string) string {
	return "userProfile_" + email
}

// CompletedSessionsKey scopes the completion record to a user. Without a
// signed-in user the global key is used.
func CompletedSessionsKey(email string) string {
	if email == "" {
		return KeyCompletedSessions
	}
	return KeyCompletedSessions + "_" + email
}

// Store is the device key/value storage
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database
func NewStore(conn *gorm.DB) *Store {
	return &Store{db: conn}
}

// DB exposes the underlying connection for the account and result services
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	var entry models.Entry
	err = s.db.Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(key, value string) error {
	entry := models.Entry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Where("entry_key = ?", key).Delete(&models.Entry{}).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// GetJSON decodes the JSON value under key into v. A missing key returns
// false; a malformed value is reported as an error so callers can fall back.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key
func (s *Store) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, string(raw))
}
