package models

import "time"

// Entry is a single persisted key/value pair. Values are plain strings or
// JSON documents, depending on the key.
type Entry struct {
	Key       string    `gorm:"primaryKey;column:entry_key" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
