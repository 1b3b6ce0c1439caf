package models

import "time"

// AssessmentResult is the score and observation saved after a motor test
type AssessmentResult struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email       string `gorm:"index" json:"email"`
	TestID      int    `gorm:"index;not null" json:"test_id"`
	Score       int    `gorm:"not null" json:"score"`
	MaxScore    int    `gorm:"not null" json:"max_score"`
	Observation string `json:"observation"`
}
