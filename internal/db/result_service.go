package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ajitssourat/aji/internal/models"
)

// SaveResultRequest holds what the evaluation step produced
type SaveResultRequest struct {
	Email       string
	TestID      int
	Score       int
	MaxScore    int
	Observation string
}

// SaveResult stores one assessment result
func (s *Store) SaveResult(req SaveResultRequest) (*models.AssessmentResult, error) {
	if req.Score < 0 || req.Score > req.MaxScore {
		return nil, fmt.Errorf("score %d out of range [0,%d]", req.Score, req.MaxScore)
	}
	result := models.AssessmentResult{
		ID:          uuid.NewString(),
		Email:       req.Email,
		TestID:      req.TestID,
		Score:       req.Score,
		MaxScore:    req.MaxScore,
		Observation: req.Observation,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return &result, nil
}

// Results returns the results of email, newest first
func (s *Store) Results(email string) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	err := s.db.Where("email = ?", email).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// LatestScores maps test id to the most recent score of email
func (s *Store) LatestScores(email string) (map[int]int, error) {
	results, err := s.Results(email)
	if err != nil {
		return nil, err
	}
	scores := make(map[int]int, len(results))
	for _, r := range results {
		if _, seen := scores[r.TestID]; !seen {
			scores[r.TestID] = r.Score
		}
	}
	return scores, nil
}
