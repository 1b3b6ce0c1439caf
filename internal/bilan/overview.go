package bilan

import (
	"log"
	"math"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/db"
)

// Overview is the test list with completion and score figures
type Overview struct {
	tests     []catalog.Item
	completed map[int]bool
	scores    map[int]int
}

// NewOverview starts from the catalog's own statuses and scores, then
// applies saved scores (test id → latest score) on top.
func NewOverview(tests []catalog.Item, saved map[int]int) Overview {
	o := Overview{
		tests:     tests,
		completed: make(map[int]bool, len(tests)),
		scores:    make(map[int]int, len(tests)),
	}
	for _, t := range tests {
		if t.Completed() {
			o.completed[t.ID] = true
		}
		if t.Score != nil {
			o.scores[t.ID] = *t.Score
		}
	}
	for _, t := range tests {
		if s, ok := saved[t.ID]; ok {
			o.completed[t.ID] = true
			o.scores[t.ID] = s
		}
	}
	return o
}

// Tests in display order
func (o Overview) Tests() []catalog.Item { return o.tests }

// IsCompleted reports whether test id has been done
func (o Overview) IsCompleted(id int) bool { return o.completed[id] }

// Score of test id, if any
func (o Overview) Score(id int) (int, bool) {
	s, ok := o.scores[id]
	return s, ok
}

// CompletedCount is the number of completed tests
func (o Overview) CompletedCount() int { return len(o.completed) }

// Progress is the completed share in percent
func (o Overview) Progress() int {
	if len(o.tests) == 0 {
		return 0
	}
	return o.CompletedCount() * 100 / len(o.tests)
}

// AverageScore is the rounded mean score over completed tests
func (o Overview) AverageScore() int {
	if o.CompletedCount() == 0 {
		return 0
	}
	total := 0
	for _, s := range o.scores {
		total += s
	}
	return int(math.Round(float64(total) / float64(o.CompletedCount())))
}

// StoreReporter saves outcomes as assessment results of a user
type StoreReporter struct {
	Store *db.Store
	Email string
}

// Report implements Reporter
func (r StoreReporter) Report(o Outcome) error {
	_, err := r.Store.SaveResult(db.SaveResultRequest{
		Email:       r.Email,
		TestID:      o.TestID,
		Score:       o.Score,
		MaxScore:    o.MaxScore,
		Observation: o.Observation,
	})
	if err != nil {
		return err
	}
	log.Printf("bilan: saved test %d score %d/%d for %s", o.TestID, o.Score, o.MaxScore, r.Email)
	return nil
}

// LoadOverview builds the overview for email from the saved results
func LoadOverview(store *db.Store, email string) (Overview, error) {
	saved, err := store.LatestScores(email)
	if err != nil {
		return Overview{}, err
	}
	return NewOverview(catalog.Tests(), saved), nil
}
