// Package catalog holds the fixed motor tests and exercise sessions.
//
// Names, descriptions and difficulties are translation keys; the views
// translate them with the active language.
package catalog

import (
	"errors"
	"fmt"

	"github.com/ajitssourat/aji/internal/engine"
)

// ErrNotFound is returned when an id is not part of a catalog
var ErrNotFound = errors.New("catalog item not found")

// Kind tags a catalog item
type Kind int

const (
	KindTest Kind = iota
	KindSession
)

func (k Kind) String() string {
	switch k {
	case KindTest:
		return "test"
	case KindSession:
		return "session"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Status of a catalog item in the static data
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Exercise is one timed part of a session
type Exercise struct {
	Name    string
	Minutes int
}

// Item is either a motor test or an exercise session
type Item struct {
	ID          int
	Kind        Kind
	Name        string
	Description string
	Minutes     int

	// Exercises is only set for sessions
	Exercises []Exercise

	// Score is nil until the test has been evaluated
	Score    *int
	MaxScore int
	Status   Status

	VideoURL   string
	Difficulty string
}

// Steps is the ordered list of countdown steps for the item: a test is a
// single step, a session has one step per exercise.
func (it Item) Steps() []engine.Step {
	if it.Kind == KindTest {
		return []engine.Step{{Name: it.Name, Minutes: it.Minutes}}
	}
	steps := make([]engine.Step, 0, len(it.Exercises))
	for _, ex := range it.Exercises {
		steps = append(steps, engine.Step{Name: ex.Name, Minutes: ex.Minutes})
	}
	return steps
}

// Completed reports whether the static data marks the item as done
func (it Item) Completed() bool {
	return it.Status == StatusCompleted
}

func score(n int) *int { return &n }

var tests = []Item{
	{ID: 1, Kind: KindTest, Name: "hipMobility", Description: "hipMobilityDesc", Minutes: 2,
		Score: score(8), MaxScore: 10, Status: StatusCompleted, VideoURL: "/fenteavant.mp4"},
	{ID: 2, Kind: KindTest, Name: "balanceStability", Description: "balanceStabilityDesc", Minutes: 3,
		Score: score(7), MaxScore: 10, Status: StatusCompleted, VideoURL: "/equilibre.mp4"},
	{ID: 3, Kind: KindTest, Name: "muscleStrength", Description: "muscleStrengthDesc", Minutes: 4,
		Score: score(9), MaxScore: 10, Status: StatusCompleted, VideoURL: "/deepsquat.mp4"},
	{ID: 4, Kind: KindTest, Name: "spineFlexibility", Description: "spineFlexibilityDesc", Minutes: 2,
		Score: score(2), MaxScore: 10, Status: StatusCompleted, VideoURL: "/flexion.mp4"},
	{ID: 5, Kind: KindTest, Name: "coordination", Description: "coordinationDesc", Minutes: 3,
		MaxScore: 10, Status: StatusPending, VideoURL: "/crosscrawl.mp4"},
	{ID: 6, Kind: KindTest, Name: "cardioEndurance", Description: "cardioEnduranceDesc", Minutes: 5,
		Score: score(5), MaxScore: 10, Status: StatusCompleted, VideoURL: "/videos/cardio.mp4"},
	{ID: 7, Kind: KindTest, Name: "proprioception", Description: "proprioceptionDesc", Minutes: 2,
		MaxScore: 10, Status: StatusPending, VideoURL: "/scan.mp4"},
	{ID: 8, Kind: KindTest, Name: "breathingRelaxation", Description: "breathingRelaxationDesc", Minutes: 3,
		Score: score(8), MaxScore: 10, Status: StatusCompleted, VideoURL: "/respiration.mp4"},
}

var sessions = []Item{
	{ID: 1, Kind: KindSession, Name: "morningMobility", Minutes: 15, Difficulty: "easy",
		Exercises: []Exercise{
			{Name: "warmup", Minutes: 3},
			{Name: "hipMobilityEx", Minutes: 5},
			{Name: "spineFlexibilityEx", Minutes: 4},
			{Name: "breathingEx", Minutes: 3},
		}},
	{ID: 2, Kind: KindSession, Name: "balanceStabilitySession", Minutes: 20, Difficulty: "medium",
		Exercises: []Exercise{
			{Name: "staticBalance", Minutes: 5},
			{Name: "lineWalking", Minutes: 5},
			{Name: "proprioceptionEx", Minutes: 5},
			{Name: "coolDown", Minutes: 5},
		}},
	{ID: 3, Kind: KindSession, Name: "muscleStrengthSession", Minutes: 25, Difficulty: "hard",
		Exercises: []Exercise{
			{Name: "warmup", Minutes: 3},
			{Name: "upperBodyStrength", Minutes: 8},
			{Name: "lowerBodyStrength", Minutes: 8},
			{Name: "stretching", Minutes: 6},
		}},
}

// Tests returns the motor tests in display order
func Tests() []Item {
	return cloneAll(tests)
}

// Sessions returns the exercise sessions in display order
func Sessions() []Item {
	return cloneAll(sessions)
}

// FindTest looks up a test by id
func FindTest(id int) (Item, error) {
	return find(tests, id)
}

// FindSession looks up a session by id
func FindSession(id int) (Item, error) {
	return find(sessions, id)
}

func find(items []Item, id int) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return clone(it), nil
		}
	}
	return Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func cloneAll(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

// clone copies the slices and pointers so callers cannot mutate the catalog
func clone(it Item) Item {
	if it.Exercises != nil {
		it.Exercises = append([]Exercise(nil), it.Exercises...)
	}
	if it.Score != nil {
		s := *it.Score
		it.Score = &s
	}
	return it
}
