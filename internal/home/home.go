// Package home loads the dashboard from persisted state and decides where a
// visitor without an account or onboarding has to go first.
package home

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ajitssourat/aji/internal/bilan"
	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/program"
)

// Redirect targets
const (
	PathLogin      = "/login"
	PathOnboarding = "/onboarding"
)

// RingTarget is the weekly MET score that fills the dashboard ring
const RingTarget = 3500

// IPAQ thresholds in MET-min/week
const (
	moderateThreshold = 600
	highThreshold     = 3000
)

var ErrInvalidScore = errors.New("MET score must not be negative")

// Level is the IPAQ activity level, stored with its French label
type Level string

const (
	LevelLow      Level = "Faible"
	LevelModerate Level = "Modéré"
	LevelHigh     Level = "Élevé"
)

// LevelFor classifies a weekly MET score
func LevelFor(met int) Level {
	switch {
	case met < moderateThreshold:
		return LevelLow
	case met < highThreshold:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// Key is the translation key of the level label
func (l Level) Key() string {
	switch l {
	case LevelLow:
		return "levelLow"
	case LevelModerate:
		return "levelModerate"
	case LevelHigh:
		return "levelHigh"
	default:
		return "notAvailable"
	}
}

// Color names the level badge colour
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorGrey   Color = "grey"
)

// ColorFor maps a stored level label to its colour. Unknown labels are grey.
func ColorFor(level string) Color {
	switch Level(level) {
	case LevelLow:
		return ColorRed
	case LevelModerate:
		return ColorYellow
	case LevelHigh:
		return ColorGreen
	default:
		return ColorGrey
	}
}

// Profile is the JSON value of the userProfile key
type Profile struct {
	Level    string `json:"level"`
	MetScore int    `json:"metScore"`
}

// Dashboard is what the home screen shows
type Dashboard struct {
	Email             string
	MetScore          int
	Level             string // empty when no profile was stored
	Color             Color
	Ring              float64
	CompletedSessions int
	AverageScore      int
}

// Load builds the dashboard. When the visitor must first sign in or finish
// onboarding, redirect is the path to go to and the dashboard is empty.
func Load(store *db.Store) (dash Dashboard, redirect string, err error) {
	email := store.CurrentUser()
	if email == "" {
		return Dashboard{}, PathLogin, nil
	}
	if !store.OnboardingCompleted(email) {
		return Dashboard{}, PathOnboarding, nil
	}

	dash = Dashboard{Email: email, MetScore: metScore(store)}

	var profile Profile
	if _, err := store.GetJSON(db.ProfileKey(email), &profile); err != nil {
		log.Printf("home: ignoring unreadable profile: %v", err)
		profile = Profile{}
	}
	dash.Level = profile.Level
	dash.Color = ColorFor(profile.Level)
	dash.Ring = RingFraction(dash.MetScore)

	dash.CompletedSessions = program.LoadRecord(store, email).Count()

	overview, err := bilan.LoadOverview(store, email)
	if err != nil {
		return Dashboard{}, "", fmt.Errorf("load assessment: %w", err)
	}
	dash.AverageScore = overview.AverageScore()
	return dash, "", nil
}

// RingFraction is the filled share of the MET ring, capped at 1
func RingFraction(met int) float64 {
	if met <= 0 {
		return 0
	}
	return min(1, float64(met)/RingTarget)
}

// metScore reads the stored MET score. Missing or malformed values count as 0.
func metScore(store *db.Store) int {
	raw, ok, err := store.Get(db.KeyMetScore)
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// Onboard stores the MET score and level of email and marks onboarding done
func Onboard(store *db.Store, email string, met int) (Level, error) {
	if met < 0 {
		return "", ErrInvalidScore
	}
	level := LevelFor(met)
	if err := store.SetJSON(db.ProfileKey(email), Profile{Level: string(level), MetScore: met}); err != nil {
		return "", err
	}
	if err := store.Set(db.KeyMetScore, strconv.Itoa(met)); err != nil {
		return "", err
	}
	if err := store.Set(db.OnboardingKey(email), "true"); err != nil {
		return "", err
	}
	log.Printf("home: %s onboarded with %d MET (%s)", email, met, level)
	return level, nil
}

// Logout clears the signed-in user. The next Load redirects to login.
func Logout(store *db.Store) error {
	return store.SignOut()
}
