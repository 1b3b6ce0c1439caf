package db

import (
	"log"
)

// SessionMarker is the JSON value of the "user" key
type SessionMarker struct {
	Email string `json:"email"`
}

// SignIn records email as the signed-in user
func (s *Store) SignIn(email string) error {
	if err := s.SetJSON(KeyUser, SessionMarker{Email: email}); err != nil {
		return err
	}
	log.Printf("session: signed in %s", email)
	return nil
}

// SignOut removes the session marker
func (s *Store) SignOut() error {
	if err := s.Delete(KeyUser); err != nil {
		return err
	}
	log.Printf("session: signed out")
	return nil
}

// CurrentUser returns the signed-in email, or "" when nobody is signed in.
// A malformed marker counts as signed out.
func (s *Store) CurrentUser() string {
	var marker SessionMarker
	ok, err := s.GetJSON(KeyUser, &marker)
	if err != nil {
		log.Printf("session: ignoring unreadable marker: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return marker.Email
}

// OnboardingCompleted reports whether email finished onboarding
func (s *Store) OnboardingCompleted(email string) bool {
	if email == "" {
		return false
	}
	v, ok, err := s.Get(OnboardingKey(email))
	if err != nil || !ok {
		return false
	}
	return v == "true"
}
