package program

import (
	"fmt"
	"log"
	"slices"

	"github.com/ajitssourat/aji/internal/db"
)

// Storage is the JSON side of the key/value store
type Storage interface {
	GetJSON(key string, v any) (bool, error)
	SetJSON(key string, v any) error
}

// CompletionRecord is the persisted set of completed session ids
type CompletionRecord struct {
	store Storage
	key   string
	ids   []int
}

// LoadRecord reads the record of email. A malformed value is logged and
// treated as empty.
func LoadRecord(store Storage, email string) *CompletionRecord {
	r := &CompletionRecord{store: store, key: db.CompletedSessionsKey(email)}
	var ids []int
	if _, err := store.GetJSON(r.key, &ids); err != nil {
		log.Printf("program: ignoring unreadable %s: %v", r.key, err)
		ids = nil
	}
	r.ids = ids
	return r
}

// Add records id as completed and persists the record. Adding an id twice
// leaves the record unchanged.
func (r *CompletionRecord) Add(id int) error {
	if r.Contains(id) {
		return nil
	}
	ids := append(slices.Clone(r.ids), id)
	if err := r.store.SetJSON(r.key, ids); err != nil {
		return fmt.Errorf("record session %d: %w", id, err)
	}
	r.ids = ids
	log.Printf("program: session %d completed (%d total)", id, len(ids))
	return nil
}

// Contains reports whether id was completed
func (r *CompletionRecord) Contains(id int) bool {
	return slices.Contains(r.ids, id)
}

// Count is the number of completed sessions
func (r *CompletionRecord) Count() int { return len(r.ids) }

// IDs returns the completed ids in completion order
func (r *CompletionRecord) IDs() []int { return slices.Clone(r.ids) }
