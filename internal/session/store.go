package session

import (
	"sync"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/user"
)

// Entry caches an externally fetched profile next to the locally owned
// checked-in flag so the UI can render without a round trip.
type Entry struct {
	Profile   user.Profile
	CheckedIn bool
	UpdatedAt time.Time
}

// Store owns the only mutable shared state in the core. It is written
// exclusively by the submission workflow, on commit.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]Entry),
	}
}

// Get returns the cached entry for a user, if any.
func (s *Store) Get(userID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[userID]
	return entry, ok
}

// SetCheckedIn records a committed direction flip together with the
// freshly fetched profile.
func (s *Store) SetCheckedIn(profile user.Profile, checkedIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.CheckedIn = checkedIn
	s.entries[profile.ID] = Entry{
		Profile:   profile,
		CheckedIn: checkedIn,
		UpdatedAt: time.Now(),
	}
}
