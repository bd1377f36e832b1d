package session

import (
	"sync"
	"testing"

	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissesBeforeFirstCommit(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, ok := s.Get("u1")
	assert.False(t, ok)
}

func TestStore_SetCheckedInOverwritesFlag(t *testing.T) {
	t.Parallel()

	s := NewStore()
	profile := user.Profile{ID: "u1", Name: "Karim", Role: user.RoleMR}

	s.SetCheckedIn(profile, true)
	entry, ok := s.Get("u1")
	require.True(t, ok)
	assert.True(t, entry.CheckedIn)
	assert.True(t, entry.Profile.CheckedIn)
	assert.False(t, entry.UpdatedAt.IsZero())

	s.SetCheckedIn(profile, false)
	entry, ok = s.Get("u1")
	require.True(t, ok)
	assert.False(t, entry.CheckedIn)
	assert.Equal(t, "Karim", entry.Profile.Name)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetCheckedIn(user.Profile{ID: "u1"}, true)
		}()
		go func() {
			defer wg.Done()
			s.Get("u1")
		}()
	}
	wg.Wait()

	_, ok := s.Get("u1")
	assert.True(t, ok)
}
