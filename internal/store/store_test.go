package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/school-activities/internal/model"
	"github.com/mergington/school-activities/internal/store"
)

// newChessStore builds a fresh store with a single Chess Club activity.
func newChessStore(capacity int, participants ...string) *store.Store {
	return store.New(map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: capacity,
			Participants:    participants,
		},
	})
}

func TestListReturnsSeededActivities(t *testing.T) {
	s := newChessStore(12, "michael@mergington.edu")

	got := s.List()
	require.Len(t, got, 1)
	a, ok := got["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, 12, a.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu"}, a.Participants)
}

func TestListIsIdempotent(t *testing.T) {
	s := newChessStore(12, "michael@mergington.edu", "daniel@mergington.edu")

	first := s.List()
	second := s.List()
	assert.Equal(t, first, second)
}

func TestListSnapshotIsolation(t *testing.T) {
	s := newChessStore(12, "michael@mergington.edu")

	snapshot := s.List()

	// Mutating the snapshot must not leak into the store.
	a := snapshot["Chess Club"]
	a.Participants[0] = "tampered@mergington.edu"
	fresh, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu"}, fresh.Participants)

	// Store mutations must not show up in an older snapshot.
	require.NoError(t, s.Signup("Chess Club", "new@mergington.edu"))
	assert.Len(t, snapshot["Chess Club"].Participants, 1)
}

func TestSignupAppendsInOrder(t *testing.T) {
	s := newChessStore(12)

	require.NoError(t, s.Signup("Chess Club", "a@x.com"))
	require.NoError(t, s.Signup("Chess Club", "b@x.com"))

	a, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, a.Participants)
}

func TestSignupUnknownActivity(t *testing.T) {
	s := newChessStore(12)

	err := s.Signup("NoSuchClub", "a@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	a, getErr := s.Get("Chess Club")
	require.NoError(t, getErr)
	assert.Empty(t, a.Participants)
}

func TestSignupDuplicate(t *testing.T) {
	s := newChessStore(12)

	require.NoError(t, s.Signup("Chess Club", "a@x.com"))
	err := s.Signup("Chess Club", "a@x.com")
	require.ErrorIs(t, err, store.ErrAlreadyRegistered)

	a, getErr := s.Get("Chess Club")
	require.NoError(t, getErr)
	assert.Equal(t, []string{"a@x.com"}, a.Participants)
}

func TestSignupCapacityBound(t *testing.T) {
	const capacity = 3
	s := newChessStore(capacity)

	for i := 0; i < capacity; i++ {
		require.NoError(t, s.Signup("Chess Club", fmt.Sprintf("student%d@x.com", i)))
	}

	err := s.Signup("Chess Club", "overflow@x.com")
	require.ErrorIs(t, err, store.ErrActivityFull)

	a, getErr := s.Get("Chess Club")
	require.NoError(t, getErr)
	assert.Len(t, a.Participants, capacity)
	assert.NotContains(t, a.Participants, "overflow@x.com")
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	s := newChessStore(12, "michael@mergington.edu", "daniel@mergington.edu")

	before, err := s.Get("Chess Club")
	require.NoError(t, err)

	require.NoError(t, s.Signup("Chess Club", "round@x.com"))
	require.NoError(t, s.Unregister("Chess Club", "round@x.com"))

	after, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants)
}

func TestUnregisterPreservesOrder(t *testing.T) {
	s := newChessStore(12, "a@x.com", "b@x.com", "c@x.com")

	require.NoError(t, s.Unregister("Chess Club", "b@x.com"))

	a, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "c@x.com"}, a.Participants)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	s := newChessStore(12, "a@x.com")

	err := s.Unregister("NoSuchClub", "a@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	a, getErr := s.Get("Chess Club")
	require.NoError(t, getErr)
	assert.Equal(t, []string{"a@x.com"}, a.Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	s := newChessStore(12, "a@x.com")

	err := s.Unregister("Chess Club", "stranger@x.com")
	require.ErrorIs(t, err, store.ErrNotRegistered)

	a, getErr := s.Get("Chess Club")
	require.NoError(t, getErr)
	assert.Equal(t, []string{"a@x.com"}, a.Participants)
}

func TestCrossActivityIndependence(t *testing.T) {
	s := store.New(map[string]model.Activity{
		"Chess Club":        {MaxParticipants: 12},
		"Programming Class": {MaxParticipants: 20},
	})

	require.NoError(t, s.Signup("Chess Club", "multi@x.com"))
	require.NoError(t, s.Signup("Programming Class", "multi@x.com"))

	chess, err := s.Get("Chess Club")
	require.NoError(t, err)
	programming, err := s.Get("Programming Class")
	require.NoError(t, err)
	assert.Equal(t, []string{"multi@x.com"}, chess.Participants)
	assert.Equal(t, []string{"multi@x.com"}, programming.Participants)
}

func TestMatchingIsByteExact(t *testing.T) {
	s := newChessStore(12, "a@x.com")

	// Different case and surrounding whitespace are different strings.
	require.NoError(t, s.Signup("Chess Club", "A@X.com"))
	require.NoError(t, s.Signup("Chess Club", " a@x.com"))

	a, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "A@X.com", " a@x.com"}, a.Participants)
}

// TestChessClubScenario walks the full signup/unregister life of one
// activity: duplicate, capacity and membership failures included.
func TestChessClubScenario(t *testing.T) {
	s := newChessStore(2)

	require.NoError(t, s.Signup("Chess Club", "a@x.com"))
	a, _ := s.Get("Chess Club")
	assert.Equal(t, []string{"a@x.com"}, a.Participants)

	require.ErrorIs(t, s.Signup("Chess Club", "a@x.com"), store.ErrAlreadyRegistered)

	require.NoError(t, s.Signup("Chess Club", "b@x.com"))
	a, _ = s.Get("Chess Club")
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, a.Participants)

	require.ErrorIs(t, s.Signup("Chess Club", "c@x.com"), store.ErrActivityFull)

	require.NoError(t, s.Unregister("Chess Club", "a@x.com"))
	a, _ = s.Get("Chess Club")
	assert.Equal(t, []string{"b@x.com"}, a.Participants)

	require.ErrorIs(t, s.Unregister("Chess Club", "a@x.com"), store.ErrNotRegistered)
}

// TestConcurrentSignupRespectsCapacity hammers one activity from many
// goroutines and checks that exactly capacity signups win.
func TestConcurrentSignupRespectsCapacity(t *testing.T) {
	const (
		capacity = 5
		attempts = 50
	)
	s := newChessStore(capacity)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		full    int
		unknown int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Signup("Chess Club", fmt.Sprintf("student%d@x.com", i))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case err == store.ErrActivityFull:
				full++
			default:
				unknown++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, capacity, ok)
	assert.Equal(t, attempts-capacity, full)
	assert.Zero(t, unknown)

	a, err := s.Get("Chess Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, capacity)
}
