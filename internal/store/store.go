// Package store implements the in-memory roster of activities: the
// mapping from activity name to roster plus the transition rules for
// signup and unregistration. It is the only place roster state mutates.
package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/mergington/school-activities/internal/model"
)

// ErrNotFound is returned when the named activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadyRegistered is returned when the same email signs up twice
// for one activity.
var ErrAlreadyRegistered = errors.New("already signed up for this activity")

// ErrNotRegistered is returned when unregistering an email that is not
// on the roster.
var ErrNotRegistered = errors.New("not signed up for this activity")

// Store owns the roster state for the process lifetime. The set of
// activities and their static fields never change after New; only the
// participant lists move, through Signup and Unregister.
//
// A single store-wide mutex serializes mutations. The roster is a
// handful of activities with sub-microsecond critical sections, so
// per-activity locking would buy nothing here.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New constructs a Store from seed data. The seed is deep-copied so the
// caller cannot alias internal state afterwards.
func New(seed map[string]model.Activity) *Store {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		clone := a.Clone()
		if clone.Participants == nil {
			clone.Participants = []string{}
		}
		activities[name] = &clone
	}
	return &Store{activities: activities}
}

// List returns a snapshot of every activity keyed by name. The snapshot
// is a deep copy: later signups and unregistrations are never visible
// through a previously returned value.
func (s *Store) List() map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a copy of a single activity or ErrNotFound.
func (s *Store) Get(name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's roster.
//
// Preconditions are checked in order: the activity must exist
// (ErrNotFound), the email must not already be enrolled
// (ErrAlreadyRegistered), and the roster must have room
// (ErrActivityFull). Either every check passes and exactly one append
// happens, or nothing mutates. Name and email matching is byte-exact on
// the already-decoded strings; the store does no trimming, case-folding
// or unescaping of its own.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if a.IsRegistered(email) {
		return ErrAlreadyRegistered
	}
	if a.IsFull() {
		return ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes one occurrence of email from the named activity's
// roster, preserving the relative order of the remaining participants.
// Fails with ErrNotFound for an unknown activity and ErrNotRegistered
// when the email is not enrolled; no mutation happens on failure.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotRegistered
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}
