// Package model defines the core domain types for the school activities
// roster service.
package model

import "slices"

// Activity represents an extracurricular offering with a bounded roster.
// Description, Schedule and MaxParticipants are fixed at seed time; only
// Participants changes, exclusively through the roster store.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Remaining returns the number of open spots on the roster.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// IsRegistered reports whether email is already on the roster.
// Matching is byte-exact; the store never normalizes identifiers.
func (a *Activity) IsRegistered(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy so callers cannot alias the participant slice.
func (a *Activity) Clone() Activity {
	return Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    slices.Clone(a.Participants),
	}
}

// SignupResponse confirms a successful signup.
type SignupResponse struct {
	Message        string `json:"message"`
	RegistrationID string `json:"registration_id"`
}

// UnregisterResponse confirms a successful unregistration.
type UnregisterResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
