// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the roster store.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mergington/school-activities/internal/metrics"
	"github.com/mergington/school-activities/internal/model"
	"github.com/mergington/school-activities/internal/store"
)

// ErrInvalidEmail is returned when the email fails syntactic validation.
var ErrInvalidEmail = errors.New("email is not a valid email address")

var validate = validator.New()

// RosterService orchestrates roster operations against the store.
type RosterService struct {
	store *store.Store
}

// New constructs a RosterService with its store dependency.
func New(s *store.Store) *RosterService {
	return &RosterService{store: s}
}

// ListActivities returns a snapshot of all activities keyed by name.
func (s *RosterService) ListActivities(ctx context.Context) map[string]model.Activity {
	return s.store.List()
}

// Signup validates the request and enrolls email in the named activity.
// The email is taken as-is apart from validation: no trimming or
// case-folding, since roster matching is byte-exact on decoded strings.
func (s *RosterService) Signup(ctx context.Context, activity, email string) (*model.SignupResponse, error) {
	if activity == "" {
		metrics.SignupTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("activity name is required")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		metrics.SignupTotal.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidEmail
	}

	if err := s.store.Signup(activity, email); err != nil {
		metrics.SignupTotal.WithLabelValues(signupOutcome(err)).Inc()
		return nil, err
	}

	metrics.SignupTotal.WithLabelValues("ok").Inc()
	return &model.SignupResponse{
		Message:        fmt.Sprintf("Signed up %s for %s", email, activity),
		RegistrationID: uuid.New().String(),
	}, nil
}

// Unregister validates the request and removes email from the named
// activity's roster.
func (s *RosterService) Unregister(ctx context.Context, activity, email string) (*model.UnregisterResponse, error) {
	if activity == "" {
		metrics.UnregisterTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("activity name is required")
	}
	if email == "" {
		metrics.UnregisterTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("email is required")
	}

	if err := s.store.Unregister(activity, email); err != nil {
		metrics.UnregisterTotal.WithLabelValues(unregisterOutcome(err)).Inc()
		return nil, err
	}

	metrics.UnregisterTotal.WithLabelValues("ok").Inc()
	return &model.UnregisterResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity),
	}, nil
}

func signupOutcome(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, store.ErrActivityFull):
		return "full"
	default:
		return "error"
	}
}

func unregisterOutcome(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrNotRegistered):
		return "not_registered"
	default:
		return "error"
	}
}
