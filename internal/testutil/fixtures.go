// Package testutil provides test fixtures for the den tracker packages.
package testutil

import (
	"testing"

	"github.com/dentrack/dentrack-go/internal/store"
)

// StoreOption configures a test store.
type StoreOption func(*testing.T, *store.Store)

// NewTestStore creates a store for testing with optional configuration.
func NewTestStore(t *testing.T, opts ...StoreOption) *store.Store {
	t.Helper()

	s := store.NewStore()
	for _, opt := range opts {
		opt(t, s)
	}
	return s
}

// WithScouts adds scouts to the roster.
func WithScouts(names ...string) StoreOption {
	return func(t *testing.T, s *store.Store) {
		t.Helper()
		for _, name := range names {
			if err := s.AddScout(name); err != nil {
				t.Fatalf("AddScout(%q): %v", name, err)
			}
		}
	}
}

// WithRequirements adds catalog entries.
func WithRequirements(reqs ...store.Requirement) StoreOption {
	return func(t *testing.T, s *store.Store) {
		t.Helper()
		for _, req := range reqs {
			if err := s.AddRequirement(req); err != nil {
				t.Fatalf("AddRequirement(%q): %v", req.ID, err)
			}
		}
	}
}

// WithMeeting adds one meeting covering the given requirement IDs.
func WithMeeting(date, title string, covers ...string) StoreOption {
	return func(t *testing.T, s *store.Store) {
		t.Helper()
		m := store.Meeting{Date: date, Title: title, Covered: store.NewReqIDList(covers...)}
		if err := s.AddMeeting(m); err != nil {
			t.Fatalf("AddMeeting(%s): %v", date, err)
		}
	}
}

// WithOptionalMeeting adds an optional event covering the given IDs.
func WithOptionalMeeting(date, title string, covers ...string) StoreOption {
	return func(t *testing.T, s *store.Store) {
		t.Helper()
		m := store.Meeting{Date: date, Title: title, Covered: store.NewReqIDList(covers...), Optional: true}
		if err := s.AddMeeting(m); err != nil {
			t.Fatalf("AddMeeting(%s): %v", date, err)
		}
	}
}

// WithAttendance records the given scouts present at date. The meeting must
// already exist, so list meetings before attendance.
func WithAttendance(date string, scouts ...string) StoreOption {
	return func(t *testing.T, s *store.Store) {
		t.Helper()
		if err := s.SetAttendance(date, scouts); err != nil {
			t.Fatalf("SetAttendance(%s): %v", date, err)
		}
	}
}

// RequirementOption configures a test requirement.
type RequirementOption func(*store.Requirement)

// NewTestRequirement creates a required catalog entry with sensible defaults.
func NewTestRequirement(id string, opts ...RequirementOption) store.Requirement {
	req := store.Requirement{
		ID:          id,
		Adventure:   "Test Adventure",
		Description: "Test requirement " + id,
		Required:    true,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// WithAdventure sets the adventure the requirement belongs to.
func WithAdventure(name string) RequirementOption {
	return func(r *store.Requirement) {
		r.Adventure = name
	}
}

// Elective marks the requirement as elective.
func Elective() RequirementOption {
	return func(r *store.Requirement) {
		r.Required = false
	}
}

// WithDescription sets the requirement description.
func WithDescription(text string) RequirementOption {
	return func(r *store.Requirement) {
		r.Description = text
	}
}
