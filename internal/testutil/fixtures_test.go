package testutil

import (
	"testing"
)

func TestNewTestStore(t *testing.T) {
	s := NewTestStore(t)
	if s == nil {
		t.Fatal("NewTestStore returned nil")
	}
	if s.DenSize() != 0 {
		t.Errorf("Expected empty store, got %d scouts", s.DenSize())
	}
}

func TestNewTestStoreWithOptions(t *testing.T) {
	s := NewTestStore(t,
		WithScouts("Maya", "Ben"),
		WithRequirements(
			NewTestRequirement("B1", WithAdventure("Bobcat")),
			NewTestRequirement("GF1", WithAdventure("Go Fish"), Elective()),
		),
		WithMeeting("2026-01-10", "Den 1", "B1"),
		WithOptionalMeeting("2026-01-24", "Picnic", "GF1"),
		WithAttendance("2026-01-10", "Maya"),
	)

	if s.DenSize() != 2 {
		t.Errorf("Expected 2 scouts, got %d", s.DenSize())
	}
	if len(s.Requirements()) != 2 {
		t.Errorf("Expected 2 requirements, got %d", len(s.Requirements()))
	}

	picnic, ok := s.Meeting("2026-01-24")
	if !ok || !picnic.Optional {
		t.Error("Expected optional picnic meeting")
	}
	if got := s.Attendees("2026-01-10"); len(got) != 1 || got[0] != "Maya" {
		t.Errorf("Expected Maya present, got %v", got)
	}
}

func TestNewTestRequirementDefaults(t *testing.T) {
	req := NewTestRequirement("X1")
	if req.ID != "X1" {
		t.Errorf("ID = %q, want X1", req.ID)
	}
	if !req.Required {
		t.Error("Expected required by default")
	}
	if req.Adventure == "" || req.Description == "" {
		t.Error("Expected non-empty defaults")
	}

	elective := NewTestRequirement("X2", Elective(), WithDescription("custom"))
	if elective.Required {
		t.Error("Elective() must clear Required")
	}
	if elective.Description != "custom" {
		t.Errorf("Description = %q", elective.Description)
	}
}
