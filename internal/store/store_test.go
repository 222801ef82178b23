package store

import (
	"strings"
	"testing"
)

func TestAddScout(t *testing.T) {
	s := NewStore()

	if err := s.AddScout("Maya"); err != nil {
		t.Fatalf("AddScout failed: %v", err)
	}
	if !s.HasScout("Maya") {
		t.Error("Expected Maya in roster")
	}
	if s.DenSize() != 1 {
		t.Errorf("Expected den size 1, got %d", s.DenSize())
	}
	if !s.IsDirty() {
		t.Error("Expected store to be dirty after AddScout")
	}
}

func TestAddScoutRejectsDuplicatesAndEmpty(t *testing.T) {
	s := NewStore()
	if err := s.AddScout("Maya"); err != nil {
		t.Fatalf("AddScout failed: %v", err)
	}

	if err := s.AddScout("Maya"); err == nil {
		t.Error("Expected error adding duplicate scout")
	}
	if err := s.AddScout("  "); err == nil {
		t.Error("Expected error adding blank scout name")
	}
}

func TestScoutsSortedCaseInsensitive(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zoe", "Ben", "ana"} {
		if err := s.AddScout(name); err != nil {
			t.Fatalf("AddScout(%q) failed: %v", name, err)
		}
	}

	got := s.Scouts()
	want := []string{"ana", "Ben", "zoe"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected roster %v, got %v", want, got)
	}
}

func TestAddScoutsSkipsExisting(t *testing.T) {
	s := NewStore()
	if err := s.AddScout("Maya"); err != nil {
		t.Fatalf("AddScout failed: %v", err)
	}

	added, skipped := s.AddScouts([]string{"Maya", "Ben", "", "Ben"})
	if added != 1 {
		t.Errorf("Expected 1 added, got %d", added)
	}
	if len(skipped) != 2 || skipped[0] != "Maya" || skipped[1] != "Ben" {
		t.Errorf("Expected skipped [Maya Ben], got %v", skipped)
	}
}

func TestRemoveScoutKeepsAttendance(t *testing.T) {
	s := NewStore()
	if err := s.AddScout("Maya"); err != nil {
		t.Fatalf("AddScout failed: %v", err)
	}
	if err := s.AddMeeting(Meeting{Date: "2026-01-10", Title: "Den 1"}); err != nil {
		t.Fatalf("AddMeeting failed: %v", err)
	}
	if err := s.SetAttendance("2026-01-10", []string{"Maya"}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}

	if err := s.RemoveScout("Maya"); err != nil {
		t.Fatalf("RemoveScout failed: %v", err)
	}
	if s.HasScout("Maya") {
		t.Error("Expected Maya removed from roster")
	}
	if len(s.Attendance()) != 1 {
		t.Errorf("Expected attendance history kept, got %d records", len(s.Attendance()))
	}

	if err := s.RemoveScout("Maya"); err == nil {
		t.Error("Expected error removing unknown scout")
	}
}

func TestRequirementLifecycle(t *testing.T) {
	s := NewStore()
	req := Requirement{ID: "B1", Adventure: "Bobcat", Description: "Learn the handshake", Required: true}

	if err := s.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement failed: %v", err)
	}
	if err := s.AddRequirement(req); err == nil {
		t.Error("Expected error adding duplicate requirement")
	}
	if err := s.AddRequirement(Requirement{}); err == nil {
		t.Error("Expected error adding requirement with empty ID")
	}

	req.Description = "Learn the Cub Scout handshake"
	if err := s.UpdateRequirement(req); err != nil {
		t.Fatalf("UpdateRequirement failed: %v", err)
	}
	got, ok := s.Requirement("B1")
	if !ok {
		t.Fatal("Expected requirement B1")
	}
	if got.Description != "Learn the Cub Scout handshake" {
		t.Errorf("Update did not stick: %q", got.Description)
	}

	if err := s.RemoveRequirement("B1"); err != nil {
		t.Fatalf("RemoveRequirement failed: %v", err)
	}
	if s.HasRequirement("B1") {
		t.Error("Expected B1 removed")
	}
	if err := s.RemoveRequirement("B1"); err == nil {
		t.Error("Expected error removing unknown requirement")
	}
}

func TestRequirementsPreserveInsertionOrder(t *testing.T) {
	s := NewStore()
	ids := []string{"C3", "A1", "B2"}
	for _, id := range ids {
		if err := s.AddRequirement(Requirement{ID: id, Adventure: "Adv " + id}); err != nil {
			t.Fatalf("AddRequirement(%q) failed: %v", id, err)
		}
	}

	reqs := s.Requirements()
	for i, id := range ids {
		if reqs[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, reqs[i].ID)
		}
	}
}

func TestAdventuresDistinctInCatalogOrder(t *testing.T) {
	s := NewStore()
	entries := []Requirement{
		{ID: "B1", Adventure: "Bobcat"},
		{ID: "B2", Adventure: "Bobcat"},
		{ID: "F1", Adventure: "Fun on the Run"},
	}
	for _, req := range entries {
		if err := s.AddRequirement(req); err != nil {
			t.Fatalf("AddRequirement failed: %v", err)
		}
	}

	got := s.Adventures()
	if len(got) != 2 || got[0] != "Bobcat" || got[1] != "Fun on the Run" {
		t.Errorf("Expected [Bobcat, Fun on the Run], got %v", got)
	}
}

func TestAddMeetingDuplicateDateIsError(t *testing.T) {
	s := NewStore()
	if err := s.AddMeeting(Meeting{Date: "2026-01-10", Title: "Den 1"}); err != nil {
		t.Fatalf("AddMeeting failed: %v", err)
	}

	err := s.AddMeeting(Meeting{Date: "2026-01-10", Title: "Den 1 again"})
	if err == nil {
		t.Fatal("Expected error adding second meeting on same date")
	}
	if m, _ := s.Meeting("2026-01-10"); m.Title != "Den 1" {
		t.Errorf("Original meeting was overwritten: %q", m.Title)
	}
}

func TestAddMeetingNormalizesDate(t *testing.T) {
	s := NewStore()
	if err := s.AddMeeting(Meeting{Date: "2026-1-5", Title: "Den 1"}); err != nil {
		t.Fatalf("AddMeeting failed: %v", err)
	}
	if !s.HasMeeting("2026-01-05") {
		t.Error("Expected date normalized to 2026-01-05")
	}

	if err := s.AddMeeting(Meeting{Date: "not-a-date"}); err == nil {
		t.Error("Expected error for invalid date")
	}
}

func TestMeetingsSortedByDate(t *testing.T) {
	s := NewStore()
	for _, date := range []string{"2026-03-01", "2026-01-10", "2026-02-14"} {
		if err := s.AddMeeting(Meeting{Date: date}); err != nil {
			t.Fatalf("AddMeeting(%s) failed: %v", date, err)
		}
	}

	meetings := s.Meetings()
	want := []string{"2026-01-10", "2026-02-14", "2026-03-01"}
	for i, date := range want {
		if meetings[i].Date != date {
			t.Errorf("Position %d: expected %s, got %s", i, date, meetings[i].Date)
		}
	}
}

func TestRemoveMeetingRemovesItsAttendance(t *testing.T) {
	s := NewStore()
	if err := s.AddScout("Maya"); err != nil {
		t.Fatalf("AddScout failed: %v", err)
	}
	for _, date := range []string{"2026-01-10", "2026-01-17"} {
		if err := s.AddMeeting(Meeting{Date: date}); err != nil {
			t.Fatalf("AddMeeting failed: %v", err)
		}
		if err := s.SetAttendance(date, []string{"Maya"}); err != nil {
			t.Fatalf("SetAttendance failed: %v", err)
		}
	}

	if err := s.RemoveMeeting("2026-01-10"); err != nil {
		t.Fatalf("RemoveMeeting failed: %v", err)
	}

	records := s.Attendance()
	if len(records) != 1 {
		t.Fatalf("Expected 1 attendance record, got %d", len(records))
	}
	if records[0].Date != "2026-01-17" {
		t.Errorf("Wrong record kept: %s", records[0].Date)
	}
}

func TestSetAttendanceReplacesDate(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"Maya", "Ben", "Zoe"} {
		if err := s.AddScout(name); err != nil {
			t.Fatalf("AddScout failed: %v", err)
		}
	}
	if err := s.AddMeeting(Meeting{Date: "2026-01-10"}); err != nil {
		t.Fatalf("AddMeeting failed: %v", err)
	}

	if err := s.SetAttendance("2026-01-10", []string{"Maya", "Ben"}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	if err := s.SetAttendance("2026-01-10", []string{"Zoe"}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}

	got := s.Attendees("2026-01-10")
	if len(got) != 1 || got[0] != "Zoe" {
		t.Errorf("Expected attendance replaced with [Zoe], got %v", got)
	}

	// Empty list clears the date.
	if err := s.SetAttendance("2026-01-10", nil); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	if len(s.Attendees("2026-01-10")) != 0 {
		t.Error("Expected attendance cleared")
	}
}

func TestSetAttendanceRequiresMeeting(t *testing.T) {
	s := NewStore()
	if err := s.SetAttendance("2026-01-10", []string{"Maya"}); err == nil {
		t.Error("Expected error setting attendance for unknown date")
	}
}

func TestSetAttendanceDedupes(t *testing.T) {
	s := NewStore()
	if err := s.AddMeeting(Meeting{Date: "2026-01-10"}); err != nil {
		t.Fatalf("AddMeeting failed: %v", err)
	}
	if err := s.SetAttendance("2026-01-10", []string{"Maya", "Maya", " "}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	if got := s.Attendees("2026-01-10"); len(got) != 1 {
		t.Errorf("Expected deduped attendance, got %v", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2026-01-10", "2026-01-10", false},
		{"2026-1-5", "2026-01-05", false},
		{"01/10/2026", "2026-01-10", false},
		{"January 10", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeDate(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeDate(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseReqIDList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "B1,B2,F1", "B1,B2,F1"},
		{"whitespace", " B1 , B2 ", "B1,B2"},
		{"duplicates", "B1,B1,B2", "B1,B2"},
		{"blank", "", ""},
		{"only_commas", ",,,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReqIDList(tt.input)
			if got == nil {
				t.Fatal("Expected empty list, got nil")
			}
			if got.String() != tt.want {
				t.Errorf("ParseReqIDList(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestReqIDListContains(t *testing.T) {
	list := NewReqIDList("B1", "B2")
	if !list.Contains("B1") {
		t.Error("Expected list to contain B1")
	}
	if list.Contains("F1") {
		t.Error("Did not expect list to contain F1")
	}
}
