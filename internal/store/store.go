// Package store holds the four base relations of the den tracker — roster,
// requirement catalog, meeting catalog, and attendance ledger — together
// with their CSV persistence. All advancement state is derived from these
// relations by the progress package; nothing derived is stored here.
package store

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the in-memory den database.
type Store struct {
	// scouts is the roster in insertion order.
	scouts []string

	// requirements stores the catalog by ID; reqOrder preserves insertion
	// order for consistent output.
	requirements map[string]*Requirement
	reqOrder     []string

	// meetings stores the meeting catalog keyed by date.
	meetings map[string]*Meeting

	// attendance is the (date, scout) ledger. Duplicate edges are not
	// stored twice.
	attendance []AttendanceRecord

	// dir is the data directory this store was loaded from.
	dir string

	// dirty tracks unsaved changes.
	dirty bool
}

// NewStore creates a new empty store.
func NewStore() *Store {
	return &Store{
		requirements: make(map[string]*Requirement),
		meetings:     make(map[string]*Meeting),
	}
}

// Dir returns the data directory this store was loaded from.
func (s *Store) Dir() string {
	return s.dir
}

// IsDirty returns true if the store has unsaved changes.
func (s *Store) IsDirty() bool {
	return s.dirty
}

// ---------------------------------------------------------------------------
// Roster

// Scouts returns the roster sorted alphabetically, case-insensitive.
func (s *Store) Scouts() []string {
	scouts := append([]string{}, s.scouts...)
	sort.SliceStable(scouts, func(i, j int) bool {
		return strings.ToLower(scouts[i]) < strings.ToLower(scouts[j])
	})
	return scouts
}

// DenSize returns the number of scouts in the roster.
func (s *Store) DenSize() int {
	return len(s.scouts)
}

// HasScout reports whether name is in the roster (exact match).
func (s *Store) HasScout(name string) bool {
	for _, have := range s.scouts {
		if have == name {
			return true
		}
	}
	return false
}

// AddScout adds one scout to the roster.
func (s *Store) AddScout(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("scout name cannot be empty")
	}
	if s.HasScout(name) {
		return fmt.Errorf("scout %q already in roster", name)
	}
	s.scouts = append(s.scouts, name)
	s.dirty = true
	return nil
}

// AddScouts adds several scouts at once, skipping names already in the
// roster and duplicates within the input. It returns the skipped names.
func (s *Store) AddScouts(names []string) (added int, skipped []string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if s.HasScout(name) {
			skipped = append(skipped, name)
			continue
		}
		s.scouts = append(s.scouts, name)
		added++
	}
	if added > 0 {
		s.dirty = true
	}
	return added, skipped
}

// RemoveScout removes a scout from the roster. Attendance records for the
// scout are left in place: the derivation skips records for unknown scouts,
// and keeping them preserves history if the scout is re-added.
func (s *Store) RemoveScout(name string) error {
	for i, have := range s.scouts {
		if have == name {
			s.scouts = append(s.scouts[:i], s.scouts[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return fmt.Errorf("scout %q not in roster", name)
}

// ---------------------------------------------------------------------------
// Requirement catalog

// Requirements returns the catalog in insertion order.
func (s *Store) Requirements() []Requirement {
	reqs := make([]Requirement, 0, len(s.reqOrder))
	for _, id := range s.reqOrder {
		if req := s.requirements[id]; req != nil {
			reqs = append(reqs, *req)
		}
	}
	return reqs
}

// Requirement retrieves a catalog entry by ID.
func (s *Store) Requirement(id string) (Requirement, bool) {
	req, ok := s.requirements[id]
	if !ok {
		return Requirement{}, false
	}
	return *req, true
}

// HasRequirement checks if a requirement ID exists in the catalog.
func (s *Store) HasRequirement(id string) bool {
	_, ok := s.requirements[id]
	return ok
}

// AddRequirement adds a new catalog entry.
func (s *Store) AddRequirement(req Requirement) error {
	if req.ID == "" {
		return fmt.Errorf("requirement ID cannot be empty")
	}
	if s.HasRequirement(req.ID) {
		return fmt.Errorf("requirement %q already exists", req.ID)
	}
	s.requirements[req.ID] = &req
	s.reqOrder = append(s.reqOrder, req.ID)
	s.dirty = true
	return nil
}

// UpdateRequirement replaces the catalog entry with the same ID. Editing a
// requirement does not touch meeting coverage or attendance; derived
// completion shifts on the next recompute.
func (s *Store) UpdateRequirement(req Requirement) error {
	if !s.HasRequirement(req.ID) {
		return fmt.Errorf("requirement %q not found", req.ID)
	}
	s.requirements[req.ID] = &req
	s.dirty = true
	return nil
}

// RemoveRequirement removes a catalog entry. Meetings that cover the ID
// keep it; the stale reference is ignored by derivation.
func (s *Store) RemoveRequirement(id string) error {
	if !s.HasRequirement(id) {
		return fmt.Errorf("requirement %q not found", id)
	}
	delete(s.requirements, id)
	order := make([]string, 0, len(s.reqOrder)-1)
	for _, have := range s.reqOrder {
		if have != id {
			order = append(order, have)
		}
	}
	s.reqOrder = order
	s.dirty = true
	return nil
}

// Adventures returns the distinct adventure names in catalog order.
func (s *Store) Adventures() []string {
	seen := make(map[string]bool)
	var adventures []string
	for _, req := range s.Requirements() {
		if !seen[req.Adventure] {
			seen[req.Adventure] = true
			adventures = append(adventures, req.Adventure)
		}
	}
	return adventures
}

// ---------------------------------------------------------------------------
// Meeting catalog

// Meetings returns all meetings sorted by date ascending.
func (s *Store) Meetings() []Meeting {
	meetings := make([]Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		meetings = append(meetings, m.Clone())
	}
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].Date < meetings[j].Date
	})
	return meetings
}

// Meeting retrieves a meeting by date.
func (s *Store) Meeting(date string) (Meeting, bool) {
	m, ok := s.meetings[date]
	if !ok {
		return Meeting{}, false
	}
	return m.Clone(), true
}

// HasMeeting checks if a meeting exists on the given date.
func (s *Store) HasMeeting(date string) bool {
	_, ok := s.meetings[date]
	return ok
}

// AddMeeting adds a meeting. The date is the unique key; a second meeting
// on the same date is an explicit error, not a silent overwrite.
func (s *Store) AddMeeting(m Meeting) error {
	date, err := NormalizeDate(m.Date)
	if err != nil {
		return err
	}
	if s.HasMeeting(date) {
		return fmt.Errorf("a meeting already exists on %s", date)
	}
	m.Date = date
	m.Covered = m.Covered.Clone()
	s.meetings[date] = &m
	s.dirty = true
	return nil
}

// UpdateMeeting replaces the meeting on m.Date. Editing the covered set
// retroactively changes derived completion for every scout who attended.
func (s *Store) UpdateMeeting(m Meeting) error {
	date, err := NormalizeDate(m.Date)
	if err != nil {
		return err
	}
	if !s.HasMeeting(date) {
		return fmt.Errorf("no meeting on %s", date)
	}
	m.Date = date
	m.Covered = m.Covered.Clone()
	s.meetings[date] = &m
	s.dirty = true
	return nil
}

// RemoveMeeting removes a meeting and its attendance records. Credit a
// scout earned from a different meeting covering the same requirements
// survives, because completion is recomputed, never decremented.
func (s *Store) RemoveMeeting(date string) error {
	if !s.HasMeeting(date) {
		return fmt.Errorf("no meeting on %s", date)
	}
	delete(s.meetings, date)
	kept := s.attendance[:0]
	for _, rec := range s.attendance {
		if rec.Date != date {
			kept = append(kept, rec)
		}
	}
	s.attendance = kept
	s.dirty = true
	return nil
}

// ---------------------------------------------------------------------------
// Attendance ledger

// Attendance returns all attendance records sorted by date, then scout.
func (s *Store) Attendance() []AttendanceRecord {
	records := append([]AttendanceRecord{}, s.attendance...)
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return strings.ToLower(records[i].Scout) < strings.ToLower(records[j].Scout)
	})
	return records
}

// Attendees returns the scouts recorded present at the given date.
func (s *Store) Attendees(date string) []string {
	var scouts []string
	for _, rec := range s.attendance {
		if rec.Date == date {
			scouts = append(scouts, rec.Scout)
		}
	}
	sort.Slice(scouts, func(i, j int) bool {
		return strings.ToLower(scouts[i]) < strings.ToLower(scouts[j])
	})
	return scouts
}

// SetAttendance replaces the attendance for one meeting date with the given
// scouts. Passing an empty list clears the meeting's attendance.
func (s *Store) SetAttendance(date string, scouts []string) error {
	date, err := NormalizeDate(date)
	if err != nil {
		return err
	}
	if !s.HasMeeting(date) {
		return fmt.Errorf("no meeting on %s", date)
	}
	kept := make([]AttendanceRecord, 0, len(s.attendance))
	for _, rec := range s.attendance {
		if rec.Date != date {
			kept = append(kept, rec)
		}
	}
	seen := make(map[string]bool)
	for _, scout := range scouts {
		scout = strings.TrimSpace(scout)
		if scout == "" || seen[scout] {
			continue
		}
		seen[scout] = true
		kept = append(kept, AttendanceRecord{Date: date, Scout: scout})
	}
	s.attendance = kept
	s.dirty = true
	return nil
}
