package progress

import "github.com/dentrack/dentrack-go/internal/store"

// DefaultMinElectives is the number of elective adventures a scout must
// complete, on top of all required adventures, to earn the rank.
const DefaultMinElectives = 2

// Snapshot is a derivation pass over the four base relations. It is built
// once per read and discarded on any write: callers mutate the store, then
// take a fresh snapshot. Nothing in a snapshot is updated incrementally.
type Snapshot struct {
	roster     []string
	reqs       []store.Requirement
	meetings   []store.Meeting
	attendance []store.AttendanceRecord
	matrix     Matrix
}

// NewSnapshot derives a snapshot from explicit relation slices.
func NewSnapshot(roster []string, reqs []store.Requirement, meetings []store.Meeting, attendance []store.AttendanceRecord) *Snapshot {
	return &Snapshot{
		roster:     roster,
		reqs:       reqs,
		meetings:   meetings,
		attendance: attendance,
		matrix:     BuildMatrix(roster, reqs, meetings, attendance),
	}
}

// Take derives a snapshot from the store's current relations.
func Take(s *store.Store) *Snapshot {
	return NewSnapshot(s.Scouts(), s.Requirements(), s.Meetings(), s.Attendance())
}

// Matrix returns the derived completion matrix.
func (s *Snapshot) Matrix() Matrix {
	return s.matrix
}

// Roster returns the scouts this snapshot was derived from.
func (s *Snapshot) Roster() []string {
	return s.roster
}

// Requirements returns the catalog this snapshot was derived from.
func (s *Snapshot) Requirements() []store.Requirement {
	return s.reqs
}

// Completed reports whether the scout is credited with the requirement.
func (s *Snapshot) Completed(scout, reqID string) bool {
	return s.matrix.Completed(scout, reqID)
}

// RequiredAdventures returns the adventures whose requirements are tagged
// required, in catalog order.
func (s *Snapshot) RequiredAdventures() []string {
	return s.adventures(true)
}

// ElectiveAdventures returns the elective adventures in catalog order.
func (s *Snapshot) ElectiveAdventures() []string {
	return s.adventures(false)
}

func (s *Snapshot) adventures(required bool) []string {
	seen := make(map[string]bool)
	var names []string
	for _, req := range s.reqs {
		if req.Required != required || seen[req.Adventure] {
			continue
		}
		seen[req.Adventure] = true
		names = append(names, req.Adventure)
	}
	return names
}

// AdventureProgress returns the scout's rollup for one adventure:
// completed and total requirement counts plus the completion percentage.
// An adventure with no requirements reports 0%, never a division error.
func (s *Snapshot) AdventureProgress(scout, adventure string) (completed, total int, pct float64) {
	for _, req := range s.reqs {
		if req.Adventure != adventure {
			continue
		}
		total++
		if s.matrix.Completed(scout, req.ID) {
			completed++
		}
	}
	return completed, total, percent(completed, total)
}

// AdventureComplete reports whether the scout has a 100% rollup for the
// adventure. An adventure with no requirements is not complete.
func (s *Snapshot) AdventureComplete(scout, adventure string) bool {
	completed, total, _ := s.AdventureProgress(scout, adventure)
	return total > 0 && completed == total
}

// RequirementCoverage returns den-wide coverage of one requirement: how
// many scouts are credited, the roster size, and the percentage.
func (s *Snapshot) RequirementCoverage(reqID string) (completed, total int, pct float64) {
	total = len(s.roster)
	for _, scout := range s.roster {
		if s.matrix.Completed(scout, reqID) {
			completed++
		}
	}
	return completed, total, percent(completed, total)
}

// Eligibility is the rank evaluation for one scout.
type Eligibility struct {
	// AllRequiredComplete is true when every required adventure has a
	// 100% rollup. A catalog with no required adventures satisfies this
	// trivially.
	AllRequiredComplete bool

	// CompletedElectives counts elective adventures at 100%. There is no
	// upper bound; exceeding the minimum is counted.
	CompletedElectives int

	// RankEarned is AllRequiredComplete && CompletedElectives >= minimum.
	RankEarned bool
}

// RankEligibility evaluates the rank rule for a scout: all required
// adventures complete and at least minElectives elective adventures
// complete.
func (s *Snapshot) RankEligibility(scout string, minElectives int) Eligibility {
	e := Eligibility{AllRequiredComplete: true}
	for _, adventure := range s.RequiredAdventures() {
		if !s.adventureDone(scout, adventure, true) {
			e.AllRequiredComplete = false
		}
	}
	for _, adventure := range s.ElectiveAdventures() {
		if s.adventureDone(scout, adventure, false) {
			e.CompletedElectives++
		}
	}
	e.RankEarned = e.AllRequiredComplete && e.CompletedElectives >= minElectives
	return e
}

// adventureDone reports a 100% rollup over the adventure's requirements
// carrying the given Required tag. Identical to AdventureComplete for a
// consistently tagged adventure; one with mixed tags is judged on each
// side by its own requirements only.
func (s *Snapshot) adventureDone(scout, adventure string, required bool) bool {
	completed, total := 0, 0
	for _, req := range s.reqs {
		if req.Adventure != adventure || req.Required != required {
			continue
		}
		total++
		if s.matrix.Completed(scout, req.ID) {
			completed++
		}
	}
	return total > 0 && completed == total
}

// percent is the zero-guarded completion percentage on a 0-100 scale.
func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
