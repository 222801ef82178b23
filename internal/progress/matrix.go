// Package progress derives advancement state from the four base relations:
// roster, requirement catalog, meeting catalog, and attendance ledger.
// Completion is never stored — every view is recomputed in full from the
// relations, so edits to historical meetings add or remove credit correctly
// even when several meetings cover the same requirement.
package progress

import "github.com/dentrack/dentrack-go/internal/store"

// Matrix maps scout name -> requirement ID -> credited. Every scout in the
// roster has a row and every catalog requirement a column, initialized
// false.
type Matrix map[string]map[string]bool

// BuildMatrix derives the completion matrix. A cell is true iff at least
// one meeting the scout attended covers the requirement.
//
// Tolerated input noise, by design of the relations:
//   - attendance for a scout not in the roster, or a date with no meeting,
//     is skipped (no row or column is invented for it);
//   - coverage of a requirement ID not in the catalog is ignored.
func BuildMatrix(roster []string, reqs []store.Requirement, meetings []store.Meeting, attendance []store.AttendanceRecord) Matrix {
	matrix := make(Matrix, len(roster))
	for _, scout := range roster {
		row := make(map[string]bool, len(reqs))
		for _, req := range reqs {
			row[req.ID] = false
		}
		matrix[scout] = row
	}

	covered := make(map[string]store.ReqIDList, len(meetings))
	for _, m := range meetings {
		covered[m.Date] = m.Covered
	}

	for _, rec := range attendance {
		row, knownScout := matrix[rec.Scout]
		ids, knownDate := covered[rec.Date]
		if !knownScout || !knownDate {
			continue
		}
		for _, id := range ids {
			if _, inCatalog := row[id]; inCatalog {
				row[id] = true
			}
		}
	}

	return matrix
}

// Completed reports whether the scout is credited with the requirement.
// Unknown scouts and unknown requirement IDs are simply false.
func (m Matrix) Completed(scout, reqID string) bool {
	return m[scout][reqID]
}

// CompletedCount returns how many requirements the scout is credited with.
func (m Matrix) CompletedCount(scout string) int {
	count := 0
	for _, done := range m[scout] {
		if done {
			count++
		}
	}
	return count
}
