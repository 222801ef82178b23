package progress

import (
	"sort"
	"strings"

	"github.com/dentrack/dentrack-go/internal/store"
)

// MeetingSummary is the attendance picture for one meeting.
type MeetingSummary struct {
	Meeting store.Meeting

	// Present and Absent partition the roster, each sorted
	// case-insensitively.
	Present []string
	Absent  []string

	// Rate is present scouts over roster size, zero-guarded.
	Rate float64

	// Covered lists the catalog-known requirements the meeting granted,
	// in coverage order. Stale IDs are dropped.
	Covered []store.Requirement
}

// MeetingReport summarizes who attended the meeting on date and what it
// covered. ok is false when no meeting exists on that date.
func (s *Snapshot) MeetingReport(date string) (MeetingSummary, bool) {
	var meeting store.Meeting
	found := false
	for _, m := range s.meetings {
		if m.Date == date {
			meeting = m
			found = true
			break
		}
	}
	if !found {
		return MeetingSummary{}, false
	}

	summary := MeetingSummary{Meeting: meeting}

	attended := make(map[string]bool)
	for _, rec := range s.attendance {
		if rec.Date == date {
			attended[rec.Scout] = true
		}
	}
	for _, scout := range s.roster {
		if attended[scout] {
			summary.Present = append(summary.Present, scout)
		} else {
			summary.Absent = append(summary.Absent, scout)
		}
	}
	sortScouts(summary.Present)
	sortScouts(summary.Absent)
	summary.Rate = percent(len(summary.Present), len(s.roster))

	byID := make(map[string]store.Requirement, len(s.reqs))
	for _, req := range s.reqs {
		byID[req.ID] = req
	}
	for _, id := range meeting.Covered {
		if req, known := byID[id]; known {
			summary.Covered = append(summary.Covered, req)
		}
	}

	return summary, true
}

// CompletionSource records one meeting at which a scout earned credit for
// a requirement.
type CompletionSource struct {
	Date  string
	Title string
}

// CompletionSources maps each requirement the scout completed to every
// meeting that granted it, oldest first. Requirements covered by two
// attended meetings list both: removing either attendance record leaves
// the credit intact.
func (s *Snapshot) CompletionSources(scout string) map[string][]CompletionSource {
	attended := make(map[string]bool)
	for _, rec := range s.attendance {
		if rec.Scout == scout {
			attended[rec.Date] = true
		}
	}

	known := make(map[string]bool, len(s.reqs))
	for _, req := range s.reqs {
		known[req.ID] = true
	}

	sources := make(map[string][]CompletionSource)
	for _, m := range s.meetings {
		if !attended[m.Date] {
			continue
		}
		for _, id := range m.Covered {
			if known[id] {
				sources[id] = append(sources[id], CompletionSource{Date: m.Date, Title: m.Title})
			}
		}
	}
	for id := range sources {
		sort.Slice(sources[id], func(i, j int) bool {
			return sources[id][i].Date < sources[id][j].Date
		})
	}
	return sources
}

// CoverageSummary is the den-wide activity picture across all meetings.
type CoverageSummary struct {
	// ReqsCovered counts distinct catalog requirements any meeting has
	// covered; ReqsTotal is the catalog size.
	ReqsCovered int
	ReqsTotal   int

	// AdventuresStarted counts adventures with at least one covered
	// requirement.
	AdventuresStarted int

	// AvgRequirementsPerScout is the mean number of requirements
	// completed across the roster, zero-guarded.
	AvgRequirementsPerScout float64
}

// Coverage summarizes what the den's meetings have covered so far.
func (s *Snapshot) Coverage() CoverageSummary {
	byID := make(map[string]store.Requirement, len(s.reqs))
	for _, req := range s.reqs {
		byID[req.ID] = req
	}

	coveredIDs := make(map[string]bool)
	adventures := make(map[string]bool)
	for _, m := range s.meetings {
		for _, id := range m.Covered {
			req, known := byID[id]
			if !known {
				continue
			}
			coveredIDs[id] = true
			adventures[req.Adventure] = true
		}
	}

	summary := CoverageSummary{
		ReqsCovered:       len(coveredIDs),
		ReqsTotal:         len(s.reqs),
		AdventuresStarted: len(adventures),
	}

	sum := 0
	for _, scout := range s.roster {
		sum += s.matrix.CompletedCount(scout)
	}
	if len(s.roster) > 0 {
		summary.AvgRequirementsPerScout = float64(sum) / float64(len(s.roster))
	}
	return summary
}

func sortScouts(scouts []string) {
	sort.Slice(scouts, func(i, j int) bool {
		return strings.ToLower(scouts[i]) < strings.ToLower(scouts[j])
	})
}
