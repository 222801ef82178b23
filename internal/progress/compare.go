package progress

import (
	"sort"

	"github.com/dentrack/dentrack-go/internal/store"
)

// MissedMeeting is a non-optional meeting the scout did not attend,
// together with what it covered.
type MissedMeeting struct {
	Date  string
	Title string

	// Covered lists the catalog-known requirements the meeting covered,
	// in coverage order.
	Covered []store.Requirement

	// Incomplete is the subset of Covered the scout has not earned from
	// any other meeting. Empty means the scout caught up elsewhere.
	Incomplete []store.Requirement
}

// ComparisonReport compares one scout against the den.
type ComparisonReport struct {
	Scout   string
	DenSize int

	// The scout's own counts.
	RequiredAdventures    int
	ElectiveAdventures    int
	RequirementsCompleted int

	// Den-wide simple means over the roster, zero-guarded.
	DenAvgRequiredAdventures float64
	DenAvgElectiveAdventures float64
	DenAvgRequirements       float64

	// MissedMeetings lists non-optional meetings the scout was absent
	// from, oldest first. Optional events never appear here.
	MissedMeetings []MissedMeeting

	// AttendanceRate is the percentage of non-optional meetings the
	// scout attended. Optional events count on neither side of the
	// fraction.
	AttendanceRate float64
}

// Comparison builds the comparative report for one scout: den averages,
// the scout's own totals, missed non-optional meetings with the credit the
// scout still lacks, and the attendance rate.
func (s *Snapshot) Comparison(scout string) ComparisonReport {
	report := ComparisonReport{
		Scout:                 scout,
		DenSize:               len(s.roster),
		RequirementsCompleted: s.matrix.CompletedCount(scout),
	}

	required := s.RequiredAdventures()
	elective := s.ElectiveAdventures()

	var sumRequired, sumElective, sumReqs int
	for _, member := range s.roster {
		for _, adventure := range required {
			if s.adventureDone(member, adventure, true) {
				sumRequired++
				if member == scout {
					report.RequiredAdventures++
				}
			}
		}
		for _, adventure := range elective {
			if s.adventureDone(member, adventure, false) {
				sumElective++
				if member == scout {
					report.ElectiveAdventures++
				}
			}
		}
		sumReqs += s.matrix.CompletedCount(member)
	}
	if report.DenSize > 0 {
		report.DenAvgRequiredAdventures = float64(sumRequired) / float64(report.DenSize)
		report.DenAvgElectiveAdventures = float64(sumElective) / float64(report.DenSize)
		report.DenAvgRequirements = float64(sumReqs) / float64(report.DenSize)
	}

	attended := make(map[string]bool)
	for _, rec := range s.attendance {
		if rec.Scout == scout {
			attended[rec.Date] = true
		}
	}

	counting := 0
	present := 0
	for _, m := range s.meetings {
		if m.Optional {
			continue
		}
		counting++
		if attended[m.Date] {
			present++
			continue
		}
		if missed, ok := s.missedMeeting(scout, m); ok {
			report.MissedMeetings = append(report.MissedMeetings, missed)
		}
	}
	report.AttendanceRate = percent(present, counting)

	sort.Slice(report.MissedMeetings, func(i, j int) bool {
		return report.MissedMeetings[i].Date < report.MissedMeetings[j].Date
	})
	return report
}

// missedMeeting describes one absence. Meetings whose coverage references
// nothing left in the catalog are omitted: there is no credit to report.
func (s *Snapshot) missedMeeting(scout string, m store.Meeting) (MissedMeeting, bool) {
	byID := make(map[string]store.Requirement, len(s.reqs))
	for _, req := range s.reqs {
		byID[req.ID] = req
	}

	missed := MissedMeeting{Date: m.Date, Title: m.Title}
	for _, id := range m.Covered {
		req, known := byID[id]
		if !known {
			continue
		}
		missed.Covered = append(missed.Covered, req)
		if !s.matrix.Completed(scout, id) {
			missed.Incomplete = append(missed.Incomplete, req)
		}
	}
	return missed, len(missed.Covered) > 0
}
