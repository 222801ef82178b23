package store

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for meeting dates. Dates in this layout
// sort correctly as plain strings.
const DateLayout = "2006-01-02"

// Meeting is a den meeting. The date is the unique key: no two meetings
// share a date. Covered lists the requirement IDs every attendee earns
// credit for; the list may reference IDs no longer in the catalog.
type Meeting struct {
	Date    string    `csv:"meeting_date" json:"meeting_date"`
	Title   string    `csv:"meeting_title" json:"meeting_title"`
	Covered ReqIDList `csv:"req_ids_covered" json:"req_ids_covered"`

	// Optional marks non-counting events (pack picnics, campouts).
	// Optional meetings still grant credit to attendees but are excluded
	// from missed-meeting reporting and attendance rates.
	Optional bool `csv:"optional" json:"optional"`
}

// Clone returns an independent copy.
func (m Meeting) Clone() Meeting {
	clone := m
	clone.Covered = m.Covered.Clone()
	return clone
}

// Time parses the meeting date. Meetings held in a Store always carry a
// valid date; the error path exists for values built by hand.
func (m Meeting) Time() (time.Time, error) {
	return time.Parse(DateLayout, m.Date)
}

// AttendanceRecord is one (meeting, scout) edge in the attendance ledger.
// Records may reference scouts or dates that no longer exist; derivation
// skips them rather than erroring.
type AttendanceRecord struct {
	Date  string `csv:"meeting_date" json:"meeting_date"`
	Scout string `csv:"scout_name" json:"scout_name"`
}

// NormalizeDate parses s in DateLayout (or a few tolerated variants) and
// returns the canonical form.
func NormalizeDate(s string) (string, error) {
	for _, layout := range []string{DateLayout, "2006-1-2", "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}
