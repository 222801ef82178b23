package progress

import (
	"sort"

	"github.com/dentrack/dentrack-go/internal/store"
)

// PlanningEntry is den-wide coverage of one required requirement, used to
// pick what the next meetings should cover.
type PlanningEntry struct {
	Requirement store.Requirement

	// Completed of TotalScouts have the requirement; Percent is the
	// zero-guarded ratio on a 0-100 scale.
	Completed   int
	TotalScouts int
	Percent     float64

	// ScoutsMissing lists every roster scout without the requirement.
	// ScoutsMissing plus the credited scouts is exactly the roster.
	ScoutsMissing []string
}

// AllComplete reports whether every scout has the requirement.
func (e PlanningEntry) AllComplete() bool {
	return len(e.ScoutsMissing) == 0
}

// PlanningReport ranks every required requirement by den-wide completion,
// lowest coverage first — the order the den should plan meetings in. Ties
// keep catalog order.
func (s *Snapshot) PlanningReport() []PlanningEntry {
	var entries []PlanningEntry
	for _, req := range s.reqs {
		if !req.Required {
			continue
		}
		entry := PlanningEntry{
			Requirement: req,
			TotalScouts: len(s.roster),
		}
		for _, scout := range s.roster {
			if s.matrix.Completed(scout, req.ID) {
				entry.Completed++
			} else {
				entry.ScoutsMissing = append(entry.ScoutsMissing, scout)
			}
		}
		entry.Percent = percent(entry.Completed, entry.TotalScouts)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percent < entries[j].Percent
	})
	return entries
}
