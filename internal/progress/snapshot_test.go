package progress

import (
	"testing"

	"github.com/dentrack/dentrack-go/internal/store"
	"github.com/dentrack/dentrack-go/internal/testutil"
)

func denFixture(t *testing.T) *store.Store {
	t.Helper()
	return testutil.NewTestStore(t,
		testutil.WithScouts("Maya", "Ben"),
		testutil.WithRequirements(
			testutil.NewTestRequirement("B1", testutil.WithAdventure("Bobcat")),
			testutil.NewTestRequirement("B2", testutil.WithAdventure("Bobcat")),
			testutil.NewTestRequirement("F1", testutil.WithAdventure("Fun on the Run")),
			testutil.NewTestRequirement("GF1", testutil.WithAdventure("Go Fish"), testutil.Elective()),
			testutil.NewTestRequirement("OR1", testutil.WithAdventure("On a Roll"), testutil.Elective()),
		),
		testutil.WithMeeting("2026-01-10", "Den 1", "B1", "B2"),
		testutil.WithMeeting("2026-01-17", "Den 2", "F1", "GF1"),
		testutil.WithMeeting("2026-01-24", "Den 3", "OR1"),
		testutil.WithAttendance("2026-01-10", "Maya", "Ben"),
		testutil.WithAttendance("2026-01-17", "Maya"),
	)
}

func TestAdventureProgress(t *testing.T) {
	snap := Take(denFixture(t))

	completed, total, pct := snap.AdventureProgress("Maya", "Bobcat")
	if completed != 2 || total != 2 || pct != 100 {
		t.Errorf("Maya/Bobcat = %d/%d %.1f%%, want 2/2 100%%", completed, total, pct)
	}

	completed, total, pct = snap.AdventureProgress("Ben", "Fun on the Run")
	if completed != 0 || total != 1 || pct != 0 {
		t.Errorf("Ben/Fun on the Run = %d/%d %.1f%%, want 0/1 0%%", completed, total, pct)
	}
}

func TestAdventureProgressZeroGuard(t *testing.T) {
	snap := Take(denFixture(t))

	completed, total, pct := snap.AdventureProgress("Maya", "No Such Adventure")
	if completed != 0 || total != 0 || pct != 0 {
		t.Errorf("Empty adventure = %d/%d %.1f%%, want 0/0 0%%", completed, total, pct)
	}
	if snap.AdventureComplete("Maya", "No Such Adventure") {
		t.Error("An adventure with no requirements must not be complete")
	}
}

func TestAdventureComplete(t *testing.T) {
	snap := Take(denFixture(t))

	if !snap.AdventureComplete("Maya", "Bobcat") {
		t.Error("Expected Maya to have completed Bobcat")
	}
	if snap.AdventureComplete("Ben", "Go Fish") {
		t.Error("Ben has no Go Fish credit")
	}
}

func TestAdventurePartition(t *testing.T) {
	snap := Take(denFixture(t))

	required := snap.RequiredAdventures()
	if len(required) != 2 || required[0] != "Bobcat" || required[1] != "Fun on the Run" {
		t.Errorf("Required adventures = %v", required)
	}

	elective := snap.ElectiveAdventures()
	if len(elective) != 2 || elective[0] != "Go Fish" || elective[1] != "On a Roll" {
		t.Errorf("Elective adventures = %v", elective)
	}
}

func TestRequirementCoverage(t *testing.T) {
	snap := Take(denFixture(t))

	completed, total, pct := snap.RequirementCoverage("B1")
	if completed != 2 || total != 2 || pct != 100 {
		t.Errorf("B1 coverage = %d/%d %.1f%%, want 2/2 100%%", completed, total, pct)
	}

	completed, total, pct = snap.RequirementCoverage("F1")
	if completed != 1 || total != 2 || pct != 50 {
		t.Errorf("F1 coverage = %d/%d %.1f%%, want 1/2 50%%", completed, total, pct)
	}
}

func TestRankEligibility(t *testing.T) {
	s := testutil.NewTestStore(t,
		testutil.WithScouts("Maya"),
		testutil.WithRequirements(
			testutil.NewTestRequirement("B1", testutil.WithAdventure("Bobcat")),
			testutil.NewTestRequirement("F1", testutil.WithAdventure("Fun on the Run")),
			testutil.NewTestRequirement("GF1", testutil.WithAdventure("Go Fish"), testutil.Elective()),
			testutil.NewTestRequirement("OR1", testutil.WithAdventure("On a Roll"), testutil.Elective()),
			testutil.NewTestRequirement("TS1", testutil.WithAdventure("Time to Swim"), testutil.Elective()),
		),
		testutil.WithMeeting("2026-01-10", "Den 1", "B1", "F1"),
		testutil.WithMeeting("2026-01-17", "Den 2", "GF1", "OR1"),
		testutil.WithAttendance("2026-01-10", "Maya"),
	)

	// Meeting 1 finishes every required adventure but no electives.
	snap := Take(s)
	e := snap.RankEligibility("Maya", DefaultMinElectives)
	if !e.AllRequiredComplete {
		t.Error("Expected all required adventures complete")
	}
	if e.CompletedElectives != 0 {
		t.Errorf("Expected 0 electives, got %d", e.CompletedElectives)
	}
	if e.RankEarned {
		t.Error("Rank requires the elective minimum too")
	}

	// After attending meeting 2, two electives complete: rank earned.
	if err := s.SetAttendance("2026-01-17", []string{"Maya"}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	snap = Take(s)
	e = snap.RankEligibility("Maya", DefaultMinElectives)
	if e.CompletedElectives != 2 {
		t.Errorf("Expected 2 electives, got %d", e.CompletedElectives)
	}
	if !e.RankEarned {
		t.Error("Expected rank earned with required complete and 2 electives")
	}

	// A higher elective minimum withholds the rank.
	e = snap.RankEligibility("Maya", 3)
	if e.RankEarned {
		t.Error("Expected rank withheld with min electives 3")
	}
}

func TestRankEligibilityElectivesAloneInsufficient(t *testing.T) {
	s := testutil.NewTestStore(t,
		testutil.WithScouts("Ben"),
		testutil.WithRequirements(
			testutil.NewTestRequirement("B1", testutil.WithAdventure("Bobcat")),
			testutil.NewTestRequirement("GF1", testutil.WithAdventure("Go Fish"), testutil.Elective()),
			testutil.NewTestRequirement("OR1", testutil.WithAdventure("On a Roll"), testutil.Elective()),
		),
		testutil.WithMeeting("2026-01-10", "Electives Day", "GF1", "OR1"),
		testutil.WithAttendance("2026-01-10", "Ben"),
	)

	e := Take(s).RankEligibility("Ben", DefaultMinElectives)
	if e.AllRequiredComplete {
		t.Error("Bobcat is incomplete")
	}
	if e.CompletedElectives != 2 {
		t.Errorf("Expected 2 electives, got %d", e.CompletedElectives)
	}
	if e.RankEarned {
		t.Error("Electives alone must not earn the rank")
	}
}

func TestRankEligibilityCountsExtraElectives(t *testing.T) {
	s := testutil.NewTestStore(t,
		testutil.WithScouts("Maya"),
		testutil.WithRequirements(
			testutil.NewTestRequirement("GF1", testutil.WithAdventure("Go Fish"), testutil.Elective()),
			testutil.NewTestRequirement("OR1", testutil.WithAdventure("On a Roll"), testutil.Elective()),
			testutil.NewTestRequirement("TS1", testutil.WithAdventure("Time to Swim"), testutil.Elective()),
		),
		testutil.WithMeeting("2026-01-10", "Big Day", "GF1", "OR1", "TS1"),
		testutil.WithAttendance("2026-01-10", "Maya"),
	)

	e := Take(s).RankEligibility("Maya", DefaultMinElectives)
	if e.CompletedElectives != 3 {
		t.Errorf("Expected all 3 electives counted, got %d", e.CompletedElectives)
	}
	// No required adventures in the catalog: trivially satisfied.
	if !e.AllRequiredComplete {
		t.Error("Empty required set must be trivially complete")
	}
	if !e.RankEarned {
		t.Error("Expected rank earned")
	}
}

func TestRankEligibilityMixedTagAdventure(t *testing.T) {
	// An adventure whose requirements disagree on the Required tag is
	// judged on each side by its own requirements only: the elective
	// stragglers must not hold the required rollup hostage.
	s := testutil.NewTestStore(t,
		testutil.WithScouts("Maya"),
		testutil.WithRequirements(
			testutil.NewTestRequirement("M1", testutil.WithAdventure("Mixed")),
			testutil.NewTestRequirement("M2", testutil.WithAdventure("Mixed"), testutil.Elective()),
			testutil.NewTestRequirement("GF1", testutil.WithAdventure("Go Fish"), testutil.Elective()),
			testutil.NewTestRequirement("OR1", testutil.WithAdventure("On a Roll"), testutil.Elective()),
		),
		testutil.WithMeeting("2026-01-10", "Den 1", "M1", "GF1", "OR1"),
		testutil.WithAttendance("2026-01-10", "Maya"),
	)

	snap := Take(s)
	e := snap.RankEligibility("Maya", DefaultMinElectives)
	if !e.AllRequiredComplete {
		t.Error("Required side of Mixed is done; M2 must not block it")
	}
	// Mixed's elective side (M2) is incomplete, so only 2 count.
	if e.CompletedElectives != 2 {
		t.Errorf("Expected 2 electives, got %d", e.CompletedElectives)
	}
	if !e.RankEarned {
		t.Error("Expected rank earned")
	}

	// The comparative report applies the same per-side rollup.
	report := snap.Comparison("Maya")
	if report.RequiredAdventures != 1 {
		t.Errorf("RequiredAdventures = %d, want 1", report.RequiredAdventures)
	}
	if report.ElectiveAdventures != 2 {
		t.Errorf("ElectiveAdventures = %d, want 2", report.ElectiveAdventures)
	}
}

func TestSnapshotIsStable(t *testing.T) {
	s := denFixture(t)
	snap := Take(s)
	before := snap.Matrix().CompletedCount("Maya")

	// Mutating the store after the snapshot does not move the snapshot.
	if err := s.SetAttendance("2026-01-24", []string{"Maya"}); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	if got := snap.Matrix().CompletedCount("Maya"); got != before {
		t.Errorf("Snapshot changed after store mutation: %d != %d", got, before)
	}

	// A fresh snapshot sees the new credit.
	if got := Take(s).Matrix().CompletedCount("Maya"); got != before+1 {
		t.Errorf("Fresh snapshot = %d, want %d", got, before+1)
	}
}
