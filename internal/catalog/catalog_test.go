package catalog

import (
	"testing"
)

func TestForRankKnownRanks(t *testing.T) {
	for _, rank := range Ranks() {
		reqs, ok := ForRank(rank)
		if !ok {
			t.Errorf("ForRank(%q) reported no catalog", rank)
			continue
		}
		if len(reqs) == 0 {
			t.Errorf("ForRank(%q) returned an empty catalog", rank)
		}
	}
}

func TestForRankCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Lion", "TIGER", " wolf "} {
		if _, ok := ForRank(name); !ok {
			t.Errorf("ForRank(%q) should match case-insensitively", name)
		}
	}
}

func TestForRankUnknown(t *testing.T) {
	for _, name := range []string{"", "eagle", "arrow of light"} {
		if reqs, ok := ForRank(name); ok || reqs != nil {
			t.Errorf("ForRank(%q) = %d reqs, ok=%v; want nil, false", name, len(reqs), ok)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	for _, rank := range Ranks() {
		t.Run(rank, func(t *testing.T) {
			reqs, _ := ForRank(rank)

			seen := make(map[string]bool)
			for _, req := range reqs {
				if req.ID == "" {
					t.Error("Catalog entry with empty ID")
				}
				if seen[req.ID] {
					t.Errorf("Duplicate requirement ID %q", req.ID)
				}
				seen[req.ID] = true
				if req.Adventure == "" {
					t.Errorf("%s: empty adventure", req.ID)
				}
				if req.Description == "" {
					t.Errorf("%s: empty description", req.ID)
				}
			}
		})
	}
}

func TestCatalogAdventurePartition(t *testing.T) {
	for _, rank := range Ranks() {
		t.Run(rank, func(t *testing.T) {
			reqs, _ := ForRank(rank)

			required := make(map[string]bool)
			elective := make(map[string]bool)
			for _, req := range reqs {
				if req.Required {
					required[req.Adventure] = true
				} else {
					elective[req.Adventure] = true
				}
			}

			// No adventure mixes required and elective requirements.
			for name := range required {
				if elective[name] {
					t.Errorf("Adventure %q has both required and elective requirements", name)
				}
			}

			// Every rank has exactly six required adventures.
			if len(required) != 6 {
				t.Errorf("Expected 6 required adventures, got %d", len(required))
			}
			if len(elective) < MinElectiveAdventures {
				t.Errorf("Catalog has %d elective adventures; the rank needs %d", len(elective), MinElectiveAdventures)
			}
		})
	}
}

func TestLionRequiredAdventureNames(t *testing.T) {
	reqs, _ := ForRank("lion")
	required := make(map[string]bool)
	for _, req := range reqs {
		if req.Required {
			required[req.Adventure] = true
		}
	}
	for _, name := range []string{"Bobcat", "Fun on the Run", "Lion's Roar", "Lion's Pride", "King of the Jungle", "Mountain Lion"} {
		if !required[name] {
			t.Errorf("Missing required adventure %q", name)
		}
	}
}

func TestForRankReturnsCopy(t *testing.T) {
	first, _ := ForRank("lion")
	first[0].Description = "mutated"

	second, _ := ForRank("lion")
	if second[0].Description == "mutated" {
		t.Error("ForRank must return an independent copy")
	}
}

func TestMinElectiveAdventures(t *testing.T) {
	if MinElectiveAdventures != 2 {
		t.Errorf("MinElectiveAdventures = %d, want 2", MinElectiveAdventures)
	}
}
