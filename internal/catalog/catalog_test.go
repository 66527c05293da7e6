package catalog

import (
	"testing"

	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
)

func TestProfilesHaveTraitsAndValidFields(t *testing.T) {
	ps := Profiles()
	if len(ps) == 0 {
		t.Fatal("empty catalog")
	}
	for _, p := range ps {
		if _, ok := scoring.TraitsFor(p.Type); !ok {
			t.Errorf("%s: no trait table entry", p.Type)
		}
		if p.EfficiencyScore <= 0 || p.EfficiencyScore > 1 {
			t.Errorf("%s: efficiency %f out of range", p.Type, p.EfficiencyScore)
		}
		if p.CostPerAcre <= 0 {
			t.Errorf("%s: non-positive cost", p.Type)
		}
		if len(p.RequiredEquipment) == 0 {
			t.Errorf("%s: no required equipment", p.Type)
		}
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("fertigation")
	if !ok {
		t.Fatal("fertigation missing from catalog")
	}
	if p.Name == "" {
		t.Error("expected display name")
	}
	if _, ok := Lookup("crop_dusting"); ok {
		t.Error("unexpected hit for unknown method")
	}
}

func TestProfilesAreCopies(t *testing.T) {
	ps := Profiles()
	ps[0].CostPerAcre = 9999
	again := Profiles()
	if again[0].CostPerAcre == 9999 {
		t.Error("Profiles leaked internal storage")
	}
}

func TestCandidateConversion(t *testing.T) {
	p, _ := Lookup("banded")
	c := p.Candidate()
	if c.MethodType != "banded" || c.EfficiencyScore != p.EfficiencyScore {
		t.Errorf("bad conversion: %+v", c)
	}
}

func TestFrontierPointsCoverCatalog(t *testing.T) {
	points := FrontierPoints()
	if len(points) != len(Profiles()) {
		t.Fatalf("expected %d points, got %d", len(Profiles()), len(points))
	}
	for _, pt := range points {
		if pt.Environment == 0 || pt.Labor == 0 {
			t.Errorf("%s: unmapped qualitative tag", pt.Method)
		}
	}

	frontier := scoring.ComputeFrontier(points)
	if len(frontier) == 0 {
		t.Error("catalog frontier is empty")
	}
}
