package recommend

import (
	"strings"
	"testing"

	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
)

func allPersonas() []*persona.Persona {
	return []*persona.Persona{
		&persona.ClaudeHopkins,
		&persona.DavidOgilvy,
		&persona.GaryHalbert,
		&persona.MaryWellsLawrence,
	}
}

func TestExactGoalMatch(t *testing.T) {
	bp := profile.BusinessProfile{PrimaryGoal: "growth"}
	rec := Score(&persona.ClaudeHopkins, bp)
	if rec.Breakdown["goal"] != 30 {
		t.Fatalf("exact goal match should score 30, got %d", rec.Breakdown["goal"])
	}
}

func TestPartialGoalMatch(t *testing.T) {
	bp := profile.BusinessProfile{PrimaryGoal: "aggressive growth this year"}
	rec := Score(&persona.ClaudeHopkins, bp)
	if rec.Breakdown["goal"] != 20 {
		t.Fatalf("partial goal match should score 20, got %d", rec.Breakdown["goal"])
	}
}

func TestEmptyProfileScoresFloor(t *testing.T) {
	var bp profile.BusinessProfile
	for _, p := range allPersonas() {
		rec := Score(p, bp)
		if rec.Score != 15 {
			t.Errorf("%s: empty profile should total 15 (5+5+5+0), got %d", p.Name, rec.Score)
		}
		if rec.Stars != 1 {
			t.Errorf("%s: empty profile should rate 1 star, got %d", p.Name, rec.Stars)
		}
	}
}

func TestUnmappedPersonaDefault(t *testing.T) {
	unmapped := &persona.Persona{Name: "Rosser Reeves", Title: "USP man"}
	rec := Score(unmapped, profile.BusinessProfile{PrimaryGoal: "growth"})
	if rec.Score != 50 {
		t.Fatalf("unmapped persona should score flat 50, got %d", rec.Score)
	}
	if rec.Stars != 3 {
		t.Fatalf("unmapped persona should rate 3 stars, got %d", rec.Stars)
	}
	if !strings.Contains(rec.Reason, "offers valuable perspective") {
		t.Fatalf("unexpected fallback reason: %q", rec.Reason)
	}
}

func TestScoreBounds(t *testing.T) {
	profiles := []profile.BusinessProfile{
		{},
		{PrimaryGoal: "growth", Industry: "ecommerce", MainChallenge: "low conversion rates", MainProducts: "testing tools and ads analytics", TargetAudience: "performance marketers"},
		{PrimaryGoal: "brand", Industry: "luxury travel", MainChallenge: "commodity pricing", MainProducts: "premium campaign research", TargetAudience: "brand managers"},
	}
	for _, bp := range profiles {
		for _, p := range allPersonas() {
			rec := Score(p, bp)
			if rec.Score < 0 || rec.Score > 100 {
				t.Fatalf("%s: score out of range: %d", p.Name, rec.Score)
			}
			if rec.Stars < 1 || rec.Stars > 5 {
				t.Fatalf("%s: stars out of range: %d", p.Name, rec.Stars)
			}
		}
	}
}

func TestStarsMonotonic(t *testing.T) {
	prev := 0
	for score := 0; score <= 100; score++ {
		s := starsFor(score)
		if s < prev {
			t.Fatalf("stars decreased at score %d: %d -> %d", score, prev, s)
		}
		prev = s
	}
}

func TestStarThresholds(t *testing.T) {
	cases := []struct{ score, stars int }{
		{100, 5}, {85, 5}, {84, 4}, {70, 4}, {69, 3}, {50, 3}, {49, 2}, {30, 2}, {29, 1}, {0, 1},
	}
	for _, c := range cases {
		if got := starsFor(c.score); got != c.stars {
			t.Errorf("starsFor(%d) = %d, want %d", c.score, got, c.stars)
		}
	}
}

func TestRecommendationsStable(t *testing.T) {
	bp := profile.BusinessProfile{PrimaryGoal: "growth", Industry: "saas"}
	a := Recommendations(allPersonas(), bp, 0)
	b := Recommendations(allPersonas(), bp, 0)
	if len(a) != len(b) {
		t.Fatal("rankings differ in length")
	}
	for i := range a {
		if a[i].Persona != b[i].Persona || a[i].Score != b[i].Score {
			t.Fatalf("unstable ranking at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRecommendationsTiesKeepCatalogueOrder(t *testing.T) {
	// An empty profile scores every mapped persona identically, so the
	// ranking must equal the catalogue order.
	recs := Recommendations(allPersonas(), profile.BusinessProfile{}, 0)
	want := []string{"Claude Hopkins", "David Ogilvy", "Gary Halbert", "Mary Wells Lawrence"}
	for i, rec := range recs {
		if rec.Persona != want[i] {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, rec.Persona, want[i])
		}
	}
}

func TestTopNTruncatesAfterSort(t *testing.T) {
	bp := profile.BusinessProfile{PrimaryGoal: "brand", Industry: "luxury goods"}
	all := Recommendations(allPersonas(), bp, 0)
	top := Recommendations(allPersonas(), bp, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 results, got %d", len(top))
	}
	if top[0].Persona != all[0].Persona || top[1].Persona != all[1].Persona {
		t.Fatal("topN must keep the best-ranked entries")
	}
}

func TestKeywordCap(t *testing.T) {
	bp := profile.BusinessProfile{
		MainProducts:   "email copy funnel offer letter newsletter",
		TargetAudience: "launch direct response crowd",
	}
	rec := Score(&persona.GaryHalbert, bp)
	if rec.Breakdown["keywords"] != 20 {
		t.Fatalf("keyword bucket should cap at 20, got %d", rec.Breakdown["keywords"])
	}
}
