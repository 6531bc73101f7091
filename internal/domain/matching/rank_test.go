package matching

import (
	"math"
	"testing"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRank_MultiWordPhraseGetsSubstringBoostOnly(t *testing.T) {
	// "Backend Engineer" inside "Senior Backend Engineer" is a substring
	// hit but not a whole-word hit for the full phrase, so the boost is
	// +1.0, not +3.0.
	jobs := []job.Record{{ID: "1", Title: "Senior Backend Engineer"}}
	out := Rank(jobs, Criteria{JobTitles: []string{"Backend Engineer"}}, nil)
	if !almostEqual(out[0].RelevanceScore, 2.0) {
		t.Fatalf("expected score 2.0, got %v", out[0].RelevanceScore)
	}
}

func TestRank_ExactPhraseStillOnlySubstringBoost(t *testing.T) {
	jobs := []job.Record{{ID: "1", Title: "Backend Engineer"}}
	out := Rank(jobs, Criteria{JobTitles: []string{"Backend Engineer"}}, nil)
	if !almostEqual(out[0].RelevanceScore, 2.0) {
		t.Fatalf("expected score 2.0, got %v", out[0].RelevanceScore)
	}
}

func TestRank_WholeWordAndSubstringStack(t *testing.T) {
	jobs := []job.Record{{ID: "1", Title: "Backend Engineer"}}
	out := Rank(jobs, Criteria{JobTitles: []string{"Engineer"}}, nil)
	// base 1.0 + whole word 2.0 + substring 1.0
	if !almostEqual(out[0].RelevanceScore, 4.0) {
		t.Fatalf("expected score 4.0, got %v", out[0].RelevanceScore)
	}
}

func TestRank_LocationBoost(t *testing.T) {
	jobs := []job.Record{{ID: "1", Title: "Engineer", Location: "Berlin, Germany"}}
	out := Rank(jobs, Criteria{Locations: []string{"berlin"}}, nil)
	if !almostEqual(out[0].RelevanceScore, 2.5) {
		t.Fatalf("expected score 2.5, got %v", out[0].RelevanceScore)
	}
}

func TestRank_RecencyDecayAppliesOnlyWithTimestamp(t *testing.T) {
	old := time.Now().Add(-10 * 24 * time.Hour)
	jobs := []job.Record{
		{ID: "dated", Title: "Engineer", UpdatedAt: &old},
		{ID: "undated", Title: "Engineer"},
	}
	out := Rank(jobs, Criteria{}, nil)

	var dated, undated job.Record
	for _, r := range out {
		if r.ID == "dated" {
			dated = r
		} else {
			undated = r
		}
	}
	if !almostEqual(undated.RelevanceScore, 1.0) {
		t.Fatalf("undated job should keep base score, got %v", undated.RelevanceScore)
	}
	want := math.Exp(-0.1 * 10)
	if math.Abs(dated.RelevanceScore-want) > 0.01 {
		t.Fatalf("expected decayed score ~%v, got %v", want, dated.RelevanceScore)
	}
	if out[0].ID != "undated" {
		t.Fatalf("undated job should rank first")
	}
}

func TestRank_SkillMatchesBoostScore(t *testing.T) {
	jobs := []job.Record{{ID: "1", Title: "Engineer", Description: "We use Go and Python daily"}}
	out := Rank(jobs, Criteria{}, []string{"Go", "Python", "Rust"})
	// base 1.0 + 0.5 per matched skill (Go, Python)
	if !almostEqual(out[0].RelevanceScore, 2.0) {
		t.Fatalf("expected score 2.0, got %v", out[0].RelevanceScore)
	}
}

func TestRank_StableSortKeepsInputOrderOnTies(t *testing.T) {
	jobs := []job.Record{
		{ID: "a", Title: "Engineer"},
		{ID: "b", Title: "Engineer"},
		{ID: "c", Title: "Engineer"},
	}
	out := Rank(jobs, Criteria{}, nil)
	if out[0].ID != "a" || out[1].ID != "b" || out[2].ID != "c" {
		t.Fatalf("tie order changed: %s %s %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestRank_SortsDescending(t *testing.T) {
	jobs := []job.Record{
		{ID: "weak", Title: "Product Manager"},
		{ID: "strong", Title: "Engineer"},
	}
	out := Rank(jobs, Criteria{JobTitles: []string{"Engineer"}}, nil)
	if out[0].ID != "strong" {
		t.Fatalf("expected strong match first, got %s", out[0].ID)
	}
	if out[0].RelevanceScore <= out[1].RelevanceScore {
		t.Fatalf("scores not descending: %v <= %v", out[0].RelevanceScore, out[1].RelevanceScore)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	jobs := []job.Record{
		{ID: "1", Title: "Product Manager"},
		{ID: "2", Title: "Engineer"},
	}
	_ = Rank(jobs, Criteria{JobTitles: []string{"Engineer"}}, nil)
	if jobs[0].ID != "1" || jobs[0].RelevanceScore != 0 {
		t.Fatalf("input slice was modified")
	}
}
