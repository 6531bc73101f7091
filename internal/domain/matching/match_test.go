package matching

import (
	"testing"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

func TestMatchPercentage_NoApplicableComponentsIsZero(t *testing.T) {
	got := MatchPercentage(job.Record{Title: "Engineer"}, Criteria{}, nil)
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestMatchPercentage_SkillsOnlyBudget(t *testing.T) {
	// One of two skills matches as a whole word: 3 points out of a
	// 50-point budget, with no title/location components configured.
	j := job.Record{Description: "Experience with Python and distributed systems"}
	got := MatchPercentage(j, Criteria{}, []string{"Python", "Go"})
	if got != 6.0 {
		t.Fatalf("expected 6.0, got %v", got)
	}
}

func TestMatchPercentage_TitleComponent(t *testing.T) {
	j := job.Record{Title: "Senior Backend Engineer"}
	c := Criteria{JobTitles: []string{"Backend Engineer"}}
	got := MatchPercentage(j, c, nil)
	if got != 100.0 {
		t.Fatalf("expected 100.0 (30/30), got %v", got)
	}
}

func TestMatchPercentage_MissingDescriptionShrinksBudget(t *testing.T) {
	// Title matches (30/30), no description so the skills budget never
	// enters the total: 30/30 = 100, not 30/80.
	j := job.Record{Title: "Go Developer"}
	c := Criteria{JobTitles: []string{"Go"}}
	got := MatchPercentage(j, c, []string{"Go", "Python"})
	if got != 100.0 {
		t.Fatalf("expected 100.0, got %v", got)
	}
}

func TestMatchPercentage_RemoteBonus(t *testing.T) {
	j := job.Record{Location: "Remote"}
	c := Criteria{Locations: []string{"San Francisco"}, FullyRemote: true}
	// No listed location matches, but the remote bonus still lands:
	// 5 points out of the 20-point budget.
	got := MatchPercentage(j, c, nil)
	if got != 25.0 {
		t.Fatalf("expected 25.0, got %v", got)
	}
}

func TestMatchPercentage_NeverExceedsHundred(t *testing.T) {
	// Location match plus remote bonus overshoots the location budget;
	// the percentage stays capped.
	j := job.Record{Location: "Remote, San Francisco"}
	c := Criteria{Locations: []string{"San Francisco"}, FullyRemote: true}
	got := MatchPercentage(j, c, nil)
	if got != 100.0 {
		t.Fatalf("expected capped 100.0, got %v", got)
	}
}

func TestMatchPercentage_SkillPointsCapAtFifty(t *testing.T) {
	desc := "Go Python Rust Java Kotlin Swift Ruby PHP Scala Erlang " +
		"Haskell Elixir Clojure C Zig Lua Perl Fortran"
	skills := []string{
		"Go", "Python", "Rust", "Java", "Kotlin", "Swift", "Ruby", "PHP",
		"Scala", "Erlang", "Haskell", "Elixir", "Clojure", "C", "Zig",
		"Lua", "Perl", "Fortran",
	}
	j := job.Record{Description: desc}
	got := MatchPercentage(j, Criteria{}, skills)
	// 18 matches * 3 = 54 points, capped at 50 of 50.
	if got != 100.0 {
		t.Fatalf("expected 100.0, got %v", got)
	}
}

func TestMatchPercentage_CombinedComponents(t *testing.T) {
	j := job.Record{
		Title:       "Backend Engineer",
		Location:    "Berlin",
		Description: "Looking for Go experience",
	}
	c := Criteria{
		JobTitles: []string{"Backend Engineer"},
		Locations: []string{"Berlin"},
	}
	got := MatchPercentage(j, c, []string{"Go"})
	// (30 + 20 + 3) / (30 + 20 + 50) = 53%
	if got != 53.0 {
		t.Fatalf("expected 53.0, got %v", got)
	}
}
