package matching

import (
	"testing"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

func sampleJobs() []job.Record {
	recent := time.Now().Add(-24 * time.Hour)
	stale := time.Now().Add(-30 * 24 * time.Hour)
	return []job.Record{
		{ID: "1", Title: "Backend Engineer", Location: "Remote", Company: "acme", UpdatedAt: &recent, Description: "Go and PostgreSQL"},
		{ID: "2", Title: "Frontend Developer", Location: "New York", Company: "initech", UpdatedAt: &stale},
		{ID: "3", Title: "Senior Backend Engineer", Location: "Berlin", Company: "globex", Description: "Senior role, Python"},
	}
}

func TestFilter_EmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	jobs := sampleJobs()
	out := Filter(jobs, Criteria{})
	if len(out) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(out))
	}
	for i := range out {
		if out[i].ID != jobs[i].ID {
			t.Fatalf("order changed at %d: got %s want %s", i, out[i].ID, jobs[i].ID)
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	if out := Filter(nil, Criteria{JobTitles: []string{"Engineer"}}); len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
}

func TestFilter_TitleKeywordsAreORed(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{JobTitles: []string{"Backend", "Frontend"}})
	if len(out) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(out))
	}

	out = Filter(sampleJobs(), Criteria{JobTitles: []string{"backend"}})
	if len(out) != 2 {
		t.Fatalf("expected case-insensitive match on 2 jobs, got %d", len(out))
	}
}

func TestFilter_FullyRemoteExpandsLocations(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{Locations: []string{"Berlin"}, FullyRemote: true})
	if len(out) != 2 {
		t.Fatalf("expected Berlin + Remote jobs, got %d", len(out))
	}
	if out[0].ID != "1" || out[1].ID != "3" {
		t.Fatalf("unexpected survivors: %s, %s", out[0].ID, out[1].ID)
	}
}

func TestFilter_RecencyDropsMissingAndStaleTimestamps(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{MaxDaysOld: 7})
	if len(out) != 1 {
		t.Fatalf("expected only the recent job, got %d", len(out))
	}
	if out[0].ID != "1" {
		t.Fatalf("unexpected survivor %s", out[0].ID)
	}
}

func TestFilter_ExcludedCompanies(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{ExcludedCompanies: []string{"Acme"}})
	for _, r := range out {
		if r.Company == "acme" {
			t.Fatalf("excluded company survived")
		}
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
}

func TestFilter_ExperienceLevelChecksTitleAndDescription(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{ExperienceLevels: []string{"Senior"}})
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("expected only the senior role, got %d", len(out))
	}
}

func TestFilter_KeywordsMatchDescription(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{Keywords: []string{"PostgreSQL"}})
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected the PostgreSQL job, got %d survivors", len(out))
	}
}

func TestFilter_ConstraintsAreConjunctive(t *testing.T) {
	out := Filter(sampleJobs(), Criteria{
		JobTitles: []string{"Backend"},
		Locations: []string{"Berlin"},
	})
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("expected only job 3, got %d survivors", len(out))
	}
}

func TestFilter_RegexMetacharactersInKeywordsAreLiteral(t *testing.T) {
	jobs := []job.Record{{ID: "1", Title: "C++ Developer"}}
	out := Filter(jobs, Criteria{JobTitles: []string{"C++"}})
	if len(out) != 1 {
		t.Fatalf("expected literal C++ match, got %d", len(out))
	}
}
