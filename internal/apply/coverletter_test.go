package apply

import (
	"strings"
	"testing"

	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/profile"
)

func TestGenerateCoverLetter(t *testing.T) {
	r := profile.Resume{
		Skills: map[string][]string{
			"programming_languages": {"Go", "Python", "Rust", "Java"},
		},
	}
	r.PersonalInfo.Name = "Jane Doe"

	letter := GenerateCoverLetter(job.Record{Title: "Backend Engineer", Company: "figma"}, r)

	for _, want := range []string{
		"Backend Engineer position at figma",
		"Go, Python, Rust",
		"Sincerely,\nJane Doe",
	} {
		if !strings.Contains(letter, want) {
			t.Fatalf("letter missing %q:\n%s", want, letter)
		}
	}
	if strings.Contains(letter, "Java") {
		t.Fatalf("headline skills should cap at three:\n%s", letter)
	}
}

func TestHeadlineSkills_FallsBackToAnyCategory(t *testing.T) {
	r := profile.Resume{Skills: map[string][]string{"databases": {"PostgreSQL"}}}
	if got := headlineSkills(r); got != "PostgreSQL" {
		t.Fatalf("expected fallback category, got %q", got)
	}
}

func TestHeadlineSkills_EmptyResume(t *testing.T) {
	if got := headlineSkills(profile.Resume{}); got != "software engineering" {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}
