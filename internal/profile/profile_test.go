package profile

import (
	"os"
	"path/filepath"
	"testing"
)

const profileYAML = `
job_search:
  job_titles:
    - Backend Engineer
    - Go Developer
  locations:
    - Berlin
  remote_preferences:
    fully_remote: true
  excluded_companies:
    - initech
  max_days_old: 14
  experience_level:
    levels:
      - Senior
  keywords:
    - distributed
skills:
  programming_languages:
    - Go
    - Python
  databases:
    - PostgreSQL
application_limits:
  daily_max: 5
`

const resumeJSON = `{
  "personal_info": {
    "name": "Jane Doe",
    "email": "jane@example.com",
    "phone": "+1-555-0100",
    "linkedin": "https://linkedin.com/in/janedoe"
  },
  "skills": {
    "programming_languages": ["Go"]
  }
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	p := LoadProfile(writeTemp(t, "profile.yaml", profileYAML))

	if len(p.JobSearch.JobTitles) != 2 || p.JobSearch.JobTitles[0] != "Backend Engineer" {
		t.Fatalf("job titles parsed wrong: %v", p.JobSearch.JobTitles)
	}
	if !p.JobSearch.RemotePreferences.FullyRemote {
		t.Fatalf("fully_remote should be true")
	}
	if p.JobSearch.MaxDaysOld != 14 {
		t.Fatalf("max_days_old = %d, want 14", p.JobSearch.MaxDaysOld)
	}
	if p.JobSearch.ExperienceLevel.Levels[0] != "Senior" {
		t.Fatalf("experience levels parsed wrong: %v", p.JobSearch.ExperienceLevel.Levels)
	}
	if p.DailyMax() != 5 {
		t.Fatalf("daily max = %d, want 5", p.DailyMax())
	}
}

func TestLoadProfile_MissingFileIsEmpty(t *testing.T) {
	p := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	if len(p.JobSearch.JobTitles) != 0 || p.JobSearch.MaxDaysOld != 0 {
		t.Fatalf("missing file should yield an empty profile: %+v", p)
	}
}

func TestLoadProfile_MalformedFileIsEmpty(t *testing.T) {
	p := LoadProfile(writeTemp(t, "profile.yaml", "job_search: [not: a: mapping"))
	if len(p.JobSearch.JobTitles) != 0 {
		t.Fatalf("malformed file should yield an empty profile: %+v", p)
	}
}

func TestDailyMax_DefaultsWhenUnset(t *testing.T) {
	var p Profile
	if p.DailyMax() != 15 {
		t.Fatalf("default daily max = %d, want 15", p.DailyMax())
	}
}

func TestAllSkills_FlattensCategories(t *testing.T) {
	p := LoadProfile(writeTemp(t, "profile.yaml", profileYAML))
	skills := p.AllSkills()
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %v", skills)
	}
	found := make(map[string]bool, len(skills))
	for _, s := range skills {
		found[s] = true
	}
	for _, want := range []string{"Go", "Python", "PostgreSQL"} {
		if !found[want] {
			t.Fatalf("missing skill %q in %v", want, skills)
		}
	}
}

func TestLoadResume(t *testing.T) {
	r := LoadResume(writeTemp(t, "resume.json", resumeJSON))
	if r.PersonalInfo.Name != "Jane Doe" || r.PersonalInfo.Email != "jane@example.com" {
		t.Fatalf("resume parsed wrong: %+v", r.PersonalInfo)
	}
	if len(r.Skills["programming_languages"]) != 1 {
		t.Fatalf("resume skills parsed wrong: %+v", r.Skills)
	}
}

func TestLoadResume_MissingFileIsEmpty(t *testing.T) {
	r := LoadResume(filepath.Join(t.TempDir(), "nope.json"))
	if r.PersonalInfo.Name != "" {
		t.Fatalf("missing file should yield an empty resume: %+v", r)
	}
}
