package profile

import (
	"encoding/json"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultDailyMax = 15

// Profile is the user's job-search configuration document. Every field is
// optional; absence of a field means no constraint from that field.
type Profile struct {
	JobSearch         JobSearch           `yaml:"job_search"`
	Skills            map[string][]string `yaml:"skills"`
	ApplicationLimits ApplicationLimits   `yaml:"application_limits"`
}

type JobSearch struct {
	JobTitles         []string          `yaml:"job_titles"`
	Locations         []string          `yaml:"locations"`
	RemotePreferences RemotePreferences `yaml:"remote_preferences"`
	ExcludedCompanies []string          `yaml:"excluded_companies"`
	MaxDaysOld        int               `yaml:"max_days_old"`
	ExperienceLevel   ExperienceLevel   `yaml:"experience_level"`
	Keywords          []string          `yaml:"keywords"`
}

type RemotePreferences struct {
	FullyRemote bool `yaml:"fully_remote"`
}

type ExperienceLevel struct {
	Levels []string `yaml:"levels"`
}

type ApplicationLimits struct {
	DailyMax int `yaml:"daily_max"`
}

// Resume is the structured resume/contact document used to build
// submission payloads.
type Resume struct {
	PersonalInfo PersonalInfo        `json:"personal_info"`
	Skills       map[string][]string `json:"skills"`
}

type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// LoadProfile reads the profile YAML. A missing or malformed file is not
// fatal: it logs a warning and returns an empty profile, which downstream
// filters treat as "no constraints".
func LoadProfile(path string) Profile {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARN: user profile not found at %s: %v", path, err)
		return Profile{}
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		log.Printf("WARN: user profile at %s is malformed: %v", path, err)
		return Profile{}
	}
	return p
}

// LoadResume reads the resume JSON with the same permissive recovery as
// LoadProfile.
func LoadResume(path string) Resume {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARN: resume not found at %s: %v", path, err)
		return Resume{}
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("WARN: resume at %s is malformed: %v", path, err)
		return Resume{}
	}
	return r
}

// DailyMax returns the configured submission ceiling per calendar day.
func (p Profile) DailyMax() int {
	if p.ApplicationLimits.DailyMax > 0 {
		return p.ApplicationLimits.DailyMax
	}
	return defaultDailyMax
}

// AllSkills flattens every skill-category list into one slice.
func (p Profile) AllSkills() []string {
	var out []string
	for _, skills := range p.Skills {
		out = append(out, skills...)
	}
	return out
}
