package matching

import (
	"regexp"
	"strings"
)

// Criteria is the set of independently optional search constraints. A zero
// value (or any empty field) imposes no constraint.
type Criteria struct {
	JobTitles         []string
	Locations         []string
	FullyRemote       bool
	ExcludedCompanies []string
	MaxDaysOld        int
	ExperienceLevels  []string
	Keywords          []string
}

// anyPattern compiles a case-insensitive alternation that matches when the
// text contains at least one of the keywords as a substring. Keywords are
// quoted so user-supplied text can never break the matcher. Returns nil
// for an empty keyword set.
func anyPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// wordPattern compiles a case-insensitive whole-word match for one keyword.
func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\b`)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
