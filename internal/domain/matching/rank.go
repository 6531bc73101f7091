package matching

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

const (
	baseScore          = 1.0
	titleWordBoost     = 2.0
	titlePartialBoost  = 1.0
	locationBoost      = 1.5
	skillBoost         = 0.5
	recencyDecayFactor = 0.1
)

// Rank scores every record against the criteria and the flattened profile
// skill list, attaches the relevance score, and returns the records in
// descending score order. The sort is stable: equal scores keep their
// input order. The input slice is not modified.
func Rank(jobs []job.Record, c Criteria, skills []string) []job.Record {
	if len(jobs) == 0 {
		return jobs
	}

	out := make([]job.Record, len(jobs))
	copy(out, jobs)

	now := time.Now()
	for i := range out {
		out[i].RelevanceScore = scoreRecord(out[i], c, skills, now)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})

	return out
}

func scoreRecord(r job.Record, c Criteria, skills []string, now time.Time) float64 {
	score := baseScore

	for _, title := range c.JobTitles {
		// Only single-word keywords can earn the whole-word boost; for a
		// multi-word phrase the substring boost is the ceiling. A
		// whole-word hit stacks with its own substring hit (3.0 total).
		if len(strings.Fields(title)) == 1 && wordPattern(title).MatchString(r.Title) {
			score += titleWordBoost
		}
		if containsFold(r.Title, title) {
			score += titlePartialBoost
		}
	}

	for _, loc := range c.Locations {
		if containsFold(r.Location, loc) {
			score += locationBoost
		}
	}

	if r.UpdatedAt != nil {
		days := now.Sub(*r.UpdatedAt).Hours() / 24
		if days < 0 {
			days = 0
		}
		score *= math.Exp(-recencyDecayFactor * days)
	}

	if r.Description != "" {
		for _, skill := range skills {
			if wordPattern(skill).MatchString(r.Description) {
				score += skillBoost
			}
		}
	}

	return score
}
