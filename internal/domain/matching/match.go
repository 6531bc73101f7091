package matching

import (
	"math"
	"strings"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

const (
	titleBudget  = 30.0
	locBudget    = 20.0
	remoteBonus  = 5.0
	skillsBudget = 50.0
	skillPoints  = 3.0
)

// MatchPercentage computes the 0-100 compatibility between one job and the
// user's preferences, independent of the ranking score. Each component
// only counts toward the total budget when both sides of it are present,
// so a job with no description is graded out of 50, not penalized against
// a fixed 100. With no applicable component the result is exactly 0.
func MatchPercentage(r job.Record, c Criteria, skills []string) float64 {
	var total, earned float64

	if r.Title != "" && len(c.JobTitles) > 0 {
		total += titleBudget
		for _, title := range c.JobTitles {
			if containsFold(r.Title, title) {
				earned += titleBudget
				break
			}
		}
	}

	if r.Location != "" && len(c.Locations) > 0 {
		total += locBudget
		for _, loc := range c.Locations {
			if containsFold(r.Location, loc) {
				earned += locBudget
				break
			}
		}
		// Flat bonus for remote jobs when the user wants fully remote.
		// Intentionally uncapped relative to the 20-point component.
		if c.FullyRemote && strings.Contains(strings.ToLower(r.Location), "remote") {
			earned += remoteBonus
		}
	}

	if r.Description != "" && len(skills) > 0 {
		total += skillsBudget
		points := 0.0
		for _, skill := range skills {
			if wordPattern(skill).MatchString(r.Description) {
				points += skillPoints
			}
		}
		if points > skillsBudget {
			points = skillsBudget
		}
		earned += points
	}

	if total == 0 {
		return 0
	}
	pct := math.Round(earned/total*1000) / 10
	// The remote bonus can push earned past the location budget; the
	// percentage itself stays within [0, 100].
	if pct > 100 {
		pct = 100
	}
	return pct
}
