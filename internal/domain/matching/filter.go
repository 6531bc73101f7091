package matching

import (
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

// Filter applies every supplied criterion conjunctively, preserving the
// relative order of surviving records. Each step is an OR across its own
// keyword set; a step with no keywords is a no-op.
func Filter(jobs []job.Record, c Criteria) []job.Record {
	if len(jobs) == 0 {
		return jobs
	}

	filtered := jobs

	if p := anyPattern(c.JobTitles); p != nil {
		filtered = keep(filtered, func(r job.Record) bool {
			return p.MatchString(r.Title)
		})
	}

	locations := c.Locations
	if c.FullyRemote {
		locations = append(append([]string{}, locations...), "Remote")
	}
	if p := anyPattern(locations); p != nil {
		filtered = keep(filtered, func(r job.Record) bool {
			return p.MatchString(r.Location)
		})
	}

	if c.MaxDaysOld > 0 {
		cutoff := time.Now().AddDate(0, 0, -c.MaxDaysOld)
		filtered = keep(filtered, func(r job.Record) bool {
			// No timestamp means the record cannot pass a recency filter.
			return r.UpdatedAt != nil && !r.UpdatedAt.Before(cutoff)
		})
	}

	if p := anyPattern(c.ExcludedCompanies); p != nil {
		filtered = keep(filtered, func(r job.Record) bool {
			return !p.MatchString(r.Company)
		})
	}

	if p := anyPattern(c.ExperienceLevels); p != nil {
		filtered = keep(filtered, func(r job.Record) bool {
			return p.MatchString(r.Title) || (r.Description != "" && p.MatchString(r.Description))
		})
	}

	if p := anyPattern(c.Keywords); p != nil {
		filtered = keep(filtered, func(r job.Record) bool {
			return p.MatchString(r.Title) || (r.Description != "" && p.MatchString(r.Description))
		})
	}

	return filtered
}

func keep(jobs []job.Record, pred func(job.Record) bool) []job.Record {
	out := make([]job.Record, 0, len(jobs))
	for _, r := range jobs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
