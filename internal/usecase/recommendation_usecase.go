package usecase

import (
	"context"
	"errors"

	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/domain/matching"
	"github.com/aspk74/auto-apply/internal/profile"
)

var (
	ErrJobNotFound       = errors.New("job not found in current recommendations")
	ErrDailyLimitReached = errors.New("daily application limit reached")
)

// FeedStore loads the most recent feed snapshot.
type FeedStore interface {
	Latest() ([]job.Record, string, error)
}

// Recommendation is one ranked job with its independent match percentage.
type Recommendation struct {
	Job          job.Record
	MatchPercent float64
}

type RecommendationUsecase interface {
	Recommendations(ctx context.Context) ([]Recommendation, error)
}

type Recommender struct {
	feed FeedStore
	prof profile.Profile
}

func NewRecommender(feed FeedStore, prof profile.Profile) *Recommender {
	return &Recommender{feed: feed, prof: prof}
}

// Recommendations loads the latest snapshot, filters it against the
// profile's search criteria, ranks the survivors, and annotates each with
// a match percentage.
func (u *Recommender) Recommendations(ctx context.Context) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, _, err := u.feed.Latest()
	if err != nil {
		return nil, err
	}

	criteria := CriteriaFromProfile(u.prof)
	skills := u.prof.AllSkills()

	filtered := matching.Filter(records, criteria)
	ranked := matching.Rank(filtered, criteria, skills)

	out := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, Recommendation{
			Job:          r,
			MatchPercent: matching.MatchPercentage(r, criteria, skills),
		})
	}
	return out, nil
}

// CriteriaFromProfile maps the profile's job_search section onto the
// matching engine's criteria. Absent profile fields stay absent, which
// the engine treats as no-ops.
func CriteriaFromProfile(p profile.Profile) matching.Criteria {
	js := p.JobSearch
	return matching.Criteria{
		JobTitles:         js.JobTitles,
		Locations:         js.Locations,
		FullyRemote:       js.RemotePreferences.FullyRemote,
		ExcludedCompanies: js.ExcludedCompanies,
		MaxDaysOld:        js.MaxDaysOld,
		ExperienceLevels:  js.ExperienceLevel.Levels,
		Keywords:          js.Keywords,
	}
}
