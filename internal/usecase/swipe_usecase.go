package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aspk74/auto-apply/internal/applog"
	"github.com/aspk74/auto-apply/internal/apply"
	"github.com/aspk74/auto-apply/internal/profile"
)

// Ledger is the slice of the application log the swipe workflow needs.
type Ledger interface {
	HasApplied(jobID string) bool
	DailyCount(asOf time.Time) int
	Append(e applog.Entry) error
}

// Pacer spaces consecutive outbound platform calls.
type Pacer interface {
	Wait()
}

// Swiper runs the apply/reject workflow: duplicate guard and daily-limit
// check first, then a paced submission through the platform adapter, then
// the ledger append. The limit check happens BEFORE submission so a full
// day never produces an outbound call.
type Swiper struct {
	recs       RecommendationUsecase
	ledger     Ledger
	submitters map[string]apply.Submitter
	pacer      Pacer
	prof       profile.Profile
	resume     profile.Resume

	now func() time.Time
}

func NewSwiper(recs RecommendationUsecase, ledger Ledger, submitters map[string]apply.Submitter, pacer Pacer, prof profile.Profile, resume profile.Resume) *Swiper {
	return &Swiper{
		recs:       recs,
		ledger:     ledger,
		submitters: submitters,
		pacer:      pacer,
		prof:       prof,
		resume:     resume,
		now:        time.Now,
	}
}

// SwipeRight applies to one job from the current recommendation set.
func (s *Swiper) SwipeRight(ctx context.Context, jobID string) (apply.Receipt, error) {
	if s.ledger.HasApplied(jobID) {
		return apply.Receipt{}, fmt.Errorf("%w: %s", applog.ErrDuplicateApplication, jobID)
	}

	if s.ledger.DailyCount(s.now()) >= s.prof.DailyMax() {
		return apply.Receipt{}, ErrDailyLimitReached
	}

	items, err := s.recs.Recommendations(ctx)
	if err != nil {
		return apply.Receipt{}, err
	}
	var rec *Recommendation
	for i := range items {
		if items[i].Job.ID == jobID {
			rec = &items[i]
			break
		}
	}
	if rec == nil {
		return apply.Receipt{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	submitter, ok := s.submitters[rec.Job.Source]
	if !ok {
		return apply.Receipt{}, fmt.Errorf("no submitter configured for source %q", rec.Job.Source)
	}

	if s.pacer != nil {
		s.pacer.Wait()
	}

	receipt, err := submitter.Submit(ctx, rec.Job, s.resume, "")
	if err != nil {
		return apply.Receipt{}, err
	}

	entry := applog.Entry{
		JobID:     rec.Job.ID,
		Company:   rec.Job.Company,
		Title:     rec.Job.Title,
		Location:  rec.Job.Location,
		Source:    rec.Job.Source,
		AppliedAt: s.now(),
		Status:    applog.StatusApplied,
		Notes:     "ref=" + receipt.ReferenceID,
	}
	if err := s.ledger.Append(entry); err != nil {
		return apply.Receipt{}, err
	}

	log.Printf("applied to %q at %s (ref=%s)", rec.Job.Title, rec.Job.Company, receipt.ReferenceID)
	return receipt, nil
}

// SwipeLeft records a rejection. Rejections are not persisted; the log
// holds submitted applications only.
func (s *Swiper) SwipeLeft(jobID, reason string) {
	if reason != "" {
		log.Printf("rejected job %s - reason: %s", jobID, reason)
		return
	}
	log.Printf("rejected job %s", jobID)
}
