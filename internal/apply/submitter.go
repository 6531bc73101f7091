// Package apply holds the platform-specific submission adapters. The
// filtering and ranking core never talks to a platform directly; it goes
// through the Submitter interface so tests can inject deterministic
// outcomes.
package apply

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/profile"
)

// Receipt is the successful outcome of one submission.
type Receipt struct {
	ReferenceID string
	SubmittedAt time.Time
}

// SubmissionError is an adapter-level failure. The reason is surfaced to
// the caller; submissions are never retried automatically.
type SubmissionError struct {
	Platform string
	Reason   string
	Cause    error
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s submission failed: %s: %v", e.Platform, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s submission failed: %s", e.Platform, e.Reason)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

// Submitter submits one application to the platform a job was sourced
// from. coverLetter may be empty, in which case adapters generate one
// from the resume.
type Submitter interface {
	Platform() string
	Submit(ctx context.Context, j job.Record, resume profile.Resume, coverLetter string) (Receipt, error)
}

// StubSubmitter is the deterministic test/dry-run implementation. Outcomes
// are injectable; without injection every submission succeeds with a
// generated reference id.
type StubSubmitter struct {
	Tag   string
	Ref   string
	Err   error
	Calls []string
}

func (s *StubSubmitter) Platform() string {
	if s.Tag != "" {
		return s.Tag
	}
	return "stub"
}

func (s *StubSubmitter) Submit(_ context.Context, j job.Record, _ profile.Resume, _ string) (Receipt, error) {
	s.Calls = append(s.Calls, j.ID)
	if s.Err != nil {
		return Receipt{}, s.Err
	}
	ref := s.Ref
	if ref == "" {
		ref = fmt.Sprintf("%s-%s", s.Platform(), uuid.NewString()[:8])
	}
	return Receipt{ReferenceID: ref, SubmittedAt: time.Now()}, nil
}
