// Package scheduler runs the feed fetch on a fixed interval so snapshots
// stay fresh without a manual fetch before every session.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	spec string
	run  func(ctx context.Context)
}

// New fires run every intervalHours hours.
func New(intervalHours int, run func(ctx context.Context)) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		spec: fmt.Sprintf("@every %dh", intervalHours),
		run:  run,
	}
}

// Start registers the job and kicks off one immediate run so the feed is
// populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("scheduler started, spec: %s", s.spec)

	go s.run(ctx)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("scheduler stopped")
}
