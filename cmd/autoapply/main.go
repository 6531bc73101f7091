package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/aspk74/auto-apply/internal/applog"
	"github.com/aspk74/auto-apply/internal/apply"
	"github.com/aspk74/auto-apply/internal/config"
	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/feed"
	"github.com/aspk74/auto-apply/internal/profile"
	"github.com/aspk74/auto-apply/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	list := flag.Bool("list", false, "print current recommendations")
	applyID := flag.String("apply", "", "apply to one job id from the recommendations")
	top := flag.Int("top", 0, "apply to the top N recommendations")
	rejectID := flag.String("reject", "", "record a rejection for one job id")
	reason := flag.String("reason", "", "rejection reason (with -reject)")
	dryRun := flag.Bool("dry-run", false, "use the stub submitter instead of real platform calls")
	stats := flag.Bool("stats", false, "print application statistics")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	prof := profile.LoadProfile(cfg.Paths.ProfilePath)
	resume := profile.LoadResume(cfg.Paths.ResumePath)

	ledger, err := applog.Open(cfg.Paths.LogPath)
	if err != nil {
		log.Fatalf("failed to open application log: %v", err)
	}

	store := feed.NewStore(cfg.Paths.DataDir)
	recommender := usecase.NewRecommender(store, prof)
	pacer := apply.NewPacer(cfg.Apply.MinDelay, cfg.Apply.MaxDelay)
	swiper := usecase.NewSwiper(recommender, ledger, submitters(*dryRun), pacer, prof, resume)

	ctx := context.Background()

	switch pickAction(*applyID, *top, *rejectID, *list, *stats) {
	case actionApplyOne:
		applyOne(ctx, swiper, *applyID)
	case actionApplyTop:
		applyTop(ctx, recommender, swiper, *top)
	case actionReject:
		swiper.SwipeLeft(*rejectID, *reason)
	case actionStats:
		printStats(ledger)
	default:
		printRecommendations(ctx, recommender)
	}
}

type action int

const (
	actionList action = iota
	actionApplyOne
	actionApplyTop
	actionReject
	actionStats
)

// pickAction resolves the flag combination to one action. Listing is both
// an explicit flag and the fallback when no action flag is given.
func pickAction(applyID string, top int, rejectID string, list, stats bool) action {
	switch {
	case applyID != "":
		return actionApplyOne
	case top > 0:
		return actionApplyTop
	case rejectID != "":
		return actionReject
	case list:
		return actionList
	case stats:
		return actionStats
	default:
		return actionList
	}
}

func submitters(dryRun bool) map[string]apply.Submitter {
	if dryRun {
		return map[string]apply.Submitter{
			job.SourceLever:      &apply.StubSubmitter{Tag: job.SourceLever},
			job.SourceGreenhouse: &apply.StubSubmitter{Tag: job.SourceGreenhouse},
		}
	}
	return map[string]apply.Submitter{
		job.SourceLever:      apply.NewLeverSubmitter(),
		job.SourceGreenhouse: apply.NewGreenhouseSubmitter(),
	}
}

func printRecommendations(ctx context.Context, recommender *usecase.Recommender) {
	items, err := recommender.Recommendations(ctx)
	if err != nil {
		if errors.Is(err, feed.ErrNoSnapshots) {
			log.Fatal("no feed snapshots found; run the fetcher first")
		}
		log.Fatalf("failed to build recommendations: %v", err)
	}
	if len(items) == 0 {
		fmt.Println("No recommended jobs found.")
		return
	}

	fmt.Printf("Found %d recommended jobs:\n\n", len(items))
	for _, it := range items {
		fmt.Printf("  [%5.1f%%] %-8s %-36s %-24s %s (score %.2f)\n",
			it.MatchPercent, it.Job.Source, truncate(it.Job.Title, 36),
			truncate(it.Job.Company, 24), it.Job.ID, it.Job.RelevanceScore)
	}
}

func applyOne(ctx context.Context, swiper *usecase.Swiper, jobID string) {
	receipt, err := swiper.SwipeRight(ctx, jobID)
	if err != nil {
		reportApplyError(jobID, err)
		os.Exit(1)
	}
	fmt.Printf("Application submitted. Reference: %s\n", receipt.ReferenceID)
}

func applyTop(ctx context.Context, recommender *usecase.Recommender, swiper *usecase.Swiper, n int) {
	items, err := recommender.Recommendations(ctx)
	if err != nil {
		log.Fatalf("failed to build recommendations: %v", err)
	}

	applied := 0
	for _, it := range items {
		if applied >= n {
			break
		}
		receipt, err := swiper.SwipeRight(ctx, it.Job.ID)
		if err != nil {
			if errors.Is(err, usecase.ErrDailyLimitReached) {
				log.Printf("daily application limit reached, stopping")
				break
			}
			reportApplyError(it.Job.ID, err)
			continue
		}
		applied++
		fmt.Printf("Applied to %q at %s (ref=%s)\n", it.Job.Title, it.Job.Company, receipt.ReferenceID)
	}
	fmt.Printf("Submitted %d application(s).\n", applied)
}

func reportApplyError(jobID string, err error) {
	var subErr *apply.SubmissionError
	switch {
	case errors.Is(err, applog.ErrDuplicateApplication):
		log.Printf("already applied to job %s", jobID)
	case errors.Is(err, usecase.ErrDailyLimitReached):
		log.Printf("daily application limit reached")
	case errors.Is(err, usecase.ErrJobNotFound):
		log.Printf("job %s not found in current recommendations", jobID)
	case errors.As(err, &subErr):
		log.Printf("submission failed for job %s: %s", jobID, subErr.Reason)
	default:
		log.Printf("apply failed for job %s: %v", jobID, err)
	}
}

func printStats(ledger *applog.Log) {
	analytics := usecase.NewAnalytics(memoryLedger{entries: ledger.Entries()})

	overview, err := analytics.Overview()
	if err != nil {
		log.Fatalf("failed to compute stats: %v", err)
	}
	breakdown, _ := analytics.StatusBreakdown()
	sources, _ := analytics.Sources()

	fmt.Println("Application Statistics:")
	fmt.Printf("  total applications:  %d\n", overview.TotalApplications)
	fmt.Printf("  last 7 days:         %d\n", overview.LastSevenDays)
	fmt.Printf("  response rate:       %.1f%%\n", overview.ResponseRate)
	fmt.Printf("  interview rate:      %.1f%%\n", overview.InterviewRate)
	fmt.Printf("  by status:           %v\n", breakdown.ByStatus)
	fmt.Printf("  by source:           %v\n", sources.BySource)
}

type memoryLedger struct {
	entries []applog.Entry
}

func (m memoryLedger) Load() ([]applog.Entry, error) {
	return m.entries, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
