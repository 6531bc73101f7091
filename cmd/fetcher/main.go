package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aspk74/auto-apply/internal/config"
	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/feed"
	"github.com/aspk74/auto-apply/internal/scheduler"
)

var defaultCompanies = map[string][]string{
	job.SourceLever:      {"netflix", "figma", "slack"},
	job.SourceGreenhouse: {"airbnb", "stripe", "coinbase"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	source := flag.String("source", "all", "platform to fetch: lever, greenhouse, or all")
	companies := flag.String("companies", "", "comma-separated company boards (default: built-in list per source)")
	watch := flag.Bool("watch", false, "keep running and refetch on the configured interval")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fetchers, err := selectFetchers(*source)
	if err != nil {
		log.Fatalf("%v", err)
	}

	store := feed.NewStore(cfg.Paths.DataDir)

	run := func(ctx context.Context) {
		for _, f := range fetchers {
			boards := splitCompanies(*companies)
			if len(boards) == 0 {
				boards = defaultCompanies[f.Source()]
			}

			records, err := f.Fetch(ctx, boards)
			if err != nil {
				log.Printf("fetch %s: %v", f.Source(), err)
				continue
			}
			path, err := store.WriteSnapshot(f.Source(), records)
			if err != nil {
				log.Printf("snapshot %s: %v", f.Source(), err)
				continue
			}
			log.Printf("total jobs fetched from %s: %d (snapshot: %s)", f.Source(), len(records), path)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !*watch {
		run(ctx)
		return
	}

	sched := scheduler.New(cfg.Fetch.IntervalHours, run)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("received interrupt, shutting down")
	cancel()
}

func selectFetchers(source string) ([]feed.Fetcher, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case job.SourceLever:
		return []feed.Fetcher{feed.NewLeverFetcher()}, nil
	case job.SourceGreenhouse:
		return []feed.Fetcher{feed.NewGreenhouseFetcher()}, nil
	case "all", "":
		return []feed.Fetcher{feed.NewLeverFetcher(), feed.NewGreenhouseFetcher()}, nil
	}
	return nil, fmt.Errorf("unknown source %q (expected lever, greenhouse, or all)", source)
}

func splitCompanies(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
