// Package feed retrieves job postings from the supported platform APIs
// and persists them as timestamped CSV snapshots for the recommendation
// stage.
package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

// Fetcher retrieves postings for a list of company boards and normalizes
// them into the canonical record shape.
type Fetcher interface {
	Source() string
	Fetch(ctx context.Context, companies []string) ([]job.Record, error)
}

const (
	fetchWorkers   = 4
	fetchRateLimit = 2 // requests per second across all workers
	maxBodyBytes   = 5 << 20
)

// fetchAll fans the per-company fetches out over a rate-limited pool.
// A failing company is logged and skipped; it never fails the batch.
func fetchAll(ctx context.Context, source string, companies []string, fetchOne func(ctx context.Context, company string) ([]job.Record, error)) ([]job.Record, error) {
	p := newPool(fetchWorkers, len(companies))
	p.setRateLimit(fetchRateLimit)
	results := p.run(ctx)

	for _, company := range companies {
		company = strings.TrimSpace(company)
		if company == "" {
			continue
		}
		company := company
		p.submit(func(ctx context.Context) ([]job.Record, error) {
			records, err := fetchOne(ctx, company)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", source, company, err)
			}
			log.Printf("fetched %d jobs from %s (%s)", len(records), company, source)
			return records, nil
		})
	}
	p.close()

	var all []job.Record
	for res := range results {
		if res.err != nil {
			log.Printf("WARN: fetch failed: %v", res.err)
			continue
		}
		all = append(all, res.records...)
	}

	if err := ctx.Err(); err != nil {
		return all, err
	}
	return all, nil
}

func httpGetWithRetry(ctx context.Context, client *http.Client, url string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "AutoApplyPlatform/1.0.0")
		req.Header.Set("Accept", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}
