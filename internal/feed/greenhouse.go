package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

type GreenhouseFetcher struct {
	client  *http.Client
	apiBase string
}

func NewGreenhouseFetcher() *GreenhouseFetcher {
	return &GreenhouseFetcher{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: "https://boards-api.greenhouse.io/v1/boards",
	}
}

type greenhouseBoard struct {
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	UpdatedAt   string `json:"updated_at"`
	AbsoluteURL string `json:"absolute_url"`
}

func (f *GreenhouseFetcher) Source() string {
	return job.SourceGreenhouse
}

func (f *GreenhouseFetcher) Fetch(ctx context.Context, companies []string) ([]job.Record, error) {
	return fetchAll(ctx, f.Source(), companies, f.fetchBoard)
}

func (f *GreenhouseFetcher) fetchBoard(ctx context.Context, board string) ([]job.Record, error) {
	url := fmt.Sprintf("%s/%s/jobs", strings.TrimRight(f.apiBase, "/"), board)
	body, err := httpGetWithRetry(ctx, f.client, url, 3)
	if err != nil {
		return nil, err
	}

	var payload greenhouseBoard
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode greenhouse payload: %w", err)
	}

	fetchedAt := time.Now()
	records := make([]job.Record, 0, len(payload.Jobs))
	for _, j := range payload.Jobs {
		if j.ID == 0 {
			continue
		}
		records = append(records, job.Record{
			ID:        strconv.FormatInt(j.ID, 10),
			Title:     j.Title,
			Location:  pickNonEmpty(j.Location.Name, "Remote"),
			Company:   board,
			Source:    job.SourceGreenhouse,
			UpdatedAt: parseISOOrNil(j.UpdatedAt),
			URL:       j.AbsoluteURL,
			FetchedAt: fetchedAt,
		})
	}
	return records, nil
}

func parseISOOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
