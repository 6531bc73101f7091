package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

type LeverFetcher struct {
	client  *http.Client
	apiBase string
}

func NewLeverFetcher() *LeverFetcher {
	return &LeverFetcher{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: "https://api.lever.co/v0/postings",
	}
}

type leverPosting struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	CreatedAt   int64  `json:"createdAt"` // epoch milliseconds
	HostedURL   string `json:"hostedUrl"`
	Description string `json:"description"` // HTML
	Categories  struct {
		Location string `json:"location"`
		Team     string `json:"team"`
	} `json:"categories"`
}

func (f *LeverFetcher) Source() string {
	return job.SourceLever
}

func (f *LeverFetcher) Fetch(ctx context.Context, companies []string) ([]job.Record, error) {
	return fetchAll(ctx, f.Source(), companies, f.fetchCompany)
}

func (f *LeverFetcher) fetchCompany(ctx context.Context, company string) ([]job.Record, error) {
	url := fmt.Sprintf("%s/%s", strings.TrimRight(f.apiBase, "/"), company)
	body, err := httpGetWithRetry(ctx, f.client, url, 3)
	if err != nil {
		return nil, err
	}

	var postings []leverPosting
	if err := json.Unmarshal(body, &postings); err != nil {
		return nil, fmt.Errorf("decode lever payload: %w", err)
	}

	fetchedAt := time.Now()
	records := make([]job.Record, 0, len(postings))
	for _, p := range postings {
		if p.ID == "" {
			continue
		}
		records = append(records, job.Record{
			ID:          p.ID,
			Title:       p.Text,
			Location:    pickNonEmpty(p.Categories.Location, "Remote"),
			Company:     company,
			Source:      job.SourceLever,
			Team:        pickNonEmpty(p.Categories.Team, "Not specified"),
			UpdatedAt:   millisOrNil(p.CreatedAt),
			URL:         p.HostedURL,
			Description: htmlToText(p.Description),
			FetchedAt:   fetchedAt,
		})
	}
	return records, nil
}

func millisOrNil(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}

// htmlToText flattens a posting's HTML description into plain text for
// keyword and skill matching.
func htmlToText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.TrimSpace(doc.Text())
}
