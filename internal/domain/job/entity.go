package job

import (
	"strings"
	"time"
)

const (
	SourceLever      = "lever"
	SourceGreenhouse = "greenhouse"
)

// Record is the canonical shape of one fetched job posting, normalized
// from whatever field names the source platform uses.
type Record struct {
	ID          string
	Title       string
	Location    string
	Company     string
	Source      string
	Team        string
	UpdatedAt   *time.Time
	URL         string
	Description string
	FetchedAt   time.Time

	// RelevanceScore is attached during ranking only; it is never
	// persisted in feed snapshots.
	RelevanceScore float64
}

// IsRemote reports whether the posting location carries the "Remote"
// sentinel anywhere in it.
func (r Record) IsRemote() bool {
	return strings.Contains(strings.ToLower(r.Location), "remote")
}
