package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

var ErrNoSnapshots = errors.New("no feed snapshots found")

var snapshotHeader = []string{
	"id", "title", "location", "company", "source", "team",
	"updated_at", "url", "description", "fetched_at",
}

// Store reads and writes timestamped feed snapshots under one directory.
// Each fetch run produces <source>_jobs_<yyyymmdd_hhmmss>.csv; the
// recommendation path always consumes the lexicographically latest file.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// WriteSnapshot persists one fetch batch and returns the snapshot path.
func (s *Store) WriteSnapshot(source string, records []job.Record) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}

	name := fmt.Sprintf("%s_jobs_%s.csv", source, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(snapshotHeader); err != nil {
		return "", fmt.Errorf("write snapshot header: %w", err)
	}
	for _, r := range records {
		updatedAt := ""
		if r.UpdatedAt != nil {
			updatedAt = r.UpdatedAt.Format(time.RFC3339)
		}
		row := []string{
			r.ID, r.Title, r.Location, r.Company, r.Source, r.Team,
			updatedAt, r.URL, r.Description, r.FetchedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write snapshot row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush snapshot: %w", err)
	}
	return path, nil
}

// Latest loads the most recent snapshot in the data directory.
func (s *Store) Latest() ([]job.Record, string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNoSnapshots
		}
		return nil, "", fmt.Errorf("read data directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, "", ErrNoSnapshots
	}
	// Names start with the source tag, so a plain name sort would order by
	// source before fetch time. Compare the timestamp suffix instead.
	sort.Slice(names, func(i, j int) bool {
		si, sj := snapshotStamp(names[i]), snapshotStamp(names[j])
		if si != sj {
			return si < sj
		}
		return names[i] < names[j]
	})

	path := filepath.Join(s.dir, names[len(names)-1])
	records, err := readSnapshot(path)
	if err != nil {
		return nil, "", err
	}
	return records, path, nil
}

// snapshotStamp extracts the yyyymmdd_hhmmss portion of a snapshot name.
func snapshotStamp(name string) string {
	base := strings.TrimSuffix(name, ".csv")
	if i := strings.LastIndex(base, "_jobs_"); i >= 0 {
		return base[i+len("_jobs_"):]
	}
	return base
}

func readSnapshot(path string) ([]job.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(snapshotHeader)

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	var records []job.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read snapshot row: %w", err)
		}
		rec := job.Record{
			ID:          row[0],
			Title:       row[1],
			Location:    row[2],
			Company:     row[3],
			Source:      row[4],
			Team:        row[5],
			UpdatedAt:   parseISOOrNil(row[6]),
			URL:         row[7],
			Description: row[8],
		}
		if t := parseISOOrNil(row[9]); t != nil {
			rec.FetchedAt = *t
		}
		records = append(records, rec)
	}
	return records, nil
}
