// Package applog owns the append-only ledger of submitted applications.
// The full log lives in one CSV file, is loaded into memory on open, and
// is rewritten wholesale through a temp-file-then-rename on every append
// so a crash mid-write can never corrupt committed entries.
package applog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var ErrDuplicateApplication = errors.New("application already logged for job id")

const (
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusRejected  = "rejected"
)

var header = []string{
	"job_id", "company", "title", "location", "source",
	"applied_at", "status", "response_received", "notes",
}

type Entry struct {
	JobID            string
	Company          string
	Title            string
	Location         string
	Source           string
	AppliedAt        time.Time
	Status           string
	ResponseReceived bool
	Notes            string
}

type Log struct {
	path    string
	entries []Entry
	byJobID map[string]struct{}
}

// Open loads the ledger at path. A missing file is an empty ledger; the
// file is created with its header on the first append.
func Open(path string) (*Log, error) {
	l := &Log{path: path, byJobID: make(map[string]struct{})}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("open application log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		return nil, fmt.Errorf("read application log header: %w", err)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read application log row: %w", err)
		}
		e, err := entryFromRow(row)
		if err != nil {
			return nil, err
		}
		l.entries = append(l.entries, e)
		l.byJobID[e.JobID] = struct{}{}
	}

	return l, nil
}

// HasApplied reports whether an application for jobID is already logged.
func (l *Log) HasApplied(jobID string) bool {
	_, ok := l.byJobID[jobID]
	return ok
}

// DailyCount returns the number of applications whose applied_at falls on
// the same calendar day as asOf, in asOf's location.
func (l *Log) DailyCount(asOf time.Time) int {
	y, m, d := asOf.Date()
	count := 0
	for _, e := range l.entries {
		ey, em, ed := e.AppliedAt.In(asOf.Location()).Date()
		if ey == y && em == m && ed == d {
			count++
		}
	}
	return count
}

// Append records one submitted application and persists the whole log.
// It fails with ErrDuplicateApplication when the job id is already logged.
// Append does not enforce the daily limit; callers check DailyCount first.
func (l *Log) Append(e Entry) error {
	if l.HasApplied(e.JobID) {
		return fmt.Errorf("%w: %s", ErrDuplicateApplication, e.JobID)
	}

	l.entries = append(l.entries, e)
	l.byJobID[e.JobID] = struct{}{}

	if err := l.persist(); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		delete(l.byJobID, e.JobID)
		return err
	}
	return nil
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) persist() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".application_log-*.csv")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	for _, e := range l.entries {
		if err := w.Write(e.row()); err != nil {
			return fmt.Errorf("write log row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush log: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp log: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace application log: %w", err)
	}
	return nil
}

func (e Entry) row() []string {
	return []string{
		e.JobID,
		e.Company,
		e.Title,
		e.Location,
		e.Source,
		e.AppliedAt.Format(time.RFC3339),
		e.Status,
		strconv.FormatBool(e.ResponseReceived),
		e.Notes,
	}
}

func entryFromRow(row []string) (Entry, error) {
	appliedAt, err := parseTimestamp(row[5])
	if err != nil {
		return Entry{}, fmt.Errorf("parse applied_at %q: %w", row[5], err)
	}
	responded, err := strconv.ParseBool(row[7])
	if err != nil {
		return Entry{}, fmt.Errorf("parse response_received %q: %w", row[7], err)
	}
	return Entry{
		JobID:            row[0],
		Company:          row[1],
		Title:            row[2],
		Location:         row[3],
		Source:           row[4],
		AppliedAt:        appliedAt,
		Status:           row[6],
		ResponseReceived: responded,
		Notes:            row[8],
	}, nil
}

// parseTimestamp accepts RFC 3339 and the zone-less ISO form older logs
// were written with.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999", s, time.Local)
}
