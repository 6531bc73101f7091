package usecase

import (
	"sort"
	"time"

	"github.com/aspk74/auto-apply/internal/applog"
)

// LedgerReader loads the full application log. The dashboard reloads it
// per request so a running fetch/apply process is always reflected.
type LedgerReader interface {
	Load() ([]applog.Entry, error)
}

type Overview struct {
	TotalApplications int
	LastSevenDays     int
	ResponseRate      float64
	InterviewRate     float64
}

type StatusBreakdown struct {
	ByStatus        map[string]int
	CompanyByStatus map[string]map[string]int
}

type CompanyCount struct {
	Company string
	Count   int
}

type SourceAnalysis struct {
	BySource             map[string]int
	ResponseRateBySource map[string]float64
	TopCompanies         []CompanyCount
}

type DayCount struct {
	Date  string // yyyy-mm-dd
	Count int
}

// Analytics is the read-only view over the application ledger.
type Analytics struct {
	ledger LedgerReader
	now    func() time.Time
}

func NewAnalytics(ledger LedgerReader) *Analytics {
	return &Analytics{ledger: ledger, now: time.Now}
}

func (a *Analytics) Overview() (Overview, error) {
	entries, err := a.ledger.Load()
	if err != nil {
		return Overview{}, err
	}

	out := Overview{TotalApplications: len(entries)}
	if len(entries) == 0 {
		return out, nil
	}

	weekAgo := a.now().AddDate(0, 0, -7)
	responded := 0
	interviews := 0
	for _, e := range entries {
		if e.AppliedAt.After(weekAgo) {
			out.LastSevenDays++
		}
		if e.ResponseReceived {
			responded++
		}
		if e.Status == applog.StatusInterview {
			interviews++
		}
	}
	out.ResponseRate = percent(responded, len(entries))
	out.InterviewRate = percent(interviews, len(entries))
	return out, nil
}

func (a *Analytics) StatusBreakdown() (StatusBreakdown, error) {
	entries, err := a.ledger.Load()
	if err != nil {
		return StatusBreakdown{}, err
	}

	out := StatusBreakdown{
		ByStatus:        make(map[string]int),
		CompanyByStatus: make(map[string]map[string]int),
	}
	for _, e := range entries {
		out.ByStatus[e.Status]++
		if out.CompanyByStatus[e.Company] == nil {
			out.CompanyByStatus[e.Company] = make(map[string]int)
		}
		out.CompanyByStatus[e.Company][e.Status]++
	}
	return out, nil
}

func (a *Analytics) Sources() (SourceAnalysis, error) {
	entries, err := a.ledger.Load()
	if err != nil {
		return SourceAnalysis{}, err
	}

	out := SourceAnalysis{
		BySource:             make(map[string]int),
		ResponseRateBySource: make(map[string]float64),
	}
	respondedBySource := make(map[string]int)
	byCompany := make(map[string]int)
	for _, e := range entries {
		out.BySource[e.Source]++
		if e.ResponseReceived {
			respondedBySource[e.Source]++
		}
		byCompany[e.Company]++
	}
	for source, total := range out.BySource {
		out.ResponseRateBySource[source] = percent(respondedBySource[source], total)
	}

	companies := make([]CompanyCount, 0, len(byCompany))
	for company, count := range byCompany {
		companies = append(companies, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(companies, func(i, j int) bool {
		if companies[i].Count != companies[j].Count {
			return companies[i].Count > companies[j].Count
		}
		return companies[i].Company < companies[j].Company
	})
	if len(companies) > 10 {
		companies = companies[:10]
	}
	out.TopCompanies = companies
	return out, nil
}

// Timeline returns per-day application counts from the first to the last
// logged day, with gap days zero-filled.
func (a *Analytics) Timeline() ([]DayCount, error) {
	entries, err := a.ledger.Load()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	var first, last time.Time
	for _, e := range entries {
		day := e.AppliedAt.Local()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		counts[day.Format("2006-01-02")]++
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	var out []DayCount
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		out = append(out, DayCount{Date: key, Count: counts[key]})
	}
	return out, nil
}

// Recent returns the newest applications first.
func (a *Analytics) Recent(limit int) ([]applog.Entry, error) {
	entries, err := a.ledger.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AppliedAt.After(entries[j].AppliedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// All returns the full ledger, oldest first, for exports.
func (a *Analytics) All() ([]applog.Entry, error) {
	return a.ledger.Load()
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
