package dto

type OverviewResponse struct {
	TotalApplications int     `json:"total_applications"`
	LastSevenDays     int     `json:"last_7_days"`
	ResponseRate      float64 `json:"response_rate"`
	InterviewRate     float64 `json:"interview_rate"`
}

type StatusBreakdownResponse struct {
	ByStatus        map[string]int            `json:"by_status"`
	CompanyByStatus map[string]map[string]int `json:"company_by_status"`
}

type CompanyCountItem struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

type SourceAnalysisResponse struct {
	BySource             map[string]int     `json:"by_source"`
	ResponseRateBySource map[string]float64 `json:"response_rate_by_source"`
	TopCompanies         []CompanyCountItem `json:"top_companies"`
}

type DayCountItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ApplicationItem struct {
	JobID            string `json:"job_id"`
	Company          string `json:"company"`
	Title            string `json:"title"`
	Location         string `json:"location"`
	Source           string `json:"source"`
	AppliedAt        string `json:"applied_at"`
	Status           string `json:"status"`
	ResponseReceived bool   `json:"response_received"`
	Notes            string `json:"notes,omitempty"`
}
