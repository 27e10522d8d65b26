package dto

import "github.com/noah-isme/islandgo-api/internal/models"

// MonthCount is the number of creators recruited in one month.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// CityCount is the number of gaps recorded for one city.
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// CategoryCount is the number of viral captions for one cuisine.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// AnalyticsResponse is the dashboard summary.
type AnalyticsResponse struct {
	Creators        int64           `json:"creators"`
	Gaps            int64           `json:"gaps"`
	Viral           int64           `json:"viral"`
	CreatorsByMonth []MonthCount    `json:"creatorsByMonth"`
	GapsByCity      []CityCount     `json:"gapsByCity"`
	ViralByCategory []CategoryCount `json:"viralByCategory"`
	CacheHit        bool            `json:"-"`
}

// ReportRequest selects a report type and time range.
type ReportRequest struct {
	Type      string `json:"type"`
	DateRange string `json:"dateRange"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Format    string `json:"format"`
}

// Report section keys.
const (
	ReportSectionCampaigns   = "campaigns"
	ReportSectionBudgets     = "budgets"
	ReportSectionEngagement  = "engagement"
	ReportSectionSocialMedia = "socialMedia"
)

// ReportResponse maps section keys to their rows. Only requested sections are present.
type ReportResponse map[string]interface{}

// TableStatus reports the contents of one table.
type TableStatus struct {
	Count  int64  `json:"count"`
	Sample string `json:"sample"`
}

// DatabaseStatusResponse is returned by the database check endpoint.
type DatabaseStatusResponse struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Error     string                 `json:"error,omitempty"`
	Tables    map[string]TableStatus `json:"tables,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ExportBundle is the "all" export: every insight kind in one document.
type ExportBundle struct {
	Creators []models.Creator      `json:"creators"`
	Gaps     []models.Gap          `json:"gaps"`
	Viral    []models.ViralContent `json:"viral"`
}
