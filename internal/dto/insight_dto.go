package dto

import "github.com/noah-isme/islandgo-api/internal/insight"

// AI request types accepted by the AI endpoint.
const (
	AIRequestRecruitCreators = "recruit-creators"
	AIRequestAnalyzeGaps     = "analyze-gaps"
	AIRequestGenerateViral   = "generate-viral"
)

// AIRequest dispatches one AI operation.
type AIRequest struct {
	Type string         `json:"type"`
	Data *AIRequestData `json:"data"`
}

// AIRequestData holds the inputs of every AI operation.
type AIRequestData struct {
	City     string   `json:"city"`
	UserName string   `json:"userName"`
	Cities   []string `json:"cities"`
	Cuisine  string   `json:"cuisine"`
}

// CreatorsResponse is returned by recruit-creators.
type CreatorsResponse struct {
	Creators []insight.CreatorProfile `json:"creators"`
}

// GapsResponse is returned by analyze-gaps.
type GapsResponse struct {
	Gaps []insight.CityGap `json:"gaps"`
}

// CreatorListRequest filters stored creators.
type CreatorListRequest struct {
	ListRequest
	City string
}

// GapListRequest filters stored gaps.
type GapListRequest struct {
	ListRequest
	Priority string
}

// GapCampaignRequest toggles the campaign flag for every gap of a city.
type GapCampaignRequest struct {
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
	Active *bool  `json:"active" validate:"required"`
}

// Export types accepted by the data export endpoint.
const (
	ExportCreators = "creators"
	ExportGaps     = "gaps"
	ExportViral    = "viral"
	ExportAll      = "all"
)

// ExportRequest selects the records to export. The window applies only when both dates are set.
type ExportRequest struct {
	Type      string
	StartDate string
	EndDate   string
}
