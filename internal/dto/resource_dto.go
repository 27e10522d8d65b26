package dto

// CampaignRequest is the payload for creating a campaign.
type CampaignRequest struct {
	Name        string    `json:"name" validate:"required"`
	Status      string    `json:"status"`
	Budget      FlexFloat `json:"budget" validate:"required"`
	Spent       FlexFloat `json:"spent"`
	StartDate   string    `json:"start_date" validate:"required"`
	EndDate     string    `json:"end_date" validate:"required"`
	Impressions FlexInt   `json:"impressions"`
	Clicks      FlexInt   `json:"clicks"`
	Conversions FlexInt   `json:"conversions"`
	Revenue     FlexFloat `json:"revenue"`
	Platform    string    `json:"platform" validate:"required"`
}

// CampaignListRequest filters campaigns.
type CampaignListRequest struct {
	ListRequest
	Status   string
	Platform string
}

// BudgetRequest is the payload for creating a budget allocation.
type BudgetRequest struct {
	Category  string    `json:"category" validate:"required"`
	Allocated FlexFloat `json:"allocated" validate:"required"`
	Spent     FlexFloat `json:"spent"`
	Month     string    `json:"month" validate:"required"`
	Year      FlexInt   `json:"year" validate:"required"`
}

// BudgetListRequest filters budgets. Month is ignored without Year.
type BudgetListRequest struct {
	ListRequest
	Month string
	Year  int
}

// ConversionRequest is the payload for recording a conversion.
type ConversionRequest struct {
	CampaignID string    `json:"campaign_id"`
	Stage      string    `json:"stage" validate:"required"`
	UserID     string    `json:"user_id"`
	Value      FlexFloat `json:"value"`
	Date       string    `json:"date" validate:"required"`
}

// ConversionListRequest filters conversions.
type ConversionListRequest struct {
	ListRequest
	CampaignID string
}

// EngagementRequest is the payload for recording engagement metrics.
type EngagementRequest struct {
	ContentID      string    `json:"content_id"`
	ContentType    string    `json:"content_type"`
	Platform       string    `json:"platform"`
	Views          FlexInt   `json:"views"`
	Likes          FlexInt   `json:"likes"`
	Shares         FlexInt   `json:"shares"`
	Comments       FlexInt   `json:"comments"`
	EngagementRate FlexFloat `json:"engagement_rate"`
	Date           string    `json:"date" validate:"required"`
}

// SocialMediaRequest is the payload for recording a social media post.
type SocialMediaRequest struct {
	Platform       string    `json:"platform" validate:"required"`
	PostID         string    `json:"post_id"`
	ContentType    string    `json:"content_type"`
	Views          FlexInt   `json:"views"`
	Likes          FlexInt   `json:"likes"`
	Shares         FlexInt   `json:"shares"`
	Comments       FlexInt   `json:"comments"`
	Reach          FlexInt   `json:"reach"`
	Impressions    FlexInt   `json:"impressions"`
	EngagementRate FlexFloat `json:"engagement_rate"`
	Date           string    `json:"date" validate:"required"`
}

// MetricListRequest filters engagement and social media lists. Dates are raw query values.
type MetricListRequest struct {
	ListRequest
	Platform  string
	StartDate string
	EndDate   string
}

// CompetitorRequest is the payload for recording a competitor observation.
type CompetitorRequest struct {
	CompetitorName string    `json:"competitor_name" validate:"required"`
	Metric         string    `json:"metric" validate:"required"`
	Value          FlexFloat `json:"value"`
	Date           string    `json:"date" validate:"required"`
}

// CompetitorListRequest filters competitor observations.
type CompetitorListRequest struct {
	ListRequest
	CompetitorName string
	Metric         string
}

// AlertRequest is the payload for raising an alert.
type AlertRequest struct {
	Type         string    `json:"type" validate:"required"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message" validate:"required"`
	Threshold    FlexFloat `json:"threshold"`
	CurrentValue FlexFloat `json:"current_value"`
	Status       string    `json:"status"`
	ResolvedAt   string    `json:"resolved_at"`
}

// AlertStatusRequest changes the status of an alert.
type AlertStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AlertListRequest filters alerts.
type AlertListRequest struct {
	ListRequest
	Status   string
	Severity string
}

// ContentCalendarRequest is the payload for scheduling content.
type ContentCalendarRequest struct {
	Title         string `json:"title" validate:"required"`
	ContentType   string `json:"content_type"`
	Platform      string `json:"platform"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	Status        string `json:"status"`
	CreatorID     string `json:"creator_id"`
}

// ContentCalendarListRequest filters scheduled content.
type ContentCalendarListRequest struct {
	ListRequest
	Status    string
	StartDate string
	EndDate   string
}
