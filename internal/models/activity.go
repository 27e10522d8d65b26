package models

// Activity types recorded in the recent activity feed.
const (
	ActivityCreatorRecruitment = "creator-recruitment"
	ActivityCampaignLaunch     = "campaign-launch"
	ActivityViralContent       = "viral-content"
)

// Activity is a recent user-facing event. Activities live in the cache, not in SQL.
// Timestamp is in Unix milliseconds.
type Activity struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Timestamp   int64                  `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
