package schema

import "github.com/noah-isme/islandgo-api/internal/models"

// Kind names one resource type held in its own table.
type Kind string

// Resource kinds served by the API.
const (
	KindCreators        Kind = "creators"
	KindGaps            Kind = "gaps"
	KindViralContent    Kind = "viral_content"
	KindCampaigns       Kind = "campaigns"
	KindBudgets         Kind = "budgets"
	KindEngagement      Kind = "engagement_metrics"
	KindAlerts          Kind = "alerts"
	KindConversions     Kind = "conversions"
	KindSocialMedia     Kind = "social_media"
	KindCompetitors     Kind = "competitors"
	KindContentCalendar Kind = "content_calendar"
)

// Definition describes the physical shape of a kind and the columns its text search scans.
type Definition struct {
	Kind          Kind
	Model         interface{}
	SearchColumns []string
}

var definitions = []Definition{
	{Kind: KindCreators, Model: &models.Creator{}, SearchColumns: []string{"name", "instagram_handle"}},
	{Kind: KindGaps, Model: &models.Gap{}, SearchColumns: []string{"city", "state"}},
	{Kind: KindViralContent, Model: &models.ViralContent{}, SearchColumns: []string{"user_name", "cuisine"}},
	{Kind: KindCampaigns, Model: &models.Campaign{}, SearchColumns: []string{"name", "platform"}},
	{Kind: KindBudgets, Model: &models.Budget{}, SearchColumns: []string{"category"}},
	{Kind: KindEngagement, Model: &models.EngagementMetric{}, SearchColumns: []string{"content_id", "content_type"}},
	{Kind: KindAlerts, Model: &models.Alert{}, SearchColumns: []string{"type", "message"}},
	{Kind: KindConversions, Model: &models.Conversion{}, SearchColumns: []string{"stage", "user_id"}},
	{Kind: KindSocialMedia, Model: &models.SocialMediaPost{}, SearchColumns: []string{"post_id", "content_type"}},
	{Kind: KindCompetitors, Model: &models.Competitor{}, SearchColumns: []string{"competitor_name", "metric"}},
	{Kind: KindContentCalendar, Model: &models.ContentCalendarItem{}, SearchColumns: []string{"title", "content_type"}},
}

// Definitions returns every registered kind in declaration order.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Lookup returns the definition registered for kind.
func Lookup(kind Kind) (Definition, bool) {
	for _, def := range definitions {
		if def.Kind == kind {
			return def, true
		}
	}
	return Definition{}, false
}

// MustLookup is Lookup for kinds known at compile time.
func MustLookup(kind Kind) Definition {
	def, ok := Lookup(kind)
	if !ok {
		panic("schema: unknown kind " + string(kind))
	}
	return def
}

// Models returns the model values for every kind, suitable for AutoMigrate.
func Models() []interface{} {
	result := make([]interface{}, 0, len(definitions))
	for _, def := range definitions {
		result = append(result, def.Model)
	}
	return result
}
