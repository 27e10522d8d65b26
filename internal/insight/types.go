package insight

import "github.com/noah-isme/islandgo-api/internal/models"

// CreatorProfile is a food content creator suggested for a city.
type CreatorProfile struct {
	Name            string `json:"name"`
	InstagramHandle string `json:"instagramHandle"`
	Followers       string `json:"followers"`
	EngagementRate  string `json:"engagementRate"`
	FitReason       string `json:"fitReason"`
	Initial         string `json:"initial"`
}

// CityGap is the content coverage of one city.
type CityGap struct {
	City              string   `json:"city"`
	State             string   `json:"state"`
	Coverage          int      `json:"coverage"`
	Priority          string   `json:"priority"`
	MissingCategories []string `json:"missingCategories"`
}

// ViralContent is a generated caption with its achievement badges.
type ViralContent struct {
	Caption string         `json:"caption"`
	Badges  []models.Badge `json:"badges"`
}

// AppliedDefault records one field that was missing or malformed upstream and
// replaced by its default. Index is -1 for top level fields.
type AppliedDefault struct {
	Index int
	Field string
}

// Defaults lists every substitution a decode made.
type Defaults []AppliedDefault

func (d *Defaults) add(index int, field string) {
	*d = append(*d, AppliedDefault{Index: index, Field: field})
}

// Fields returns the distinct field names that received defaults.
func (d Defaults) Fields() []string {
	seen := make(map[string]struct{}, len(d))
	fields := make([]string, 0, len(d))
	for _, applied := range d {
		if _, ok := seen[applied.Field]; ok {
			continue
		}
		seen[applied.Field] = struct{}{}
		fields = append(fields, applied.Field)
	}
	return fields
}
