package insight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/noah-isme/islandgo-api/internal/models"
)

// ErrNotArray is returned when a list response decodes to something other than an array.
var ErrNotArray = errors.New("response is not an array")

// Default values substituted for missing upstream fields.
const (
	DefaultCreatorName     = "Unknown"
	DefaultCreatorHandle   = "@unknown"
	DefaultFollowers       = "0"
	DefaultEngagementRate  = "0%"
	DefaultFitReason       = "Food content creator"
	DefaultInitial         = "XX"
	DefaultGapCity         = "Unknown"
	DefaultGapState        = "XX"
	DefaultCoverage        = 50
	DefaultMissingCategory = "General"
	DefaultBadgeName       = "Food Explorer"
	DefaultBadgeEmoji      = "🍽️"
	DefaultBadgeColor      = "from-orange-400 to-red-500"
)

const (
	minCoverage = 0
	maxCoverage = 100
)

// DecodeCreators maps a model response onto creator profiles.
func DecodeCreators(text string) ([]CreatorProfile, Defaults, error) {
	items, err := decodeArray(text)
	if err != nil {
		return nil, nil, err
	}

	var defaults Defaults
	creators := make([]CreatorProfile, 0, len(items))
	for i, item := range items {
		fields, _ := item.(map[string]interface{})
		pick := func(field, fallback string, keys ...string) string {
			if value, ok := firstText(fields, keys...); ok {
				return value
			}
			defaults.add(i, field)
			return fallback
		}

		name, hasName := firstText(fields, "name")
		initial, ok := firstText(fields, "initial")
		if !ok {
			defaults.add(i, "initial")
			initial = DefaultInitial
			if hasName {
				initial = initials(name)
			}
		}

		creators = append(creators, CreatorProfile{
			Name:            pick("name", DefaultCreatorName, "name"),
			InstagramHandle: pick("instagramHandle", DefaultCreatorHandle, "instagramHandle", "handle"),
			Followers:       pick("followers", DefaultFollowers, "followers"),
			EngagementRate:  pick("engagementRate", DefaultEngagementRate, "engagementRate"),
			FitReason:       pick("fitReason", DefaultFitReason, "fitReason", "fitDescription"),
			Initial:         initial,
		})
	}
	return creators, defaults, nil
}

// DecodeGaps maps a model response onto city gaps. Priority is always one of
// High, Medium or Low and MissingCategories is never empty.
func DecodeGaps(text string) ([]CityGap, Defaults, error) {
	items, err := decodeArray(text)
	if err != nil {
		return nil, nil, err
	}

	var defaults Defaults
	gaps := make([]CityGap, 0, len(items))
	for i, item := range items {
		fields, _ := item.(map[string]interface{})

		gap := CityGap{City: DefaultGapCity, State: DefaultGapState}
		if city, ok := firstText(fields, "city"); ok {
			gap.City = city
		} else {
			defaults.add(i, "city")
		}
		if state, ok := firstText(fields, "state"); ok {
			gap.State = state
		} else {
			defaults.add(i, "state")
		}

		coverage, ok := coverageValue(fields["coverage"])
		if !ok {
			defaults.add(i, "coverage")
			coverage = DefaultCoverage
		}
		gap.Coverage = coverage

		priority, _ := fields["priority"].(string)
		gap.Priority = models.NormalizePriority(priority)
		if gap.Priority != strings.TrimSpace(priority) {
			defaults.add(i, "priority")
		}

		categories, ok := categoryList(fields["missingCategories"])
		if !ok {
			defaults.add(i, "missingCategories")
			categories = []string{DefaultMissingCategory}
		}
		gap.MissingCategories = categories

		gaps = append(gaps, gap)
	}
	return gaps, defaults, nil
}

// DecodeViralContent maps a model response onto a caption and badges. A missing caption
// is replaced by a template naming cities; a missing or non-list badges field yields no
// badges.
func DecodeViralContent(text string, cities []string) (ViralContent, Defaults, error) {
	value, err := ExtractJSON(text)
	if err != nil {
		return ViralContent{}, nil, err
	}

	var defaults Defaults
	fields, _ := value.(map[string]interface{})

	content := ViralContent{Badges: []models.Badge{}}
	if caption, ok := firstText(fields, "caption"); ok {
		content.Caption = caption
	} else {
		defaults.add(-1, "caption")
		content.Caption = FallbackCaption(cities)
	}

	rawBadges, ok := fields["badges"].([]interface{})
	if !ok {
		defaults.add(-1, "badges")
		return content, defaults, nil
	}

	for i, raw := range rawBadges {
		badge, _ := raw.(map[string]interface{})
		pick := func(field, fallback string) string {
			if value, ok := firstText(badge, field); ok {
				return value
			}
			defaults.add(i, "badges."+field)
			return fallback
		}
		content.Badges = append(content.Badges, models.Badge{
			Name:  pick("name", DefaultBadgeName),
			Emoji: pick("emoji", DefaultBadgeEmoji),
			Color: pick("color", DefaultBadgeColor),
		})
	}
	return content, defaults, nil
}

// FallbackCaption is the caption used when the model returns none.
func FallbackCaption(cities []string) string {
	return fmt.Sprintf("🌍 Just unlocked my Food Explorer Passport! 🎉\n\nI've been on an incredible culinary journey through %s!", cityList(cities))
}

func cityList(cities []string) string {
	if len(cities) == 0 {
		return "amazing places"
	}
	return strings.Join(cities, ", ")
}

func decodeArray(text string) ([]interface{}, error) {
	value, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, ErrNotArray
	}
	return items, nil
}

// firstText returns the first key holding a non-empty scalar, rendered as text.
func firstText(fields map[string]interface{}, keys ...string) (string, bool) {
	for _, key := range keys {
		if text, ok := scalarText(fields[key]); ok && text != "" {
			return text, true
		}
	}
	return "", false
}

func scalarText(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// initials takes the upper-cased first letter of every word in name.
func initials(name string) string {
	builder := strings.Builder{}
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			builder.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	if builder.Len() == 0 {
		return DefaultInitial
	}
	return builder.String()
}

// coverageValue accepts a number or a string starting with an integer. Coverage is a
// percentage, so anything outside 0..100 is treated as malformed.
func coverageValue(value interface{}) (int, bool) {
	var coverage float64
	switch v := value.(type) {
	case float64:
		coverage = v
	case string:
		trimmed := strings.TrimSpace(v)
		end := 0
		for end < len(trimmed) && (trimmed[end] >= '0' && trimmed[end] <= '9' || end == 0 && (trimmed[end] == '-' || trimmed[end] == '+')) {
			end++
		}
		parsed, err := strconv.Atoi(trimmed[:end])
		if err != nil {
			return 0, false
		}
		coverage = float64(parsed)
	default:
		return 0, false
	}

	if math.IsNaN(coverage) || coverage < minCoverage || coverage > maxCoverage {
		return 0, false
	}
	return int(coverage), true
}

// categoryList wraps a bare value in a list and drops empty entries.
func categoryList(value interface{}) ([]string, bool) {
	var raw []interface{}
	switch v := value.(type) {
	case []interface{}:
		raw = v
	default:
		raw = []interface{}{v}
	}

	categories := make([]string, 0, len(raw))
	for _, item := range raw {
		if text, ok := scalarText(item); ok && text != "" {
			categories = append(categories, text)
		}
	}
	if len(categories) == 0 {
		return nil, false
	}
	return categories, true
}
