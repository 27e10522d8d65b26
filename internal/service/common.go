package service

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/observability"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

var (
	// ErrInvalidDate indicates a date value that could not be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrAlertNotFound indicates the alert does not exist.
	ErrAlertNotFound = errors.New("alert not found")
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const dayLayout = "2006-01-02"

// parseDate accepts RFC3339 timestamps and plain calendar days. Values without a
// zone are read as UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// parseWindow turns optional query dates into a half-open range. A plain day as the
// end bound includes that whole day.
func parseWindow(startValue, endValue string) (time.Time, time.Time, error) {
	var start, end time.Time

	if strings.TrimSpace(startValue) != "" {
		parsed, err := parseDate(startValue)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	if trimmed := strings.TrimSpace(endValue); trimmed != "" {
		parsed, err := parseDate(trimmed)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if _, dayErr := time.Parse(dayLayout, trimmed); dayErr == nil {
			parsed = parsed.AddDate(0, 0, 1)
		}
		end = parsed
	}

	return start, end, nil
}

// listOptions converts request pagination. Unpaged requests return every row unless
// paged is forced.
func listOptions(req dto.ListRequest, paged bool) repository.ListOptions {
	return repository.ListOptions{
		Page:     req.Page,
		PageSize: req.Limit,
		Search:   strings.TrimSpace(req.Search),
		All:      !paged && !req.Paged,
	}.Normalized()
}

func paginated[T any](page repository.Page[T], opts repository.ListOptions, kind schema.Kind) dto.PaginatedResponse[T] {
	return dto.PaginatedResponse[T]{
		Data:       items(page, kind),
		Pagination: dto.NewPaginationMeta(opts.Page, opts.PageSize, page.Total),
	}
}

// items unwraps a page, counting substituted reads.
func items[T any](page repository.Page[T], kind schema.Kind) []T {
	if page.IsDegraded() {
		observability.DegradedReads().WithLabelValues(string(kind)).Inc()
	}
	if page.Items == nil {
		return []T{}
	}
	return page.Items
}

type textCleaner struct {
	policy *bluemonday.Policy
}

func newTextCleaner() textCleaner {
	return textCleaner{policy: bluemonday.StrictPolicy()}
}

// clean strips markup and returns plain text.
func (t textCleaner) clean(value string) string {
	return strings.TrimSpace(html.UnescapeString(t.policy.Sanitize(value)))
}
