package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationMeta computes TotalPages as ceil(total / limit).
func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	meta := PaginationMeta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return meta
}

// PaginatedResponse is the envelope of paginated list endpoints.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CreatedResponse acknowledges an insert.
type CreatedResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success,omitempty"`
}

// SuccessResponse acknowledges a mutation without a body.
type SuccessResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated,omitempty"`
}

// ListRequest carries the pagination and search parameters shared by list endpoints.
// Paged is false when the caller sent neither page nor limit.
type ListRequest struct {
	Page   int
	Limit  int
	Search string
	Paged  bool
}

// FlexFloat accepts a JSON number or a numeric string. Anything else decodes to zero.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(flexNumber(data))
	return nil
}

// FlexInt accepts a JSON number or a numeric string, truncating fractions.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt(int64(flexNumber(data)))
	return nil
}

func flexNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return 0
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
