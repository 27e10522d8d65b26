package repository

// Pagination defaults applied when callers omit or send invalid values.
const (
	DefaultPage     = 1
	DefaultPageSize = 10

	maxPage     = 1 << 30
	maxPageSize = 1 << 20
)

// ListOptions carries pagination and free-text search for a list call.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	// All returns every matching row and ignores Page and PageSize.
	All bool
}

// Normalized coerces Page and PageSize to their defaults when below range and clamps
// them from above so the row offset cannot overflow.
func (o ListOptions) Normalized() ListOptions {
	if o.All {
		return o
	}
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Page > maxPage {
		o.Page = maxPage
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
	return o
}

func (o ListOptions) offset() int {
	return (o.Page - 1) * o.PageSize
}

// Page is the result of a list call. Total counts every matching row regardless of
// pagination. When the read failed, Items is empty, Total is zero and Degraded holds
// the cause.
type Page[T any] struct {
	Items    []T
	Total    int64
	Degraded error
}

// IsDegraded reports whether the page was substituted for a failed read.
func (p Page[T]) IsDegraded() bool {
	return p.Degraded != nil
}

func degradedPage[T any](err error) Page[T] {
	return Page[T]{Items: []T{}, Total: 0, Degraded: err}
}
