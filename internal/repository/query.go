package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Operator is a comparison applied by a Predicate.
type Operator string

// Supported predicate operators.
const (
	OpEqual          Operator = "="
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
)

// Predicate constrains one column. Every predicate in a Query must hold.
type Predicate struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// Equal matches rows whose column equals value exactly.
func Equal(column string, value interface{}) Predicate {
	return Predicate{Column: column, Operator: OpEqual, Value: value}
}

// OnOrAfter matches rows whose column is at or after t.
func OnOrAfter(column string, t time.Time) Predicate {
	return Predicate{Column: column, Operator: OpGreaterOrEqual, Value: t}
}

// Before matches rows whose column is strictly before t.
func Before(column string, t time.Time) Predicate {
	return Predicate{Column: column, Operator: OpLess, Value: t}
}

// Within restricts column to the half-open window [start, end). A zero bound is open.
func Within(column string, start, end time.Time) []Predicate {
	predicates := make([]Predicate, 0, 2)
	if !start.IsZero() {
		predicates = append(predicates, OnOrAfter(column, start))
	}
	if !end.IsZero() {
		predicates = append(predicates, Before(column, end))
	}
	return predicates
}

// Window is a half-open time range. A zero bound is open.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) predicates(column string) []Predicate {
	return Within(column, w.Start, w.End)
}

func (p Predicate) expression() clause.Expression {
	column := clause.Column{Name: p.Column}
	switch p.Operator {
	case OpGreaterOrEqual:
		return clause.Gte{Column: column, Value: p.Value}
	case OpLess:
		return clause.Lt{Column: column, Value: p.Value}
	default:
		return clause.Eq{Column: column, Value: p.Value}
	}
}

// Order sorts results by one column.
type Order struct {
	Column string
	Desc   bool
}

// Query is the single description every list operation is compiled from.
type Query struct {
	Predicates    []Predicate
	Search        string
	SearchColumns []string
	Order         []Order
}

// Where applies predicates (AND) and the optional search term (OR across SearchColumns).
func (q Query) Where(db *gorm.DB) *gorm.DB {
	for _, predicate := range q.Predicates {
		db = db.Where(predicate.expression())
	}

	term := strings.TrimSpace(q.Search)
	if term == "" || len(q.SearchColumns) == 0 {
		return db
	}

	pattern := "%" + strings.ToLower(term) + "%"
	matches := make([]clause.Expression, 0, len(q.SearchColumns))
	for _, column := range q.SearchColumns {
		matches = append(matches, clause.Expr{
			SQL:  "LOWER(?) LIKE ?",
			Vars: []interface{}{clause.Column{Name: column}, pattern},
		})
	}
	return db.Where(clause.Or(matches...))
}

func (q Query) sorted(db *gorm.DB) *gorm.DB {
	for _, order := range q.Order {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: order.Column}, Desc: order.Desc})
	}
	return db
}

// newestFirst orders by creation time with the identifier breaking ties.
func newestFirst() []Order {
	return []Order{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}}
}
