package table

// filters.go defines the closed set of per-column filter variants.
//
// Each variant carries its own state shape and predicate; columns select
// a variant statically through their FilterKind, and match dispatches on
// the concrete type. There is no runtime lookup by name.

import (
	"strings"
	"time"

	"github.com/vgarchive/server/internal/catalog"
)

// FilterKind declares which filter variant a column accepts.
type FilterKind int

const (
	FilterNone          FilterKind = iota // column is not filterable
	FilterTextSearch                      // case-insensitive substring
	FilterSetMembership                   // membership among derived distinct values
	FilterDateRange                       // inclusive calendar interval
)

// Filter is an active filter on a single column. The implementations
// are exactly TextSearch, SetMembership and DateRange.
type Filter interface {
	isFilter()
	// Empty reports whether the filter is a no-op and should be treated
	// as cleared.
	Empty() bool
}

// TextSearch matches rows whose column value contains the query,
// case-insensitively.
type TextSearch struct {
	Query string
}

// SetMembership matches rows whose raw column value is one of the
// selected values.
type SetMembership struct {
	Values []string
}

// DateRange matches rows whose column value is a date falling inside
// the inclusive interval [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (TextSearch) isFilter()    {}
func (SetMembership) isFilter() {}
func (DateRange) isFilter()     {}

func (f TextSearch) Empty() bool    { return strings.TrimSpace(f.Query) == "" }
func (f SetMembership) Empty() bool { return len(f.Values) == 0 }
func (f DateRange) Empty() bool     { return f.Start.IsZero() && f.End.IsZero() }

// matches applies a filter to one column value.
func matches(f Filter, value string) bool {
	switch f := f.(type) {
	case TextSearch:
		return strings.Contains(strings.ToLower(value), strings.ToLower(f.Query))
	case SetMembership:
		for _, v := range f.Values {
			if v == value {
				return true
			}
		}
		return false
	case DateRange:
		d, ok := catalog.ParseDate(value)
		if !ok {
			return false
		}
		if !f.Start.IsZero() && d.Before(f.Start) {
			return false
		}
		if !f.End.IsZero() && d.After(f.End) {
			return false
		}
		return true
	default:
		return true
	}
}
