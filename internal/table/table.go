// Package table provides the view model behind the games table:
// declarative column definitions driving sorting, filtering and the
// derived filter option lists. The model never mutates its source data
// and its state changes only through explicit calls from the UI layer.
package table

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vgarchive/server/internal/catalog"
)

// SortDir is a sort direction. The empty string means no active sort.
type SortDir string

const (
	SortNone SortDir = ""
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// SortState is the single active sort column and its direction.
type SortState struct {
	Key string
	Dir SortDir
}

// Column describes one displayable column: how to read its canonical
// string value from a game, which filter variant it accepts, and an
// optional display-label override map for its filter options.
type Column struct {
	Key    string
	Title  string
	Value  func(catalog.Game) string
	Labels map[string]string
	Filter FilterKind

	// Responsive names the smallest breakpoint the column is shown at
	// ("" always, "md", "lg"). Rendering detail only, the model ignores it.
	Responsive string
}

// Option is one derived filter choice: a display label and the raw
// value it stands for.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Model holds a fixed array of games plus the current sort and filter
// state. State persists across re-renders of the same dataset; only
// CycleSort, SetFilter and ClearFilter mutate it.
type Model struct {
	columns []Column
	games   []catalog.Game
	sort    SortState
	filters map[string]Filter
	coll    *collate.Collator
}

// New creates a model over a fixed record array.
func New(columns []Column, games []catalog.Game) *Model {
	return &Model{
		columns: columns,
		games:   games,
		filters: make(map[string]Filter),
		coll:    collate.New(language.English),
	}
}

// Columns returns the column definitions in display order.
func (m *Model) Columns() []Column { return m.columns }

// Sort returns the current sort state.
func (m *Model) Sort() SortState { return m.sort }

// Filter returns the active filter for a column, or nil.
func (m *Model) Filter(key string) Filter { return m.filters[key] }

// column finds a column definition by key.
func (m *Model) column(key string) (Column, bool) {
	for _, c := range m.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// CycleSort advances the sort state for a column through
// none -> ascending -> descending -> none. Selecting a different column
// replaces the active sort and starts at ascending.
func (m *Model) CycleSort(key string) {
	if _, ok := m.column(key); !ok {
		return
	}
	if m.sort.Key != key {
		m.sort = SortState{Key: key, Dir: SortAsc}
		return
	}
	switch m.sort.Dir {
	case SortAsc:
		m.sort.Dir = SortDesc
	case SortDesc:
		m.sort = SortState{}
	default:
		m.sort = SortState{Key: key, Dir: SortAsc}
	}
}

// SetSort sets the sort state directly, for state restored from a URL.
func (m *Model) SetSort(key string, dir SortDir) {
	if dir == SortNone {
		m.sort = SortState{}
		return
	}
	if _, ok := m.column(key); !ok {
		return
	}
	m.sort = SortState{Key: key, Dir: dir}
}

// SetFilter activates a filter on a column. Filters of the wrong
// variant for the column, and empty filters, clear instead.
func (m *Model) SetFilter(key string, f Filter) {
	col, ok := m.column(key)
	if !ok {
		return
	}
	if f == nil || f.Empty() || !accepts(col.Filter, f) {
		delete(m.filters, key)
		return
	}
	m.filters[key] = f
}

// ClearFilter removes the active filter from a column.
func (m *Model) ClearFilter(key string) {
	delete(m.filters, key)
}

// accepts reports whether a filter value matches the column's declared
// variant.
func accepts(kind FilterKind, f Filter) bool {
	switch f.(type) {
	case TextSearch:
		return kind == FilterTextSearch
	case SetMembership:
		return kind == FilterSetMembership
	case DateRange:
		return kind == FilterDateRange
	}
	return false
}

// Options derives the distinct filter choices for a categorical column:
// first-seen order, de-duplicated by raw value, display label from the
// column's override map else the raw value itself.
func (m *Model) Options(key string) []Option {
	col, ok := m.column(key)
	if !ok || col.Filter != FilterSetMembership {
		return nil
	}

	seen := make(map[string]bool)
	var opts []Option
	for _, g := range m.games {
		value := col.Value(g)
		if seen[value] {
			continue
		}
		seen[value] = true

		label := value
		if col.Labels != nil && col.Labels[value] != "" {
			label = col.Labels[value]
		}
		opts = append(opts, Option{Label: label, Value: value})
	}
	return opts
}

// Rows applies the active filters and sort and returns the visible
// records. The source array is never reordered or mutated.
func (m *Model) Rows() []catalog.Game {
	rows := make([]catalog.Game, 0, len(m.games))

	for _, g := range m.games {
		keep := true
		for key, f := range m.filters {
			col, ok := m.column(key)
			if !ok {
				continue
			}
			if !matches(f, col.Value(g)) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, g)
		}
	}

	if m.sort.Dir != SortNone {
		if col, ok := m.column(m.sort.Key); ok {
			desc := m.sort.Dir == SortDesc
			sort.SliceStable(rows, func(i, j int) bool {
				// Locale-aware comparison over canonical string values.
				// Dates and numbers compare as strings on purpose.
				c := m.coll.CompareString(col.Value(rows[i]), col.Value(rows[j]))
				if desc {
					return c > 0
				}
				return c < 0
			})
		}
	}

	return rows
}
