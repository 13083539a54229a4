package table

// state.go round-trips the model's sort/filter state through URL query
// parameters so HTMX partial renders keep the table state without any
// server-side storage per viewer.
//
// Encoding:
//
//	sort=title&dir=asc          active sort column and direction
//	f.title=zel                 text search on the title column
//	f.genre=Puzzle&f.genre=Golf set membership, repeated values
//	f.release.start=2000-01-01  date range bounds, inclusive
//	f.release.end=2000-12-31

import (
	"net/url"
	"strings"

	"github.com/vgarchive/server/internal/catalog"
)

// ApplyQuery restores sort and filter state from query parameters.
// Unknown columns and malformed values are ignored.
func (m *Model) ApplyQuery(values url.Values) {
	if key := values.Get("sort"); key != "" {
		dir := SortDir(values.Get("dir"))
		if dir != SortAsc && dir != SortDesc {
			dir = SortAsc
		}
		m.SetSort(key, dir)
	}

	for _, col := range m.columns {
		switch col.Filter {
		case FilterTextSearch:
			if q := values.Get("f." + col.Key); q != "" {
				m.SetFilter(col.Key, TextSearch{Query: q})
			}
		case FilterSetMembership:
			if vs := values["f."+col.Key]; len(vs) > 0 {
				m.SetFilter(col.Key, SetMembership{Values: vs})
			}
		case FilterDateRange:
			start, startOK := catalog.ParseDate(values.Get("f." + col.Key + ".start"))
			end, endOK := catalog.ParseDate(values.Get("f." + col.Key + ".end"))
			if startOK || endOK {
				f := DateRange{}
				if startOK {
					f.Start = start
				}
				if endOK {
					f.End = end
				}
				m.SetFilter(col.Key, f)
			}
		}
	}
}

// EncodeQuery serializes the current sort and filter state back to
// query parameters, the inverse of ApplyQuery.
func (m *Model) EncodeQuery() url.Values {
	values := url.Values{}

	if m.sort.Dir != SortNone {
		values.Set("sort", m.sort.Key)
		values.Set("dir", string(m.sort.Dir))
	}

	for key, f := range m.filters {
		switch f := f.(type) {
		case TextSearch:
			values.Set("f."+key, f.Query)
		case SetMembership:
			for _, v := range f.Values {
				values.Add("f."+key, v)
			}
		case DateRange:
			if !f.Start.IsZero() {
				values.Set("f."+key+".start", f.Start.Format(catalog.DateLayout))
			}
			if !f.End.IsZero() {
				values.Set("f."+key+".end", f.End.Format(catalog.DateLayout))
			}
		}
	}

	return values
}

// QueryString renders the encoded state with a leading "?", or "" when
// the state is entirely default. Convenience for link building.
func (m *Model) QueryString() string {
	encoded := m.EncodeQuery().Encode()
	if encoded == "" {
		return ""
	}
	var b strings.Builder
	b.WriteByte('?')
	b.WriteString(encoded)
	return b.String()
}
