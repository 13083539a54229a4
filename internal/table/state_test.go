package table

import (
	"net/url"
	"testing"
)

func TestApplyQuery(t *testing.T) {
	t.Run("SortAndFilters", func(t *testing.T) {
		m := New(GameColumns(), testGames())
		m.ApplyQuery(url.Values{
			"sort":            {"title"},
			"dir":             {"desc"},
			"f.title":         {"zel"},
			"f.genre":         {"Puzzle", "Sports"},
			"f.release.start": {"1987-01-01"},
			"f.release.end":   {"1988-12-31"},
		})

		if m.Sort() != (SortState{Key: "title", Dir: SortDesc}) {
			t.Errorf("Sort() = %+v", m.Sort())
		}
		if f, ok := m.Filter("title").(TextSearch); !ok || f.Query != "zel" {
			t.Errorf("title filter = %+v", m.Filter("title"))
		}
		if f, ok := m.Filter("genre").(SetMembership); !ok || len(f.Values) != 2 {
			t.Errorf("genre filter = %+v", m.Filter("genre"))
		}
		if f, ok := m.Filter("release").(DateRange); !ok || f.Start.IsZero() || f.End.IsZero() {
			t.Errorf("release filter = %+v", m.Filter("release"))
		}
	})

	t.Run("InvalidDirDefaultsToAsc", func(t *testing.T) {
		m := New(GameColumns(), testGames())
		m.ApplyQuery(url.Values{"sort": {"title"}, "dir": {"sideways"}})
		if m.Sort().Dir != SortAsc {
			t.Errorf("Dir = %q, want asc", m.Sort().Dir)
		}
	})

	t.Run("UnknownColumnIgnored", func(t *testing.T) {
		m := New(GameColumns(), testGames())
		m.ApplyQuery(url.Values{"sort": {"bogus"}, "f.bogus": {"x"}})
		if m.Sort() != (SortState{}) {
			t.Errorf("Sort() = %+v, want none", m.Sort())
		}
	})

	t.Run("MalformedDatesIgnored", func(t *testing.T) {
		m := New(GameColumns(), testGames())
		m.ApplyQuery(url.Values{"f.release.start": {"whenever"}})
		if m.Filter("release") != nil {
			t.Errorf("release filter = %+v, want none", m.Filter("release"))
		}
	})

	t.Run("OpenEndedRange", func(t *testing.T) {
		m := New(GameColumns(), testGames())
		m.ApplyQuery(url.Values{"f.release.start": {"1988-01-01"}})
		f, ok := m.Filter("release").(DateRange)
		if !ok || f.Start.IsZero() || !f.End.IsZero() {
			t.Errorf("release filter = %+v, want open end", m.Filter("release"))
		}
	})
}

func TestEncodeQueryRoundTrip(t *testing.T) {
	m := New(GameColumns(), testGames())
	m.SetSort("release", SortAsc)
	m.SetFilter("title", TextSearch{Query: "zel"})
	m.SetFilter("genre", SetMembership{Values: []string{"Puzzle", "Sports"}})
	m.SetFilter("release", DateRange{Start: date("1987-01-01")})

	restored := New(GameColumns(), testGames())
	restored.ApplyQuery(m.EncodeQuery())

	if restored.Sort() != m.Sort() {
		t.Errorf("sort: got %+v, want %+v", restored.Sort(), m.Sort())
	}
	if got := titles(restored.Rows()); !equal(got, titles(m.Rows())) {
		t.Errorf("rows after round trip: got %v, want %v", got, titles(m.Rows()))
	}
}

func TestQueryString(t *testing.T) {
	m := New(GameColumns(), testGames())
	if got := m.QueryString(); got != "" {
		t.Errorf("QueryString() = %q, want empty for default state", got)
	}
	m.SetSort("title", SortAsc)
	got := m.QueryString()
	if got == "" || got[0] != '?' {
		t.Errorf("QueryString() = %q, want leading ?", got)
	}
}
