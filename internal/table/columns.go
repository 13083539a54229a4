package table

import "github.com/vgarchive/server/internal/catalog"

// GameColumns returns the column set for a console's games table.
// Enum-coded columns carry label override maps so filter options read
// as their human labels while matching on the raw codes.
func GameColumns() []Column {
	return []Column{
		{
			Key:    "title",
			Title:  "Title",
			Value:  func(g catalog.Game) string { return g.Title },
			Filter: FilterTextSearch,
		},
		{
			Key:        "genre",
			Title:      "Genre",
			Value:      func(g catalog.Game) string { return g.Genre },
			Labels:     catalog.GenreLabels,
			Filter:     FilterSetMembership,
			Responsive: "md",
		},
		{
			Key:        "upc",
			Title:      "UPC",
			Value:      func(g catalog.Game) string { return g.UPC },
			Filter:     FilterTextSearch,
			Responsive: "md",
		},
		{
			Key:        "publisher",
			Title:      "Publisher",
			Value:      func(g catalog.Game) string { return g.Publisher },
			Filter:     FilterSetMembership,
			Responsive: "lg",
		},
		{
			Key:        "developer",
			Title:      "Developer",
			Value:      func(g catalog.Game) string { return g.Developer },
			Filter:     FilterSetMembership,
			Responsive: "lg",
		},
		{
			Key:        "rating",
			Title:      "Rating",
			Value:      func(g catalog.Game) string { return g.Rating },
			Labels:     catalog.EsrbLabels,
			Filter:     FilterSetMembership,
			Responsive: "md",
		},
		{
			Key:        "release",
			Title:      "Release Date",
			Value:      func(g catalog.Game) string { return g.Release.Format(catalog.DateLayout) },
			Filter:     FilterDateRange,
			Responsive: "md",
		},
	}
}
