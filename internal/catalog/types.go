// Package catalog provides the domain model and business rules for the
// video game archive: game records, consoles, field validation, CSV
// ingestion and slug derivation. This package has no UI or transport
// dependencies and can be used by any frontend.
package catalog

import "time"

// Genres is the fixed set of accepted genre codes.
var Genres = []string{
	"Puzzle",
	"Golf",
	"Action_Adventure",
	"Pinball",
	"Shooter",
	"Sports",
	"Fighting",
	"Platformer",
}

// EsrbRatings is the fixed set of accepted ESRB rating codes.
var EsrbRatings = []string{"E", "T", "M", "A", "K_A"}

// GenreLabels maps genre codes to their display labels. Codes without an
// entry render as themselves.
var GenreLabels = map[string]string{
	"Action_Adventure": "Action & Adventure",
}

// EsrbLabels maps ESRB rating codes to their display labels.
var EsrbLabels = map[string]string{
	"E":   "Everyone",
	"T":   "Teen",
	"M":   "Mature",
	"A":   "Adult",
	"K_A": "Kids to Adults",
}

// GenreLabel returns the display label for a genre code.
func GenreLabel(code string) string {
	if label, ok := GenreLabels[code]; ok {
		return label
	}
	return code
}

// EsrbLabel returns the display label for an ESRB rating code.
func EsrbLabel(code string) string {
	if label, ok := EsrbLabels[code]; ok {
		return label
	}
	return code
}

// Image is a read-only display asset attached to a persisted game.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Game is a persisted game record as returned by the content store.
// ID and Slug are assigned at creation; Images are display-only.
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	UPC         string    `json:"upc"`
	Publisher   string    `json:"publisher"`
	Developer   string    `json:"developer"`
	Rating      string    `json:"rating"`
	Release     time.Time `json:"release"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	ConsoleName string    `json:"consoleName,omitempty"`
	Images      []Image   `json:"images,omitempty"`
}

// Console is a named collection of games, identified by slug.
// Games are ordered by title ascending as returned by the content store.
type Console struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Games []Game `json:"games"`
}

// ExistingUPCs returns the set of UPCs already attached to the console.
// Used as the snapshot for duplicate checking during import.
func (c *Console) ExistingUPCs() map[string]bool {
	set := make(map[string]bool, len(c.Games))
	for _, g := range c.Games {
		set[g.UPC] = true
	}
	return set
}

// DraftGame is an in-progress game record being edited before submission.
// All fields are held in their CSV/form string representation; Release
// holds a normalized YYYY-MM-DD value, or "" when the source value did
// not parse as a date.
type DraftGame struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Genre       string `json:"genre" validate:"required,notblank,oneof=Puzzle Golf Action_Adventure Pinball Shooter Sports Fighting Platformer"`
	UPC         string `json:"upc" validate:"required,notblank,max=255"`
	Publisher   string `json:"publisher" validate:"required,notblank,max=255"`
	Developer   string `json:"developer" validate:"required,notblank,max=255"`
	Rating      string `json:"rating" validate:"required,notblank,oneof=E T M A K_A"`
	Release     string `json:"release" validate:"required,gamedate"`
	Description string `json:"description" validate:"required,notblank,max=1000"`
}

// Field returns the value of a draft field by its CSV/form name.
// Unknown names return "".
func (d DraftGame) Field(name string) string {
	switch name {
	case "title":
		return d.Title
	case "genre":
		return d.Genre
	case "upc":
		return d.UPC
	case "publisher":
		return d.Publisher
	case "developer":
		return d.Developer
	case "rating":
		return d.Rating
	case "release":
		return d.Release
	case "description":
		return d.Description
	}
	return ""
}

// SetField writes the value of a draft field by its CSV/form name.
// Unknown names are a no-op. No validation happens at write time.
func (d *DraftGame) SetField(name, value string) {
	switch name {
	case "title":
		d.Title = value
	case "genre":
		d.Genre = value
	case "upc":
		d.UPC = value
	case "publisher":
		d.Publisher = value
	case "developer":
		d.Developer = value
	case "rating":
		d.Rating = value
	case "release":
		d.Release = value
	case "description":
		d.Description = value
	}
}

// FieldNames lists the editable draft fields in CSV header order.
var FieldNames = []string{
	"title", "genre", "upc", "publisher", "developer", "rating", "release", "description",
}

// FieldLabels maps draft field names to their display labels, used when
// templating validation messages.
var FieldLabels = map[string]string{
	"title":       "Title",
	"genre":       "Genre",
	"upc":         "UPC",
	"publisher":   "Publisher",
	"developer":   "Developer",
	"rating":      "Rating",
	"release":     "Release Date",
	"description": "Description",
}

// MaxBatchSize is the maximum number of games accepted in one import,
// enforced both at CSV parse time and again at submission.
const MaxBatchSize = 100
