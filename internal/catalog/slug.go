package catalog

// Slugs are globally scoped in the content store, so a game's slug is
// its slugified title suffixed with the owning console's slug.

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// DeriveSlug builds the URL-safe identifier for a game on a console:
// slugify(title) + "-" + consoleSlug.
func DeriveSlug(title, consoleSlug string) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		// Titles that normalize to nothing still need a stable,
		// URL-safe prefix.
		normalized = strings.ToLower(strings.Join(strings.Fields(title), "-"))
	}
	return normalized + "-" + consoleSlug
}
