package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vgarchive/server/internal/catalog"
)

// GamePage renders a single game's detail view.
func GamePage(g *catalog.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.printf("<article class=\"game\">\n<h1>%s</h1>\n", esc(g.Title))
		if g.ConsoleName != "" {
			p.printf("<p class=\"console-name\">%s</p>\n", esc(g.ConsoleName))
		}
		p.raw("<dl class=\"game-details\">\n")
		p.printf("<dt>Genre</dt><dd>%s</dd>\n", esc(catalog.GenreLabel(g.Genre)))
		p.printf("<dt>Rating</dt><dd>%s</dd>\n", esc(catalog.EsrbLabel(g.Rating)))
		p.printf("<dt>Publisher</dt><dd>%s</dd>\n", esc(g.Publisher))
		p.printf("<dt>Developer</dt><dd>%s</dd>\n", esc(g.Developer))
		if !g.Release.IsZero() {
			p.printf("<dt>Released</dt><dd>%s</dd>\n", esc(g.Release.Format(catalog.DateLayout)))
		}
		p.printf("<dt>UPC</dt><dd>%s</dd>\n", esc(g.UPC))
		p.raw("</dl>\n")
		if g.Description != "" {
			p.printf("<p class=\"description\">%s</p>\n", esc(g.Description))
		}
		if len(g.Images) > 0 {
			p.raw("<div class=\"game-images\">\n")
			for _, img := range g.Images {
				p.printf("<img src=\"%s\" alt=\"%s\" loading=\"lazy\">\n", esc(img.URL), esc(g.Title))
			}
			p.raw("</div>\n")
		}
		p.raw("</article>")
		return p.err
	})
}
