// Package templates renders the HTML views for the archive: full pages
// wrapped in a shared layout plus the HTMX partials (games table, import
// drawer, alerts) that re-render in place.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates output and sticks on the first write error so
// component bodies can print without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (p *writer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *writer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// esc escapes text for both element content and attribute values.
func esc(s string) string { return html.EscapeString(s) }

// ConsoleLink is a home-page navigation entry.
type ConsoleLink struct {
	Slug string
	Name string
}

// Layout wraps a page body in the shared document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		p.raw("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		p.printf("<title>%s</title>\n", esc(title))
		p.raw("<link rel=\"stylesheet\" href=\"/static/styles.css\">\n")
		p.raw("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>\n")
		p.raw("</head>\n<body>\n")
		p.raw("<nav class=\"topnav\"><a href=\"/\" class=\"brand\">VG Archive</a></nav>\n")
		p.raw("<main class=\"container\">\n")
		if p.err != nil {
			return p.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.raw("\n</main>\n</body>\n</html>\n")
		return p.err
	})
}

// Home renders the landing page with links to the browsable consoles.
func Home(consoles []ConsoleLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw("<section class=\"home\">\n<h1>Video Game Archive</h1>\n")
		p.raw("<p>Browse the catalog by console.</p>\n<ul class=\"console-list\">\n")
		for _, c := range consoles {
			p.printf("<li><a href=\"/consoles/%s\">%s</a></li>\n", esc(c.Slug), esc(c.Name))
		}
		p.raw("</ul>\n</section>")
		return p.err
	})
}

// NotFound renders the 404 page state.
func NotFound(what string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw("<section class=\"not-found\">\n<h1>Not found</h1>\n")
		p.printf("<p>%s could not be found.</p>\n", esc(what))
		p.raw("<p><a href=\"/\">Back to the archive</a></p>\n</section>")
		return p.err
	})
}

// ErrorAlert renders an HTMX-compatible error fragment with the mapped
// user message, suggested action and error code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw("<div class=\"alert alert-error\" role=\"alert\">\n")
		p.printf("<p class=\"alert-message\">%s</p>\n", esc(message))
		if action != "" {
			p.printf("<p class=\"alert-action\">%s</p>\n", esc(action))
		}
		p.printf("<span class=\"alert-code\">%s</span>\n", esc(code))
		p.raw("</div>")
		return p.err
	})
}

// SuccessAlert renders an HTMX-compatible success fragment.
func SuccessAlert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.raw("<div class=\"alert alert-success\" role=\"status\">\n")
		p.printf("<p class=\"alert-message\">%s</p>\n", esc(message))
		p.raw("</div>")
		return p.err
	})
}
