package templates

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/vgarchive/server/internal/catalog"
	"github.com/vgarchive/server/internal/table"
)

// ConsolePage renders a console's catalog page: the games table plus,
// for editors, the import controls and an (initially empty) import
// drawer that HTMX swaps the draft form into.
func ConsolePage(console *catalog.Console, m *table.Model, editor bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		p.printf("<section class=\"console\">\n<h1>%s</h1>\n", esc(console.Name))
		if editor {
			p.raw("<div class=\"import-controls\">\n")
			p.printf("<form hx-post=\"/api/import/%s\" hx-encoding=\"multipart/form-data\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">\n", esc(console.Slug))
			p.raw("<label>Upload CSV <input type=\"file\" name=\"file\" accept=\".csv,.txt\" required></label>\n")
			p.raw("<button type=\"submit\">Import</button>\n</form>\n")
			p.printf("<button hx-post=\"/api/import/%s/sessions\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">Add games</button>\n", esc(console.Slug))
			p.raw("</div>\n")
		}
		p.raw("<div id=\"import-drawer\"></div>\n")
		// Re-fetch the table when an import session finishes.
		p.printf("<div id=\"table-region\" hx-get=\"/consoles/%s/table%s\" hx-trigger=\"games-updated from:body\" hx-target=\"#games-table\" hx-swap=\"outerHTML\">\n",
			esc(console.Slug), esc(m.QueryString()))
		if p.err != nil {
			return p.err
		}
		if err := GamesTable(console.Slug, m).Render(ctx, w); err != nil {
			return err
		}
		p.raw("</div>\n</section>")
		return p.err
	})
}

// GamesTable renders the table partial: filter controls, sortable
// headers and the filtered, sorted rows. Every control round-trips the
// full sort/filter state through the partial's query string.
func GamesTable(consoleSlug string, m *table.Model) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		endpoint := "/consoles/" + url.PathEscape(consoleSlug) + "/table"

		p.raw("<div id=\"games-table\">\n")
		renderFilterForm(p, endpoint, m)
		p.raw("<table class=\"games\">\n<thead>\n<tr>\n")
		for _, col := range m.Columns() {
			renderHeaderCell(p, endpoint, m, col)
		}
		p.raw("<th>Actions</th>\n</tr>\n</thead>\n<tbody>\n")
		rows := m.Rows()
		if len(rows) == 0 {
			p.printf("<tr><td colspan=\"%d\" class=\"empty\">No games match.</td></tr>\n", len(m.Columns())+1)
		}
		for _, g := range rows {
			p.raw("<tr>\n")
			for _, col := range m.Columns() {
				raw := col.Value(g)
				label := raw
				if col.Labels != nil {
					if l, ok := col.Labels[raw]; ok {
						label = l
					}
				}
				p.printf("<td%s>%s</td>\n", responsiveClass(col), esc(label))
			}
			p.printf("<td><a href=\"/game/%s\">View</a></td>\n", esc(g.Slug))
			p.raw("</tr>\n")
		}
		p.raw("</tbody>\n</table>\n</div>")
		return p.err
	})
}

// renderFilterForm emits one form holding every filter input plus hidden
// sort state, re-fetching the partial on change.
func renderFilterForm(p *writer, endpoint string, m *table.Model) {
	p.printf("<form class=\"table-filters\" hx-get=\"%s\" hx-target=\"#games-table\" hx-swap=\"outerHTML\" hx-trigger=\"change, keyup changed delay:300ms from:input\">\n", esc(endpoint))
	sort := m.Sort()
	if sort.Key != "" {
		p.printf("<input type=\"hidden\" name=\"sort\" value=\"%s\">\n", esc(sort.Key))
		p.printf("<input type=\"hidden\" name=\"dir\" value=\"%s\">\n", esc(string(sort.Dir)))
	}
	for _, col := range m.Columns() {
		switch col.Filter {
		case table.FilterTextSearch:
			query := ""
			if f, ok := m.Filter(col.Key).(table.TextSearch); ok {
				query = f.Query
			}
			p.printf("<input type=\"search\" name=\"f.%s\" value=\"%s\" placeholder=\"%s\">\n",
				esc(col.Key), esc(query), esc(col.Title))
		case table.FilterSetMembership:
			selected := map[string]bool{}
			if f, ok := m.Filter(col.Key).(table.SetMembership); ok {
				for _, v := range f.Values {
					selected[v] = true
				}
			}
			p.printf("<select name=\"f.%s\" multiple size=\"1\" aria-label=\"%s\">\n", esc(col.Key), esc(col.Title))
			for _, opt := range m.Options(col.Key) {
				sel := ""
				if selected[opt.Value] {
					sel = " selected"
				}
				p.printf("<option value=\"%s\"%s>%s</option>\n", esc(opt.Value), sel, esc(opt.Label))
			}
			p.raw("</select>\n")
		case table.FilterDateRange:
			start, end := "", ""
			if f, ok := m.Filter(col.Key).(table.DateRange); ok {
				if !f.Start.IsZero() {
					start = f.Start.Format(catalog.DateLayout)
				}
				if !f.End.IsZero() {
					end = f.End.Format(catalog.DateLayout)
				}
			}
			p.printf("<input type=\"date\" name=\"f.%s.start\" value=\"%s\" aria-label=\"%s from\">\n", esc(col.Key), esc(start), esc(col.Title))
			p.printf("<input type=\"date\" name=\"f.%s.end\" value=\"%s\" aria-label=\"%s to\">\n", esc(col.Key), esc(end), esc(col.Title))
		}
	}
	p.raw("</form>\n")
}

// renderHeaderCell emits a sortable column header. Clicking cycles the
// sort for that column while preserving the current filters.
func renderHeaderCell(p *writer, endpoint string, m *table.Model, col table.Column) {
	q := m.EncodeQuery()
	q.Set("cycle", col.Key)
	indicator := ""
	if s := m.Sort(); s.Key == col.Key {
		switch s.Dir {
		case table.SortAsc:
			indicator = " ▲"
		case table.SortDesc:
			indicator = " ▼"
		}
	}
	p.printf("<th%s><a hx-get=\"%s?%s\" hx-target=\"#games-table\" hx-swap=\"outerHTML\" href=\"#\">%s%s</a></th>\n",
		responsiveClass(col), esc(endpoint), esc(q.Encode()), esc(col.Title), indicator)
}

func responsiveClass(col table.Column) string {
	if col.Responsive == "" {
		return ""
	}
	return ` class="show-` + col.Responsive + `"`
}
