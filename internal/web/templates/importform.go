package templates

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vgarchive/server/internal/catalog"
)

// ImportForm renders the editable draft batch for an import session.
// Every input patches its field back to the session on change; add,
// delete, submit and cancel all re-render the drawer.
func ImportForm(consoleSlug, sessionID string, drafts []catalog.DraftGame, v catalog.BatchViolations) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &writer{w: w}
		base := "/api/import/" + url.PathEscape(consoleSlug) + "/sessions/" + url.PathEscape(sessionID)
		focusRecord, focusField := v.First()

		p.raw("<div class=\"import-form\">\n<h2>Add games</h2>\n")
		for _, viol := range v.Batch {
			p.printf("<div class=\"alert alert-error\" role=\"alert\"><p class=\"alert-message\">%s</p></div>\n", esc(viol.Message))
		}
		p.raw("<div class=\"draft-list\">\n")
		for i, d := range drafts {
			renderDraftRow(p, base, i, d, v.Records[i], i == focusRecord, focusField)
		}
		p.raw("</div>\n<div class=\"import-actions\">\n")
		p.printf("<button hx-post=\"%s/rows\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">Add row</button>\n", esc(base))
		p.printf("<button class=\"primary\" hx-post=\"%s/submit\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">Submit</button>\n", esc(base))
		p.printf("<button hx-delete=\"%s\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">Cancel</button>\n", esc(base))
		p.raw("</div>\n</div>")
		return p.err
	})
}

func renderDraftRow(p *writer, base string, idx int, d catalog.DraftGame, violations []catalog.Violation, focusRow bool, focusField string) {
	violByField := map[string][]catalog.Violation{}
	for _, viol := range violations {
		violByField[viol.Field] = append(violByField[viol.Field], viol)
	}

	p.printf("<fieldset class=\"draft-row\" id=\"draft-%d\">\n<legend>Game %d</legend>\n", idx, idx+1)
	for _, field := range catalog.FieldNames {
		rowURL := base + "/rows/" + strconv.Itoa(idx)
		label := catalog.FieldLabels[field]
		value := d.Field(field)
		invalid := len(violByField[field]) > 0
		focus := focusRow && field == focusField

		p.printf("<label>%s\n", esc(label))
		switch field {
		case "genre":
			renderEnumSelect(p, rowURL, field, value, catalog.Genres, catalog.GenreLabel, invalid, focus)
		case "rating":
			renderEnumSelect(p, rowURL, field, value, catalog.EsrbRatings, catalog.EsrbLabel, invalid, focus)
		case "release":
			p.printf("<input type=\"date\" name=\"%s\" value=\"%s\"%s%s hx-patch=\"%s\" hx-trigger=\"change\" hx-swap=\"none\">\n",
				esc(field), esc(value), invalidAttr(invalid), focusAttr(focus), esc(rowURL))
		case "description":
			p.printf("<textarea name=\"%s\"%s%s hx-patch=\"%s\" hx-trigger=\"change\" hx-swap=\"none\">%s</textarea>\n",
				esc(field), invalidAttr(invalid), focusAttr(focus), esc(rowURL), esc(value))
		default:
			p.printf("<input type=\"text\" name=\"%s\" value=\"%s\"%s%s hx-patch=\"%s\" hx-trigger=\"change\" hx-swap=\"none\">\n",
				esc(field), esc(value), invalidAttr(invalid), focusAttr(focus), esc(rowURL))
		}
		for _, viol := range violByField[field] {
			p.printf("<span class=\"field-error\">%s</span>\n", esc(viol.Message))
		}
		p.raw("</label>\n")
	}
	p.printf("<button class=\"remove\" hx-delete=\"%s/rows/%d\" hx-target=\"#import-drawer\" hx-swap=\"innerHTML\">Remove</button>\n", esc(base), idx)
	p.raw("</fieldset>\n")
}

func renderEnumSelect(p *writer, rowURL, field, value string, codes []string, label func(string) string, invalid, focus bool) {
	p.printf("<select name=\"%s\"%s%s hx-patch=\"%s\" hx-trigger=\"change\" hx-swap=\"none\">\n",
		esc(field), invalidAttr(invalid), focusAttr(focus), esc(rowURL))
	p.raw("<option value=\"\">Select…</option>\n")
	for _, code := range codes {
		sel := ""
		if code == value {
			sel = " selected"
		}
		p.printf("<option value=\"%s\"%s>%s</option>\n", esc(code), sel, esc(label(code)))
	}
	p.raw("</select>\n")
}

func invalidAttr(invalid bool) string {
	if invalid {
		return ` aria-invalid="true"`
	}
	return ""
}

func focusAttr(focus bool) string {
	if focus {
		return " autofocus"
	}
	return ""
}
