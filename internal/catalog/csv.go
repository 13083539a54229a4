package catalog

// csv.go ingests uploaded CSV (or tab-adjacent .txt) content into draft
// games. The file is already fully in memory by the time it reaches
// ParseGamesCSV; the only size rule here is the batch ceiling.
//
// A bad release date is not a parse failure. The cell is normalized to
// the absent marker and field validation reports it later, so one sour
// row never hides the rest of the file from the user.

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"unicode/utf8"
)

// ParseGamesCSV parses raw uploaded text as delimited-with-header rows
// and returns one draft game per data row, keyed by header name.
// Cells are trimmed, blank lines skipped, release dates normalized.
//
// Fails with ErrTooManyRecords when the row count exceeds MaxBatchSize,
// with a *ParseError when the text is not well-formed CSV, and with a
// plain error when no data rows remain.
func ParseGamesCSV(data []byte) ([]DraftGame, error) {
	data = sanitizeUTF8(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}

	// Drop blank lines before header detection
	rows := records[:0]
	for _, row := range records {
		if !isEmptyRow(row) {
			rows = append(rows, row)
		}
	}

	if len(rows) < 2 {
		return nil, errors.New("no data rows after header")
	}

	header := MakeHeaderIndex(rows[0])
	dataRows := rows[1:]

	if len(dataRows) > MaxBatchSize {
		return nil, ErrTooManyRecords
	}

	drafts := make([]DraftGame, 0, len(dataRows))
	for _, row := range dataRows {
		var d DraftGame
		for _, field := range FieldNames {
			pos, ok := header[field]
			if !ok || pos >= len(row) {
				continue
			}
			d.SetField(field, CleanCell(row[pos]))
		}
		d.Release = NormalizeDate(d.Release)
		drafts = append(drafts, d)
	}

	return drafts, nil
}

// MakeHeaderIndex maps header names (lowercased, cleaned) to their
// position in the row, for case-insensitive column matching.
func MakeHeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// CleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, Excel formula prefixes (="value") and stray quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences with the Unicode
// replacement character so the csv reader never sees broken encoding.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
