package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// htmlRenderer emits a standalone HTML document with a single table.
type htmlRenderer struct{}

func (htmlRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (htmlRenderer) Render(t Table) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(t.Title))
	b.WriteString("<style>table{border-collapse:collapse;width:100%}th,td{border:1px solid #000;padding:8px}th{background:#f2f2f2}</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(t.Title))

	if len(t.Rows) == 0 {
		b.WriteString("<p>No data available</p>\n</body>\n</html>\n")
		return []byte(b.String()), nil
	}

	b.WriteString("<table>\n<tr>")
	for _, col := range t.Columns {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(col))
	}
	b.WriteString("</tr>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, v := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(v))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</body>\n</html>\n")

	return []byte(b.String()), nil
}

// csvRenderer emits a header row followed by one record per table row.
type csvRenderer struct{}

func (csvRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (csvRenderer) Render(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flush")
	}

	return buf.Bytes(), nil
}

// jsonRenderer emits {"title": ..., "rows": [{column: value, ...}, ...]}.
type jsonRenderer struct{}

func (jsonRenderer) ContentType() string { return "application/json" }

func (jsonRenderer) Render(t Table) ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("title")
	e.Str(t.Title)
	e.FieldStart("rows")
	e.ArrStart()
	for _, row := range t.Rows {
		e.ObjStart()
		for i, col := range t.Columns {
			if i >= len(row) {
				break
			}
			e.FieldStart(col)
			e.Str(row[i])
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes(), nil
}

// textRenderer emits a fixed-width plain text table.
type textRenderer struct{}

func (textRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (textRenderer) Render(t Table) ([]byte, error) {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range t.Rows {
		for i, v := range row {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteString("\n\n")
	writeTextRow(&b, t.Columns, widths)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeTextRow(&b, row, widths)
	}

	return []byte(b.String()), nil
}

func writeTextRow(b *strings.Builder, values []string, widths []int) {
	for i, w := range widths {
		if i > 0 {
			b.WriteString(" | ")
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		fmt.Fprintf(b, "%-*s", w, v)
	}
	b.WriteString("\n")
}
