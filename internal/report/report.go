// Package report renders generic tabular data into text formats. It knows
// nothing about orders: callers supply a Table of ordered columns and
// pre-formatted string rows.
package report

import (
	"strings"

	"github.com/go-faster/errors"
)

// Table is the generic input for every renderer.
type Table struct {
	Title   string
	Columns []string
	// Rows hold string values matching Columns positionally.
	Rows [][]string
}

// Format identifies an output format.
type Format string

const (
	FormatHTML Format = "HTML"
	FormatCSV  Format = "CSV"
	FormatJSON Format = "JSON"
	FormatText Format = "TEXT"
)

// ErrUnsupportedFormat is returned by New for format strings outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Renderer turns a Table into a rendered document.
type Renderer interface {
	Render(t Table) ([]byte, error)
	ContentType() string
}

// New returns the renderer for the given format string, matched
// case-insensitively.
func New(format string) (Renderer, error) {
	switch Format(strings.ToUpper(strings.TrimSpace(format))) {
	case FormatHTML:
		return htmlRenderer{}, nil
	case FormatCSV:
		return csvRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatText:
		return textRenderer{}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// Formats lists all supported format names.
func Formats() []string {
	return []string{
		string(FormatHTML),
		string(FormatCSV),
		string(FormatJSON),
		string(FormatText),
	}
}
