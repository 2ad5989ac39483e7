// Package document loads delimited text files into an in-memory table.
package document

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
)

// Errors returned by the loader.
var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrInvalidOptions  = errors.New("invalid load options")
)

// Document is a loaded table: one header per column and rows of cells.
// Every row has exactly ColumnCount cells.
type Document struct {
	path      string
	headers   []string
	rows      [][]string
	delimiter rune
	dirty     bool
}

// New creates a document from headers and rows. Rows are padded with empty
// cells or truncated to the header length.
func New(headers []string, rows [][]string) *Document {
	d := &Document{
		headers:   headers,
		rows:      rows,
		delimiter: ',',
	}
	d.normalize()
	return d
}

func (d *Document) normalize() {
	n := len(d.headers)
	for i, row := range d.rows {
		switch {
		case len(row) < n:
			padded := make([]string, n)
			copy(padded, row)
			d.rows[i] = padded
		case len(row) > n:
			d.rows[i] = row[:n:n]
		}
	}
}

// Path returns the file the document was loaded from, or "".
func (d *Document) Path() string { return d.path }

// Name returns the base name of the file, or "[no file]".
func (d *Document) Name() string {
	if d.path == "" {
		return "[no file]"
	}
	return filepath.Base(d.path)
}

// Delimiter returns the field separator used when parsing.
func (d *Document) Delimiter() rune { return d.delimiter }

// RowCount returns the number of data rows (headers excluded).
func (d *Document) RowCount() int { return len(d.rows) }

// ColumnCount returns the number of columns.
func (d *Document) ColumnCount() int { return len(d.headers) }

// Cell returns the value at (row, col), or "" when out of range.
func (d *Document) Cell(row grid.RowIndex, col grid.ColIndex) string {
	if row < 0 || int(row) >= len(d.rows) {
		return ""
	}
	r := d.rows[row]
	if col < 0 || int(col) >= len(r) {
		return ""
	}
	return r[col]
}

// Header returns the name of col, or "" when out of range.
func (d *Document) Header(col grid.ColIndex) string {
	if col < 0 || int(col) >= len(d.headers) {
		return ""
	}
	return d.headers[col]
}

// Headers returns a copy of the header row.
func (d *Document) Headers() []string {
	return append([]string(nil), d.headers...)
}

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool { return d.dirty }

// SetDirty marks the document as changed or saved.
func (d *Document) SetDirty(dirty bool) { d.dirty = dirty }

// String returns a short description for logs.
func (d *Document) String() string {
	return fmt.Sprintf("%s (%d rows, %d cols)", d.Name(), d.RowCount(), d.ColumnCount())
}
