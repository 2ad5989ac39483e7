// Package grid provides the coordinate types shared by the input, navigation,
// viewport and renderer packages.
//
// Rows and columns are zero-based and carried in distinct types so a row can
// never be passed where a column is expected:
//
//	pos := grid.NewPosition(grid.RowIndex(3), grid.ColIndex(1))
//	doc.Cell(pos.Row, pos.Col)
package grid

import "fmt"

// RowIndex is a zero-based row index into a table.
type RowIndex int

// Int returns the underlying value.
func (r RowIndex) Int() int { return int(r) }

// Add returns r+n, saturating at 0.
func (r RowIndex) Add(n int) RowIndex {
	v := int(r) + n
	if v < 0 {
		return 0
	}
	return RowIndex(v)
}

// LineNumber returns the one-based line number used in status output.
func (r RowIndex) LineNumber() int { return int(r) + 1 }

// ColIndex is a zero-based column index into a table.
type ColIndex int

// Int returns the underlying value.
func (c ColIndex) Int() int { return int(c) }

// Add returns c+n, saturating at 0.
func (c ColIndex) Add(n int) ColIndex {
	v := int(c) + n
	if v < 0 {
		return 0
	}
	return ColIndex(v)
}

// Number returns the one-based column number.
func (c ColIndex) Number() int { return int(c) + 1 }

// Letter returns the spreadsheet-style label for the column.
func (c ColIndex) Letter() string { return ColumnLetter(c) }

// Position is a cell coordinate.
type Position struct {
	Row RowIndex
	Col ColIndex
}

// NewPosition creates a position.
func NewPosition(row RowIndex, col ColIndex) Position {
	return Position{Row: row, Col: col}
}

// String returns "row:col" using one-based numbers.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row.LineNumber(), p.Col.Number())
}

// Bounds is the size of a table.
type Bounds struct {
	Rows int
	Cols int
}

// Empty reports whether the table has no rows or no columns.
func (b Bounds) Empty() bool {
	return b.Rows <= 0 || b.Cols <= 0
}

// LastRow returns the last valid row, or 0 for an empty table.
func (b Bounds) LastRow() RowIndex {
	if b.Rows <= 0 {
		return 0
	}
	return RowIndex(b.Rows - 1)
}

// LastCol returns the last valid column, or 0 for an empty table.
func (b Bounds) LastCol() ColIndex {
	if b.Cols <= 0 {
		return 0
	}
	return ColIndex(b.Cols - 1)
}

// ClampRow clamps r into [0, Rows-1].
func (b Bounds) ClampRow(r RowIndex) RowIndex {
	if r < 0 {
		return 0
	}
	if last := b.LastRow(); r > last {
		return last
	}
	return r
}

// ClampCol clamps c into [0, Cols-1].
func (b Bounds) ClampCol(c ColIndex) ColIndex {
	if c < 0 {
		return 0
	}
	if last := b.LastCol(); c > last {
		return last
	}
	return c
}

// Clamp clamps both coordinates of p.
func (b Bounds) Clamp(p Position) Position {
	return Position{Row: b.ClampRow(p.Row), Col: b.ClampCol(p.Col)}
}

// Contains reports whether p addresses an existing cell.
func (b Bounds) Contains(p Position) bool {
	return p.Row >= 0 && int(p.Row) < b.Rows && p.Col >= 0 && int(p.Col) < b.Cols
}

// Grid is a read-only view of tabular data.
//
// Cell and Header return "" for out-of-range coordinates.
type Grid interface {
	RowCount() int
	ColumnCount() int
	Cell(row RowIndex, col ColIndex) string
	Header(col ColIndex) string
}

// BoundsOf returns the bounds of g.
func BoundsOf(g Grid) Bounds {
	return Bounds{Rows: g.RowCount(), Cols: g.ColumnCount()}
}
