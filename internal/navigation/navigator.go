// Package navigation moves a cursor around a grid.
//
// Every operation takes the current cursor and returns an Outcome; nothing
// here mutates shared state, and every resulting cursor lies inside the
// grid's bounds. Keeping the column scroll offset in step with the cursor
// is the caller's job (see viewport.ColumnScroll).
package navigation

import (
	"errors"
	"fmt"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
)

// DefaultPageSize is the number of rows moved by a page motion.
const DefaultPageSize = 20

// Status messages produced by motions.
const (
	MsgNoMoreNonEmpty     = "No more non-empty cells"
	MsgAlreadyFirstColumn = "Already at first column"
	MsgNoPrevNonEmpty     = "No previous non-empty cells"
	MsgAllCellsEmpty      = "All cells empty"
	MsgColumnNumberTooLow = "Column number must be >= 1"
)

// Direction selects which way a relative motion goes.
type Direction int

const (
	// Backward moves toward row 0 or column 0.
	Backward Direction = -1

	// Forward moves toward the last row or column.
	Forward Direction = 1
)

// String returns "backward" or "forward".
func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// Outcome is the result of a motion.
type Outcome struct {
	// Cursor is the new cursor position. It equals the input cursor when
	// the motion did not move.
	Cursor grid.Position

	// Message is an optional status message for the user.
	Message string

	// Applied reports whether the motion took effect. Failed word scans and
	// rejected column labels are not applied.
	Applied bool
}

func applied(p grid.Position) Outcome {
	return Outcome{Cursor: p, Applied: true}
}

func rejected(p grid.Position, msg string) Outcome {
	return Outcome{Cursor: p, Message: msg}
}

// Navigator applies motions against a grid.
type Navigator struct {
	grid     grid.Grid
	pageSize int
}

// New creates a navigator over g. A non-positive pageSize selects
// DefaultPageSize.
func New(g grid.Grid, pageSize int) *Navigator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Navigator{grid: g, pageSize: pageSize}
}

// PageSize returns the rows moved by PageDown and PageUp.
func (n *Navigator) PageSize() int {
	return n.pageSize
}

// Grid returns the grid being navigated.
func (n *Navigator) Grid() grid.Grid {
	return n.grid
}

func (n *Navigator) bounds() grid.Bounds {
	return grid.BoundsOf(n.grid)
}

// MoveRows moves count rows in dir, clamped to the grid. No wraparound.
func (n *Navigator) MoveRows(cur grid.Position, count int, dir Direction) Outcome {
	if count < 1 {
		count = 1
	}
	cur.Row = n.bounds().ClampRow(cur.Row.Add(count * int(dir)))
	return applied(cur)
}

// MoveCols moves count columns in dir, clamped to the grid. No wraparound.
func (n *Navigator) MoveCols(cur grid.Position, count int, dir Direction) Outcome {
	if count < 1 {
		count = 1
	}
	cur.Col = n.bounds().ClampCol(cur.Col.Add(count * int(dir)))
	return applied(cur)
}

// FirstRow selects row 0.
func (n *Navigator) FirstRow(cur grid.Position) Outcome {
	cur.Row = 0
	return applied(cur)
}

// LastRow selects the last row.
func (n *Navigator) LastRow(cur grid.Position) Outcome {
	cur.Row = n.bounds().LastRow()
	return applied(cur)
}

// GotoLine selects the one-based line. Line 0 selects row 0 and lines past
// the end select the last row without complaint.
func (n *Navigator) GotoLine(cur grid.Position, line int) Outcome {
	if line <= 0 {
		cur.Row = 0
		return applied(cur)
	}
	cur.Row = n.bounds().ClampRow(grid.RowIndex(line - 1))
	return applied(cur)
}

// FirstColumn selects column 0.
func (n *Navigator) FirstColumn(cur grid.Position) Outcome {
	cur.Col = 0
	return applied(cur)
}

// LastColumn selects the last column.
func (n *Navigator) LastColumn(cur grid.Position) Outcome {
	cur.Col = n.bounds().LastCol()
	return applied(cur)
}

// PageDown moves count pages toward the end.
func (n *Navigator) PageDown(cur grid.Position, count int) Outcome {
	if count < 1 {
		count = 1
	}
	return n.MoveRows(cur, pageRows(n.pageSize, count), Forward)
}

// PageUp moves count pages toward the start.
func (n *Navigator) PageUp(cur grid.Position, count int) Outcome {
	if count < 1 {
		count = 1
	}
	return n.MoveRows(cur, pageRows(n.pageSize, count), Backward)
}

// pageRows multiplies without overflowing; the result is clamped anyway.
func pageRows(pageSize, count int) int {
	const limit = 1 << 40
	if count > limit/pageSize {
		return limit
	}
	return pageSize * count
}

// NextNonEmpty selects the nearest non-empty cell strictly right of the
// cursor in the current row.
func (n *Navigator) NextNonEmpty(cur grid.Position) Outcome {
	cols := n.grid.ColumnCount()
	for c := cur.Col + 1; int(c) < cols; c++ {
		if n.grid.Cell(cur.Row, c) != "" {
			cur.Col = c
			return applied(cur)
		}
	}
	return rejected(cur, MsgNoMoreNonEmpty)
}

// PrevNonEmpty selects the nearest non-empty cell strictly left of the
// cursor in the current row.
func (n *Navigator) PrevNonEmpty(cur grid.Position) Outcome {
	if cur.Col <= 0 {
		return rejected(cur, MsgAlreadyFirstColumn)
	}
	for c := cur.Col - 1; c >= 0; c-- {
		if n.grid.Cell(cur.Row, c) != "" {
			cur.Col = c
			return applied(cur)
		}
	}
	return rejected(cur, MsgNoPrevNonEmpty)
}

// LastNonEmpty selects the right-most non-empty cell in the current row.
// When the whole row is empty the cursor moves to the last column and the
// outcome carries MsgAllCellsEmpty.
func (n *Navigator) LastNonEmpty(cur grid.Position) Outcome {
	last := n.bounds().LastCol()
	for c := last; c >= 0; c-- {
		if n.grid.Cell(cur.Row, c) != "" {
			cur.Col = c
			return applied(cur)
		}
	}
	cur.Col = last
	return Outcome{Cursor: cur, Message: MsgAllCellsEmpty}
}

// GotoColumnLetters selects the column named by a label such as "B" or "aa".
// Labels past the last column select the last column. A malformed label
// leaves the cursor where it is.
func (n *Navigator) GotoColumnLetters(cur grid.Position, label string) Outcome {
	idx, err := grid.ParseColumnLetters(label)
	if err != nil {
		return rejected(cur, invalidColumnMessage(label, err))
	}
	cur.Col = n.bounds().ClampCol(idx)
	return Outcome{Cursor: cur, Message: jumpedToColumn(cur.Col), Applied: true}
}

// GotoColumnNumber selects the one-based column number, clamped to the
// last column.
func (n *Navigator) GotoColumnNumber(cur grid.Position, number int) Outcome {
	if number < 1 {
		return rejected(cur, MsgColumnNumberTooLow)
	}
	cur.Col = n.bounds().ClampCol(grid.ColIndex(number - 1))
	return Outcome{Cursor: cur, Message: jumpedToColumn(cur.Col), Applied: true}
}

func jumpedToColumn(c grid.ColIndex) string {
	return "Jumped to column " + grid.ColumnLetter(c)
}

func invalidColumnMessage(label string, err error) string {
	if errors.Is(err, grid.ErrEmptyLabel) {
		return "Invalid column: empty label"
	}
	return fmt.Sprintf("Invalid column: %s", label)
}
