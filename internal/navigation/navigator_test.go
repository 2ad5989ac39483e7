package navigation

import (
	"fmt"
	"testing"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
)

type table struct {
	headers []string
	rows    [][]string
}

func (t *table) RowCount() int    { return len(t.rows) }
func (t *table) ColumnCount() int { return len(t.headers) }

func (t *table) Cell(r grid.RowIndex, c grid.ColIndex) string {
	if r < 0 || int(r) >= len(t.rows) || c < 0 || int(c) >= len(t.rows[r]) {
		return ""
	}
	return t.rows[r][c]
}

func (t *table) Header(c grid.ColIndex) string {
	if c < 0 || int(c) >= len(t.headers) {
		return ""
	}
	return t.headers[c]
}

func numbered(rows, cols int) *table {
	t := &table{}
	for c := 0; c < cols; c++ {
		t.headers = append(t.headers, grid.ColumnLetter(grid.ColIndex(c)))
	}
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := range row {
			row[c] = fmt.Sprintf("%d-%d", r, c)
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func at(row, col int) grid.Position {
	return grid.NewPosition(grid.RowIndex(row), grid.ColIndex(col))
}

func TestMoveRows(t *testing.T) {
	nav := New(numbered(3, 3), 0)

	tests := []struct {
		name  string
		from  grid.Position
		count int
		dir   Direction
		want  grid.RowIndex
	}{
		{"down one", at(0, 0), 1, Forward, 1},
		{"down two", at(0, 0), 2, Forward, 2},
		{"down past end clamps", at(1, 0), 50, Forward, 2},
		{"up one", at(2, 0), 1, Backward, 1},
		{"up past start clamps", at(1, 0), 9, Backward, 0},
		{"zero count moves one", at(0, 0), 0, Forward, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := nav.MoveRows(tt.from, tt.count, tt.dir)
			if out.Cursor.Row != tt.want {
				t.Errorf("row = %d, want %d", out.Cursor.Row, tt.want)
			}
			if !out.Applied {
				t.Error("MoveRows should always be applied")
			}
		})
	}
}

func TestMoveIdempotentAtBoundary(t *testing.T) {
	nav := New(numbered(3, 3), 0)

	cur := at(0, 0)
	for i := 0; i < 5; i++ {
		cur = nav.MoveRows(cur, 1, Backward).Cursor
		cur = nav.MoveCols(cur, 1, Backward).Cursor
	}
	if cur != at(0, 0) {
		t.Errorf("cursor = %v, want 1:1", cur)
	}

	cur = at(2, 2)
	for i := 0; i < 5; i++ {
		cur = nav.MoveRows(cur, 1, Forward).Cursor
		cur = nav.MoveCols(cur, 1, Forward).Cursor
	}
	if cur != at(2, 2) {
		t.Errorf("cursor = %v, want 3:3", cur)
	}
}

func TestAbsoluteJumps(t *testing.T) {
	nav := New(numbered(3, 4), 0)

	if got := nav.FirstRow(at(2, 1)).Cursor; got != at(0, 1) {
		t.Errorf("FirstRow = %v, want 1:2", got)
	}
	if got := nav.LastRow(at(0, 1)).Cursor; got != at(2, 1) {
		t.Errorf("LastRow = %v, want 3:2", got)
	}
	if got := nav.FirstColumn(at(1, 3)).Cursor; got != at(1, 0) {
		t.Errorf("FirstColumn = %v, want 2:1", got)
	}
	if got := nav.LastColumn(at(1, 0)).Cursor; got != at(1, 3) {
		t.Errorf("LastColumn = %v, want 2:4", got)
	}
}

func TestGotoLine(t *testing.T) {
	nav := New(numbered(3, 1), 0)

	tests := []struct {
		line int
		want grid.RowIndex
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{999, 2},
	}

	for _, tt := range tests {
		out := nav.GotoLine(at(1, 0), tt.line)
		if out.Cursor.Row != tt.want {
			t.Errorf("GotoLine(%d) row = %d, want %d", tt.line, out.Cursor.Row, tt.want)
		}
		if out.Message != "" {
			t.Errorf("GotoLine(%d) message = %q, want silent clamp", tt.line, out.Message)
		}
	}
}

func TestPaging(t *testing.T) {
	nav := New(numbered(50, 1), 0)

	if got := nav.PageSize(); got != DefaultPageSize {
		t.Fatalf("PageSize() = %d, want %d", got, DefaultPageSize)
	}
	if got := nav.PageDown(at(0, 0), 1).Cursor.Row; got != 20 {
		t.Errorf("PageDown row = %d, want 20", got)
	}
	if got := nav.PageDown(at(0, 0), 2).Cursor.Row; got != 40 {
		t.Errorf("PageDown x2 row = %d, want 40", got)
	}
	if got := nav.PageDown(at(40, 0), 1).Cursor.Row; got != 49 {
		t.Errorf("PageDown near end row = %d, want 49", got)
	}
	if got := nav.PageUp(at(25, 0), 1).Cursor.Row; got != 5 {
		t.Errorf("PageUp row = %d, want 5", got)
	}
	if got := nav.PageUp(at(5, 0), 1000000).Cursor.Row; got != 0 {
		t.Errorf("PageUp huge count row = %d, want 0", got)
	}

	small := New(numbered(50, 1), 7)
	if got := small.PageDown(at(0, 0), 1).Cursor.Row; got != 7 {
		t.Errorf("custom PageDown row = %d, want 7", got)
	}
}

func sparse() *table {
	return &table{
		headers: []string{"A", "B", "C", "D", "E"},
		rows: [][]string{
			{"x", "", "", "y", ""},
			{"", "", "", "", ""},
			{"", "", "z", "", ""},
		},
	}
}

func TestNextNonEmpty(t *testing.T) {
	nav := New(sparse(), 0)

	out := nav.NextNonEmpty(at(0, 0))
	if out.Cursor != at(0, 3) || !out.Applied || out.Message != "" {
		t.Errorf("NextNonEmpty = %+v, want col D applied", out)
	}

	out = nav.NextNonEmpty(at(0, 3))
	if out.Cursor != at(0, 3) || out.Applied || out.Message != MsgNoMoreNonEmpty {
		t.Errorf("NextNonEmpty at end = %+v", out)
	}
}

func TestPrevNonEmpty(t *testing.T) {
	nav := New(sparse(), 0)

	out := nav.PrevNonEmpty(at(0, 4))
	if out.Cursor != at(0, 3) || !out.Applied {
		t.Errorf("PrevNonEmpty = %+v, want col D", out)
	}

	out = nav.PrevNonEmpty(at(0, 0))
	if out.Message != MsgAlreadyFirstColumn || out.Applied {
		t.Errorf("PrevNonEmpty at col 0 = %+v", out)
	}

	out = nav.PrevNonEmpty(at(2, 2))
	if out.Cursor != at(2, 2) || out.Message != MsgNoPrevNonEmpty {
		t.Errorf("PrevNonEmpty with nothing left = %+v", out)
	}
}

func TestLastNonEmpty(t *testing.T) {
	nav := New(sparse(), 0)

	out := nav.LastNonEmpty(at(0, 0))
	if out.Cursor != at(0, 3) || !out.Applied {
		t.Errorf("LastNonEmpty = %+v, want col D", out)
	}

	out = nav.LastNonEmpty(at(1, 1))
	if out.Cursor != at(1, 4) || out.Applied || out.Message != MsgAllCellsEmpty {
		t.Errorf("LastNonEmpty on empty row = %+v, want last column with message", out)
	}
}

func TestGotoColumnLetters(t *testing.T) {
	nav := New(numbered(2, 30), 0)

	tests := []struct {
		label   string
		wantCol grid.ColIndex
		wantMsg string
		applied bool
	}{
		{"A", 0, "Jumped to column A", true},
		{"c", 2, "Jumped to column C", true},
		{"AA", 26, "Jumped to column AA", true},
		{"ZZ", 29, "Jumped to column AD", true},
		{"A1", 5, "Invalid column: A1", false},
		{"", 5, "Invalid column: empty label", false},
	}

	for _, tt := range tests {
		out := nav.GotoColumnLetters(at(1, 5), tt.label)
		if out.Cursor.Col != tt.wantCol {
			t.Errorf("GotoColumnLetters(%q) col = %d, want %d", tt.label, out.Cursor.Col, tt.wantCol)
		}
		if out.Message != tt.wantMsg {
			t.Errorf("GotoColumnLetters(%q) message = %q, want %q", tt.label, out.Message, tt.wantMsg)
		}
		if out.Applied != tt.applied {
			t.Errorf("GotoColumnLetters(%q) applied = %v, want %v", tt.label, out.Applied, tt.applied)
		}
		if out.Cursor.Row != 1 {
			t.Errorf("GotoColumnLetters(%q) changed row to %d", tt.label, out.Cursor.Row)
		}
	}
}

func TestGotoColumnNumber(t *testing.T) {
	nav := New(numbered(1, 5), 0)

	if out := nav.GotoColumnNumber(at(0, 0), 3); out.Cursor.Col != 2 || out.Message != "Jumped to column C" {
		t.Errorf("GotoColumnNumber(3) = %+v", out)
	}
	if out := nav.GotoColumnNumber(at(0, 0), 99); out.Cursor.Col != 4 {
		t.Errorf("GotoColumnNumber(99) col = %d, want 4", out.Cursor.Col)
	}
	if out := nav.GotoColumnNumber(at(0, 1), 0); out.Cursor.Col != 1 || out.Message != MsgColumnNumberTooLow {
		t.Errorf("GotoColumnNumber(0) = %+v", out)
	}
}

func TestEmptyGrid(t *testing.T) {
	nav := New(&table{}, 0)

	outs := []Outcome{
		nav.MoveRows(at(0, 0), 3, Forward),
		nav.MoveCols(at(0, 0), 3, Forward),
		nav.LastRow(at(0, 0)),
		nav.LastColumn(at(0, 0)),
		nav.GotoLine(at(0, 0), 10),
		nav.PageDown(at(0, 0), 1),
		nav.LastNonEmpty(at(0, 0)),
	}
	for i, out := range outs {
		if out.Cursor != at(0, 0) {
			t.Errorf("motion %d on empty grid moved to %v", i, out.Cursor)
		}
	}
}
