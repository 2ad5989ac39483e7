package renderer

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/viewport"
)

const columnSeparator = " │ "

var sepWidth = runewidth.StringWidth(columnSeparator)

// column is one on-screen table column.
type column struct {
	index grid.ColIndex
	x     int
	width int
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// gutterWidth is the width of the row number column for total rows.
func gutterWidth(total int) int {
	return max(3, len(strconv.Itoa(total)))
}

// layoutColumns sizes the visible columns from the header and the cells
// inside the window, so wide rows off screen never affect the layout.
func (r *Renderer) layoutColumns(g grid.Grid, first, end int, win viewport.Window, x0, width int) []column {
	var cols []column
	x := x0
	for c := first; c < end; c++ {
		col := grid.ColIndex(c)
		w := max(runewidth.StringWidth(g.Header(col)), runewidth.StringWidth(col.Letter()))
		for row := win.First; row < win.First+win.Count; row++ {
			w = max(w, runewidth.StringWidth(g.Cell(grid.RowIndex(row), col)))
		}
		w = min(max(w, r.opts.MinColumnWidth), r.opts.MaxColumnWidth)

		if x >= width {
			break
		}
		if x+w > width {
			w = width - x
		}
		cols = append(cols, column{index: col, x: x, width: w})
		x += w + sepWidth
	}
	return cols
}

func (r *Renderer) drawTable(v View, width, height int) {
	if v.Grid == nil || v.State == nil {
		return
	}
	g := v.Grid
	total := g.RowCount()
	cursor := v.State.Cursor
	win := v.State.Window(total, height)
	first, end := v.State.Columns.Visible(g.ColumnCount())

	gw := gutterWidth(total)
	cols := r.layoutColumns(g, first, end, win, gw+sepWidth, width)

	// Column letters and headers.
	r.fill(0, 0, width, r.theme.Normal)
	r.fill(0, 1, width, r.theme.Normal)
	r.drawText(0, 1, gw+sepWidth, r.theme.Dim, fit("", gw)+columnSeparator)
	for _, c := range cols {
		letterStyle, headerStyle := r.theme.Dim, r.theme.Header
		if c.index == cursor.Col {
			letterStyle = r.theme.Selected
			headerStyle = r.theme.Selected
		}
		r.drawText(c.x, 0, c.width, letterStyle, fit(c.index.Letter(), c.width))
		r.drawText(c.x, 1, c.width, headerStyle, fit(g.Header(c.index), c.width))
		r.drawText(c.x+c.width, 1, sepWidth, r.theme.Dim, columnSeparator)
	}

	if total == 0 {
		r.drawText(0, tableChromeTop, width, r.theme.Dim, "(no data rows)")
		return
	}

	for i := 0; i < win.Count; i++ {
		row := grid.RowIndex(win.First + i)
		y := tableChromeTop + i
		selectedRow := row == cursor.Row

		numStyle := r.theme.Dim
		if selectedRow {
			numStyle = r.theme.Header
		}
		num := runewidth.FillLeft(strconv.Itoa(row.LineNumber()), gw)
		x := r.drawText(0, y, gw, numStyle, num)
		r.drawText(x, y, sepWidth, r.theme.Dim, columnSeparator)

		for _, c := range cols {
			style := r.theme.Normal
			if selectedRow && c.index == cursor.Col {
				style = r.theme.Selected
			}
			r.drawText(c.x, y, c.width, style, fit(g.Cell(row, c.index), c.width))
			r.drawText(c.x+c.width, y, sepWidth, r.theme.Dim, columnSeparator)
		}
	}
}
