package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/status"
)

// HelpLines is the key reference shown by "?".
var HelpLines = []string{
	"lazycsv - keys",
	"",
	"h j k l / arrows   move (count prefix repeats)",
	"w b e              next / previous / last non-empty cell",
	"0 $                first / last column",
	"gg G               first / last row, [n]G goes to row n",
	"Ctrl+d Ctrl+u      page down / up",
	"zt zz zb           scroll cursor row to top / center / bottom",
	"[ ]                previous / next file",
	"yy                 yank row",
	":n  :c A  :c 5     go to row, column letter, column number",
	":q  :q!            quit, force quit",
	"Esc                cancel pending command",
	"?                  close this help",
}

// StatusInfo builds the status bar summary for v.
func StatusInfo(v View) status.Info {
	info := status.Info{Dirty: v.Dirty}
	if v.State == nil {
		return info
	}
	info.Pending = v.State.PendingKeys()
	info.Mode = v.State.ViewMode.String()
	if v.Grid == nil {
		return info
	}

	g := v.Grid
	c := v.State.Cursor
	info.TotalRows = g.RowCount()
	info.TotalCols = g.ColumnCount()
	if info.TotalCols > 0 {
		info.Col = c.Col.Number()
		info.ColLetter = c.Col.Letter()
		info.ColName = g.Header(c.Col)
	}
	if grid.BoundsOf(g).Contains(c) {
		info.Row = c.Row.LineNumber()
		info.Cell = g.Cell(c.Row, c.Col)
		info.HasData = true
	}
	return info
}

// FileList formats the file switcher line.
func FileList(files []string, active int) string {
	if len(files) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Files (%d/%d): ", active+1, len(files))
	for i, f := range files {
		if i > 0 {
			b.WriteString(" | ")
		}
		if i == active {
			b.WriteString("► ")
		}
		b.WriteString(f)
	}
	return b.String()
}

func (r *Renderer) drawFiles(v View, width, y int) {
	r.fill(0, y, width, r.theme.Dim)
	r.drawText(0, y, width, r.theme.Dim, FileList(v.Files, v.Active))
}

func (r *Renderer) drawStatus(v View, width, y int) {
	r.fill(0, y, width, r.theme.Normal)

	if v.State != nil && v.State.Command.Active() {
		x := r.drawText(0, y, width, r.theme.Normal, ":"+v.State.Command.Text())
		if x < width {
			r.screen.SetContent(x, y, ' ', nil, r.theme.Selected)
		}
		return
	}

	x := 0
	if v.HasMessage {
		style := r.theme.Normal
		if v.Message.Kind == status.Error {
			style = r.theme.Error
		}
		x = r.drawText(0, y, width, style, v.Message.Text+"  ")
	}
	r.drawText(x, y, width-x, r.theme.Dim, status.Summary(StatusInfo(v)))
}

func (r *Renderer) drawHelp(width, height int) {
	boxW := 0
	for _, l := range HelpLines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW = min(boxW+4, width)
	boxH := min(len(HelpLines)+2, height)
	left := max(0, (width-boxW)/2)
	top := max(0, (height-boxH)/2)

	for i := 0; i < boxH; i++ {
		r.fill(left, top+i, boxW, r.theme.Header.Reverse(true))
	}
	for i, l := range HelpLines {
		if i+1 >= boxH-1 {
			break
		}
		r.drawText(left+2, top+1+i, boxW-4, r.theme.Header.Reverse(true), l)
	}
}
