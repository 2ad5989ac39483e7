package status

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// MaxCellPreview is the number of characters of the selected cell shown in
// the status bar, including the ellipsis.
const MaxCellPreview = 30

const ellipsis = "..."

// Truncate shortens s to at most max grapheme clusters, replacing the tail
// with "..." when it does not fit. Combined characters and emoji are never
// split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(s) <= max {
		return s
	}
	keep := max - len(ellipsis)
	if keep <= 0 {
		return ellipsis[:max]
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < keep && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	b.WriteString(ellipsis)
	return b.String()
}

// CellPreview formats a cell value for the status bar.
func CellPreview(value string) string {
	if value == "" {
		return "<empty>"
	}
	return `"` + Truncate(value, MaxCellPreview) + `"`
}

// Info is what the status bar reports about the cursor.
type Info struct {
	Row       int // one-based, 0 when the table is empty
	TotalRows int
	Col       int // one-based
	TotalCols int
	ColLetter string
	ColName   string
	Cell      string
	HasData   bool
	Dirty     bool

	// Pending is the typed count and pending keys, e.g. "12" or "g".
	Pending string

	// Mode is the viewport mode name, shown when not "auto".
	Mode string
}

// Summary returns the status bar text shown when no message is on display.
func Summary(info Info) string {
	cell := "<no data>"
	if info.HasData {
		cell = CellPreview(info.Cell)
	}

	var b strings.Builder
	b.WriteString("-- NORMAL --")
	if info.Dirty {
		b.WriteString(" [*]")
	}
	fmt.Fprintf(&b, " │ Row %d/%d │ Col %s: %s (%d/%d) │ Cell: %s",
		info.Row, info.TotalRows, info.ColLetter, info.ColName, info.Col, info.TotalCols, cell)
	if info.Mode != "" && info.Mode != "auto" {
		fmt.Fprintf(&b, " │ View: %s", info.Mode)
	}
	if info.Pending != "" {
		fmt.Fprintf(&b, " │ %s", info.Pending)
	}
	b.WriteString(" │ [?] help")
	return b.String()
}
