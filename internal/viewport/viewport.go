// Package viewport computes which part of the table is on screen.
//
// Vertical placement is derived from scratch every frame by Compute, so it
// never drifts from the cursor. Horizontal placement is incremental: a
// ColumnScroll moves only as far as needed to keep the selected column
// visible, which keeps the view steady while scanning across columns.
package viewport

// DefaultMaxVisibleColumns is the number of columns shown at once.
const DefaultMaxVisibleColumns = 10

// Window is the range of rows rendered in one frame.
type Window struct {
	// First is the index of the first visible row.
	First int

	// Count is the number of rows visible, at most the window height.
	Count int
}

// Last returns the index of the last visible row, or First-1 when empty.
func (w Window) Last() int {
	return w.First + w.Count - 1
}

// Contains reports whether row is inside the window.
func (w Window) Contains(row int) bool {
	return row >= w.First && row < w.First+w.Count
}

// Offset returns the first visible row for the selected row.
//
// height is the number of visible rows, selected the cursor row and total
// the number of rows in the table.
func Offset(mode Mode, selected, total, height int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	if selected < 0 {
		selected = 0
	}
	maxOffset := max(0, total-height)

	switch mode {
	case Top:
		return min(selected, maxOffset)
	case Bottom:
		return max(0, selected-(height-1))
	case Center:
		return center(selected, height, maxOffset)
	default:
		if selected < height/2 {
			return 0
		}
		return center(selected, height, maxOffset)
	}
}

func center(selected, height, maxOffset int) int {
	return max(0, min(selected-height/2, maxOffset))
}

// Compute returns the window of rows to render.
func Compute(mode Mode, selected, total, height int) Window {
	first := Offset(mode, selected, total, height)
	count := 0
	if height > 0 && total > first {
		count = min(height, total-first)
	}
	return Window{First: first, Count: count}
}
