package viewport

// ColumnScroll tracks the left-most visible column.
type ColumnScroll struct {
	// Offset is the index of the left-most visible column.
	Offset int

	// Width is the maximum number of columns shown at once.
	Width int
}

// NewColumnScroll creates a scroll state showing width columns.
// A non-positive width selects DefaultMaxVisibleColumns.
func NewColumnScroll(width int) ColumnScroll {
	if width <= 0 {
		width = DefaultMaxVisibleColumns
	}
	return ColumnScroll{Width: width}
}

func (s ColumnScroll) width() int {
	if s.Width <= 0 {
		return DefaultMaxVisibleColumns
	}
	return s.Width
}

// Follow scrolls the smallest amount that brings col into view.
func (s *ColumnScroll) Follow(col int) {
	if col < 0 {
		col = 0
	}
	w := s.width()
	switch {
	case col < s.Offset:
		s.Offset = col
	case col >= s.Offset+w:
		s.Offset = col - w + 1
	}
}

// Reset scrolls back to the first column.
func (s *ColumnScroll) Reset() {
	s.Offset = 0
}

// Visible returns the half-open range [first, end) of columns on screen
// for a table with total columns.
func (s ColumnScroll) Visible(total int) (first, end int) {
	first = min(s.Offset, max(0, total))
	end = min(first+s.width(), max(0, total))
	return first, end
}

// IsVisible reports whether col is on screen.
func (s ColumnScroll) IsVisible(col int) bool {
	return col >= s.Offset && col < s.Offset+s.width()
}
