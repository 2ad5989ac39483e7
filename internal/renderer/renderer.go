package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/funkybooboo/lazycsv-sub000/internal/config"
	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/input"
	"github.com/funkybooboo/lazycsv-sub000/internal/status"
)

// Rows taken by the column letter row and the header row.
const tableChromeTop = 2

// Rows taken by the file switcher and the status bar.
const tableChromeBottom = 2

// Options configures column sizing.
type Options struct {
	// MinColumnWidth is the narrowest a column is drawn, in cells.
	MinColumnWidth int

	// MaxColumnWidth caps wide columns; longer values are truncated.
	MaxColumnWidth int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		MinColumnWidth: 4,
		MaxColumnWidth: 24,
	}
}

// View is the snapshot drawn in one frame.
type View struct {
	// Grid is the table being viewed.
	Grid grid.Grid

	// Dirty marks unsaved changes in the status bar.
	Dirty bool

	// State holds the cursor, viewport mode and pending input.
	State *input.State

	// Message is the status message, if any.
	Message    status.Message
	HasMessage bool

	// Files are the session file names and Active the index of the
	// open one.
	Files  []string
	Active int
}

// Renderer paints views onto a screen.
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	theme  config.Theme
	opts   Options
}

// New creates a renderer drawing onto screen.
func New(screen tcell.Screen, theme config.Theme, opts Options) *Renderer {
	if opts.MinColumnWidth <= 0 {
		opts.MinColumnWidth = DefaultOptions().MinColumnWidth
	}
	if opts.MaxColumnWidth < opts.MinColumnWidth {
		opts.MaxColumnWidth = opts.MinColumnWidth
	}
	return &Renderer{screen: screen, theme: theme, opts: opts}
}

// TableHeight returns the number of data rows that fit on a screen of
// the given height.
func TableHeight(screenHeight int) int {
	return max(0, screenHeight-tableChromeTop-tableChromeBottom)
}

// Height returns the number of data rows that fit on the current screen.
func (r *Renderer) Height() int {
	_, h := r.screen.Size()
	return TableHeight(h)
}

// Draw paints v and shows the result.
func (r *Renderer) Draw(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	r.drawTable(v, width, TableHeight(height))
	if height >= 2 {
		r.drawFiles(v, width, height-2)
	}
	r.drawStatus(v, width, height-1)
	if v.State != nil && v.State.HelpVisible {
		r.drawHelp(width, height)
	}

	r.screen.Show()
}

// drawText writes s starting at x, clipped to limit cells, and returns the
// column after the last cell written.
func (r *Renderer) drawText(x, y, limit int, style tcell.Style, s string) int {
	end := x + limit
	for _, ch := range s {
		w := runeWidth(ch)
		if x+w > end {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// fill paints n blank cells.
func (r *Renderer) fill(x, y, n int, style tcell.Style) {
	for i := 0; i < n; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}
