package input

import (
	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/vim"
	"github.com/funkybooboo/lazycsv-sub000/internal/viewport"
)

// State is everything the interpreter carries between keystrokes.
// It is owned by one session and only touched from the event loop.
type State struct {
	// Cursor is the selected cell.
	Cursor grid.Position

	// ViewMode is the sticky vertical viewport mode.
	ViewMode viewport.Mode

	// Columns is the horizontal scroll state.
	Columns viewport.ColumnScroll

	// HelpVisible is true while the help overlay is open.
	HelpVisible bool

	// Count is the numeric prefix being typed.
	Count vim.CountState

	// Pending is the multi-key command in progress.
	Pending vim.Pending

	// Command is the ":" command line.
	Command CommandLine

	// Registers holds yanked rows.
	Registers *vim.RegisterStore
}

// NewState creates the state for a freshly opened file.
func NewState(cfg Config) *State {
	return &State{
		Columns:   viewport.NewColumnScroll(cfg.MaxVisibleColumns),
		Count:     vim.CountState{Max: cfg.MaxCount},
		Registers: vim.NewRegisterStore(),
	}
}

// Reset returns to the top-left cell with a fresh viewport. Registers and
// the help overlay are kept.
func (s *State) Reset() {
	s.Cursor = grid.Position{}
	s.ViewMode = viewport.Auto
	s.Columns.Reset()
	s.ClearInput()
}

// ClearInput drops any half-typed count, pending command or command line.
func (s *State) ClearInput() {
	s.Count.Reset()
	s.Pending = vim.Pending{}
	s.Command.Close()
}

// Clamp moves the cursor back inside b, e.g. after the file shrank on reload.
func (s *State) Clamp(b grid.Bounds) {
	s.Cursor = b.Clamp(s.Cursor)
	s.Columns.Follow(int(s.Cursor.Col))
}

// Window returns the rows to draw for a table of total rows in a window of
// height lines.
func (s *State) Window(total, height int) viewport.Window {
	return viewport.Compute(s.ViewMode, int(s.Cursor.Row), total, height)
}

// PendingKeys returns the typed count and pending keys for the status bar.
func (s *State) PendingKeys() string {
	return s.Count.String() + s.Pending.Keys()
}
