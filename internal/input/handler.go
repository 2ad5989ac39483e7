package input

import (
	"time"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/key"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/vim"
	"github.com/funkybooboo/lazycsv-sub000/internal/navigation"
	"github.com/funkybooboo/lazycsv-sub000/internal/viewport"
)

// Config configures the input handler.
type Config struct {
	// MaxCount is the saturation limit for count prefixes.
	// Default: 100000
	MaxCount int

	// PageSize is the number of rows moved by Ctrl+d and Ctrl+u.
	// Default: 20
	PageSize int

	// MaxVisibleColumns is the number of columns on screen at once.
	// Default: 10
	MaxVisibleColumns int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxCount:          vim.DefaultMaxCount,
		PageSize:          navigation.DefaultPageSize,
		MaxVisibleColumns: viewport.DefaultMaxVisibleColumns,
	}
}

// Handler interprets key events against the interpreter state.
type Handler struct {
	config  Config
	state   *State
	doc     Document
	session Session
	nav     *navigation.Navigator
	logger  Logger
	metrics *Metrics
}

// NewHandler creates a handler. session may be nil for a single file.
func NewHandler(config Config, state *State, doc Document, session Session) *Handler {
	return &Handler{
		config:  config,
		state:   state,
		doc:     doc,
		session: session,
		nav:     navigation.New(doc, config.PageSize),
		logger:  nopLogger{},
		metrics: NewMetrics(),
	}
}

// SetLogger sets the logger used for dispatch traces.
func (h *Handler) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	h.logger = l
}

// SetDocument replaces the document, e.g. after a reload or file switch.
// The cursor is clamped into the new bounds.
func (h *Handler) SetDocument(doc Document) {
	h.doc = doc
	h.nav = navigation.New(doc, h.config.PageSize)
	h.state.Clamp(grid.BoundsOf(doc))
}

// State returns the interpreter state.
func (h *Handler) State() *State {
	return h.state
}

// Metrics returns the dispatch counters.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// HandleKey processes one key event and returns what the caller should do
// next, plus an optional status message.
//
// Dispatch order:
//  1. command line, when open
//  2. help overlay, which only lets "?" and Esc through
//  3. pending multi-key command
//  4. count digits
//  5. everything else
func (h *Handler) HandleKey(ev key.Event) (ControlResult, string) {
	start := time.Now()
	result, msg := h.dispatch(ev)
	h.metrics.RecordKey(time.Since(start))

	h.logger.Debug("key %s -> %s cursor=%s mode=%s pending=%q msg=%q",
		ev, result, h.state.Cursor, h.state.ViewMode, h.state.PendingKeys(), msg)
	return result, msg
}

func (h *Handler) dispatch(ev key.Event) (ControlResult, string) {
	s := h.state

	if s.Command.Active() {
		return h.handleCommandLine(ev)
	}

	if s.HelpVisible {
		if ev.IsChar('?') || ev.Is(key.KeyEscape) {
			s.HelpVisible = false
		}
		return Continue, ""
	}

	if s.Pending.Active() {
		return h.handlePending(ev)
	}

	if _, ok := ev.Digit(); ok && s.Count.AccumulateDigit(ev.Rune) {
		return Continue, ""
	}

	return h.handleNormal(ev)
}

// handleNormal handles a key with no pending command. Any typed count is
// consumed here, whether or not the key uses it.
func (h *Handler) handleNormal(ev key.Event) (ControlResult, string) {
	s := h.state
	count, explicit := s.Count.Take()
	cur := s.Cursor

	switch {
	case ev.IsChar('q'), ev.IsCtrl('c'):
		if h.doc.IsDirty() {
			return Continue, MsgUnsavedChanges
		}
		return Quit, ""
	case ev.IsChar('?'):
		s.HelpVisible = true
	case ev.Is(key.KeyEscape):
		// Only drops the count, which Take already did.
	case ev.IsChar(':'):
		s.Command.Open()
	case ev.IsChar('g'):
		s.Pending = vim.AwaitingSecondG()
	case ev.IsChar('z'):
		s.Pending = vim.AwaitingViewportLetter()
	case ev.IsChar('d'):
		s.Pending = vim.AwaitingSecondD()
	case ev.IsChar('y'):
		s.Pending = vim.AwaitingSecondY()
	case ev.IsChar('['):
		return h.switchFile(false), ""
	case ev.IsChar(']'):
		return h.switchFile(true), ""

	case ev.IsChar('j'), ev.Is(key.KeyDown), ev.Is(key.KeyEnter):
		return Continue, h.apply(h.nav.MoveRows(cur, count, navigation.Forward))
	case ev.IsChar('k'), ev.Is(key.KeyUp):
		return Continue, h.apply(h.nav.MoveRows(cur, count, navigation.Backward))
	case ev.IsChar('l'), ev.Is(key.KeyRight):
		return Continue, h.apply(h.nav.MoveCols(cur, count, navigation.Forward))
	case ev.IsChar('h'), ev.Is(key.KeyLeft):
		return Continue, h.apply(h.nav.MoveCols(cur, count, navigation.Backward))
	case ev.IsChar('0'):
		return Continue, h.apply(h.nav.FirstColumn(cur))
	case ev.IsChar('$'):
		return Continue, h.apply(h.nav.LastColumn(cur))
	case ev.Is(key.KeyHome):
		return Continue, h.apply(h.nav.FirstRow(cur))
	case ev.IsChar('G'), ev.Is(key.KeyEnd):
		if explicit {
			return Continue, h.apply(h.nav.GotoLine(cur, count))
		}
		return Continue, h.apply(h.nav.LastRow(cur))
	case ev.IsChar('w'):
		return Continue, h.apply(h.nav.NextNonEmpty(cur))
	case ev.IsChar('b'):
		return Continue, h.apply(h.nav.PrevNonEmpty(cur))
	case ev.IsChar('e'):
		return Continue, h.apply(h.nav.LastNonEmpty(cur))
	case ev.IsCtrl('d'), ev.Is(key.KeyPageDown):
		return Continue, h.apply(h.nav.PageDown(cur, count))
	case ev.IsCtrl('u'), ev.Is(key.KeyPageUp):
		return Continue, h.apply(h.nav.PageUp(cur, count))
	}
	return Continue, ""
}

// handlePending resolves the second key of a multi-key command. The
// pending command is cleared unless more column letters are being typed.
func (h *Handler) handlePending(ev key.Event) (ControlResult, string) {
	s := h.state
	pending := s.Pending

	if ev.Is(key.KeyEscape) {
		s.Pending = vim.Pending{}
		return Continue, MsgCommandCancelled
	}

	if pending.Kind == vim.PendingColumnLetters {
		return h.handleColumnLetters(ev)
	}

	s.Pending = vim.Pending{}
	switch pending.Kind {
	case vim.PendingSecondG:
		if ev.IsChar('g') {
			h.apply(h.nav.FirstRow(s.Cursor))
			return Continue, MsgJumpedFirstRow
		}
	case vim.PendingViewportLetter:
		if ev.IsRune() && !ev.IsModified() {
			if mode, ok := viewport.ModeForKey(ev.Rune); ok {
				s.ViewMode = mode
				return Continue, viewMessage(mode)
			}
		}
	case vim.PendingSecondD:
		if ev.IsChar('d') {
			return Continue, MsgReadOnly
		}
	case vim.PendingSecondY:
		if ev.IsChar('y') {
			return Continue, h.yankRow()
		}
	}

	h.metrics.RecordUnknown()
	return Continue, unknownSequence(pending.Keys(), ev.String())
}

// handleColumnLetters buffers a column label. Letters extend it, Backspace
// shortens it, and any other key jumps to the buffered column.
func (h *Handler) handleColumnLetters(ev key.Event) (ControlResult, string) {
	s := h.state
	switch {
	case ev.IsLetter():
		s.Pending = s.Pending.Append(ev.Rune)
		return Continue, ""
	case ev.Is(key.KeyBackspace):
		letters := s.Pending.Letters
		if letters != "" {
			letters = letters[:len(letters)-1]
		}
		s.Pending = vim.BufferedColumnLetters(letters)
		return Continue, ""
	}

	letters := s.Pending.Letters
	s.Pending = vim.Pending{}
	return Continue, h.apply(h.nav.GotoColumnLetters(s.Cursor, letters))
}

// apply stores a motion outcome. Applied motions return the viewport to
// Auto; the column scroll always follows the cursor.
func (h *Handler) apply(out navigation.Outcome) string {
	s := h.state
	s.Cursor = out.Cursor
	s.Columns.Follow(int(out.Cursor.Col))
	if out.Applied {
		s.ViewMode = viewport.Auto
		h.metrics.RecordMotion()
	}
	return out.Message
}

func (h *Handler) switchFile(next bool) ControlResult {
	if h.session == nil || !h.session.HasMultipleFiles() {
		return Continue
	}

	var switched bool
	if next {
		switched = h.session.NextFile()
	} else {
		switched = h.session.PrevFile()
	}
	if !switched {
		return Continue
	}
	return ReloadFile
}

func (h *Handler) yankRow() string {
	row := h.state.Cursor.Row
	if h.doc.RowCount() == 0 {
		return MsgNothingToYank
	}

	cols := h.doc.ColumnCount()
	cells := make([]string, cols)
	for c := range cells {
		cells[c] = h.doc.Cell(row, grid.ColIndex(c))
	}
	h.state.Registers.SetYank(int(row), cells)
	return MsgRowYanked
}

func viewMessage(m viewport.Mode) string {
	switch m {
	case viewport.Top:
		return MsgViewTop
	case viewport.Bottom:
		return MsgViewBottom
	default:
		return MsgViewCenter
	}
}
