package input

import (
	"strconv"
	"strings"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/key"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/vim"
)

// CommandLine is the text typed after ":".
type CommandLine struct {
	active bool
	buf    []rune
}

// Open starts a new, empty command line.
func (c *CommandLine) Open() {
	c.active = true
	c.buf = c.buf[:0]
}

// Close ends the command line and discards its text.
func (c *CommandLine) Close() {
	c.active = false
	c.buf = c.buf[:0]
}

// Active reports whether the command line is open.
func (c *CommandLine) Active() bool {
	return c.active
}

// Insert appends r.
func (c *CommandLine) Insert(r rune) {
	c.buf = append(c.buf, r)
}

// Backspace removes the last character. It returns false when empty.
func (c *CommandLine) Backspace() bool {
	if len(c.buf) == 0 {
		return false
	}
	c.buf = c.buf[:len(c.buf)-1]
	return true
}

// Text returns the typed text.
func (c *CommandLine) Text() string {
	return string(c.buf)
}

// handleCommandLine edits or runs the command line.
func (h *Handler) handleCommandLine(ev key.Event) (ControlResult, string) {
	cl := &h.state.Command
	switch {
	case ev.Is(key.KeyEscape), ev.IsCtrl('c'):
		cl.Close()
		return Continue, MsgCommandCancelled
	case ev.Is(key.KeyEnter):
		text := strings.TrimSpace(cl.Text())
		cl.Close()
		return h.execute(text)
	case ev.Is(key.KeyBackspace):
		cl.Backspace()
	case ev.IsRune() && !ev.IsModified():
		cl.Insert(ev.Rune)
	}
	return Continue, ""
}

// execute runs one command line.
func (h *Handler) execute(cmd string) (ControlResult, string) {
	if cmd == "" {
		return Continue, ""
	}

	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "q", "quit", "x", "wq":
		if h.doc.IsDirty() {
			return Continue, MsgNoWrite
		}
		return Quit, ""
	case "q!", "quit!":
		return Quit, ""
	case "w", "write":
		return Continue, MsgReadOnlySave
	case "h", "help":
		return Continue, MsgHelpHint
	case "c":
		return Continue, h.columnCommand(arg)
	}

	if n, err := strconv.Atoi(cmd); err == nil && n >= 0 {
		h.apply(h.nav.GotoLine(h.state.Cursor, n))
		return Continue, jumpedToRow(n)
	}
	return Continue, unknownCommand(cmd)
}

// columnCommand handles ":c <letters|number>". With no argument it starts
// buffering a column label from the following keys.
func (h *Handler) columnCommand(arg string) string {
	if arg == "" {
		h.state.Pending = vim.BufferedColumnLetters("")
		return MsgColumnPrompt
	}
	if strings.ContainsAny(arg, " \t") {
		return MsgColumnUsage
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return h.apply(h.nav.GotoColumnNumber(h.state.Cursor, n))
	}
	if _, err := grid.ParseColumnLetters(arg); err != nil {
		return invalidColumn(arg)
	}
	return h.apply(h.nav.GotoColumnLetters(h.state.Cursor, arg))
}
