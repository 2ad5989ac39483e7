// Package input interprets key events for the table viewer.
//
// A Handler owns no terminal and performs no I/O: it takes one key.Event,
// updates the interpreter State (cursor, viewport mode, column scroll,
// count prefix, pending command, command line) and returns a ControlResult
// plus an optional status message. The caller decides what to render and
// whether to reload or exit.
//
// # Key Bindings
//
//	j k h l, arrows    move (with count: 5j)
//	Enter              down one row
//	0  $               first / last column
//	gg  G  [n]G        first row / last row / row n
//	Home  End          first row / last row
//	w  b  e            next / previous / last non-empty cell in the row
//	Ctrl+d  Ctrl+u     page down / up (PageDown, PageUp)
//	zt  zz  zb         pin the selected row to the top / center / bottom
//	[  ]               previous / next file
//	yy                 yank the current row
//	?                  toggle help
//	:                  command line (:q, :q!, :<n>, :c <col>)
//	q  Ctrl+c          quit, refused while the document has unsaved changes
//	Esc                cancel a pending command, count, or the help overlay
//
// # Usage
//
//	state := input.NewState(input.DefaultConfig())
//	h := input.NewHandler(input.DefaultConfig(), state, doc, session)
//	result, msg := h.HandleKey(ev)
//	switch result {
//	case input.Quit:
//	    // exit
//	case input.ReloadFile:
//	    // load session's active file, then h.SetDocument and state.Reset
//	}
//
// Every failure reachable from a key is soft: it becomes a status message
// and leaves the state valid.
package input
