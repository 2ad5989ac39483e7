// Package key provides key event types and parsing for the input system.
//
// This package defines the closed set of keys the viewer understands:
//
//   - Key: Identifies a keyboard key (special keys or KeyRune)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers
//
// Control combinations are carried as the lowercase rune plus ModCtrl, so
// Ctrl+D is Event{Key: KeyRune, Rune: 'd', Modifiers: ModCtrl} regardless of
// how the terminal reported it.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "G", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+D", "Ctrl+U"
//   - Vim-style: "<C-d>", "<CR>", "<Esc>"
//
// ParseSequence turns a string like "99G" or "zt" or "<C-d>j" into the
// events a user would type, which keeps interpreter tests readable.
package key
