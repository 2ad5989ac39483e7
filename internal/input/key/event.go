package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Ctrl creates a Control+r event. Letters are normalized to lowercase.
func Ctrl(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl or Alt is pressed.
// Shift alone does not count for characters since it selects the character.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt) != 0
}

// IsChar reports whether e is the plain character r (no Ctrl or Alt).
func (e Event) IsChar(r rune) bool {
	return e.IsRune() && !e.IsModified() && e.Rune == r
}

// IsCtrl reports whether e is Control plus the letter r.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && e.Modifiers.HasCtrl() && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// Is reports whether e is the special key k without Ctrl or Alt.
func (e Event) Is(k Key) bool {
	return e.Key == k && !e.IsModified()
}

// Digit returns the decimal value of a plain digit key.
func (e Event) Digit() (int, bool) {
	if !e.IsRune() || e.IsModified() || e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// IsLetter reports whether e is a plain ASCII letter.
func (e Event) IsLetter() bool {
	if !e.IsRune() || e.IsModified() {
		return false
	}
	r := e.Rune
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String returns the key as shown to the user, e.g. "x", "Esc", "Ctrl+d".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
