package key

import (
	"fmt"
	"strings"
)

// Key identifies a non-character key. Characters are KeyRune with the
// character in Event.Rune.
type Key uint8

// The closed set of keys the viewer distinguishes.
const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// aliases accepted by KeyFromName besides the display names.
var aliases = map[string]Key{
	"escape": KeyEscape,
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
}

// KeyFromName resolves a key name case-insensitively, or returns KeyNone.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := aliases[name]; ok {
		return k
	}
	for k, n := range keyNames {
		if Key(k) != KeyNone && Key(k) != KeyRune && strings.ToLower(n) == name {
			return Key(k)
		}
	}
	return KeyNone
}
