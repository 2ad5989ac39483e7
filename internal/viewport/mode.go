package viewport

import "strings"

// Mode decides which screen line the selected row is scrolled to.
// A mode is sticky: it holds until a viewport command changes it or an
// ordinary motion resets it to Auto.
type Mode uint8

const (
	// Auto centers the selection once it passes the middle of the window.
	Auto Mode = iota

	// Top pins the selected row to the first visible line.
	Top

	// Center keeps the selected row in the middle of the window.
	Center

	// Bottom pins the selected row to the last visible line.
	Bottom
)

// String returns the mode name in lowercase.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Top:
		return "top"
	case Center:
		return "center"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode named s (case-insensitive).
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return Auto, true
	case "top":
		return Top, true
	case "center":
		return Center, true
	case "bottom":
		return Bottom, true
	default:
		return Auto, false
	}
}

// ModeForKey maps the letter typed after "z" to a mode.
func ModeForKey(r rune) (Mode, bool) {
	switch r {
	case 't':
		return Top, true
	case 'z':
		return Center, true
	case 'b':
		return Bottom, true
	default:
		return Auto, false
	}
}
