package key

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
)

// HasCtrl reports whether Control is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// With adds mod.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without clears mod.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String renders the set in Ctrl, Alt, Shift order, e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

// ModifierFromName resolves names such as "Ctrl", "C", "Meta" or "S".
// Unknown names give ModNone.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "meta", "option", "a", "m":
		return ModAlt
	case "shift", "s":
		return ModShift
	}
	return ModNone
}
