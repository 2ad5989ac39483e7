package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/funkybooboo/lazycsv-sub000/internal/input/key"
)

// convertKey converts a tcell key event to a key.Event. It reports false
// for keys the viewer has no use for.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods.HasCtrl() {
			return key.Ctrl(r), true
		}
		// Shift is implied by the rune itself.
		return key.NewRuneEvent(r, mods&^key.ModShift), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods&^key.ModCtrl), true
	case tcell.KeyTab:
		// Same code as Ctrl+I.
		return key.Event{}, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods&^key.ModCtrl), true
	default:
		if sk, ok := specialKeys[k]; ok {
			return key.NewSpecialEvent(sk, mods), true
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA))), true
		}
		return key.Event{}, false
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyHome:  key.KeyHome,
	tcell.KeyEnd:   key.KeyEnd,
	tcell.KeyPgUp:  key.KeyPageUp,
	tcell.KeyPgDn:  key.KeyPageDown,
	tcell.KeyUp:    key.KeyUp,
	tcell.KeyDown:  key.KeyDown,
	tcell.KeyLeft:  key.KeyLeft,
	tcell.KeyRight: key.KeyRight,
}

func convertMod(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}
