package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "G", "1", "$"
//   - Special keys: "Enter", "Escape", "PageDown"
//   - With modifiers: "Ctrl+D", "Alt+x"
//   - Vim-style: "<C-d>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-d", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return parseKey(parts[0], ModNone)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+D" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses a key name or single character with already-known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// ParseSequence parses a sequence of keys.
// The string can contain space-separated specs or a continuous run of
// characters with embedded <...> specs.
// Examples: "g g", "99G", "<C-d>", "zt", ":c AA<CR>"
func ParseSequence(s string) ([]Event, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	// Space-separated specs, unless the string is a literal run containing
	// <...> specs (":c AA<CR>").
	if strings.Contains(s, " ") && !strings.Contains(s, "<") {
		var events []Event
		for _, part := range strings.Fields(s) {
			event, err := Parse(part)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
		return events, nil
	}

	var events []Event
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '<' {
			if end := indexRune(runes[i:], '>'); end > 1 {
				event, err := Parse(string(runes[i : i+end+1]))
				if err != nil {
					return nil, err
				}
				events = append(events, event)
				i += end
				continue
			}
		}
		events = append(events, NewRuneEvent(runes[i], ModNone))
	}
	return events, nil
}

// MustParseSequence parses a sequence string and panics on error.
func MustParseSequence(s string) []Event {
	events, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return events
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
