package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Column label errors.
var (
	ErrEmptyLabel   = errors.New("empty column label")
	ErrInvalidLabel = errors.New("invalid column label")
)

var singleLetters = [26]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// ColumnLetter converts a column index to its label (0 -> A, 25 -> Z, 26 -> AA).
// Negative indexes return "".
func ColumnLetter(c ColIndex) string {
	if c < 0 {
		return ""
	}
	if int(c) < len(singleLetters) {
		return singleLetters[c]
	}

	var buf [16]byte
	i := len(buf)
	n := int(c) + 1
	for n > 0 {
		i--
		buf[i] = byte('A' + (n-1)%26)
		n = (n - 1) / 26
	}
	return string(buf[i:])
}

// ParseColumnLetters converts a label such as "A", "az" or "BA" to a column index.
//
// The label is read as a base-26 numeral with digits 1..26, so every label
// maps to exactly one index. Letters are case-insensitive.
func ParseColumnLetters(label string) (ColIndex, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, ErrEmptyLabel
	}

	n := 0
	for _, r := range label {
		switch {
		case r >= 'A' && r <= 'Z':
			r -= 'A'
		case r >= 'a' && r <= 'z':
			r -= 'a'
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
		}
		// Labels longer than any real table would overflow int; clamp instead.
		if n > (1<<31)/26 {
			n = 1 << 31
			continue
		}
		n = n*26 + int(r) + 1
	}
	return ColIndex(n - 1), nil
}
