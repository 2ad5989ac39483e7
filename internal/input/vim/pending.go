package vim

// PendingKind identifies which multi-key command is waiting for input.
type PendingKind uint8

const (
	// PendingNone means no command is pending.
	PendingNone PendingKind = iota

	// PendingSecondG waits for the second g of "gg".
	PendingSecondG

	// PendingViewportLetter waits for t, z, or b after "z".
	PendingViewportLetter

	// PendingSecondD waits for the second d of "dd".
	PendingSecondD

	// PendingSecondY waits for the second y of "yy".
	PendingSecondY

	// PendingColumnLetters accumulates a column label such as "AB".
	PendingColumnLetters
)

// String returns a human-readable name for the kind.
func (k PendingKind) String() string {
	switch k {
	case PendingNone:
		return "None"
	case PendingSecondG:
		return "AwaitingSecondG"
	case PendingViewportLetter:
		return "AwaitingViewportLetter"
	case PendingSecondD:
		return "AwaitingSecondD"
	case PendingSecondY:
		return "AwaitingSecondY"
	case PendingColumnLetters:
		return "BufferedColumnLetters"
	default:
		return "Unknown"
	}
}

// Pending is the multi-key command in progress. The zero value is idle.
// Letters is only meaningful for PendingColumnLetters.
type Pending struct {
	Kind    PendingKind
	Letters string
}

// AwaitingSecondG returns the state after a lone "g".
func AwaitingSecondG() Pending { return Pending{Kind: PendingSecondG} }

// AwaitingViewportLetter returns the state after a lone "z".
func AwaitingViewportLetter() Pending { return Pending{Kind: PendingViewportLetter} }

// AwaitingSecondD returns the state after a lone "d".
func AwaitingSecondD() Pending { return Pending{Kind: PendingSecondD} }

// AwaitingSecondY returns the state after a lone "y".
func AwaitingSecondY() Pending { return Pending{Kind: PendingSecondY} }

// BufferedColumnLetters returns a column label buffer holding letters.
func BufferedColumnLetters(letters string) Pending {
	return Pending{Kind: PendingColumnLetters, Letters: letters}
}

// Active reports whether a command is pending.
func (p Pending) Active() bool {
	return p.Kind != PendingNone
}

// Append returns the buffer extended by r. Other kinds are returned as-is.
func (p Pending) Append(r rune) Pending {
	if p.Kind != PendingColumnLetters {
		return p
	}
	return BufferedColumnLetters(p.Letters + string(r))
}

// Keys returns the keys typed so far, as shown in the status bar.
func (p Pending) Keys() string {
	switch p.Kind {
	case PendingSecondG:
		return "g"
	case PendingViewportLetter:
		return "z"
	case PendingSecondD:
		return "d"
	case PendingSecondY:
		return "y"
	case PendingColumnLetters:
		return p.Letters
	default:
		return ""
	}
}

// String returns a debugging representation.
func (p Pending) String() string {
	if p.Kind == PendingColumnLetters {
		return p.Kind.String() + "(" + p.Letters + ")"
	}
	return p.Kind.String()
}
