package vim

import "strconv"

// DefaultMaxCount is the largest count prefix accepted by default.
const DefaultMaxCount = 100000

// CountState tracks count prefix accumulation.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool

	// Max is the saturation limit. Zero means DefaultMaxCount.
	Max int
}

// NewCountState creates a new count state with the given limit.
func NewCountState(max int) *CountState {
	return &CountState{Max: max}
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

func (c *CountState) limit() int {
	if c.Max <= 0 {
		return DefaultMaxCount
	}
	return c.Max
}

// AccumulateDigit adds a digit to the count.
// Returns true if the key was consumed as part of a count.
//
// A '0' with no count pending is not consumed; it is the first-column
// motion. A digit that would push the count past Max is consumed but
// ignored, so the count saturates at its last in-range value.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	next := c.Value*10 + digit
	if next > c.limit() || next < c.Value {
		return true
	}
	c.Value = next
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Take returns the effective count and whether one was typed, then clears
// the state. Every motion calls Take so a count never outlives one command.
func (c *CountState) Take() (count int, explicit bool) {
	count, explicit = c.Get(), c.Active
	c.Reset()
	return count, explicit
}

// String returns the pending digits for display, or "" when idle.
func (c *CountState) String() string {
	if !c.Active {
		return ""
	}
	return strconv.Itoa(c.Value)
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to the first column).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

