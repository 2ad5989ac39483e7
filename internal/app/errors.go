package app

import (
	"errors"
	"strings"
)

var (
	// ErrQuit ends Run without an error.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")
)

// OperationError records which file operation failed, e.g. "open data.csv"
// or "reload data.csv".
type OperationError struct {
	Op      string
	Target  string
	Context string
	Err     error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// WithContext sets a short qualifier shown in parentheses. It is nil-safe.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.Op + " " + e.Target)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsQuit reports whether err asks for a normal exit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
