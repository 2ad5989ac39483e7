package input

import (
	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
)

// ControlResult tells the caller what to do after a key was handled.
type ControlResult uint8

const (
	// Continue keeps running with the current file.
	Continue ControlResult = iota

	// ReloadFile loads the session's newly active file.
	ReloadFile

	// Quit exits the viewer.
	Quit
)

// String returns a string representation of the result.
func (r ControlResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case ReloadFile:
		return "reload"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Document is the table being viewed.
type Document interface {
	grid.Grid

	// IsDirty reports unsaved changes. Quit is refused while it is true.
	IsDirty() bool
}

// Session is the list of files open in the viewer.
type Session interface {
	ActiveFileIndex() int
	HasMultipleFiles() bool

	// NextFile and PrevFile advance the active file with wraparound and
	// report whether the active file changed.
	NextFile() bool
	PrevFile() bool
}

// Logger receives debug traces of key dispatch.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
