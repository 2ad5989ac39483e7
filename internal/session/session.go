// Package session tracks the set of files open in the viewer and which one
// is active.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/funkybooboo/lazycsv-sub000/internal/document"
)

// Errors returned by discovery.
var (
	ErrNoFiles     = errors.New("no CSV files found")
	ErrInvalidPath = errors.New("invalid path")
)

// Session is an ordered list of files with one active entry.
type Session struct {
	files  []string
	active int
	opts   document.Options
}

// New creates a session over files with the given active index.
func New(files []string, active int, opts document.Options) (*Session, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if active < 0 || active >= len(files) {
		return nil, fmt.Errorf("active index %d out of range [0,%d)", active, len(files))
	}
	return &Session{files: files, active: active, opts: opts}, nil
}

// Open discovers files from path.
//
// For a file, the session holds it together with every .csv and .tsv file
// in the same directory, sorted by name, with the given file active. For a
// directory, the session holds its tabular files with the first active.
func Open(path string, opts document.Options) (*Session, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path provided", ErrInvalidPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
	}

	if info.IsDir() {
		files, err := Scan(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w in directory: %s", ErrNoFiles, path)
		}
		return New(files, 0, opts)
	}

	dir := filepath.Dir(path)
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	clean := filepath.Join(dir, filepath.Base(path))
	if !slices.Contains(files, clean) {
		files = append(files, clean)
		sortFiles(files)
	}
	return New(files, slices.Index(files, clean), opts)
}

// Scan returns the .csv and .tsv files directly inside dir, sorted by name.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !document.IsTabular(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sortFiles(files)
	return files, nil
}

// sortFiles orders by normalized base name so that names typed on
// different platforms compare equal.
func sortFiles(files []string) {
	slices.SortFunc(files, func(a, b string) int {
		return strings.Compare(norm.NFC.String(filepath.Base(a)), norm.NFC.String(filepath.Base(b)))
	})
}

// Files returns the file paths in order.
func (s *Session) Files() []string {
	return slices.Clone(s.files)
}

// Names returns the base name of each file, for display.
func (s *Session) Names() []string {
	names := make([]string, len(s.files))
	for i, f := range s.files {
		names[i] = norm.NFC.String(filepath.Base(f))
	}
	return names
}

// FileCount returns the number of files.
func (s *Session) FileCount() int { return len(s.files) }

// ActiveFileIndex returns the index of the active file.
func (s *Session) ActiveFileIndex() int { return s.active }

// Current returns the path of the active file.
func (s *Session) Current() string { return s.files[s.active] }

// Options returns the load options shared by every file.
func (s *Session) Options() document.Options { return s.opts }

// HasMultipleFiles reports whether switching files is possible.
func (s *Session) HasMultipleFiles() bool { return len(s.files) > 1 }

// NextFile activates the next file, wrapping to the first.
// It returns false when there is nothing to switch to.
func (s *Session) NextFile() bool {
	if len(s.files) <= 1 {
		return false
	}
	s.active = (s.active + 1) % len(s.files)
	return true
}

// PrevFile activates the previous file, wrapping to the last.
func (s *Session) PrevFile() bool {
	if len(s.files) <= 1 {
		return false
	}
	if s.active == 0 {
		s.active = len(s.files) - 1
	} else {
		s.active--
	}
	return true
}

// Activate makes the file at index i active. It reports false for an index
// out of range.
func (s *Session) Activate(i int) bool {
	if i < 0 || i >= len(s.files) {
		return false
	}
	s.active = i
	return true
}

// Load reads the active file.
func (s *Session) Load() (*document.Document, error) {
	return document.Load(s.Current(), s.opts)
}
