package document

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options control how a file is parsed.
type Options struct {
	// Delimiter is the field separator. Zero detects it from the file.
	Delimiter rune

	// NoHeaders treats the first line as data and names the columns
	// "Column 1", "Column 2", ...
	NoHeaders bool

	// Encoding is a WHATWG encoding label such as "utf-8", "utf-16",
	// "latin1" or "windows-1252". Empty means UTF-8.
	Encoding string
}

// candidates are the delimiters tried by detection, in tie-break order.
var candidates = []rune{',', ';', '\t', '|'}

// Load reads and parses the file at path.
func Load(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Parse reads a document from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	if opts.Delimiter != 0 && !validDelimiter(opts.Delimiter) {
		return nil, fmt.Errorf("%w: delimiter %q", ErrInvalidOptions, opts.Delimiter)
	}

	decoded, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = DetectDelimiter(data)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	var headers []string
	rows := records
	if opts.NoHeaders {
		width := 0
		for _, rec := range records {
			width = max(width, len(rec))
		}
		headers = make([]string, width)
		for i := range headers {
			headers[i] = "Column " + strconv.Itoa(i+1)
		}
	} else {
		headers, rows = records[0], records[1:]
	}

	doc := New(headers, rows)
	doc.delimiter = delim
	return doc, nil
}

// decoder wraps r so it yields UTF-8. A byte order mark, when present,
// overrides the requested encoding and is stripped.
func decoder(r io.Reader, label string) (io.Reader, error) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, label)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// SupportedEncoding reports whether label names an encoding Load can read.
func SupportedEncoding(label string) bool {
	if strings.TrimSpace(label) == "" {
		return true
	}
	_, err := decoder(strings.NewReader(""), label)
	return err == nil
}

// DetectDelimiter guesses the separator from the first line of data by
// counting candidate characters outside quotes. Comma wins ties and is the
// fallback when no candidate appears.
func DetectDelimiter(data []byte) rune {
	line := firstLine(data)

	counts := make(map[rune]int, len(candidates))
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best, bestCount := ',', 0
	for _, c := range candidates {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func firstLine(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

// ParseDelimiter converts a user-supplied delimiter such as ",", "tab" or
// "\t" to a rune. The empty string means auto-detect and returns 0.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || !validDelimiter(r) {
		return 0, fmt.Errorf("%w: delimiter %q", ErrInvalidOptions, s)
	}
	return r, nil
}

func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

// IsTabular reports whether path has a .csv or .tsv extension.
func IsTabular(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return true
	}
	return false
}

