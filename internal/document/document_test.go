package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "people.csv", "Name,Age,City\nAlice,30,NYC\nBob,25,LA\n")

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.RowCount() != 2 || doc.ColumnCount() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", doc.RowCount(), doc.ColumnCount())
	}
	if got := doc.Header(0); got != "Name" {
		t.Errorf("Header(0) = %q, want Name", got)
	}
	if got := doc.Cell(1, 2); got != "LA" {
		t.Errorf("Cell(1,2) = %q, want LA", got)
	}
	if doc.Name() != "people.csv" || doc.Path() != path {
		t.Errorf("Name/Path = %q %q", doc.Name(), doc.Path())
	}
	if doc.IsDirty() {
		t.Error("freshly loaded document is dirty")
	}
}

func TestOutOfRangeIsEmpty(t *testing.T) {
	doc := New([]string{"a"}, [][]string{{"x"}})

	cases := []struct {
		row grid.RowIndex
		col grid.ColIndex
	}{
		{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {99, 99},
	}
	for _, c := range cases {
		if got := doc.Cell(c.row, c.col); got != "" {
			t.Errorf("Cell(%d,%d) = %q, want empty", c.row, c.col, got)
		}
	}
	if doc.Header(5) != "" || doc.Header(-1) != "" {
		t.Error("out-of-range Header should be empty")
	}
}

func TestRaggedRowsNormalized(t *testing.T) {
	doc, err := Parse(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.ColumnCount() != 3 || doc.RowCount() != 2 {
		t.Fatalf("size = %dx%d, want 2x3", doc.RowCount(), doc.ColumnCount())
	}
	if got := doc.Cell(0, 2); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := doc.Cell(1, 3); got != "" {
		t.Errorf("truncated cell = %q, want empty", got)
	}
	if got := doc.Cell(1, 2); got != "3" {
		t.Errorf("Cell(1,2) = %q, want 3", got)
	}
}

func TestNoHeaders(t *testing.T) {
	doc, err := Parse(strings.NewReader("1,2\n3,4,5\n"), Options{NoHeaders: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", doc.RowCount())
	}
	want := []string{"Column 1", "Column 2", "Column 3"}
	got := doc.Headers()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Headers = %v, want %v", got, want)
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		data string
		want rune
	}{
		{"a,b,c\n", ','},
		{"a;b;c\n", ';'},
		{"a\tb\tc\n", '\t'},
		{"a|b|c\n", '|'},
		{"single\n", ','},
		{`"x;y;z",b` + "\n", ','},
		{"\n\na;b\n", ';'},
		{"a,b;c\n", ','},
	}

	for _, tt := range tests {
		if got := DetectDelimiter([]byte(tt.data)); got != tt.want {
			t.Errorf("DetectDelimiter(%q) = %q, want %q", tt.data, got, tt.want)
		}
	}
}

func TestLoadTSVAndSemicolon(t *testing.T) {
	tsv := writeFile(t, "data.tsv", "x,y\tz\n1,2\t3\n")
	doc, err := Load(tsv, Options{})
	if err != nil {
		t.Fatalf("Load tsv: %v", err)
	}
	if doc.ColumnCount() != 2 || doc.Header(0) != "x,y" || doc.Delimiter() != '\t' {
		t.Errorf("tsv headers = %v delim %q", doc.Headers(), doc.Delimiter())
	}

	semi := writeFile(t, "eu.csv", "name;price\nbread;1,50\n")
	doc, err = Load(semi, Options{})
	if err != nil {
		t.Fatalf("Load semicolon: %v", err)
	}
	if got := doc.Cell(0, 1); got != "1,50" {
		t.Errorf("Cell(0,1) = %q, want 1,50", got)
	}

	forced, err := Load(semi, Options{Delimiter: ','})
	if err != nil {
		t.Fatalf("Load forced: %v", err)
	}
	if forced.ColumnCount() != 1 {
		t.Errorf("forced comma ColumnCount = %d, want 1", forced.ColumnCount())
	}
}

func TestEncodings(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{"utf8 bom stripped", []byte("\xef\xbb\xbfname\ncafé\n"), "", "café"},
		{"latin1", []byte("name\ncaf\xe9\n"), "latin1", "café"},
		{"windows-1252", []byte("name\n\x80 5\n"), "windows-1252", "€ 5"},
		{"utf-16 with bom", []byte("\xff\xfen\x00\n\x00\xe9\x00\n\x00"), "utf-16", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(string(tt.data)), Options{Encoding: tt.encoding})
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := doc.Cell(0, 0); got != tt.want {
				t.Errorf("Cell(0,0) = %q, want %q", got, tt.want)
			}
			if got := doc.Header(0); got != "name" && got != "n" {
				t.Errorf("Header(0) = %q, BOM not stripped", got)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader(" \n\n"), Options{}); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty input error = %v, want ErrEmptyFile", err)
	}
	if _, err := Parse(strings.NewReader("a\n"), Options{Encoding: "klingon"}); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("bad encoding error = %v, want ErrUnknownEncoding", err)
	}
	if _, err := Parse(strings.NewReader("a\n"), Options{Delimiter: '"'}); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("quote delimiter error = %v, want ErrInvalidOptions", err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}

	empty := writeFile(t, "empty.csv", "")
	if _, err := Load(empty, Options{}); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty file error = %v, want ErrEmptyFile", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{";", ';', false},
		{"ab", 0, true},
		{`"`, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDelimiter(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestSupportedEncoding(t *testing.T) {
	for _, label := range []string{"", "utf-8", "UTF-16", "latin1", "iso-8859-1", "windows-1252"} {
		if !SupportedEncoding(label) {
			t.Errorf("SupportedEncoding(%q) = false", label)
		}
	}
	if SupportedEncoding("klingon") {
		t.Error("SupportedEncoding(klingon) = true")
	}
}

func TestDirtyFlag(t *testing.T) {
	doc := New([]string{"a"}, nil)
	doc.SetDirty(true)
	if !doc.IsDirty() {
		t.Error("SetDirty(true) not reflected")
	}
	if !strings.Contains(doc.String(), "0 rows") {
		t.Errorf("String() = %q", doc.String())
	}
}

func TestIsTabular(t *testing.T) {
	for path, want := range map[string]bool{
		"a.csv": true, "B.TSV": true, "c.txt": false, "csv": false,
	} {
		if got := IsTabular(path); got != want {
			t.Errorf("IsTabular(%q) = %v, want %v", path, got, want)
		}
	}
}
