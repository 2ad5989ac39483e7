package grid

import (
	"errors"
	"testing"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		col  ColIndex
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{730, "ABC"},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := ColumnLetter(tt.col); got != tt.want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestParseColumnLetters(t *testing.T) {
	tests := []struct {
		label string
		want  ColIndex
	}{
		{"A", 0},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
		{"ZZ", 701},
		{"AAA", 702},
		{"a", 0},
		{"aB", 27},
		{"Ab", 27},
		{" c ", 2},
	}

	for _, tt := range tests {
		got, err := ParseColumnLetters(tt.label)
		if err != nil {
			t.Errorf("ParseColumnLetters(%q) error = %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColumnLetters(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestParseColumnLettersInvalid(t *testing.T) {
	if _, err := ParseColumnLetters(""); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("ParseColumnLetters(\"\") error = %v, want ErrEmptyLabel", err)
	}
	for _, label := range []string{"123", "A1", "A-B", "É"} {
		if _, err := ParseColumnLetters(label); !errors.Is(err, ErrInvalidLabel) {
			t.Errorf("ParseColumnLetters(%q) error = %v, want ErrInvalidLabel", label, err)
		}
	}
}

func TestColumnLetterRoundTrip(t *testing.T) {
	for c := ColIndex(0); c <= 701; c++ {
		label := ColumnLetter(c)
		got, err := ParseColumnLetters(label)
		if err != nil {
			t.Fatalf("ParseColumnLetters(%q) error = %v", label, err)
		}
		if got != c {
			t.Fatalf("round trip %d -> %q -> %d", c, label, got)
		}
		if ColumnLetter(got) != label {
			t.Fatalf("ColumnLetter(ParseColumnLetters(%q)) = %q", label, ColumnLetter(got))
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 4}

	if got := b.ClampRow(10); got != 2 {
		t.Errorf("ClampRow(10) = %d, want 2", got)
	}
	if got := b.ClampRow(-4); got != 0 {
		t.Errorf("ClampRow(-4) = %d, want 0", got)
	}
	if got := b.ClampCol(3); got != 3 {
		t.Errorf("ClampCol(3) = %d, want 3", got)
	}
	if got := b.Clamp(NewPosition(7, 9)); got != NewPosition(2, 3) {
		t.Errorf("Clamp = %v, want 3:4", got)
	}

	empty := Bounds{}
	if !empty.Empty() {
		t.Error("Bounds{} should be empty")
	}
	if got := empty.Clamp(NewPosition(5, 5)); got != NewPosition(0, 0) {
		t.Errorf("empty Clamp = %v, want origin", got)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Rows: 2, Cols: 2}
	if !b.Contains(NewPosition(1, 1)) {
		t.Error("expected 1,1 inside")
	}
	if b.Contains(NewPosition(2, 0)) {
		t.Error("expected 2,0 outside")
	}
	if b.Contains(NewPosition(0, -1)) {
		t.Error("expected 0,-1 outside")
	}
}

func TestIndexAdd(t *testing.T) {
	if got := RowIndex(2).Add(-5); got != 0 {
		t.Errorf("RowIndex(2).Add(-5) = %d, want 0", got)
	}
	if got := ColIndex(2).Add(3); got != 5 {
		t.Errorf("ColIndex(2).Add(3) = %d, want 5", got)
	}
	if got := RowIndex(0).LineNumber(); got != 1 {
		t.Errorf("LineNumber = %d, want 1", got)
	}
	if got := NewPosition(0, 2).String(); got != "1:3" {
		t.Errorf("Position.String = %q, want 1:3", got)
	}
}
