package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/funkybooboo/lazycsv-sub000/internal/config"
	"github.com/funkybooboo/lazycsv-sub000/internal/document"
	"github.com/funkybooboo/lazycsv-sub000/internal/grid"
	"github.com/funkybooboo/lazycsv-sub000/internal/input"
	"github.com/funkybooboo/lazycsv-sub000/internal/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newRenderer(t *testing.T, s tcell.Screen) (*Renderer, config.Theme) {
	t.Helper()
	theme, err := config.DefaultTheme().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return New(s, theme, DefaultOptions()), theme
}

func line(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func people(n int) *document.Document {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("name%d", i), fmt.Sprint(20 + i), "NYC"}
	}
	return document.New([]string{"Name", "Age", "City"}, rows)
}

func TestDrawTable(t *testing.T) {
	s := newScreen(t, 60, 10)
	r, theme := newRenderer(t, s)
	doc := people(20)
	st := input.NewState(input.DefaultConfig())
	st.Cursor = grid.NewPosition(0, 1)

	r.Draw(View{Grid: doc, State: st, Files: []string{"people.csv"}})

	if got := line(s, 0); !strings.Contains(got, "A") || !strings.Contains(got, "C") {
		t.Errorf("letter row = %q", got)
	}
	if got := line(s, 1); !strings.Contains(got, "Name") || !strings.Contains(got, "City") {
		t.Errorf("header row = %q", got)
	}
	if got := line(s, 2); !strings.HasPrefix(got, "  1 │ name0") {
		t.Errorf("first data row = %q", got)
	}
	if got := line(s, 7); !strings.HasPrefix(got, "  6 │ name5") {
		t.Errorf("last data row = %q", got)
	}
	if got := line(s, 8); !strings.HasPrefix(got, "Files (1/1): ► people.csv") {
		t.Errorf("file row = %q", got)
	}
	if got := line(s, 9); !strings.Contains(got, "Row 1/20") {
		t.Errorf("status row = %q", got)
	}

	// Column B starts after the gutter, one separator and column A.
	_, _, style, _ := s.GetContent(14, 2) //nolint:staticcheck // GetContent is the correct API
	if style != theme.Selected {
		t.Errorf("selected cell style = %v, want %v", style, theme.Selected)
	}
}

func TestDrawFollowsViewport(t *testing.T) {
	s := newScreen(t, 60, 10)
	r, _ := newRenderer(t, s)
	st := input.NewState(input.DefaultConfig())
	st.Cursor = grid.NewPosition(15, 0)

	r.Draw(View{Grid: people(20), State: st})

	// Six rows on screen; auto mode centers row 16 and starts at row 13.
	if got := line(s, 2); !strings.HasPrefix(got, " 13 │") {
		t.Errorf("first visible row = %q", got)
	}
	if r.Height() != 6 {
		t.Errorf("Height() = %d, want 6", r.Height())
	}
}

func TestDrawHorizontalScroll(t *testing.T) {
	headers := make([]string, 15)
	row := make([]string, 15)
	for i := range headers {
		headers[i] = fmt.Sprintf("h%d", i)
		row[i] = "x"
	}
	doc := document.New(headers, [][]string{row})

	s := newScreen(t, 100, 8)
	r, _ := newRenderer(t, s)
	st := input.NewState(input.DefaultConfig())
	st.Cursor = grid.NewPosition(0, 12)
	st.Columns.Follow(12)

	r.Draw(View{Grid: doc, State: st})

	header := line(s, 1)
	if !strings.Contains(header, "h3 ") || !strings.Contains(header, "h12") {
		t.Errorf("header row = %q, want columns D..M", header)
	}
	if strings.Contains(header, "h2 ") || strings.Contains(header, "h13") {
		t.Errorf("header row = %q shows columns outside the scroll range", header)
	}
}

func TestDrawEmptyDocument(t *testing.T) {
	s := newScreen(t, 60, 8)
	r, _ := newRenderer(t, s)

	r.Draw(View{Grid: document.New([]string{"a", "b"}, nil), State: input.NewState(input.DefaultConfig())})

	if got := line(s, 2); !strings.Contains(got, "(no data rows)") {
		t.Errorf("row 2 = %q", got)
	}
	if got := line(s, 7); !strings.Contains(got, "<no data>") {
		t.Errorf("status = %q", got)
	}
}

func TestDrawStatusVariants(t *testing.T) {
	s := newScreen(t, 80, 8)
	r, theme := newRenderer(t, s)
	doc := people(3)
	st := input.NewState(input.DefaultConfig())

	r.Draw(View{
		Grid:       doc,
		State:      st,
		Message:    status.Message{Text: "boom", Kind: status.Error, Persistent: true},
		HasMessage: true,
	})
	if got := line(s, 7); !strings.HasPrefix(got, "boom") || !strings.Contains(got, "-- NORMAL --") {
		t.Errorf("status = %q", got)
	}
	_, _, style, _ := s.GetContent(0, 7) //nolint:staticcheck // GetContent is the correct API
	if style != theme.Error {
		t.Errorf("error style = %v, want %v", style, theme.Error)
	}

	st.Command.Open()
	st.Command.Insert('4')
	st.Command.Insert('2')
	r.Draw(View{Grid: doc, State: st})
	if got := line(s, 7); !strings.HasPrefix(got, ":42") {
		t.Errorf("command line = %q", got)
	}
}

func TestDrawHelp(t *testing.T) {
	s := newScreen(t, 80, 24)
	r, _ := newRenderer(t, s)
	st := input.NewState(input.DefaultConfig())
	st.HelpVisible = true

	r.Draw(View{Grid: people(3), State: st})

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(line(s, y), HelpLines[0]) {
			found = true
		}
	}
	if !found {
		t.Error("help overlay not drawn")
	}
}

func TestFileList(t *testing.T) {
	tests := []struct {
		files  []string
		active int
		want   string
	}{
		{nil, 0, ""},
		{[]string{"a.csv"}, 0, "Files (1/1): ► a.csv"},
		{[]string{"a.csv", "b.csv", "c.csv"}, 1, "Files (2/3): a.csv | ► b.csv | c.csv"},
	}
	for _, tt := range tests {
		if got := FileList(tt.files, tt.active); got != tt.want {
			t.Errorf("FileList(%v, %d) = %q, want %q", tt.files, tt.active, got, tt.want)
		}
	}
}

func TestStatusInfo(t *testing.T) {
	st := input.NewState(input.DefaultConfig())
	st.Cursor = grid.NewPosition(1, 1)
	st.Count.AccumulateDigit('7')

	info := StatusInfo(View{Grid: people(3), State: st, Dirty: true})
	if info.Row != 2 || info.TotalRows != 3 || info.ColLetter != "B" || info.ColName != "Age" {
		t.Errorf("StatusInfo = %+v", info)
	}
	if info.Cell != "21" || !info.HasData || !info.Dirty || info.Pending != "7" {
		t.Errorf("StatusInfo = %+v", info)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcdef", 4, "abc…"},
		{"日本語", 4, "日… "},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.width); got != tt.want {
			t.Errorf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
