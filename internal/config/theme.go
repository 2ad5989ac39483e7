package config

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ThemeConfig holds hex colors for the table view. Empty values keep the
// terminal default.
type ThemeConfig struct {
	SelectedFG string `toml:"selected_fg"`
	SelectedBG string `toml:"selected_bg"`
	HeaderFG   string `toml:"header_fg"`
	DimFG      string `toml:"dim_fg"`
	ErrorFG    string `toml:"error_fg"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		SelectedFG: "#000000",
		SelectedBG: "#5fafff",
		HeaderFG:   "#ffd75f",
		DimFG:      "#808080",
		ErrorFG:    "#ff5f5f",
	}
}

// Theme is a resolved palette ready for drawing.
type Theme struct {
	Selected tcell.Style
	Header   tcell.Style
	Dim      tcell.Style
	Error    tcell.Style
	Normal   tcell.Style
}

// Resolve converts the hex strings to tcell styles.
func (t ThemeConfig) Resolve() (Theme, error) {
	var colors [5]tcell.Color
	for i, f := range t.fields() {
		c, err := parseHex(f.value)
		if err != nil {
			return Theme{}, &ValidationError{Path: "theme." + f.name, Message: err.Error(), Value: f.value}
		}
		colors[i] = c
	}

	base := tcell.StyleDefault
	return Theme{
		Selected: base.Foreground(colors[0]).Background(colors[1]),
		Header:   base.Foreground(colors[2]).Bold(true),
		Dim:      base.Foreground(colors[3]),
		Error:    base.Foreground(colors[4]).Bold(true),
		Normal:   base,
	}, nil
}

type themeField struct {
	name  string
	value string
}

func (t ThemeConfig) fields() []themeField {
	return []themeField{
		{"selected_fg", t.SelectedFG},
		{"selected_bg", t.SelectedBG},
		{"header_fg", t.HeaderFG},
		{"dim_fg", t.DimFG},
		{"error_fg", t.ErrorFG},
	}
}

// parseHex maps "" to the terminal default color.
func parseHex(s string) (tcell.Color, error) {
	if s == "" {
		return tcell.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
