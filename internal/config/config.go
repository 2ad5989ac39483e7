package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppName names the config directory.
const AppName = "lazycsv"

// Config holds every setting.
type Config struct {
	View  ViewConfig  `toml:"view"`
	Input InputConfig `toml:"input"`
	CSV   CSVConfig   `toml:"csv"`
	Log   LogConfig   `toml:"log"`
	Theme ThemeConfig `toml:"theme"`
}

// ViewConfig controls the table view.
type ViewConfig struct {
	// MaxVisibleColumns is the number of columns shown at once.
	MaxVisibleColumns int `toml:"max_visible_columns"`

	// PageSize is the number of rows moved by Ctrl+d and Ctrl+u.
	PageSize int `toml:"page_size"`

	// Watch reloads the active file when it changes on disk.
	Watch bool `toml:"watch"`
}

// InputConfig controls key interpretation.
type InputConfig struct {
	// MaxCount caps numeric count prefixes.
	MaxCount int `toml:"max_count"`
}

// CSVConfig controls file parsing.
type CSVConfig struct {
	// Delimiter is a single character, "tab", or empty to auto-detect.
	Delimiter string `toml:"delimiter"`

	// NoHeaders treats the first line as data.
	NoHeaders bool `toml:"no_headers"`

	// Encoding is a WHATWG encoding label.
	Encoding string `toml:"encoding"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			MaxVisibleColumns: 10,
			PageSize:          20,
			Watch:             true,
		},
		Input: InputConfig{
			MaxCount: 100000,
		},
		CSV: CSVConfig{
			Encoding: "utf-8",
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultTheme(),
	}
}

// DefaultPath returns the user config file location, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}

// Load builds the configuration from defaults, the file at path (if it
// exists) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays settings from a TOML file. A missing file is ignored.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.decode(path, bytes.NewReader(data))
}

// LoadReader overlays settings read from r.
func (c *Config) LoadReader(r io.Reader) error {
	return c.decode("<reader>", r)
}

func (c *Config) decode(source string, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			perr.Message = "unknown setting: " + serr.String()
		}
		return perr
	}
	return nil
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}
