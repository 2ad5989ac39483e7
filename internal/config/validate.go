package config

import (
	"errors"
	"slices"

	"github.com/funkybooboo/lazycsv-sub000/internal/document"
)

// MinMaxCount is the smallest accepted input.max_count.
const MinMaxCount = 10

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every unusable setting, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	if c.View.MaxVisibleColumns <= 0 {
		bad("view.max_visible_columns", "must be positive", c.View.MaxVisibleColumns)
	}
	if c.View.PageSize <= 0 {
		bad("view.page_size", "must be positive", c.View.PageSize)
	}
	if c.Input.MaxCount < MinMaxCount {
		bad("input.max_count", "must be at least 10", c.Input.MaxCount)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		bad("log.level", "must be one of debug, info, warn, error", c.Log.Level)
	}
	if _, err := document.ParseDelimiter(c.CSV.Delimiter); err != nil {
		bad("csv.delimiter", "must be a single character or \"tab\"", c.CSV.Delimiter)
	}
	if !document.SupportedEncoding(c.CSV.Encoding) {
		bad("csv.encoding", "unsupported encoding", c.CSV.Encoding)
	}
	for _, f := range c.Theme.fields() {
		if f.value == "" {
			continue
		}
		if _, err := parseHex(f.value); err != nil {
			bad("theme."+f.name, "must be a #rrggbb color", f.value)
		}
	}

	return errors.Join(errs...)
}

// DocumentOptions converts the csv section to load options.
// Call it only on a validated config.
func (c *Config) DocumentOptions() document.Options {
	delim, _ := document.ParseDelimiter(c.CSV.Delimiter)
	return document.Options{
		Delimiter: delim,
		NoHeaders: c.CSV.NoHeaders,
		Encoding:  c.CSV.Encoding,
	}
}
