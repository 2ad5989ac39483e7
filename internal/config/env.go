package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LAZYCSV_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envBinding maps one variable suffix to a setting.
type envBinding struct {
	name  string
	path  string
	apply func(c *Config, v string) error
}

var envBindings = []envBinding{
	{"LOG_LEVEL", "log.level", func(c *Config, v string) error {
		c.Log.Level = strings.ToLower(v)
		return nil
	}},
	{"LOG_FILE", "log.file", func(c *Config, v string) error {
		c.Log.File = v
		return nil
	}},
	{"DELIMITER", "csv.delimiter", func(c *Config, v string) error {
		c.CSV.Delimiter = v
		return nil
	}},
	{"ENCODING", "csv.encoding", func(c *Config, v string) error {
		c.CSV.Encoding = v
		return nil
	}},
	{"NO_HEADERS", "csv.no_headers", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.CSV.NoHeaders = b
		return nil
	}},
	{"MAX_VISIBLE_COLUMNS", "view.max_visible_columns", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.View.MaxVisibleColumns = n
		return nil
	}},
	{"PAGE_SIZE", "view.page_size", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.View.PageSize = n
		return nil
	}},
}

// ApplyEnv overlays settings from LAZYCSV_* variables found via lookup.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok {
			continue
		}
		if err := b.apply(c, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, b.name, &ValidationError{
				Path:    b.path,
				Message: err.Error(),
				Value:   v,
			})
		}
	}
	return nil
}

// EnvNames lists the recognised variable names.
func EnvNames() []string {
	names := make([]string, len(envBindings))
	for i, b := range envBindings {
		names[i] = EnvPrefix + b.name
	}
	return names
}
