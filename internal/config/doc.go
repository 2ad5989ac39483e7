// Package config provides the configuration for lazycsv.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← LAZYCSV_*
//	├─────────────────────────────┤
//	│  2. User Config File        │  ← ~/.config/lazycsv/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing config file is not an error. Unknown keys in an existing file
// are, so typos do not go unnoticed.
//
// # Example
//
//	[view]
//	max_visible_columns = 12
//	page_size = 30
//	watch = true
//
//	[input]
//	max_count = 100000
//
//	[csv]
//	delimiter = ";"
//	no_headers = false
//	encoding = "windows-1252"
//
//	[log]
//	level = "debug"
//	file = "/tmp/lazycsv.log"
//
//	[theme]
//	selected_fg = "#000000"
//	selected_bg = "#5fafff"
//
// # Environment Variables
//
//	LAZYCSV_LOG_LEVEL            log.level
//	LAZYCSV_LOG_FILE             log.file
//	LAZYCSV_DELIMITER            csv.delimiter
//	LAZYCSV_ENCODING             csv.encoding
//	LAZYCSV_NO_HEADERS           csv.no_headers
//	LAZYCSV_MAX_VISIBLE_COLUMNS  view.max_visible_columns
//	LAZYCSV_PAGE_SIZE            view.page_size
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	theme, err := cfg.Theme.Resolve()
package config
