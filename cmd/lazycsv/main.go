// Package main is the entry point for the lazycsv viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/funkybooboo/lazycsv-sub000/internal/app"
	"github.com/funkybooboo/lazycsv-sub000/internal/config"
	"github.com/funkybooboo/lazycsv-sub000/internal/renderer"
	"github.com/funkybooboo/lazycsv-sub000/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	delimiter   string
	encoding    string
	logLevel    string
	logFile     string
	noHeaders   bool
	noWatch     bool
	showVersion bool

	// path is the file or directory to open.
	path string

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Printf("lazycsv %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: lazycsv needs a terminal")
		return 1
	}

	logger, closer, err := app.OpenLogFile(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()
	app.SetLogger(logger)

	sess, err := session.Open(opts.path, cfg.DocumentOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	t, err := renderer.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(cfg, sess, t, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !app.IsQuit(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("lazycsv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	fs.StringVar(&opts.delimiter, "delimiter", "", `Field delimiter: a single character or "tab" (default: detect)`)
	fs.StringVar(&opts.delimiter, "d", "", "Field delimiter (shorthand)")
	fs.BoolVar(&opts.noHeaders, "no-headers", false, "Treat the first line as data")
	fs.StringVar(&opts.encoding, "encoding", "", "File encoding (utf-8, utf-16, latin1, windows-1252)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the file when it changes on disk")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "lazycsv - terminal CSV viewer with vim keys\n\n")
		fmt.Fprintf(stderr, "Usage: lazycsv [options] [file.csv | directory]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lazycsv data.csv            Open a file and its sibling CSV files\n")
		fmt.Fprintf(stderr, "  lazycsv ./exports           Open every CSV/TSV file in a directory\n")
		fmt.Fprintf(stderr, "  lazycsv -d ';' eu.csv       Force a delimiter\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: expected at most one path")
		fs.Usage()
		return opts, errors.New("too many arguments")
	}

	opts.path = fs.Arg(0)
	if opts.path == "" {
		opts.path = "."
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if name == "d" {
			name = "delimiter"
		}
		opts.set[name] = true
	})
	return opts, nil
}

// applyFlags overrides configuration with explicitly given flags.
func applyFlags(cfg *config.Config, opts options) {
	if opts.set["delimiter"] {
		cfg.CSV.Delimiter = opts.delimiter
	}
	if opts.set["no-headers"] {
		cfg.CSV.NoHeaders = opts.noHeaders
	}
	if opts.set["encoding"] {
		cfg.CSV.Encoding = opts.encoding
	}
	if opts.set["log-level"] {
		cfg.Log.Level = opts.logLevel
	}
	if opts.set["log-file"] {
		cfg.Log.File = opts.logFile
	}
	if opts.set["no-watch"] {
		cfg.View.Watch = !opts.noWatch
	}
}
