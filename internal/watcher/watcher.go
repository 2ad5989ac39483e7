// Package watcher reports changes to the file open in the viewer.
//
// The parent directory is watched rather than the file itself, so the
// target survives editors that save by writing a temp file and renaming it
// over the original. Bursts of events for the target are coalesced into a
// single Event after a quiet period.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by the watcher.
var (
	ErrWatcherClosed = errors.New("watcher closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// DefaultDelay is the quiet period before a change is reported.
const DefaultDelay = 150 * time.Millisecond

// Op describes what happened to the file.
type Op uint8

const (
	// OpCreate means the file was (re)created.
	OpCreate Op = 1 << iota
	// OpWrite means the file contents changed.
	OpWrite
	// OpRemove means the file was deleted.
	OpRemove
	// OpRename means the file was renamed away.
	OpRename
)

// Has reports whether o contains op.
func (o Op) Has(op Op) bool { return o&op != 0 }

// String returns a "|" separated list of operations.
func (o Op) String() string {
	var s string
	for _, n := range []struct {
		op   Op
		name string
	}{{OpCreate, "create"}, {OpWrite, "write"}, {OpRemove, "remove"}, {OpRename, "rename"}} {
		if o.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Event is one coalesced change to the target file.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Logger receives debug traces.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Config configures a Watcher.
type Config struct {
	// Delay is the quiet period before an event is delivered.
	Delay time.Duration

	// BufferSize is the capacity of the event channel.
	BufferSize int

	// Logger receives debug traces.
	Logger Logger
}

// Option configures a Watcher.
type Option func(*Config)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(c *Config) { c.Delay = d }
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Stats reports watcher activity.
type Stats struct {
	Target      string
	TotalEvents int64
	Errors      int64
}

// Watcher follows a single file.
type Watcher struct {
	mu sync.Mutex

	fsw    *fsnotify.Watcher
	config Config

	target string
	dir    string

	timer   *time.Timer
	pending Op

	events chan Event
	errors chan error

	totalEvents atomic.Int64
	totalErrors atomic.Int64

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path.
func New(path string, opts ...Option) (*Watcher, error) {
	config := Config{Delay: DefaultDelay, BufferSize: 16}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 16
	}
	if config.Logger == nil {
		config.Logger = nopLogger{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		config:  config,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	if err := w.Retarget(path); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Retarget switches the watch to another file, dropping any change not yet
// delivered for the old one.
func (w *Watcher) Retarget(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrPathNotExist
		}
		return err
	}

	dir := filepath.Dir(abs)
	if dir != w.dir {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.fsw.Remove(w.dir)
		}
		w.dir = dir
	}

	w.stopTimer()
	w.target = abs
	w.config.Logger.Debug("watching %s", abs)
	return nil
}

// Target returns the absolute path being watched.
func (w *Watcher) Target() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// Events returns the channel of coalesced changes.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stats returns watcher statistics.
func (w *Watcher) Stats() Stats {
	return Stats{
		Target:      w.Target(),
		TotalEvents: w.totalEvents.Load(),
		Errors:      w.totalErrors.Load(),
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.stopTimer()
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.totalErrors.Add(1)
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || filepath.Clean(ev.Name) != w.target {
		return
	}

	w.config.Logger.Debug("fs event %s on %s", op, ev.Name)
	w.pending |= op
	if w.timer != nil {
		w.timer.Reset(w.config.Delay)
		return
	}
	target := w.target
	w.timer = time.AfterFunc(w.config.Delay, func() { w.fire(target) })
}

func (w *Watcher) fire(target string) {
	w.mu.Lock()
	if w.closed || target != w.target || w.pending == 0 {
		w.mu.Unlock()
		return
	}
	ev := Event{Path: target, Op: w.pending, Timestamp: time.Now()}
	w.pending = 0
	w.timer = nil
	w.closedWg.Add(1)
	w.mu.Unlock()
	defer w.closedWg.Done()

	select {
	case w.events <- ev:
		w.totalEvents.Add(1)
	case <-w.closeCh:
	}
}

// stopTimer must be called with mu held.
func (w *Watcher) stopTimer() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = 0
}

// convertOp drops chmod-only events.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
