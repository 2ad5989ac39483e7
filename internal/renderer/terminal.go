package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the tcell screen for the lifetime of the viewer.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backed by the real tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, e.g. a simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Screen returns the underlying screen for drawing.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent blocks until the next terminal event. It returns nil after
// Shutdown.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Wake interrupts a blocked PollEvent with data. Used by background
// goroutines such as the file watcher to hand work to the event loop.
func (t *Terminal) Wake(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// Sync repaints the whole screen, e.g. after a resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}
