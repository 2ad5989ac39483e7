// Package app wires the viewer together: it owns the interpreter state,
// runs the terminal event loop, reloads files and reports to the status
// line.
package app

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/funkybooboo/lazycsv-sub000/internal/config"
	"github.com/funkybooboo/lazycsv-sub000/internal/document"
	"github.com/funkybooboo/lazycsv-sub000/internal/input"
	"github.com/funkybooboo/lazycsv-sub000/internal/input/key"
	"github.com/funkybooboo/lazycsv-sub000/internal/renderer"
	"github.com/funkybooboo/lazycsv-sub000/internal/session"
	"github.com/funkybooboo/lazycsv-sub000/internal/status"
	"github.com/funkybooboo/lazycsv-sub000/internal/watcher"
)

// MsgReloaded is shown after the active file changed on disk.
const MsgReloaded = "File reloaded from disk"

// Wake-up payloads posted to the event loop from other goroutines.
type (
	fileChanged struct{ ev watcher.Event }
	watchFailed struct{ err error }
	stopRequest struct{}
)

// Application is one viewer session.
type Application struct {
	cfg      *config.Config
	session  *session.Session
	doc      *document.Document
	state    *input.State
	handler  *input.Handler
	status   status.Line
	term     *renderer.Terminal
	renderer *renderer.Renderer
	watcher  *watcher.Watcher
	logger   *Logger
	running  atomic.Bool
}

// New loads the session's active file and prepares the viewer. The
// terminal is not touched until Run.
func New(cfg *config.Config, sess *session.Session, term *renderer.Terminal, logger *Logger) (*Application, error) {
	if logger == nil {
		logger = GetLogger()
	}

	doc, err := sess.Load()
	if err != nil {
		return nil, NewOperationError("open", sess.Current(), err)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}

	inputCfg := input.Config{
		MaxCount:          cfg.Input.MaxCount,
		PageSize:          cfg.View.PageSize,
		MaxVisibleColumns: cfg.View.MaxVisibleColumns,
	}
	state := input.NewState(inputCfg)
	handler := input.NewHandler(inputCfg, state, doc, sess)
	handler.SetLogger(logger.WithComponent("input"))

	app := &Application{
		cfg:      cfg,
		session:  sess,
		doc:      doc,
		state:    state,
		handler:  handler,
		term:     term,
		renderer: renderer.New(term.Screen(), theme, renderer.DefaultOptions()),
		logger:   logger.WithComponent("app"),
	}
	app.logger.Info("opened %s (%d rows, %d columns)", sess.Current(), doc.RowCount(), doc.ColumnCount())
	return app, nil
}

// Run takes over the terminal and processes events until the user quits or
// ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.term.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.term.Shutdown()

	if app.cfg.View.Watch {
		app.startWatcher()
	}
	defer app.stopWatcher()

	stop := context.AfterFunc(ctx, func() {
		_ = app.term.Wake(stopRequest{})
	})
	defer stop()

	app.Draw()
	for {
		ev := app.term.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.HandleEvent(ev); err != nil {
			if IsQuit(err) {
				app.logMetrics()
				return nil
			}
			return err
		}
		app.Draw()
	}
}

// HandleEvent processes one terminal event.
func (app *Application) HandleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return nil
		}
		return app.HandleKey(k)

	case *tcell.EventResize:
		app.term.Sync()

	case *tcell.EventInterrupt:
		switch data := e.Data().(type) {
		case fileChanged:
			app.logger.Debug("change detected: %s %s", data.ev.Op, data.ev.Path)
			app.Reload()
		case watchFailed:
			app.logger.Warn("watch error: %v", data.err)
		case stopRequest:
			return ErrQuit
		}
	}
	return nil
}

// HandleKey feeds one key to the interpreter and acts on the result.
func (app *Application) HandleKey(ev key.Event) error {
	app.status.OnKeypress()

	prev := app.session.ActiveFileIndex()
	result, msg := app.handler.HandleKey(ev)
	if msg != "" {
		app.status.Transient(msg)
	}

	switch result {
	case input.Quit:
		return ErrQuit
	case input.ReloadFile:
		app.switchFile(prev)
	}
	return nil
}

// switchFile loads the session's newly active file. On failure the previous
// file stays open and active.
func (app *Application) switchFile(prev int) {
	path := app.session.Current()
	doc, err := app.session.Load()
	if err != nil {
		app.session.Activate(prev)
		app.fail(NewOperationError("open", path, err))
		return
	}

	app.doc = doc
	app.handler.SetDocument(doc)
	app.state.Reset()
	app.logger.Info("switched to %s", path)

	if app.watcher != nil {
		if err := app.watcher.Retarget(path); err != nil {
			app.logger.Warn("watch %s: %v", path, err)
		}
	}
}

// Reload re-reads the active file after it changed on disk. The cursor is
// kept and clamped into the new bounds. A failed reload keeps the old
// contents on screen.
func (app *Application) Reload() {
	path := app.session.Current()
	doc, err := app.session.Load()
	if err != nil {
		app.fail(NewOperationError("reload", path, err))
		return
	}

	app.doc = doc
	app.handler.SetDocument(doc)
	app.status.Persistent(MsgReloaded)
	app.logger.Info("reloaded %s (%d rows)", path, doc.RowCount())
}

func (app *Application) fail(err error) {
	app.logger.Error("%v", err)
	app.status.Error(err.Error())
}

// View returns the snapshot the renderer draws.
func (app *Application) View() renderer.View {
	msg, ok := app.status.Current()
	return renderer.View{
		Grid:       app.doc,
		Dirty:      app.doc.IsDirty(),
		State:      app.state,
		Message:    msg,
		HasMessage: ok,
		Files:      app.session.Names(),
		Active:     app.session.ActiveFileIndex(),
	}
}

// Draw renders the current view.
func (app *Application) Draw() {
	app.renderer.Draw(app.View())
}

// Document returns the open document.
func (app *Application) Document() *document.Document {
	return app.doc
}

// State returns the interpreter state.
func (app *Application) State() *input.State {
	return app.state
}

// Status returns the status line.
func (app *Application) Status() *status.Line {
	return &app.status
}

func (app *Application) startWatcher() {
	w, err := watcher.New(app.session.Current(), watcher.WithLogger(app.logger.WithComponent("watcher")))
	if err != nil {
		app.logger.Warn("file watching disabled: %v", err)
		return
	}
	app.watcher = w

	go func() {
		for ev := range w.Events() {
			_ = app.term.Wake(fileChanged{ev: ev})
		}
	}()
	go func() {
		for err := range w.Errors() {
			_ = app.term.Wake(watchFailed{err: err})
		}
	}()
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.Warn("close watcher: %v", err)
	}
	app.watcher = nil
}

func (app *Application) logMetrics() {
	m := app.handler.Metrics().Snapshot()
	app.logger.Info("keys=%d motions=%d unknown=%d avg=%s peak=%s uptime=%s",
		m.Keys, m.Motions, m.Unknown, m.AvgLatency, m.PeakLatency, m.Uptime)
}
