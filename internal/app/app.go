// Package app wires the caret engine to a terminal front end: it owns the
// buffer, the cursor and selection managers, the keymap, and the tcell event
// loop of the demo application.
package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/selection"
	"github.com/dshills/caret/internal/engine/textbuf"
	"github.com/dshills/caret/internal/keymap"
	"github.com/dshills/caret/internal/render"
)

// sampleText is shown when no file argument is given.
const sampleText = `caret demo
==========

Arrow keys move the primary cursor. Hold shift to select.
alt+up / alt+down add cursors. esc collapses back to one.
ctrl+d selects the word under the cursor, ctrl+l the line.
ctrl+a selects everything; ctrl+u shrinks the selection.
Type to insert at every cursor. ctrl+q quits.`

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses defaults.
	ConfigPath string

	// FilePath is the file to display. Empty shows the built-in sample.
	FilePath string
}

// App is the demo application.
type App struct {
	opts Options
	cfg  config.Config
	log  *Logger

	buf     *textbuf.Buffer
	cursors *cursor.Manager
	sels    *selection.Manager
	km      *keymap.Keymap
	rend    *render.Renderer

	screen  tcell.Screen
	watcher *config.Watcher
	topLine int

	logFile io.Closer

	shutdownOnce sync.Once
}

// New creates the application from the given options.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &App{
		opts:    opts,
		cfg:     cfg,
		cursors: cursor.NewManager(),
		sels:    selection.NewManager(),
	}

	logOut := io.Writer(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logOut = f
		a.logFile = f
	}
	a.log = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.LogLevel),
		Output: logOut,
		Prefix: "caret",
	})

	a.km, err = keymap.Load(cfg.KeymapPath)
	if err != nil {
		return nil, fmt.Errorf("loading keymap: %w", err)
	}

	text := sampleText
	if opts.FilePath != "" {
		data, err := os.ReadFile(opts.FilePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.FilePath, err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}
	a.buf = textbuf.New(text)

	a.cursors.SetPageSize(cfg.PageSize)
	a.rend = render.New(cfg.HighlightColor)

	return a, nil
}

// Run starts the event loop and blocks until quit or error.
// The returned error is ErrQuit on a clean user exit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen = screen
	defer a.Shutdown()

	if a.opts.ConfigPath != "" {
		a.watcher, err = config.Watch(a.opts.ConfigPath,
			func(cfg config.Config) {
				// Hand the new config to the event loop goroutine.
				_ = screen.PostEvent(tcell.NewEventInterrupt(cfg))
			},
			func(err error) {
				a.log.Warn("config reload failed: %v", err)
			},
		)
		if err != nil {
			a.log.Warn("config watcher unavailable: %v", err)
		}
	}

	a.log.Info("started, %d lines", a.buf.LineCount())

	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				a.applyConfig(cfg)
			}
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				return err
			}
		case nil:
			return nil
		}
	}
}

// Shutdown releases the terminal and all resources. Safe to call from a
// signal handler goroutine and more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.screen != nil {
			a.screen.Fini()
		}
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}

// applyConfig applies live-tunable settings from a reloaded configuration.
func (a *App) applyConfig(cfg config.Config) {
	a.cfg = cfg
	a.cursors.SetPageSize(cfg.PageSize)
	a.rend.SetHighlight(cfg.HighlightColor)
	a.log.SetLevel(ParseLogLevel(cfg.LogLevel))
	a.log.Info("config reloaded, page size %d", cfg.PageSize)
}

// handleKey translates a key event through the keymap and dispatches it.
func (a *App) handleKey(ev *tcell.EventKey) error {
	chord := chordFor(ev)
	if action, ok := a.km.Lookup(chord); ok {
		return a.perform(action)
	}
	switch {
	case chord == "enter":
		a.insertAtCursors("\n")
	case chord == "tab":
		a.insertAtCursors("\t")
	case ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
		a.insertAtCursors(string(ev.Rune()))
	}
	return nil
}

// perform executes a keymap action.
func (a *App) perform(action keymap.Action) error {
	lineCount := a.buf.LineCount()
	lineLen := a.buf.LineLen

	move := func(dir cursor.Direction, unit cursor.Unit, selecting bool) {
		a.cursors.MoveAll(dir, unit, lineCount, lineLen, selecting)
	}

	switch action {
	case keymap.ActionQuit:
		return ErrQuit

	case keymap.ActionMoveUp:
		move(cursor.Up, cursor.Character, false)
	case keymap.ActionMoveDown:
		move(cursor.Down, cursor.Character, false)
	case keymap.ActionMoveLeft:
		move(cursor.Left, cursor.Character, false)
	case keymap.ActionMoveRight:
		move(cursor.Right, cursor.Character, false)
	case keymap.ActionLineStart:
		move(cursor.Left, cursor.Line, false)
	case keymap.ActionLineEnd:
		move(cursor.Right, cursor.Line, false)
	case keymap.ActionPageUp:
		move(cursor.Up, cursor.Page, false)
	case keymap.ActionPageDown:
		move(cursor.Down, cursor.Page, false)
	case keymap.ActionDocStart:
		move(cursor.Up, cursor.Document, false)
	case keymap.ActionDocEnd:
		move(cursor.Down, cursor.Document, false)

	case keymap.ActionSelectUp:
		move(cursor.Up, cursor.Character, true)
	case keymap.ActionSelectDown:
		move(cursor.Down, cursor.Character, true)
	case keymap.ActionSelectLeft:
		move(cursor.Left, cursor.Character, true)
	case keymap.ActionSelectRight:
		move(cursor.Right, cursor.Character, true)

	case keymap.ActionAddCursorAbove:
		p := a.cursors.Primary().Position
		if p.Line > 0 {
			a.cursors.AddCursor(p.Line-1, p.Column)
		}
	case keymap.ActionAddCursorBelow:
		p := a.cursors.Primary().Position
		if p.Line < lineCount-1 {
			a.cursors.AddCursor(p.Line+1, p.Column)
		}
	case keymap.ActionClearCursors:
		a.cursors.ClearSecondary()
		a.sels.Clear()

	case keymap.ActionSelectWord:
		p := a.cursors.Primary().Position
		r := a.sels.SelectWord(p.Line, p.Column, a.buf.Line(p.Line))
		a.log.Debug("selected word %q", selection.SelectedText(r, a.buf.Line))
	case keymap.ActionSelectLine:
		p := a.cursors.Primary().Position
		a.sels.SelectLine(p.Line, lineLen(p.Line))
	case keymap.ActionSelectAll:
		a.cursors.SelectAll(lineCount, lineLen)
		a.sels.Set(selection.NewRange(0, 0, lineCount-1, lineLen(lineCount-1)))
	case keymap.ActionExpandLines:
		a.sels.ExpandToFullLines(lineLen)
	case keymap.ActionShrink:
		a.sels.Shrink()

	case keymap.ActionDeleteBack:
		a.deleteBack()
	}

	a.scrollToPrimary()
	return nil
}

// insertAtCursors inserts text at every cursor position, bottom-up so
// earlier positions stay valid, then advances all cursors.
// TODO: account for column shifts when multiple cursors share a line.
func (a *App) insertAtCursors(text string) {
	positions := a.cursorPositionsDescending()
	for _, p := range positions {
		a.buf.Insert(p.Line, p.Column, text)
	}
	a.cursors.MoveAll(cursor.Right, cursor.Character, a.buf.LineCount(), a.buf.LineLen, false)
	a.sels.Clear()
	a.scrollToPrimary()
}

// deleteBack removes the character before every cursor, joining lines at
// column 0, then retreats all cursors.
func (a *App) deleteBack() {
	positions := a.cursorPositionsDescending()
	for _, p := range positions {
		switch {
		case p.Column > 0:
			a.buf.Delete(p.Line, p.Column-1, p.Line, p.Column)
		case p.Line > 0:
			a.buf.Delete(p.Line-1, a.buf.LineLen(p.Line-1), p.Line, 0)
		}
	}
	a.cursors.MoveAll(cursor.Left, cursor.Character, a.buf.LineCount(), a.buf.LineLen, false)
	a.sels.Clear()
}

// cursorPositionsDescending returns all cursor positions sorted from the end
// of the buffer toward the start.
func (a *App) cursorPositionsDescending() []cursor.Position {
	all := a.cursors.All()
	positions := make([]cursor.Position, len(all))
	for i, c := range all {
		positions[i] = c.Position
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].After(positions[j])
	})
	return positions
}

// scrollToPrimary keeps the primary cursor inside the visible text rows.
func (a *App) scrollToPrimary() {
	if a.screen == nil {
		return
	}
	_, height := a.screen.Size()
	textRows := height - 1
	if textRows < 1 {
		return
	}
	line := a.cursors.Primary().Position.Line
	if line < a.topLine {
		a.topLine = line
	} else if line >= a.topLine+textRows {
		a.topLine = line - textRows + 1
	}
}

func (a *App) draw() {
	a.rend.Draw(a.screen, a.buf, a.cursors.All(), a.sels.Selections(), a.topLine)
}

// chordFor renders a key event as a keymap chord such as "ctrl+shift+up".
func chordFor(ev *tcell.EventKey) string {
	name, inferredCtrl := keyName(ev)
	if name == "" {
		return ""
	}

	var parts []string
	mod := ev.Modifiers()
	if mod&tcell.ModCtrl != 0 || inferredCtrl {
		parts = append(parts, "ctrl")
	}
	if mod&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mod&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, name), "+")
}

// keyName resolves a key event to a chord name. Named keys take precedence:
// tab, enter, and backspace share key codes with ctrl+i, ctrl+m, and ctrl+h,
// so ctrl-letter inference applies only to the remaining control keys.
func keyName(ev *tcell.EventKey) (string, bool) {
	key := ev.Key()
	switch key {
	case tcell.KeyUp:
		return "up", false
	case tcell.KeyDown:
		return "down", false
	case tcell.KeyLeft:
		return "left", false
	case tcell.KeyRight:
		return "right", false
	case tcell.KeyHome:
		return "home", false
	case tcell.KeyEnd:
		return "end", false
	case tcell.KeyPgUp:
		return "pgup", false
	case tcell.KeyPgDn:
		return "pgdn", false
	case tcell.KeyEscape:
		return "esc", false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace", false
	case tcell.KeyEnter:
		return "enter", false
	case tcell.KeyTab:
		return "tab", false
	case tcell.KeyRune:
		return string(ev.Rune()), false
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return string(rune('a' + key - tcell.KeyCtrlA)), true
	}
	return "", false
}
