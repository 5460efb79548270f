// Package app wires the editor together: it owns the terminal session,
// the document, the frame composer, and the single-threaded event loop
// that turns key events into buffer mutations.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/yate/internal/config"
	"github.com/dshills/yate/internal/document"
	"github.com/dshills/yate/internal/render"
	"github.com/dshills/yate/internal/syntax"
	"github.com/dshills/yate/internal/term"
)

// quitConfirmations is how many additional Ctrl-Q presses a dirty
// buffer demands before the editor quits without saving.
const quitConfirmations = 3

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | " +
	"Ctrl-D = delete line | Ctrl-Y = yank line | Ctrl-P = paste line | Ctrl-O = open file"

// Options configures a new editor session.
type Options struct {
	// File is the path to open at startup; empty starts with an empty
	// buffer.
	File string

	// ConfigDir overrides the configuration directory. Empty uses the
	// platform default (typically ~/.config/yate).
	ConfigDir string

	// LogPath enables file logging when non-empty.
	LogPath string

	// LogLevel is the minimum level written to the log.
	LogLevel string

	// Version is shown on the welcome screen.
	Version string
}

// Editor is the running editor session. All state is owned by the
// single goroutine driving Run; nothing here is safe for concurrent
// use.
type Editor struct {
	term     *term.Terminal
	doc      *document.Document
	clip     document.ClipBuffer
	registry *syntax.Registry
	composer *render.Composer
	cfg      config.Config
	logger   *Logger
	logFile  *os.File

	frame    term.FrameBuffer
	status   render.StatusMessage
	textRows int

	quitTimes int
}

// New boots an editor session: configuration, syntax registry, theme,
// raw-mode terminal, and the startup file if one was given. On success
// the terminal is in raw mode; the caller must ensure Shutdown runs on
// every exit path.
func New(opts Options) (*Editor, error) {
	e := &Editor{
		logger:    NullLogger,
		quitTimes: quitConfirmations,
	}

	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, NewOperationError("open log", opts.LogPath, err)
		}
		e.logFile = f
		e.logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(opts.LogLevel),
			Output: f,
			Prefix: "yate",
		}).WithField("session", uuid.NewString())
	}

	confDir := opts.ConfigDir
	if confDir == "" {
		confDir = config.Dir()
	}

	e.cfg = config.Load(filepath.Join(confDir, "config.toml"))

	e.registry = syntax.NewRegistry()
	userLangs, err := config.LoadInit(filepath.Join(confDir, "init.lua"), &e.cfg)
	if err != nil {
		e.logger.WithComponent("config").Warn("init script: %v", err)
	}
	// User languages register first so they win file detection over the
	// builtins.
	for _, lang := range userLangs {
		e.registry.Register(lang)
	}
	syntax.RegisterBuiltins(e.registry)

	themePath := filepath.Join(confDir, "theme.json")
	if err := syntax.WriteDefaultTheme(themePath); err != nil {
		e.logger.WithComponent("theme").Debug("write default theme: %v", err)
	}
	theme := syntax.LoadTheme(themePath)

	t, err := term.Open()
	if err != nil {
		e.closeLog()
		return nil, err
	}
	e.term = t
	e.textRows = t.Rows - 2 // status bar and message bar

	e.composer = render.NewComposer(render.Options{
		Theme:          theme,
		MessageTimeout: e.cfg.MessageTimeout(),
		TextRows:       e.textRows,
		Cols:           t.Cols,
		Version:        opts.Version,
	})

	e.doc = document.New(e.cfg.TabStop)
	if opts.File != "" {
		if err := e.loadFile(opts.File); err != nil {
			e.setStatus("File under the path %s not found", opts.File)
			e.logger.WithComponent("document").Warn("%v", NewOperationError("open", opts.File, err))
		}
	}
	if e.status.Text == "" {
		e.setStatus(helpMessage)
	}

	e.logger.Info("session started (rows=%d cols=%d file=%q)", t.Rows, t.Cols, opts.File)
	return e, nil
}

// Shutdown restores the terminal and releases session resources. Safe
// to call more than once.
func (e *Editor) Shutdown() {
	if e.term != nil {
		_ = e.term.WriteString("\x1b[2J\x1b[H")
		_ = e.term.Restore()
		e.term = nil
		e.logger.Info("session ended")
	}
	e.clip.Clear()
	e.closeLog()
}

func (e *Editor) closeLog() {
	if e.logFile != nil {
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

// loadFile reads path into a fresh document and swaps it in only on
// success: a failed open leaves the current buffer untouched.
func (e *Editor) loadFile(path string) error {
	doc := document.New(e.cfg.TabStop)
	if err := doc.Open(path); err != nil {
		return err
	}
	doc.SetLanguage(e.registry.Detect(path))
	e.doc = doc
	return nil
}

// setStatus replaces the timed status message.
func (e *Editor) setStatus(format string, args ...any) {
	e.status = render.StatusMessage{
		Text:  fmt.Sprintf(format, args...),
		SetAt: time.Now(),
	}
}

// refresh composes one frame and flushes it to the terminal.
func (e *Editor) refresh() error {
	e.composer.Scroll(e.doc)
	e.frame.Reset()
	e.composer.Compose(&e.frame, e.doc, e.status)
	return e.term.WriteFrame(&e.frame)
}
