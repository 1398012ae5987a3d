package imeremap

import (
	"io"
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"
)

// FocusWindowTypes are the window types considered when looking up the focused window
var FocusWindowTypes = []string{"popup", "normal", "panel", "app", "devtools"}

// InputContext is the descriptor that comes with a focus event
type InputContext struct {
	ContextID int    `json:"contextID"`
	Type      string `json:"type,omitempty"`
}

// Tab is an open document in a window
type Tab struct {
	URL string `json:"url"`
}

// Window is a host window, with its tabs if the query asked for them
type Window struct {
	Type string `json:"type"`
	Tabs []Tab  `json:"tabs"`
}

// WindowQuery filters the window lookup
type WindowQuery struct {
	Populate    bool
	WindowTypes []string
}

// WindowQuerier looks up the last focused window. The callback may be called
// later, and is called with nil if there is no such window.
type WindowQuerier interface {
	LastFocusedWindow(q WindowQuery, callback func(*Window))
}

// KeySender sends synthesized key events to an input context
type KeySender interface {
	SendKeyEvents(contextID int, events []KeyData)
}

// Host is everything the engine needs from the host environment.
// ID returns the identity that the host stamps on events sent by this process.
type Host interface {
	WindowQuerier
	KeySender
	ID() string
}

// Engine remaps key chords into other key events
type Engine struct {
	host      Host
	session   *Session
	keymap    Keymap
	blacklist Blacklist
	debug     bool
	logger    *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithKeymap replaces the default keymap
func WithKeymap(km Keymap) Option {
	return func(e *Engine) {
		e.keymap = km
	}
}

// WithBlacklist replaces the default blacklist
func WithBlacklist(b Blacklist) Option {
	return func(e *Engine) {
		e.blacklist = b
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDebug enables or disables logging of incoming key events
func WithDebug(enable bool) Option {
	return func(e *Engine) {
		e.debug = enable
	}
}

// NewEngine creates an engine with a fresh session.
// Debug output can also be enabled with IMEREMAP_DEBUG. Without WithLogger,
// debug output is written to stderr.
func NewEngine(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:      host,
		session:   newSession(),
		keymap:    DefaultKeymap,
		blacklist: DefaultBlacklist,
		debug:     env.Bool("IMEREMAP_DEBUG"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = defaultLogger(e.debug)
	}
	return e
}

// debugOutput is where debug output goes when no logger is given
var debugOutput io.Writer = os.Stderr

func defaultLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(debugOutput, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Session returns the engine session
func (e *Engine) Session() *Session {
	return e.session
}

// Keymap returns the active keymap
func (e *Engine) Keymap() Keymap {
	return e.keymap
}

// HandleFocus records the focused context, and then starts looking up the URL
// of the last focused window. Key events that arrive before the lookup
// completes are checked against the previous URL.
// It never handles the event, so other focus listeners are still called.
func (e *Engine) HandleFocus(ctx InputContext) bool {
	e.session.setContextID(ctx.ContextID)
	e.host.LastFocusedWindow(WindowQuery{
		Populate:    true,
		WindowTypes: FocusWindowTypes,
	}, func(w *Window) {
		if w != nil && len(w.Tabs) > 0 {
			e.session.setURL(w.Tabs[0].URL)
		}
	})
	return false
}

// HandleKeyEvent remaps kd if it matches the keymap. If it does, the
// synthesized events are sent to the focused context and true is returned.
func (e *Engine) HandleKeyEvent(engineID string, kd KeyData) bool {
	if e.debug && kd.Type == KeyDown {
		e.logger.Debug("key event", "engine", engineID, "type", kd.Type, "key", kd.Key, "code", kd.Code)
	}

	// already remapped, pass it through
	if kd.ExtensionID != "" && kd.ExtensionID == e.host.ID() {
		return false
	}

	if url := e.session.URL(); e.blacklist.Contains(url) {
		return false
	}

	if kd.Type != KeyDown {
		return false
	}

	mapping, found := e.keymap.Find(kd.Chord().String())
	if !found {
		return false
	}

	events := make([]KeyData, 0, len(mapping.Emit))
	for _, s := range mapping.Emit {
		events = append(events, kd.Synthesize(DecodeChord(s)))
	}
	contextID := e.session.ContextID()
	if e.debug {
		e.logger.Debug("remapped", "match", mapping.Match, "emit", mapping.Emit, "context", contextID)
	}
	e.host.SendKeyEvents(contextID, events)
	return true
}

// Install subscribes the engine to focus and key events.
// Listener arguments of the wrong type are not handled.
func (e *Engine) Install(h Hijack) {
	h.On(Focus).AddListener(func(args ...any) bool {
		if len(args) < 1 {
			return false
		}
		switch ctx := args[0].(type) {
		case InputContext:
			return e.HandleFocus(ctx)
		case *InputContext:
			if ctx != nil {
				return e.HandleFocus(*ctx)
			}
		}
		return false
	})
	h.On(KeyEvent).AddListener(func(args ...any) bool {
		if len(args) < 2 {
			return false
		}
		engineID, _ := args[0].(string)
		switch kd := args[1].(type) {
		case KeyData:
			return e.HandleKeyEvent(engineID, kd)
		case *KeyData:
			if kd != nil {
				return e.HandleKeyEvent(engineID, *kd)
			}
		}
		return false
	})
}
