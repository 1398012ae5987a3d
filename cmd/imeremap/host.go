package main

import (
	"log/slog"

	"github.com/xyproto/imeremap"
	"github.com/xyproto/imeremap/textfield"
)

const engineID = "imeremap"

// exitKey checks for ctrl-c, or two ESC presses that arrived as one read
func exitKey(raw []byte) bool {
	switch string(raw) {
	case "\x03", "\x1b\x1b":
		return true
	}
	return false
}

// terminalHost plays the part of the input method framework for a single text field
type terminalHost struct {
	id          string
	url         string
	subscribers map[imeremap.EventType]imeremap.Listener
	pending     chan func()
	field       *textfield.Field
	logger      *slog.Logger
}

func newTerminalHost(id, url string, logger *slog.Logger) *terminalHost {
	return &terminalHost{
		id:          id,
		url:         url,
		subscribers: make(map[imeremap.EventType]imeremap.Listener),
		pending:     make(chan func(), 16),
		field:       textfield.New(),
		logger:      logger,
	}
}

// AddListener registers the one external listener for an event type
func (h *terminalHost) AddListener(t imeremap.EventType, fn imeremap.Listener) {
	if _, found := h.subscribers[t]; found {
		h.logger.Warn("replacing listener", "event", t.String())
	}
	h.subscribers[t] = fn
}

func (h *terminalHost) ID() string {
	return h.id
}

func (h *terminalHost) dispatch(t imeremap.EventType, args ...any) bool {
	fn, found := h.subscribers[t]
	if !found {
		return false
	}
	return fn(args...)
}

// LastFocusedWindow answers from another goroutine. The answer is applied
// by the main loop the next time it calls runPending.
func (h *terminalHost) LastFocusedWindow(q imeremap.WindowQuery, callback func(*imeremap.Window)) {
	h.logger.Debug("window lookup", "populate", q.Populate, "types", q.WindowTypes)
	go func() {
		w := &imeremap.Window{Type: "normal"}
		if q.Populate && h.url != "" {
			w.Tabs = []imeremap.Tab{{URL: h.url}}
		}
		h.pending <- func() { callback(w) }
	}()
}

// runPending runs the window lookup callbacks that have arrived
func (h *terminalHost) runPending() {
	for {
		select {
		case fn := <-h.pending:
			fn()
		default:
			return
		}
	}
}

// SendKeyEvents stamps the events as coming from this extension and feeds
// them back through the pipeline, ending up in the text field.
func (h *terminalHost) SendKeyEvents(contextID int, events []imeremap.KeyData) {
	h.logger.Debug("send key events", "context", contextID, "count", len(events))
	for _, ev := range events {
		ev.ExtensionID = h.id
		h.keyEvent(ev)
	}
}

// keyEvent delivers a key event, and applies it to the field if nothing handled it
func (h *terminalHost) keyEvent(kd imeremap.KeyData) bool {
	if h.dispatch(imeremap.KeyEvent, engineID, kd) {
		return true
	}
	return h.field.Apply(kd)
}
