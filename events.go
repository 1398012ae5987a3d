package imeremap

// EventType is one of the input method events a host can deliver.
type EventType int

const (
	Activate EventType = iota
	Deactivated
	Focus
	Blur
	InputContextUpdate
	KeyEvent
	CandidateClicked
	MenuItemActivated
	SurroundingTextChanged
	Reset
)

var eventNames = [...]string{
	Activate:               "onActivate",
	Deactivated:            "onDeactivated",
	Focus:                  "onFocus",
	Blur:                   "onBlur",
	InputContextUpdate:     "onInputContextUpdate",
	KeyEvent:               "onKeyEvent",
	CandidateClicked:       "onCandidateClicked",
	MenuItemActivated:      "onMenuItemActivated",
	SurroundingTextChanged: "onSurroundingTextChanged",
	Reset:                  "onReset",
}

// String returns the name the host uses for this event
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// EventTypes returns every event type that gets hijacked, in host order
func EventTypes() []EventType {
	types := make([]EventType, len(eventNames))
	for i := range eventNames {
		types[i] = EventType(i)
	}
	return types
}

// Listener receives the raw event arguments and reports if it handled the event.
type Listener func(args ...any) bool

// EventHandler sits between one host event and any number of local listeners.
// The first listener to be added gets to handle the event first.
type EventHandler struct {
	listeners []Listener
}

// AddListener appends fn to the list of listeners
func (h *EventHandler) AddListener(fn Listener) {
	h.listeners = append(h.listeners, fn)
}

// Len returns the number of registered listeners
func (h *EventHandler) Len() int {
	return len(h.listeners)
}

// HandleEvent passes args to each listener in turn, and stops at the first
// one that handles the event. Listeners after that one are not called.
func (h *EventHandler) HandleEvent(args ...any) bool {
	handled := false
	for _, listener := range h.listeners {
		handled = listener(args...)
		if handled {
			break
		}
	}
	return handled
}

// Subscriber is the single external subscription point of the host.
// It must see exactly one listener per event type.
type Subscriber interface {
	AddListener(t EventType, fn Listener)
}

// Hijack holds one EventHandler per event type
type Hijack map[EventType]*EventHandler

// NewHijack creates a handler for every event type and registers its
// HandleEvent method with sub. sub may be nil when nothing should be registered.
func NewHijack(sub Subscriber) Hijack {
	h := make(Hijack, len(eventNames))
	for _, t := range EventTypes() {
		handler := &EventHandler{}
		h[t] = handler
		if sub != nil {
			sub.AddListener(t, handler.HandleEvent)
		}
	}
	return h
}

// On returns the handler for the given event type. It returns nil for
// event types that are not registered with the host.
func (h Hijack) On(t EventType) *EventHandler {
	return h[t]
}

// Dispatch delivers an event of type t to its local listeners.
// Unknown event types are not handled.
func (h Hijack) Dispatch(t EventType, args ...any) bool {
	handler := h.On(t)
	if handler == nil {
		return false
	}
	return handler.HandleEvent(args...)
}
