package imeremap

import "sync"

// NoContext is the context ID before any input field has been focused
const NoContext = -1

// Session is the state that the focus handler writes and the key handler reads
type Session struct {
	mu        sync.Mutex
	contextID int
	url       string
}

func newSession() *Session {
	return &Session{contextID: NoContext}
}

// ContextID returns the ID of the focused input context, or NoContext
func (s *Session) ContextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contextID
}

// URL returns the top document URL of the last focused window, if known
func (s *Session) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

func (s *Session) setContextID(id int) {
	s.mu.Lock()
	s.contextID = id
	s.mu.Unlock()
}

func (s *Session) setURL(url string) {
	s.mu.Lock()
	s.url = url
	s.mu.Unlock()
}
