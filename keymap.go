package imeremap

import (
	"errors"
	"fmt"
)

// ErrInvalidKeymap is wrapped by all keymap validation errors
var ErrInvalidKeymap = errors.New("invalid keymap")

// Mapping maps one chord to a sequence of one or more chords
type Mapping struct {
	Match string   `toml:"match"`
	Emit  []string `toml:"emit"`
}

// Keymap is an ordered list of mappings. The first match wins.
type Keymap []Mapping

// DefaultKeymap contains bindings for Emacs-like cursor movements
var DefaultKeymap = Keymap{
	{Match: "C-a", Emit: []string{"Home"}},            // beginning of line
	{Match: "C-e", Emit: []string{"End"}},             // end of line
	{Match: "C-M-a", Emit: []string{"C-Home"}},        // beginning of contents
	{Match: "C-M-e", Emit: []string{"C-End"}},         // end of contents
	{Match: "C-f", Emit: []string{"ArrowRight"}},      // forward one character
	{Match: "C-b", Emit: []string{"ArrowLeft"}},       // back one character
	{Match: "C-p", Emit: []string{"ArrowUp"}},         // previous line
	{Match: "C-n", Emit: []string{"ArrowDown"}},       // next line
	{Match: "C-k", Emit: []string{"S-End", "C-KeyX"}}, // cut to end of line
	{Match: "C-h", Emit: []string{"Backspace"}},       // backspace
	{Match: "C-d", Emit: []string{"Delete"}},          // delete one character
	{Match: "M-a", Emit: []string{"C-KeyA"}},          // select all
	{Match: "M-b", Emit: []string{"C-KeyB"}},          // bold
	{Match: "M-n", Emit: []string{"C-KeyN"}},          // new window
	{Match: "M-k", Emit: []string{"C-KeyK"}},          // channel switcher
	{Match: "C-s", Emit: []string{"C-KeyF"}},          // search
}

// Find returns the first mapping that matches the encoded chord
func (km Keymap) Find(encoded string) (Mapping, bool) {
	for _, m := range km {
		if m.Match == encoded {
			return m, true
		}
	}
	return Mapping{}, false
}

// Validate checks that every chord in the keymap parses strictly,
// and that every mapping emits at least one chord.
func (km Keymap) Validate() error {
	for i, m := range km {
		if _, err := ParseChord(m.Match); err != nil {
			return fmt.Errorf("%w: mapping %d: match: %w", ErrInvalidKeymap, i, err)
		}
		if len(m.Emit) == 0 {
			return fmt.Errorf("%w: mapping %d (%s): nothing to emit", ErrInvalidKeymap, i, m.Match)
		}
		for _, e := range m.Emit {
			if _, err := ParseChord(e); err != nil {
				return fmt.Errorf("%w: mapping %d (%s): emit: %w", ErrInvalidKeymap, i, m.Match, err)
			}
		}
	}
	return nil
}

// Blacklist is a set of window URLs where no remapping happens
type Blacklist map[string]struct{}

// CroshURL is the URL of the ChromeOS shell, where the terminal needs the real keys
const CroshURL = "chrome-extension://pnhechapfaindjhompbnflcldabbghjo/html/crosh.html"

// DefaultBlacklist only contains the crosh URL
var DefaultBlacklist = NewBlacklist(CroshURL)

// NewBlacklist creates a blacklist from the given URLs
func NewBlacklist(urls ...string) Blacklist {
	b := make(Blacklist, len(urls))
	for _, u := range urls {
		b[u] = struct{}{}
	}
	return b
}

// Contains checks if the URL is blacklisted. The empty URL never is.
func (b Blacklist) Contains(url string) bool {
	if url == "" {
		return false
	}
	_, found := b[url]
	return found
}
