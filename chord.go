package imeremap

import (
	"errors"
	"fmt"
	"strings"
)

// Chord prefixes, in the order they are encoded
const (
	CtrlPrefix  = "C-"
	ShiftPrefix = "S-"
	AltPrefix   = "M-"
)

var (
	ErrEmptyChord     = errors.New("empty chord")
	ErrNoKeyCode      = errors.New("chord has no key code")
	ErrAmbiguousChord = errors.New("chord has more than one key code")
)

// KeyChord is a key combined with zero or more modifiers
type KeyChord struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Code  string
}

// String encodes the chord as for example "C-M-a".
// The modifiers are always written in the order C-, S-, M-.
func (k KeyChord) String() string {
	var sb strings.Builder
	if k.Ctrl {
		sb.WriteString(CtrlPrefix)
	}
	if k.Shift {
		sb.WriteString(ShiftPrefix)
	}
	if k.Alt {
		sb.WriteString(AltPrefix)
	}
	sb.WriteString(k.Code)
	return sb.String()
}

// splitChord splits s on every C-, S- and M- and returns the parts,
// with the prefixes as separate parts and without empty parts.
func splitChord(s string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); {
		if prefixAt(s, i) {
			if i > start {
				parts = append(parts, s[start:i])
			}
			parts = append(parts, s[i:i+2])
			i += 2
			start = i
			continue
		}
		i++
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

func prefixAt(s string, i int) bool {
	if i+1 >= len(s) || s[i+1] != '-' {
		return false
	}
	switch s[i] {
	case 'C', 'S', 'M':
		return true
	}
	return false
}

// applyPart sets the modifier for a prefix part, or else the code.
// It returns true if the part was a prefix.
func (k *KeyChord) applyPart(part string) bool {
	switch part {
	case CtrlPrefix:
		k.Ctrl = true
	case ShiftPrefix:
		k.Shift = true
	case AltPrefix:
		k.Alt = true
	default:
		k.Code = part
		return false
	}
	return true
}

// DecodeChord decodes a chord string. Prefixes may come in any order.
// Only what is present in s is set: a missing code leaves Code empty.
// If there are several code segments, the last one wins.
func DecodeChord(s string) KeyChord {
	var k KeyChord
	for _, part := range splitChord(s) {
		k.applyPart(part)
	}
	return k
}

// ParseChord decodes a chord string like DecodeChord,
// but returns an error if s has no code, or more than one.
func ParseChord(s string) (KeyChord, error) {
	if s == "" {
		return KeyChord{}, ErrEmptyChord
	}
	var (
		k     KeyChord
		codes int
	)
	for _, part := range splitChord(s) {
		if !k.applyPart(part) {
			codes++
		}
	}
	switch {
	case codes == 0:
		return k, fmt.Errorf("%q: %w", s, ErrNoKeyCode)
	case codes > 1:
		return k, fmt.Errorf("%q: %w", s, ErrAmbiguousChord)
	}
	return k, nil
}
