// Package tty reads key presses from a terminal and turns them into
// key events that can be fed to the remapper.
package tty

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xyproto/imeremap"
)

const esc = 27

type namedKey struct {
	key  string
	code string
}

var (
	keyEnter     = namedKey{"Enter", "Enter"}
	keyTab       = namedKey{"Tab", "Tab"}
	keyBackspace = namedKey{"Backspace", "Backspace"}
	keyEscape    = namedKey{"Escape", "Escape"}
	keyUp        = namedKey{"ArrowUp", "ArrowUp"}
	keyDown      = namedKey{"ArrowDown", "ArrowDown"}
	keyRight     = namedKey{"ArrowRight", "ArrowRight"}
	keyLeft      = namedKey{"ArrowLeft", "ArrowLeft"}
	keyHome      = namedKey{"Home", "Home"}
	keyEnd       = namedKey{"End", "End"}
	keyInsert    = namedKey{"Insert", "Insert"}
	keyDelete    = namedKey{"Delete", "Delete"}
	keyPageUp    = namedKey{"PageUp", "PageUp"}
	keyPageDown  = namedKey{"PageDown", "PageDown"}
)

// Key names for 3-byte sequences (arrows, Home, End)
var cursorLookup = map[[3]byte]namedKey{
	{esc, '[', 'A'}: keyUp,
	{esc, '[', 'B'}: keyDown,
	{esc, '[', 'C'}: keyRight,
	{esc, '[', 'D'}: keyLeft,
	{esc, '[', 'H'}: keyHome,
	{esc, '[', 'F'}: keyEnd,
	{esc, 'O', 'A'}: keyUp,
	{esc, 'O', 'B'}: keyDown,
	{esc, 'O', 'C'}: keyRight,
	{esc, 'O', 'D'}: keyLeft,
	{esc, 'O', 'H'}: keyHome,
	{esc, 'O', 'F'}: keyEnd,
}

// Key names for 4-byte sequences (Page Up, Page Down, Home, End, Insert, Delete)
var pageNavLookup = map[[4]byte]namedKey{
	{esc, '[', '1', '~'}: keyHome,
	{esc, '[', '2', '~'}: keyInsert,
	{esc, '[', '3', '~'}: keyDelete,
	{esc, '[', '4', '~'}: keyEnd,
	{esc, '[', '5', '~'}: keyPageUp,
	{esc, '[', '6', '~'}: keyPageDown,
}

// Final bytes of ESC [ 1 ; m X sequences
var modifiedFinal = map[byte]namedKey{
	'A': keyUp,
	'B': keyDown,
	'C': keyRight,
	'D': keyLeft,
	'H': keyHome,
	'F': keyEnd,
}

// Decode turns the bytes of a single key press into a keydown event.
// It returns false if the bytes are not recognized.
func Decode(b []byte) (imeremap.KeyData, bool) {
	switch {
	case len(b) == 0:
		return imeremap.KeyData{}, false
	case len(b) == 1:
		return decodeByte(b[0])
	case b[0] == esc && len(b) == 2:
		// ESC followed by a key is how terminals send Alt/Meta
		kd, ok := decodeByte(b[1])
		if !ok || b[1] == esc {
			return imeremap.KeyData{}, false
		}
		kd.AltKey = true
		return kd, true
	case len(b) == 3:
		if k, found := cursorLookup[[3]byte{b[0], b[1], b[2]}]; found {
			return named(k), true
		}
	case len(b) == 4:
		if k, found := pageNavLookup[[4]byte{b[0], b[1], b[2], b[3]}]; found {
			return named(k), true
		}
	case len(b) == 6:
		if kd, ok := decodeModified(b); ok {
			return kd, true
		}
		if string(b) == "\x1b[3;5~" {
			kd := named(keyDelete)
			kd.CtrlKey = true
			return kd, true
		}
	}
	if b[0] == esc {
		return imeremap.KeyData{}, false
	}
	// Attempt to decode as UTF-8
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError || size != len(b) || !unicode.IsPrint(r) {
		return imeremap.KeyData{}, false
	}
	return printable(r), true
}

// decodeModified handles ESC [ 1 ; m X, where m is the xterm modifier parameter
func decodeModified(b []byte) (imeremap.KeyData, bool) {
	if b[0] != esc || b[1] != '[' || b[2] != '1' || b[3] != ';' {
		return imeremap.KeyData{}, false
	}
	k, found := modifiedFinal[b[5]]
	if !found || b[4] < '2' || b[4] > '8' {
		return imeremap.KeyData{}, false
	}
	mods := b[4] - '1'
	kd := named(k)
	kd.ShiftKey = mods&1 != 0
	kd.AltKey = mods&2 != 0
	kd.CtrlKey = mods&4 != 0
	return kd, true
}

func decodeByte(c byte) (imeremap.KeyData, bool) {
	switch {
	case c == 13 || c == 10:
		return named(keyEnter), true
	case c == 9:
		return named(keyTab), true
	case c == 127:
		return named(keyBackspace), true
	case c == esc:
		return named(keyEscape), true
	case c == 0:
		kd := printable(' ')
		kd.CtrlKey = true
		return kd, true
	case c >= 1 && c <= 26:
		// Ctrl-A to Ctrl-Z
		kd := printable(rune('a' + c - 1))
		kd.CtrlKey = true
		return kd, true
	case c >= 32 && c < 127:
		return printable(rune(c)), true
	}
	return imeremap.KeyData{}, false
}

func named(k namedKey) imeremap.KeyData {
	return imeremap.KeyData{
		Type: imeremap.KeyDown,
		Key:  k.key,
		Code: k.code,
	}
}

// printable creates an event for a character key, with the physical code
// guessed from a US layout
func printable(r rune) imeremap.KeyData {
	kd := imeremap.KeyData{
		Type: imeremap.KeyDown,
		Key:  string(r),
	}
	switch {
	case r >= 'a' && r <= 'z':
		kd.Code = "Key" + strings.ToUpper(string(r))
	case r >= 'A' && r <= 'Z':
		kd.Code = "Key" + string(r)
		kd.ShiftKey = true
	case r >= '0' && r <= '9':
		kd.Code = "Digit" + string(r)
	case r == ' ':
		kd.Code = "Space"
	}
	return kd
}
