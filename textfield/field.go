// Package textfield is a single-line text field that edits itself
// the way a host text input reacts to key events.
package textfield

import (
	"strings"
	"unicode"

	"github.com/mgutz/ansi"

	"github.com/xyproto/imeremap"
)

var (
	selectionColor = ansi.ColorFunc("black:white")
	cursorColor    = ansi.ColorFunc("black:cyan")
)

// Field is a line of text with a cursor, an optional selection and a clipboard
type Field struct {
	text      []rune
	cursor    int
	anchor    int // start of the selection, or -1
	clipboard string
}

// New creates an empty field
func New() *Field {
	return &Field{anchor: -1}
}

// String returns the text in the field
func (f *Field) String() string {
	return string(f.text)
}

// Cursor returns the cursor position, in runes
func (f *Field) Cursor() int {
	return f.cursor
}

// Clipboard returns the last cut or copied text
func (f *Field) Clipboard() string {
	return f.clipboard
}

// Selection returns the selected range. ok is false if nothing is selected.
func (f *Field) Selection() (start, end int, ok bool) {
	if f.anchor < 0 || f.anchor == f.cursor {
		return 0, 0, false
	}
	if f.anchor < f.cursor {
		return f.anchor, f.cursor, true
	}
	return f.cursor, f.anchor, true
}

// Selected returns the selected text
func (f *Field) Selected() string {
	start, end, ok := f.Selection()
	if !ok {
		return ""
	}
	return string(f.text[start:end])
}

// Apply edits the field according to a keydown event.
// It returns false if the event has no effect on a text field.
func (f *Field) Apply(kd imeremap.KeyData) bool {
	if kd.Type != imeremap.KeyDown {
		return false
	}
	switch kd.Code {
	case "Home", "ArrowUp":
		f.move(0, kd.ShiftKey)
		return true
	case "End", "ArrowDown":
		f.move(len(f.text), kd.ShiftKey)
		return true
	case "ArrowLeft":
		f.move(f.cursor-1, kd.ShiftKey)
		return true
	case "ArrowRight":
		f.move(f.cursor+1, kd.ShiftKey)
		return true
	case "Backspace":
		if !f.deleteSelection() && f.cursor > 0 {
			f.remove(f.cursor-1, f.cursor)
		}
		return true
	case "Delete":
		if !f.deleteSelection() && f.cursor < len(f.text) {
			f.remove(f.cursor, f.cursor+1)
		}
		return true
	}
	if kd.CtrlKey {
		return f.applyCtrl(kd.Code)
	}
	if kd.AltKey {
		return false
	}
	r := []rune(kd.Key)
	if len(r) != 1 || !unicode.IsPrint(r[0]) {
		return false
	}
	f.insert(kd.Key)
	return true
}

func (f *Field) applyCtrl(code string) bool {
	switch code {
	case "KeyA":
		f.anchor = 0
		f.cursor = len(f.text)
	case "KeyC":
		if s := f.Selected(); s != "" {
			f.clipboard = s
		}
	case "KeyX":
		if s := f.Selected(); s != "" {
			f.clipboard = s
			f.deleteSelection()
		}
	case "KeyV":
		f.insert(f.clipboard)
	default:
		return false
	}
	return true
}

// move places the cursor at pos, extending the selection if extend is true
func (f *Field) move(pos int, extend bool) {
	pos = max(0, min(pos, len(f.text)))
	if extend {
		if f.anchor < 0 {
			f.anchor = f.cursor
		}
	} else {
		f.anchor = -1
	}
	f.cursor = pos
}

func (f *Field) remove(start, end int) {
	f.text = append(f.text[:start], f.text[end:]...)
	f.cursor = start
	f.anchor = -1
}

func (f *Field) deleteSelection() bool {
	start, end, ok := f.Selection()
	if !ok {
		f.anchor = -1
		return false
	}
	f.remove(start, end)
	return true
}

func (f *Field) insert(s string) {
	f.deleteSelection()
	r := []rune(s)
	text := make([]rune, 0, len(f.text)+len(r))
	text = append(text, f.text[:f.cursor]...)
	text = append(text, r...)
	text = append(text, f.text[f.cursor:]...)
	f.text = text
	f.cursor += len(r)
}

// Render returns the text with the selection and the cursor highlighted,
// cut to fit within width columns
func (f *Field) Render(width uint) string {
	start, end, selected := f.Selection()
	var sb strings.Builder
	for i := 0; i <= len(f.text); i++ {
		if width > 0 && uint(i) >= width {
			break
		}
		cell := " "
		if i < len(f.text) {
			cell = string(f.text[i])
		}
		switch {
		case i == f.cursor:
			sb.WriteString(cursorColor(cell))
		case selected && i >= start && i < end:
			sb.WriteString(selectionColor(cell))
		default:
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
