package imeremap

// Key event types
const (
	KeyDown = "keydown"
	KeyUp   = "keyup"
)

// KeyData describes a single key event, as delivered to and sent back to the host
type KeyData struct {
	Type        string `json:"type"`
	RequestID   string `json:"requestId,omitempty"`
	ExtensionID string `json:"extensionId,omitempty"`
	Key         string `json:"key"`
	Code        string `json:"code"`
	KeyCode     int    `json:"keyCode,omitempty"`
	AltKey      bool   `json:"altKey"`
	AltGrKey    bool   `json:"altgrKey,omitempty"`
	CtrlKey     bool   `json:"ctrlKey"`
	ShiftKey    bool   `json:"shiftKey"`
	CapsLock    bool   `json:"capsLock,omitempty"`
}

// Chord returns the chord that is used for matching against a keymap.
// The key field is used, not the physical code.
func (kd KeyData) Chord() KeyChord {
	return KeyChord{
		Ctrl:  kd.CtrlKey,
		Shift: kd.ShiftKey,
		Alt:   kd.AltKey,
		Code:  kd.Key,
	}
}

// Synthesize returns a copy of kd where the modifiers, key and code are
// cleared, and then the fields present in the partial chord are applied.
// The code of the chord ends up in the code field; key is left empty.
func (kd KeyData) Synthesize(partial KeyChord) KeyData {
	out := kd
	out.AltKey = false
	out.CtrlKey = false
	out.ShiftKey = false
	out.Key = ""
	out.Code = ""
	if partial.Ctrl {
		out.CtrlKey = true
	}
	if partial.Shift {
		out.ShiftKey = true
	}
	if partial.Alt {
		out.AltKey = true
	}
	if partial.Code != "" {
		out.Code = partial.Code
	}
	return out
}
