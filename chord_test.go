package imeremap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyChordString(t *testing.T) {
	tests := []struct {
		chord KeyChord
		want  string
	}{
		{KeyChord{Code: "a"}, "a"},
		{KeyChord{Ctrl: true, Code: "a"}, "C-a"},
		{KeyChord{Alt: true, Ctrl: true, Code: "e"}, "C-M-e"},
		{KeyChord{Shift: true, Code: "End"}, "S-End"},
		{KeyChord{Ctrl: true, Shift: true, Alt: true, Code: "KeyX"}, "C-S-M-KeyX"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.chord.String())
	}
}

func TestDecodeEncodeInverse(t *testing.T) {
	codes := []string{"a", "Home", "KeyX", "ArrowLeft", "1", "-", "C"}
	for _, code := range codes {
		for mask := 0; mask < 8; mask++ {
			k := KeyChord{
				Ctrl:  mask&1 != 0,
				Shift: mask&2 != 0,
				Alt:   mask&4 != 0,
				Code:  code,
			}
			assert.Equal(t, k, DecodeChord(k.String()), k.String())
		}
	}
}

func TestDecodeChordAnyPrefixOrder(t *testing.T) {
	k := DecodeChord("M-S-C-a")
	assert.Equal(t, KeyChord{Ctrl: true, Shift: true, Alt: true, Code: "a"}, k)
	assert.Equal(t, "C-S-M-a", k.String())
}

func TestDecodeChordPartial(t *testing.T) {
	assert.Equal(t, KeyChord{Code: "Home"}, DecodeChord("Home"))
	assert.Equal(t, KeyChord{Ctrl: true}, DecodeChord("C-"))
	assert.Equal(t, KeyChord{}, DecodeChord(""))
}

func TestDecodeChordLastCodeWins(t *testing.T) {
	assert.Equal(t, KeyChord{Ctrl: true, Code: "b"}, DecodeChord("aC-b"))
	assert.Equal(t, KeyChord{Ctrl: true, Code: "C"}, DecodeChord("CC-"))
}

func TestParseChord(t *testing.T) {
	k, err := ParseChord("C-M-a")
	require.NoError(t, err)
	assert.Equal(t, KeyChord{Ctrl: true, Alt: true, Code: "a"}, k)

	_, err = ParseChord("")
	assert.ErrorIs(t, err, ErrEmptyChord)

	_, err = ParseChord("C-S-")
	assert.ErrorIs(t, err, ErrNoKeyCode)

	k, err = ParseChord("aC-b")
	assert.ErrorIs(t, err, ErrAmbiguousChord)
	assert.Equal(t, DecodeChord("aC-b"), k)
}
