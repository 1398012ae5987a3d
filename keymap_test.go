package imeremap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeymap(t *testing.T) {
	require.Len(t, DefaultKeymap, 16)
	require.NoError(t, DefaultKeymap.Validate())

	m, found := DefaultKeymap.Find("C-k")
	require.True(t, found)
	assert.Equal(t, []string{"S-End", "C-KeyX"}, m.Emit)

	_, found = DefaultKeymap.Find("C-z")
	assert.False(t, found)

	// Modifiers must be in canonical order to match
	_, found = DefaultKeymap.Find("M-C-a")
	assert.False(t, found)
	m, found = DefaultKeymap.Find("C-M-a")
	require.True(t, found)
	assert.Equal(t, []string{"C-Home"}, m.Emit)
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name string
		km   Keymap
	}{
		{"empty match", Keymap{{Match: "", Emit: []string{"Home"}}}},
		{"no emit", Keymap{{Match: "C-a"}}},
		{"bad emit", Keymap{{Match: "C-a", Emit: []string{"Home", "C-"}}}},
		{"ambiguous match", Keymap{{Match: "aC-b", Emit: []string{"Home"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.km.Validate(), ErrInvalidKeymap)
		})
	}
}

func TestBlacklist(t *testing.T) {
	assert.True(t, DefaultBlacklist.Contains(CroshURL))
	assert.False(t, DefaultBlacklist.Contains(CroshURL+"#x"))
	assert.False(t, DefaultBlacklist.Contains(""))
	assert.False(t, NewBlacklist("").Contains(""))
}

const testConfig = `
blacklist = ["https://docs.example.com/"]

[[mapping]]
match = "C-a"
emit = ["Home"]

[[mapping]]
match = "C-k"
emit = ["S-End", "C-KeyX"]
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	assert.Equal(t, Keymap{
		{Match: "C-a", Emit: []string{"Home"}},
		{Match: "C-k", Emit: []string{"S-End", "C-KeyX"}},
	}, cfg.Keymap)
	assert.Equal(t, []string{"https://docs.example.com/"}, cfg.Blacklist)

	host := &fakeHost{}
	e := NewEngine(host, cfg.Options()...)
	assert.Equal(t, cfg.Keymap, e.Keymap())
	assert.False(t, e.HandleKeyEvent("engine", keyDown("C-e")))
	assert.True(t, e.HandleKeyEvent("engine", keyDown("C-a")))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("mapping = 3"))
	assert.Error(t, err)

	_, err = LoadConfig(strings.NewReader(`blacklist = []`))
	assert.ErrorIs(t, err, ErrInvalidKeymap)

	_, err = LoadConfig(strings.NewReader("[[mapping]]\nmatch = \"C-a\"\n"))
	assert.ErrorIs(t, err, ErrInvalidKeymap)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Keymap, 2)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
