package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyproto/imeremap"
)

func newTestHost(t *testing.T, url string) *terminalHost {
	t.Helper()
	host := newTerminalHost("test-extension", url, slog.New(slog.NewTextHandler(io.Discard, nil)))
	hijack := imeremap.NewHijack(host)
	engine := imeremap.NewEngine(host, imeremap.WithDebug(false))
	engine.Install(hijack)

	require.Len(t, host.subscribers, len(imeremap.EventTypes()))
	host.dispatch(imeremap.Focus, imeremap.InputContext{ContextID: 1})
	waitForPending(t, host)
	return host
}

func waitForPending(t *testing.T, host *terminalHost) {
	t.Helper()
	select {
	case fn := <-host.pending:
		fn()
	case <-time.After(time.Second):
		t.Fatal("window lookup did not complete")
	}
}

func press(host *terminalHost, s string) {
	for _, r := range s {
		host.keyEvent(imeremap.KeyData{Type: imeremap.KeyDown, Key: string(r)})
	}
}

func ctrl(key string) imeremap.KeyData {
	return imeremap.KeyData{Type: imeremap.KeyDown, Key: key, CtrlKey: true}
}

func TestRemappedKeysEditTheField(t *testing.T) {
	host := newTestHost(t, "https://example.com/")
	press(host, "hello world")

	assert.True(t, host.keyEvent(ctrl("a")))
	assert.Equal(t, 0, host.field.Cursor())

	for i := 0; i < 5; i++ {
		host.keyEvent(ctrl("f"))
	}
	assert.True(t, host.keyEvent(ctrl("k")))
	assert.Equal(t, "hello", host.field.String())
	assert.Equal(t, " world", host.field.Clipboard())

	host.keyEvent(ctrl("h"))
	assert.Equal(t, "hell", host.field.String())
}

func TestBlacklistedHostPassesKeysThrough(t *testing.T) {
	host := newTestHost(t, imeremap.CroshURL)
	press(host, "abc")

	// ctrl-a is not remapped to Home, and the field ignores it
	assert.False(t, host.keyEvent(ctrl("a")))
	assert.Equal(t, 3, host.field.Cursor())
}

func TestExitKey(t *testing.T) {
	assert.True(t, exitKey([]byte{3}))
	assert.True(t, exitKey([]byte{27, 27}))
	assert.False(t, exitKey([]byte{27}))
	assert.False(t, exitKey([]byte{27, 'b'}))
	assert.False(t, exitKey(nil))
}
