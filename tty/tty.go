//go:build !windows

package tty

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"

	"github.com/xyproto/imeremap"
)

var defaultTimeout = 10 * time.Millisecond

// TTY is a terminal opened in raw mode
type TTY struct {
	t       *term.Term
	timeout time.Duration
}

// Open opens the terminal device in raw mode
func Open() (*TTY, error) {
	t, err := term.Open(ttyPath(), term.RawMode, term.CBreakMode, term.ReadTimeout(defaultTimeout))
	if err != nil {
		return nil, err
	}
	return &TTY{t, defaultTimeout}, nil
}

// ttyPath returns the appropriate TTY path
func ttyPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}
	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}
	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// SetTimeout sets a timeout for reading a key
func (tty *TTY) SetTimeout(d time.Duration) {
	tty.timeout = d
	tty.t.SetReadTimeout(tty.timeout)
}

// Close will restore and close the raw terminal
func (tty *TTY) Close() {
	tty.t.Restore()
	tty.t.Close()
}

// ReadBytes reads the bytes of a single key press. If only ESC arrived,
// a short follow-up read collects the rest of an escape sequence.
// An empty slice is returned if nothing was pressed before the timeout.
func (tty *TTY) ReadBytes() ([]byte, error) {
	buf := make([]byte, 8)
	term.RawMode(tty.t)
	tty.t.SetCbreak()
	tty.t.SetReadTimeout(tty.timeout)
	defer tty.t.Restore()

	n, err := tty.t.Read(buf)
	if err != nil {
		// A read timeout shows up as EOF
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, nil
		}
		return nil, err
	}
	if n == 1 && buf[0] == esc {
		tty.t.SetReadTimeout(50 * time.Millisecond)
		n2, _ := tty.t.Read(buf[1:])
		n += n2
	}
	return buf[:n], nil
}

// ReadKey reads a key press and decodes it.
// It returns false if there was no key press, or it was not recognized.
func (tty *TTY) ReadKey() (imeremap.KeyData, []byte, bool) {
	b, err := tty.ReadBytes()
	if err != nil || len(b) == 0 {
		return imeremap.KeyData{}, nil, false
	}
	kd, ok := Decode(b)
	return kd, b, ok
}
