//go:build windows

package tty

import (
	"errors"
	"time"

	"github.com/xyproto/imeremap"
)

// ErrUnsupported is returned by Open on platforms without a raw TTY device
var ErrUnsupported = errors.New("raw tty input is not supported on this platform")

// TTY is a terminal opened in raw mode
type TTY struct{}

// Open is not supported on Windows
func Open() (*TTY, error) {
	return nil, ErrUnsupported
}

// SetTimeout does nothing on Windows
func (tty *TTY) SetTimeout(d time.Duration) {}

// Close does nothing on Windows
func (tty *TTY) Close() {}

// ReadBytes always fails on Windows
func (tty *TTY) ReadBytes() ([]byte, error) {
	return nil, ErrUnsupported
}

// ReadKey never returns a key on Windows
func (tty *TTY) ReadKey() (imeremap.KeyData, []byte, bool) {
	return imeremap.KeyData{}, nil, false
}
