// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into raw mode so that single key presses can be read
// without waiting for the return key.
package easyterm

import (
	"os"
	"syscall"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/pkg/term"
)

// TerminalError is returned when the terminal cannot be opened or set.
const TerminalError = "easyterm: %v"

// Key codes returned by ReadKey() that have no printable form.
const (
	KeyInterrupt = 0x03
	KeySuspend   = 0x1a
	KeyEscape    = 0x1b
	KeyReturn    = 0x0d
)

// Terminal is the controlling terminal in raw mode.
type Terminal struct {
	t   *term.Term
	buf []byte
}

// Open the controlling terminal and put it into raw mode.
func Open() (*Terminal, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Terminal{t: t, buf: make([]byte, 8)}, nil
}

// Close restores the terminal to the mode it was in before Open().
func (pt *Terminal) Close() error {
	if err := pt.t.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return pt.t.Close()
}

// ReadKey waits for a single key press. Escape sequences are returned as a
// single KeyEscape.
func (pt *Terminal) ReadKey() (byte, error) {
	n, err := pt.t.Read(pt.buf)
	if err != nil {
		return 0, curated.Errorf(TerminalError, err)
	}
	if n == 0 {
		return 0, nil
	}
	if pt.buf[0] == KeySuspend {
		pt.t.Restore()
		SuspendProcess()
		pt.t.SetRaw()
		return 0, nil
	}
	return pt.buf[0], nil
}

// SuspendProcess manually suspends the current process. This is useful if
// terminal is in raw mode and the terminal is given the suspend signal.
func SuspendProcess() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	p.Signal(syscall.SIGTSTP)
}
