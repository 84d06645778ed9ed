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

// Package plainterm implements the Terminal interface for the monitor. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	Input  io.Reader
	Output io.Writer

	realInput bool
	scanner   *bufio.Scanner
}

// Initialise perfoms any setting up required for the terminal. Standard input
// and output are used if Input and Output have not been set.
func (pt *PlainTerminal) Initialise() error {
	if pt.Input == nil {
		pt.Input = os.Stdin
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.Output == nil {
		pt.Output = os.Stdout
	}
	pt.scanner = bufio.NewScanner(pt.Input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (pt *PlainTerminal) RegisterTabCompletion([]string) {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleHelp:
		s = fmt.Sprintf("  %s", s)
	}

	io.WriteString(pt.Output, s)
	io.WriteString(pt.Output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	// insert prompt into output stream
	if pt.realInput {
		io.WriteString(pt.Output, prompt)
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", curated.Errorf(terminal.UserQuit)
	}

	return strings.TrimSpace(pt.scanner.Text()), nil
}
