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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/debugger/terminal"
	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/jetsetilly/dspcore/rewind"
	"github.com/jetsetilly/dspcore/savestate"
)

// DefaultBudget is the number of cycles in a slice run by the RUN command
// when no budget is given.
const DefaultBudget = 1024

// Debugger is the monitor for a single DSP.
type Debugger struct {
	dsp  *dsp.DSP
	term terminal.Terminal

	// save states are not available if Store is nil
	Store *savestate.Store

	// hash of every instruction word executed by STEP
	trace *digest.Trace

	// history of the DSP after each command that changes it
	rewind *rewind.Rewind

	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(d *dsp.DSP, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		dsp:    d,
		term:   term,
		trace:  digest.NewTrace(),
		rewind: rewind.NewRewind(d),
	}
	dbg.rewind.Reset()
	return dbg
}

func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ %04x ] >> ", dbg.dsp.State.PC)
}

// Start the input loop. Returns when the user quits or on a terminal error.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(keywords())

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}
			if curated.Is(err, terminal.UserQuit) {
				return nil
			}
			return err
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.Execute(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// Execute a single line of input. Empty lines and lines beginning with # are
// ignored.
func (dbg *Debugger) Execute(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)
	cmd, ok := lookup(tokens[0])
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return curated.Errorf(BadArguments, cmd.keyword, cmd.usage)
	}

	if err := cmd.fn(dbg, args); err != nil {
		return err
	}

	if recorded[cmd.keyword] {
		dbg.rewind.Record(strings.ToLower(input))
	}

	return nil
}

// Quit returns true once the QUIT command has been executed.
func (dbg *Debugger) Quit() bool {
	return dbg.quit
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}
