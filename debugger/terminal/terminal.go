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

package terminal

// Sentinel errors. Returned by TermRead() when the user has asked to leave
// the monitor.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// Style is used to differentiate the different types of output.
type Style int

// List of terminal styles.
const (
	// the input from the user, echoed back
	StyleEcho Style = iota

	// information from the processor, registers, memory, etc.
	StyleInstrument

	// the result of a single instruction
	StyleTrace

	// help text
	StyleHelp

	// general feedback
	StyleFeedback

	// an error
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input. The prompt is shown if the
	// terminal supports it.
	TermRead(prompt string) (string, error)

	// IsInteractive returns true if the terminal expects a human at the
	// other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Register the list of words offered by tab completion. Not all
	// implementations need to respond meaningfully to this.
	RegisterTabCompletion(words []string)
}
