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

// Package promptterm implements the Terminal interface for the monitor with
// the go-prompt package. It offers line editing, history and tab completion
// of command names.
package promptterm

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/debugger/terminal"
	"golang.org/x/term"
)

// PromptTerminal uses go-prompt for input and standard output for output.
type PromptTerminal struct {
	suggestions []prompt.Suggest
	history     []string
	interrupted bool
}

// Available returns true if standard input and output are both terminals.
// go-prompt is not usable otherwise.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PromptTerminal) Initialise() error {
	if !Available() {
		return curated.Errorf("promptterm: not a terminal")
	}
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PromptTerminal) CleanUp() {
	fmt.Print("\x1b[0m\x1b[?25h")
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (pt *PromptTerminal) RegisterTabCompletion(words []string) {
	pt.suggestions = pt.suggestions[:0]
	for _, w := range words {
		pt.suggestions = append(pt.suggestions, prompt.Suggest{Text: strings.ToLower(w)})
	}
}

// IsInteractive implements the terminal.Input interface.
func (pt *PromptTerminal) IsInteractive() bool {
	return true
}

func (pt *PromptTerminal) completer(d prompt.Document) []prompt.Suggest {
	// only the command name is completed
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	w := d.GetWordBeforeCursor()
	if w == "" {
		return nil
	}
	return prompt.FilterHasPrefix(pt.suggestions, w, true)
}

// TermRead implements the terminal.Input interface.
func (pt *PromptTerminal) TermRead(p string) (string, error) {
	pt.interrupted = false

	s := prompt.Input(p, pt.completer,
		prompt.OptionHistory(pt.history),
		prompt.OptionTitle("dspcore monitor"),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(*prompt.Buffer) {
				pt.interrupted = true
			},
		}),
	)

	if pt.interrupted {
		return "", curated.Errorf(terminal.UserInterrupt)
	}

	s = strings.TrimSpace(s)
	if s != "" {
		pt.history = append(pt.history, s)
	}
	return s, nil
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PromptTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		fmt.Printf("\x1b[31m* %s\x1b[0m\n", s)
	case terminal.StyleHelp:
		fmt.Printf("\x1b[2m  %s\x1b[0m\n", s)
	case terminal.StyleTrace:
		fmt.Printf("\x1b[36m%s\x1b[0m\n", s)
	default:
		fmt.Println(s)
	}
}
