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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/dspcore/debugger/terminal/easyterm"
	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/spf13/cobra"
)

func newTraceCommand(g *globals) *cobra.Command {
	var u ucode
	var count int
	var keys bool

	cmd := &cobra.Command{
		Use:   "trace UCODE",
		Short: "interpret a microcode image one instruction at a time",
		Long: `Interpret a microcode image one instruction at a time, printing every
instruction. With --keys the next instruction is run when a key is pressed.
Press q or escape to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := g.newDSP()
			if err != nil {
				return err
			}
			if _, err := u.load(d, args[0]); err != nil {
				return err
			}

			tr := &tracer{d: d, out: cmd.OutOrStdout(), dig: digest.NewTrace()}

			if keys {
				err = tr.keys(count)
			} else {
				for i := 0; i < count && tr.step(); i++ {
				}
			}

			fmt.Fprintf(tr.out, "trace: %s\n", tr.dig.Hash())
			return err
		},
	}

	u.addFlags(cmd.Flags())
	cmd.Flags().IntVar(&count, "count", 64, "maximum number of instructions")
	cmd.Flags().BoolVar(&keys, "keys", false, "step on each key press")

	return cmd
}

type tracer struct {
	d   *dsp.DSP
	out io.Writer
	dig *digest.Trace
}

// step a single instruction. returns false if the processor has halted
func (tr *tracer) step() bool {
	if tr.d.State.Halted() {
		fmt.Fprintln(tr.out, "halted")
		return false
	}
	tr.d.Step()
	r := tr.d.Dispatcher.Interpreter().LastResult
	tr.dig.Add(r.Address, r.Word)
	fmt.Fprintf(tr.out, "%-40s %s\n", r, tr.d.State.String())
	return true
}

func (tr *tracer) keys(count int) error {
	t, err := easyterm.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	for i := 0; i < count; i++ {
		k, err := t.ReadKey()
		if err != nil {
			return err
		}
		switch k {
		case 'q', easyterm.KeyEscape, easyterm.KeyInterrupt:
			return nil
		}
		if !tr.step() {
			return nil
		}
		// raw mode does not translate newlines
		fmt.Fprint(tr.out, "\r")
	}
	return nil
}
