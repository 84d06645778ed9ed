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

	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(g *globals) *cobra.Command {
	var u ucode
	var all bool

	cmd := &cobra.Command{
		Use:   "analyze UCODE",
		Short: "print the analysis side table of a microcode image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := g.newDSP()
			if err != nil {
				return err
			}
			l, err := u.load(d, args[0])
			if err != nil {
				return err
			}

			start := u.origin
			if u.rom {
				start = memory.IROMOrigin
			}
			end := uint32(start) + uint32(len(l.Words))

			out := cmd.OutOrStdout()
			for a := uint32(start); a < end; a++ {
				addr := uint16(a)
				f := d.Analyzer.Flags(addr)
				if f == 0 && !all {
					continue
				}
				w := d.ReadInstructionMemory(addr)
				s := fmt.Sprintf("%04x: %04x  %-32s %s", addr, w, opcodes.Disasm(w, d.ReadInstructionMemory(addr+1)), f)
				if sig, ok := d.Analyzer.Signature(addr); ok {
					s = fmt.Sprintf("%s (%s)", s, sig.Name)
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	u.addFlags(cmd.Flags())
	cmd.Flags().BoolVar(&all, "all", false, "include addresses with no flags")

	return cmd
}
