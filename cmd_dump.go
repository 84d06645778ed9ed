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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/spf13/cobra"
)

// the parts of the DSP included in a dot graph. the memories are left out
// because they are too large to be useful in a graph
type dumpGraph struct {
	PC     string
	SR     string
	Stacks [registers.NumStacks][]uint16
	Blocks []*dumpBlock
}

type dumpBlock struct {
	Entry string
	End   string
	State string
	Exits []*dumpExit
}

type dumpExit struct {
	Target string
	Link   *dumpBlock
}

func newDumpGraph(d *dsp.DSP) *dumpGraph {
	g := &dumpGraph{
		PC: fmt.Sprintf("%04x", d.State.PC),
		SR: fmt.Sprintf("%04x", d.State.GetSR()),
	}
	for i := range d.State.Stacks {
		g.Stacks[i] = d.State.Stacks[i].Entries
	}

	nodes := make(map[uint16]*dumpBlock)
	for _, e := range d.Cache.Entries() {
		b, _ := d.Cache.Lookup(e)
		n := &dumpBlock{
			Entry: fmt.Sprintf("%04x", b.Entry),
			End:   fmt.Sprintf("%04x", b.End-1),
			State: d.Cache.State(e).String(),
		}
		nodes[e] = n
		g.Blocks = append(g.Blocks, n)
	}

	for _, e := range d.Cache.Entries() {
		b, _ := d.Cache.Lookup(e)
		for _, x := range b.Exits() {
			de := &dumpExit{Target: fmt.Sprintf("%04x", x.Target)}
			if x.Link != nil {
				de.Link = nodes[x.Link.Entry]
			}
			nodes[e].Exits = append(nodes[e].Exits, de)
		}
	}

	return g
}

func newDumpCommand(g *globals) *cobra.Command {
	var u ucode
	var cycles int
	var dot string

	cmd := &cobra.Command{
		Use:   "dump UCODE",
		Short: "run a microcode image and dump the processor and block cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := g.newDSP()
			if err != nil {
				return err
			}
			if _, err := u.load(d, args[0]); err != nil {
				return err
			}
			d.RunSlice(cycles)

			out := cmd.OutOrStdout()

			if dot != "" {
				f, err := os.Create(dot)
				if err != nil {
					return err
				}
				defer f.Close()
				memviz.Map(f, newDumpGraph(d))
				fmt.Fprintf(out, "graph written to %s\n", dot)
				return nil
			}

			fmt.Fprintln(out, d.State.String())
			for _, e := range d.Cache.Entries() {
				b, _ := d.Cache.Lookup(e)
				fmt.Fprintln(out, b.Disasm())
			}
			fmt.Fprintln(out, d.Stats())
			return nil
		},
	}

	u.addFlags(cmd.Flags())
	cmd.Flags().IntVar(&cycles, "cycles", 1024, "cycles to run before dumping")
	cmd.Flags().StringVar(&dot, "dot", "", "write a graphviz dot file instead of text")

	return cmd
}
