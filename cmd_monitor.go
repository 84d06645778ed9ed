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
	"github.com/jetsetilly/dspcore/debugger"
	"github.com/jetsetilly/dspcore/debugger/terminal"
	"github.com/jetsetilly/dspcore/debugger/terminal/plainterm"
	"github.com/jetsetilly/dspcore/debugger/terminal/promptterm"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/spf13/cobra"
)

func newMonitorCommand(g *globals) *cobra.Command {
	var u ucode
	var plain bool

	cmd := &cobra.Command{
		Use:   "monitor [UCODE]",
		Short: "interactive monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := g.newDSP()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if _, err := u.load(d, args[0]); err != nil {
					return err
				}
			}

			var term terminal.Terminal
			if plain || !promptterm.Available() {
				term = &plainterm.PlainTerminal{Input: cmd.InOrStdin(), Output: cmd.OutOrStdout()}
			} else {
				term = &promptterm.PromptTerminal{}
			}

			dbg := debugger.NewDebugger(d, term)

			store, err := g.openStore()
			if err != nil {
				logger.Log(logger.Allow, "monitor", err)
			} else {
				defer store.Close()
				dbg.Store = store
			}

			return dbg.Start()
		},
	}

	u.addFlags(cmd.Flags())
	cmd.Flags().BoolVar(&plain, "plain", false, "use the plain terminal even if a better one is available")

	return cmd
}
