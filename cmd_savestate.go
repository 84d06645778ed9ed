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

	"github.com/spf13/cobra"
)

func newSaveStateCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savestate",
		Short: "manage save states",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list save state slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := g.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			l, err := store.List()
			if err != nil {
				return err
			}
			for _, e := range l {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete SLOT",
		Short: "delete a save state slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := g.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(args[0])
		},
	})

	return cmd
}
