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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/dspcore/comparison"
	"github.com/spf13/cobra"
)

func newFuzzCommand(g *globals) *cobra.Command {
	cfg := comparison.DefaultConfig
	var first int64
	var seeds int
	var workers int

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "compare the interpreter with compiled blocks on random programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			rep, err := comparison.RunSeeds(ctx, first, seeds, workers, cfg)
			fmt.Fprintln(cmd.OutOrStdout(), rep)
			return err
		},
	}

	fs := cmd.Flags()
	fs.Int64Var(&first, "first", 1, "first seed")
	fs.IntVar(&seeds, "seeds", 256, "number of seeds")
	fs.IntVar(&workers, "workers", 0, "parallel comparisons (0 is one per CPU)")
	fs.IntVar(&cfg.Program, "program", cfg.Program, "words in each random program")
	fs.IntVar(&cfg.Slices, "slices", cfg.Slices, "slices per comparison")
	fs.IntVar(&cfg.Budget, "budget", cfg.Budget, "cycles per slice")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "dispatches before compilation")
	fs.IntVar(&cfg.MaxBlock, "maxblock", cfg.MaxBlock, "maximum instructions per block")
	fs.IntVar(&cfg.CacheSize, "cachesize", cfg.CacheSize, "resident block bound")

	return cmd
}
