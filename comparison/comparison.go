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

package comparison

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/blockcache"
	"github.com/jetsetilly/dspcore/hardware/dsp/dispatcher"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/random"
	"golang.org/x/sync/errgroup"
)

// Mismatch is the error returned when the two processors differ.
const Mismatch = "comparison: seed %d: slice %d: %s"

// Config of a comparison.
type Config struct {
	// number of words in the generated program
	Program int

	// number of slices and the budget of each slice
	Slices int
	Budget int

	// compiler settings for the compiled processor
	Threshold int
	MaxBlock  int
	CacheSize int
}

// DefaultConfig is a small comparison suitable for tests.
var DefaultConfig = Config{
	Program:   128,
	Slices:    8,
	Budget:    64,
	Threshold: 1,
	MaxBlock:  jit.DefaultMaxBlock,
	CacheSize: 64,
}

// processor is one of the two processors in a comparison.
type processor struct {
	st    *state.State
	cache *blockcache.Cache
	d     *dispatcher.Dispatcher
}

func newProcessor(st *state.State, cfg Config, compiled bool) *processor {
	p := &processor{st: st}

	an := analyzer.NewAnalyzer(st.Mem, nil, nil)
	an.Permission = logger.Deny

	c := jit.NewCompiler(st.Mem, an)
	c.Permission = logger.Deny
	c.MaxBlock = cfg.MaxBlock

	p.cache = blockcache.NewCache(c, an, cfg.CacheSize)
	p.cache.Permission = logger.Deny
	an.OnChange = p.cache.InvalidateAddresses
	st.Plumb(st.Mem, p.cache)

	p.d = dispatcher.NewDispatcher(st, an, p.cache)
	p.d.Permission = logger.Deny
	p.d.JIT = compiled
	p.d.Threshold = cfg.Threshold

	// idle skipping changes the number of instructions run for a budget.
	// it is tested separately
	p.d.IdleSkip = false

	return p
}

// Comparison of an interpreted processor and a processor using compiled
// blocks.
type Comparison struct {
	Seed int64
	cfg  Config

	Interpreted *state.State
	Compiled    *state.State

	interp   *processor
	compiled *processor
}

// NewComparison creates two identical processors from the seed. The program
// is loaded at address zero and both processors start there.
func NewComparison(seed int64, cfg Config) *Comparison {
	rnd := random.NewRandom(seed)

	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	st := state.NewState(mem, state.Config{Vectoring: true, Permission: logger.Deny})
	mem.LoadIRAM(0, rnd.Program(0, cfg.Program))
	rnd.State(st)
	rnd.Data(st)
	st.PC = 0

	cmp := &Comparison{
		Seed:        rnd.Seed(),
		cfg:         cfg,
		Interpreted: st.Snapshot(),
		Compiled:    st,
	}
	cmp.interp = newProcessor(cmp.Interpreted, cfg, false)
	cmp.compiled = newProcessor(cmp.Compiled, cfg, true)

	return cmp
}

// Run every slice on both processors. The states are compared after each
// slice. Returns an error matching Mismatch on the first difference.
func (cmp *Comparison) Run() error {
	for i := 0; i < cmp.cfg.Slices; i++ {
		ri := cmp.interp.d.RunSlice(cmp.cfg.Budget)
		rc := cmp.compiled.d.RunSlice(cmp.cfg.Budget)

		if ri != rc {
			return curated.Errorf(Mismatch, cmp.Seed, i, fmt.Sprintf("result %s != %s", ri, rc))
		}
		if d := Diff(cmp.Interpreted, cmp.Compiled); d != "" {
			return curated.Errorf(Mismatch, cmp.Seed, i, d)
		}
		if ri.Reason == dispatcher.Halted || ri.Reason == dispatcher.Misaligned {
			break
		}
	}
	return nil
}

// Stats returns the dispatcher counters of the compiled processor.
func (cmp *Comparison) Stats() (dispatcher.Stats, blockcache.Stats) {
	return cmp.compiled.d.Stats(), cmp.compiled.cache.Stats()
}

// Report is the result of RunSeeds().
type Report struct {
	Seeds       int
	BlockRuns   int
	BlockCycles int
	Interpreted int
	Compiled    int
}

func (r Report) String() string {
	return fmt.Sprintf("%d seeds: %d blocks run (%d cycles), %d instructions interpreted, %d blocks compiled",
		r.Seeds, r.BlockRuns, r.BlockCycles, r.Interpreted, r.Compiled)
}

// RunSeeds runs a comparison for each seed in the range first to
// first+count-1. Comparisons run in parallel on up to workers goroutines.
// A value of zero for workers uses one goroutine per CPU.
//
// The first mismatch cancels the remaining comparisons and is returned.
func RunSeeds(ctx context.Context, first int64, count int, workers int, cfg Config) (Report, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	reports := make([]Report, count)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cmp := NewComparison(first+int64(i), cfg)
			if err := cmp.Run(); err != nil {
				return err
			}

			ds, cs := cmp.Stats()
			reports[i] = Report{
				Seeds:       1,
				BlockRuns:   ds.BlockRuns,
				BlockCycles: ds.BlockCycles,
				Interpreted: ds.Interpreted,
				Compiled:    cs.Compiled,
			}
			return nil
		})
	}

	err := g.Wait()

	var rep Report
	for _, r := range reports {
		rep.Seeds += r.Seeds
		rep.BlockRuns += r.BlockRuns
		rep.BlockCycles += r.BlockCycles
		rep.Interpreted += r.Interpreted
		rep.Compiled += r.Compiled
	}

	return rep, err
}
