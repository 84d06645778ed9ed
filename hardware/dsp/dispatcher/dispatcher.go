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

package dispatcher

import (
	"fmt"

	"github.com/jetsetilly/dspcore/assert"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/blockcache"
	"github.com/jetsetilly/dspcore/hardware/dsp/interpreter"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
)

// Reason describes why RunSlice() returned.
type Reason int

// List of valid Reason values.
const (
	// the budget has been used
	Budget Reason = iota

	// the processor is halted
	Halted

	// a signal in the halt mask was raised
	Signalled

	// the remainder of the budget was consumed by an idle loop
	Idle

	// PC is inside a two word instruction
	Misaligned
)

func (r Reason) String() string {
	switch r {
	case Budget:
		return "budget"
	case Halted:
		return "halted"
	case Signalled:
		return "signalled"
	case Idle:
		return "idle"
	case Misaligned:
		return "misaligned"
	}
	return "unknown"
}

// Result of a single call to RunSlice().
type Result struct {
	Cycles  int
	Signals state.Signals
	Reason  Reason
}

func (r Result) String() string {
	return fmt.Sprintf("%d cycles, %s (signals: %s)", r.Cycles, r.Reason, r.Signals)
}

// Stats are the cumulative counters of the dispatcher.
type Stats struct {
	Slices      int
	Cycles      int
	Interpreted int
	BlockRuns   int
	BlockCycles int
	LinkedRuns  int
	IdleCycles  int
}

// Dispatcher selects between interpreting an instruction and running a
// compiled block.
type Dispatcher struct {
	st       *state.State
	it       *interpreter.Interpreter
	cache    *blockcache.Cache
	analysis interpreter.Analysis

	// compiled blocks are used when JIT is true
	JIT bool

	// number of dispatches of an address before it is compiled
	Threshold int

	// fast forward idle loops
	IdleSkip bool

	// RunSlice() returns early if any of these signals is raised
	HaltMask state.Signals

	// check that the dispatcher is only ever used from one goroutine
	AssertOwner bool
	owner       assert.Owner

	stats Stats

	Permission logger.Permission
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(st *state.State, analysis interpreter.Analysis, cache *blockcache.Cache) *Dispatcher {
	d := &Dispatcher{
		st:         st,
		analysis:   analysis,
		cache:      cache,
		JIT:        true,
		Threshold:  1,
		IdleSkip:   true,
		Permission: st.Permission,
	}
	d.it = interpreter.NewInterpreter(st, analysis)
	d.it.Permission = d.Permission
	return d
}

// Plumb a new state into the dispatcher.
func (d *Dispatcher) Plumb(st *state.State) {
	d.st = st
	d.it.Plumb(st)
	d.owner.Release()
}

// Interpreter returns the interpreter used by the dispatcher.
func (d *Dispatcher) Interpreter() *interpreter.Interpreter {
	return d.it
}

// Stats returns the cumulative counters of the dispatcher.
func (d *Dispatcher) Stats() Stats {
	return d.stats
}

// RunSlice runs the processor for the number of cycles in the budget. The
// signals raised during the slice are returned in the result.
//
// Pending exceptions and a request for an external interrupt are serviced
// before the first instruction of the slice.
func (d *Dispatcher) RunSlice(budget int) Result {
	if d.AssertOwner {
		d.owner.Check()
	}

	st := d.st
	st.ClearSignals()
	st.StopOn = d.HaltMask

	st.CheckExternalInterrupt()
	st.CheckExceptions()

	d.stats.Slices++

	var res Result
	var linked *jit.Block

	for res.Cycles < budget {
		if st.Halted() {
			res.Reason = Halted
			break
		}
		if st.Signals.Has(d.HaltMask) {
			res.Reason = Signalled
			break
		}
		if interpreter.Misaligned(st, d.analysis) {
			logger.Logf(d.Permission, "dispatcher", "PC %04x is not the start of an instruction", st.PC)
			res.Reason = Misaligned
			break
		}

		if d.IdleSkip && interpreter.Idle(st, d.analysis) {
			d.stats.IdleCycles += budget - res.Cycles
			res.Cycles = budget
			res.Reason = Idle
			break
		}

		if d.JIT {
			b := linked
			if b == nil || b.Entry != st.PC {
				b = d.block(st.PC)
			} else {
				d.stats.LinkedRuns++
			}
			linked = nil

			if b != nil && b.Length <= budget-res.Cycles {
				r := b.Run(st)
				res.Cycles += r.Instructions
				d.stats.BlockRuns++
				d.stats.BlockCycles += r.Instructions
				if r.Exit != nil && r.Exit.Link != nil {
					linked = r.Exit.Link
				}
				continue
			}
		}

		d.it.Step()
		res.Cycles++
		d.stats.Interpreted++
	}

	res.Signals = st.Signals
	d.stats.Cycles += res.Cycles

	return res
}

// block returns the resident block at the address or compiles one if the
// address has been dispatched often enough. Returns nil if the instruction
// should be interpreted.
func (d *Dispatcher) block(addr uint16) *jit.Block {
	if b, ok := d.cache.Lookup(addr); ok {
		return b
	}
	if d.cache.Refused(addr) {
		return nil
	}
	if d.cache.Hit(addr) < d.Threshold {
		return nil
	}

	b, err := d.cache.GetOrCompile(addr)
	if err != nil {
		if !curated.Is(err, jit.Unsupported) {
			logger.Log(d.Permission, "dispatcher", err)
		}
		return nil
	}
	return b
}

// Step interprets a single instruction regardless of the JIT setting.
func (d *Dispatcher) Step() interpreter.Result {
	if d.AssertOwner {
		d.owner.Check()
	}
	d.it.Step()
	if !d.it.LastResult.Misaligned {
		d.stats.Interpreted++
		d.stats.Cycles++
	}
	return d.it.LastResult
}
