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

package dsp

import (
	"fmt"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/blockcache"
	"github.com/jetsetilly/dspcore/hardware/dsp/dispatcher"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/hardware/preferences"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/prefs"
)

// NoPreferences is returned by NewDSP() when the preferences are nil.
const NoPreferences = "dsp: no preferences"

// DSP is the container for the emulated components of the DSP.
type DSP struct {
	Prefs *preferences.Preferences

	Mem        *memory.Memory
	State      *state.State
	Analyzer   *analyzer.Analyzer
	Compiler   *jit.Compiler
	Cache      *blockcache.Cache
	Dispatcher *dispatcher.Dispatcher
}

// Stats collates the counters of the dispatcher and the block cache.
type Stats struct {
	Dispatcher dispatcher.Stats
	Cache      blockcache.Stats
}

func (s Stats) String() string {
	return fmt.Sprintf("%d slices, %d cycles (%d interpreted, %d in blocks, %d idle); %s",
		s.Dispatcher.Slices, s.Dispatcher.Cycles, s.Dispatcher.Interpreted,
		s.Dispatcher.BlockCycles, s.Dispatcher.IdleCycles, s.Cache)
}

// NewDSP is the preferred method of initialisation for the DSP type. The
// components are configured from the preferences and are updated whenever a
// preference value changes.
func NewDSP(p *preferences.Preferences) (*DSP, error) {
	if p == nil {
		return nil, curated.Errorf(NoPreferences)
	}

	dsp := &DSP{Prefs: p}

	dsp.Mem = memory.NewMemory()
	dsp.State = state.NewState(dsp.Mem, p.StateConfig())
	dsp.Analyzer = analyzer.NewAnalyzer(dsp.Mem, p.TriggerSet(), nil)

	dsp.Compiler = jit.NewCompiler(dsp.Mem, dsp.Analyzer)
	dsp.Compiler.MaxBlock = p.MaxBlock.Get().(int)
	dsp.Compiler.SetExclude(p.Exclude.String())

	dsp.Cache = blockcache.NewCache(dsp.Compiler, dsp.Analyzer, p.CacheSize.Get().(int))
	dsp.Cache.Debug = p.Debug.Get().(bool)
	dsp.Analyzer.OnChange = dsp.Cache.InvalidateAddresses
	dsp.State.Plumb(dsp.Mem, dsp.Cache)

	dsp.Dispatcher = dispatcher.NewDispatcher(dsp.State, dsp.Analyzer, dsp.Cache)
	dsp.Dispatcher.JIT = p.JITEnabled.Get().(bool)
	dsp.Dispatcher.Threshold = p.Threshold.Get().(int)
	dsp.Dispatcher.IdleSkip = p.IdleSkip.Get().(bool)
	dsp.Dispatcher.HaltMask = p.Signals()
	dsp.Dispatcher.AssertOwner = p.Debug.Get().(bool)

	dsp.hooks()

	return dsp, nil
}

// hooks keep the components in step with the preferences
func (dsp *DSP) hooks() {
	p := dsp.Prefs

	stack := func(ids ...registers.Stack) func(prefs.Value) error {
		return func(v prefs.Value) error {
			for _, id := range ids {
				dsp.State.Stacks[id].Capacity = v.(int)
			}
			return nil
		}
	}
	p.CallStack.SetHookPost(stack(registers.StackCall))
	p.DataStack.SetHookPost(stack(registers.StackData))
	p.LoopStack.SetHookPost(stack(registers.StackLoopAddress, registers.StackLoopCounter))

	p.VectorExceptions.SetHookPost(func(v prefs.Value) error {
		dsp.State.Vectoring = v.(bool)
		return nil
	})
	p.IdleSkip.SetHookPost(func(v prefs.Value) error {
		dsp.Dispatcher.IdleSkip = v.(bool)
		return nil
	})
	p.Debug.SetHookPost(func(v prefs.Value) error {
		dsp.Cache.Debug = v.(bool)
		dsp.Dispatcher.AssertOwner = v.(bool)
		return nil
	})
	p.Triggers.SetHookPost(func(v prefs.Value) error {
		t, _ := analyzer.TriggersByName(v.(string))
		dsp.Analyzer.SetTriggers(t)
		return nil
	})
	p.JITEnabled.SetHookPost(func(v prefs.Value) error {
		dsp.Dispatcher.JIT = v.(bool)
		return nil
	})
	p.MaxBlock.SetHookPost(func(v prefs.Value) error {
		dsp.Compiler.MaxBlock = v.(int)
		dsp.Cache.Clear()
		return nil
	})
	p.Threshold.SetHookPost(func(v prefs.Value) error {
		dsp.Dispatcher.Threshold = v.(int)
		return nil
	})
	p.CacheSize.SetHookPost(func(v prefs.Value) error {
		dsp.Cache.Resize(v.(int))
		return nil
	})
	p.Exclude.SetHookPost(func(v prefs.Value) error {
		dsp.Compiler.SetExclude(v.(string))
		dsp.Cache.Clear()
		return nil
	})
	p.HaltMask.SetHookPost(func(v prefs.Value) error {
		s, err := state.ParseSignals(v.(string))
		if err != nil {
			return err
		}
		dsp.Dispatcher.HaltMask = s
		return nil
	})
}

// Reset the processor. Compiled blocks are kept because instruction memory
// does not change.
func (dsp *DSP) Reset() {
	dsp.Mem.Reset()
	dsp.State.Reset()
	logger.Logf(logger.Allow, "dsp", "reset: IROM %s", digest.Short(digest.UCode(dsp.Mem.IROM[:])))
}

// RunSlice runs the DSP for the number of cycles in the budget.
func (dsp *DSP) RunSlice(budget int) dispatcher.Result {
	return dsp.Dispatcher.RunSlice(budget)
}

// Step interprets a single instruction.
func (dsp *DSP) Step() {
	dsp.Dispatcher.Step()
}

// Stats returns the counters of the dispatcher and the block cache.
func (dsp *DSP) Stats() Stats {
	return Stats{
		Dispatcher: dsp.Dispatcher.Stats(),
		Cache:      dsp.Cache.Stats(),
	}
}

// Snapshot creates a deep copy of the processor state, including memory.
func (dsp *DSP) Snapshot() *state.State {
	return dsp.State.Snapshot()
}

// Plumb a state previously created by Snapshot() into the DSP. The state is
// used directly and should not be plumbed again. Every compiled block is
// removed.
func (dsp *DSP) Plumb(st *state.State) {
	dsp.State = st
	dsp.Mem = st.Mem
	st.Plumb(st.Mem, dsp.Cache)
	dsp.Analyzer.Plumb(st.Mem)
	dsp.Compiler.Plumb(st.Mem)
	dsp.Dispatcher.Plumb(st)
	dsp.Cache.Clear()
}
