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

package preferences

import (
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/paths"
	"github.com/jetsetilly/dspcore/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "dspcore.yaml"

// InvalidValue is returned by a preference hook when a value is rejected.
const InvalidValue = "preferences: %s: invalid value (%v)"

// Preferences defines and collates all the preference values used by the
// DSP.
type Preferences struct {
	dsk *prefs.Disk

	// stack capacities
	CallStack prefs.Int
	DataStack prefs.Int
	LoopStack prefs.Int

	// vector pending exceptions at exception check points
	VectorExceptions prefs.Bool

	// fast forward idle loops
	IdleSkip prefs.Bool

	// assertions panic and the dispatcher checks the owning goroutine
	Debug prefs.Bool

	// the classification of instructions that are followed by an exception
	// check. "default" or "legacy"
	Triggers prefs.String

	// compiler and block cache
	JITEnabled prefs.Bool
	MaxBlock   prefs.Int
	Threshold  prefs.Int
	CacheSize  prefs.Int
	Exclude    prefs.String

	// recompile the blocks listed in a save state when it is restored
	Prewarm prefs.Bool

	// signals that end a slice early
	HaltMask prefs.String

	// number of snapshots kept by the monitor's rewind history
	RewindEntries prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", PrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	positive := func(key string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(InvalidValue, key, v)
			}
			return nil
		}
	}

	p.CallStack.SetHookPre(positive("dsp.callstack"))
	p.DataStack.SetHookPre(positive("dsp.datastack"))
	p.LoopStack.SetHookPre(positive("dsp.loopstack"))
	p.MaxBlock.SetHookPre(positive("jit.maxblock"))
	p.Threshold.SetHookPre(positive("jit.threshold"))
	p.CacheSize.SetHookPre(positive("jit.cachesize"))
	p.RewindEntries.SetHookPre(positive("rewind.maxentries"))

	p.Triggers.SetHookPre(func(v prefs.Value) error {
		if _, ok := analyzer.TriggersByName(v.(string)); !ok {
			return curated.Errorf(InvalidValue, "analyzer.triggers", v)
		}
		return nil
	})

	p.HaltMask.SetHookPre(func(v prefs.Value) error {
		if _, err := state.ParseSignals(v.(string)); err != nil {
			return curated.Errorf(InvalidValue, "dispatcher.haltmask", err)
		}
		return nil
	})

	add := func(key string, v interface {
		String() string
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}) {
		if err == nil {
			err = p.dsk.Add(key, v)
		}
	}

	add("dsp.callstack", &p.CallStack)
	add("dsp.datastack", &p.DataStack)
	add("dsp.loopstack", &p.LoopStack)
	add("dsp.vectorexceptions", &p.VectorExceptions)
	add("dsp.idleskip", &p.IdleSkip)
	add("dsp.debug", &p.Debug)
	add("analyzer.triggers", &p.Triggers)
	add("jit.enabled", &p.JITEnabled)
	add("jit.maxblock", &p.MaxBlock)
	add("jit.threshold", &p.Threshold)
	add("jit.cachesize", &p.CacheSize)
	add("jit.exclude", &p.Exclude)
	add("jit.prewarm", &p.Prewarm)
	add("dispatcher.haltmask", &p.HaltMask)
	add("rewind.maxentries", &p.RewindEntries)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets every preference to its default value.
func (p *Preferences) SetDefaults() {
	p.CallStack.Set(8)
	p.DataStack.Set(4)
	p.LoopStack.Set(4)
	p.VectorExceptions.Set(true)
	p.IdleSkip.Set(true)
	p.Debug.Set(false)
	p.Triggers.Set("default")
	p.JITEnabled.Set(true)
	p.MaxBlock.Set(64)
	p.Threshold.Set(2)
	p.CacheSize.Set(1024)
	p.Exclude.Set("")
	p.Prewarm.Set(true)
	p.HaltMask.Set("")
	p.RewindEntries.Set(32)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// StateConfig returns the state.Config described by the preferences.
func (p *Preferences) StateConfig() state.Config {
	return state.Config{
		CallStack: p.CallStack.Get().(int),
		DataStack: p.DataStack.Get().(int),
		LoopStack: p.LoopStack.Get().(int),
		Vectoring: p.VectorExceptions.Get().(bool),
	}
}

// TriggerSet returns the exception trigger classification.
func (p *Preferences) TriggerSet() *analyzer.Triggers {
	t, ok := analyzer.TriggersByName(p.Triggers.String())
	if !ok {
		return &analyzer.DefaultTriggers
	}
	return t
}

// Signals returns the halt mask as a set of signals.
func (p *Preferences) Signals() state.Signals {
	s, _ := state.ParseSignals(p.HaltMask.String())
	return s
}
