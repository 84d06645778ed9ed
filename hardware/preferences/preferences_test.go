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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/hardware/preferences"
	"github.com/jetsetilly/dspcore/prefs"
	"github.com/jetsetilly/dspcore/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "dspcore.yaml")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	cfg := p.StateConfig()
	test.ExpectEquality(t, cfg.CallStack, 8)
	test.ExpectEquality(t, cfg.DataStack, 4)
	test.ExpectEquality(t, cfg.LoopStack, 4)
	test.ExpectEquality(t, cfg.Vectoring, true)
	test.ExpectEquality(t, p.Threshold.Get().(int), 2)
	test.ExpectEquality(t, p.TriggerSet(), &analyzer.DefaultTriggers)
	test.ExpectEquality(t, p.Signals(), state.NoSignals)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "dspcore.yaml")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Threshold.Set(5))
	test.DemandSuccess(t, p.Triggers.Set("legacy"))
	test.DemandSuccess(t, p.HaltMask.Set("underflow,overflow"))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.DemandSuccess(t, err)

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Threshold.Get().(int), 5)
	test.ExpectEquality(t, q.TriggerSet(), &analyzer.LegacyTriggers)
	test.ExpectEquality(t, q.Signals(), state.StackUnderflow|state.StackOverflow)
}

func TestInvalidValues(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "dspcore.yaml")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.CacheSize.Set(0))
	test.ExpectEquality(t, p.CacheSize.Get().(int), 1024)
	test.ExpectFailure(t, p.Triggers.Set("unknown"))
	test.ExpectFailure(t, p.HaltMask.Set("overflow,nonsense"))
}

func TestCommandLine(t *testing.T) {
	test.DemandSuccess(t, prefs.PushCommandLineStack("jit.maxblock::16; dsp.idleskip::false"))
	defer prefs.PopCommandLineStack()

	pth := filepath.Join(t.TempDir(), "dspcore.yaml")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxBlock.Get().(int), 16)
	test.ExpectEquality(t, p.IdleSkip.Get().(bool), false)
}
