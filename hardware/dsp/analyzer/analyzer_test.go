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

package analyzer_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

func newAnalyzer(triggers *analyzer.Triggers) (*analyzer.Analyzer, *memory.Memory) {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	a := analyzer.NewAnalyzer(mem, triggers, nil)
	a.Permission = logger.Deny
	mem.Plumb(a, nil)
	return a, mem
}

func TestAXMailWait(t *testing.T) {
	a, mem := newAnalyzer(nil)
	mem.LoadIRAM(0, []uint16{0x26fc, 0x02c0, 0x8000, 0x029d, 0xffff, 0x0000, 0x0000})

	f := a.Flags(0x0000)
	test.ExpectEquality(t, f.Is(analyzer.IdleSkipCandidate), true)
	test.ExpectEquality(t, f.Is(analyzer.StartOfInstruction), true)

	// ANDCF is two words long
	test.ExpectEquality(t, a.Flags(0x0001).Is(analyzer.StartOfInstruction), true)
	test.ExpectEquality(t, a.Flags(0x0002).Is(analyzer.StartOfInstruction), false)
	test.ExpectEquality(t, a.Flags(0x0003).Is(analyzer.StartOfInstruction), true)
	test.ExpectEquality(t, a.Flags(0x0004).Is(analyzer.StartOfInstruction), false)
	test.ExpectEquality(t, a.Flags(0x0002).Is(analyzer.Immediate), true)
	test.ExpectEquality(t, a.Flags(0x0004).Is(analyzer.Immediate), true)
	test.ExpectEquality(t, a.Flags(0x0003).Is(analyzer.Immediate), false)

	// ANDCF is the status update before JLZ
	test.ExpectEquality(t, a.Flags(0x0001).Is(analyzer.UpdateStatusBeforeBranch), true)

	// LRS is a data read
	test.ExpectEquality(t, a.Flags(0x0001).Is(analyzer.CheckExceptionAfter), true)

	sig, ok := a.Signature(0x0000)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, sig.Name, "AX DMBH ac0")
	test.ExpectEquality(t, sig.PollAddress(mem, 0x0000, 0x00ff), uint16(memory.DMBH))
	test.ExpectEquality(t, sig.Waiting(0x8000), true)
	test.ExpectEquality(t, sig.Waiting(0x0000), false)

	// the branch target in this image is 0xffff, not the loop itself
	test.ExpectEquality(t, sig.Spins(mem, 0x0000), false)
	mem.WriteInstruction(0x0004, 0x0000)
	test.ExpectEquality(t, sig.Spins(mem, 0x0000), true)
}

func TestLoopPair(t *testing.T) {
	a, mem := newAnalyzer(nil)

	// LOOPI #5 at 0x10 with a single instruction body
	mem.WriteInstruction(0x0010, 0x1005)
	mem.WriteInstruction(0x0011, 0x4c00)

	test.ExpectEquality(t, a.Flags(0x0010).Is(analyzer.LoopStart), true)
	test.ExpectEquality(t, a.Flags(0x0011).Is(analyzer.LoopEnd), true)
	test.ExpectEquality(t, a.Flags(0x0010).Is(analyzer.LoopEnd), false)
	test.ExpectEquality(t, a.Flags(0x0011).Is(analyzer.LoopStart), false)

	// BLOOPI #2, end at 0x0024
	mem.LoadIRAM(0x0020, []uint16{0x1102, 0x0024, 0x4c00, 0x4c00, 0x4c00})
	test.ExpectEquality(t, a.Flags(0x0020).Is(analyzer.BlockLoopStart), true)
	test.ExpectEquality(t, a.Flags(0x0024).Is(analyzer.BlockLoopEnd), true)
	test.ExpectEquality(t, a.Flags(0x0021).Is(analyzer.StartOfInstruction), false)
}

func TestLoopPairsWellFormed(t *testing.T) {
	a, mem := newAnalyzer(nil)

	rnd := rand.New(rand.NewSource(1))
	img := make([]uint16, memory.IRAMSize)
	for i := range img {
		img[i] = uint16(rnd.Intn(0x10000))
		// plenty of loops
		if rnd.Intn(8) == 0 {
			img[i] = 0x1000 | uint16(rnd.Intn(0x100))
		}
	}
	mem.LoadIRAM(0, img)

	tbl := a.Table()
	for addr := 0; addr < memory.IRAMSize; addr++ {
		if tbl[addr].Is(analyzer.LoopStart) {
			test.ExpectEquality(t, tbl[addr+1].Is(analyzer.LoopEnd), true, addr)
		}
		if tbl[addr].Is(analyzer.LoopEnd) && addr > 0 {
			test.ExpectEquality(t, tbl[addr-1].Is(analyzer.LoopStart), true, addr)
		}
	}
}

func TestIdempotent(t *testing.T) {
	a, mem := newAnalyzer(nil)

	rnd := rand.New(rand.NewSource(2))
	img := make([]uint16, memory.IRAMSize)
	for i := range img {
		img[i] = uint16(rnd.Intn(0x10000))
	}
	mem.LoadIRAM(0, img)

	first := a.Table()
	a.Refresh()
	second := a.Table()
	test.ExpectEqualState(t, second, first)

	a.Analyze(memory.IRAMOrigin, memory.IRAMOrigin+memory.IRAMSize)
	test.ExpectEqualState(t, a.Table(), first)
	a.Analyze(memory.IRAMOrigin, memory.IRAMOrigin+memory.IRAMSize)
	test.ExpectEqualState(t, a.Table(), first)
}

func TestInvalidation(t *testing.T) {
	a, mem := newAnalyzer(nil)

	var changed []uint16
	a.OnChange = func(c []uint16) {
		changed = c
	}

	mem.LoadIRAM(0, []uint16{0x4c00, 0x4c00, 0x4c00, 0x4c00})
	test.ExpectEquality(t, a.Flags(0x0001).Is(analyzer.StartOfInstruction), true)
	changed = nil

	// LRI at address 0 takes the word at 0x0001 as its immediate
	mem.WriteInstruction(0x0000, 0x0080)
	test.ExpectEquality(t, a.Stale(), true)
	test.ExpectEquality(t, a.Flags(0x0001).Is(analyzer.StartOfInstruction), false)
	test.ExpectEquality(t, a.Stale(), false)
	test.ExpectEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], uint16(0x0001))

	// rewriting the same value changes nothing
	changed = nil
	mem.WriteInstruction(0x0000, 0x0080)
	a.Flags(0)
	test.ExpectEquality(t, len(changed), 0)
}

func TestTriggers(t *testing.T) {
	img := []uint16{
		0x1e60,         // MRR $SR, $AR0
		0x4c20,         // ADD $ACC0, $ACC1 : S
		0x1209,         // SBCLR #1
		0x120b,         // SBCLR #3 (interrupt enable)
		0x02bf, 0x0000, // CALL 0x0000
		0x4c00,         // ADD
	}

	a, mem := newAnalyzer(nil)
	mem.LoadIRAM(0, img)
	test.ExpectEquality(t, a.Flags(1).Is(analyzer.CheckExceptionAfter), true)
	test.ExpectEquality(t, a.Flags(2).Is(analyzer.CheckExceptionAfter), true)
	test.ExpectEquality(t, a.Flags(3).Is(analyzer.CheckExceptionAfter), false)
	test.ExpectEquality(t, a.Flags(4).Is(analyzer.CheckExceptionAfter), true)
	test.ExpectEquality(t, a.Flags(6).Is(analyzer.CheckExceptionAfter), true)

	legacy, ok := analyzer.TriggersByName("legacy")
	test.DemandEquality(t, ok, true)
	a, mem = newAnalyzer(legacy)
	mem.LoadIRAM(0, img)
	test.ExpectEquality(t, a.Flags(1).Is(analyzer.CheckExceptionAfter), false)
	test.ExpectEquality(t, a.Flags(2).Is(analyzer.CheckExceptionAfter), true)
	test.ExpectEquality(t, a.Flags(4).Is(analyzer.CheckExceptionAfter), false)
	test.ExpectEquality(t, a.Flags(6).Is(analyzer.CheckExceptionAfter), false)
	test.ExpectEquality(t, a.Flags(7).Is(analyzer.CheckExceptionAfter), true)

	_, ok = analyzer.TriggersByName("bogus")
	test.ExpectEquality(t, ok, false)
}
