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

package jit_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/jetsetilly/dspcore/comparison"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/interpreter"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/random"
	"github.com/jetsetilly/dspcore/test"
	"golang.org/x/sync/errgroup"
)

type processor struct {
	mem *memory.Memory
	st  *state.State
	an  *analyzer.Analyzer
	c   *jit.Compiler
	it  *interpreter.Interpreter
}

func newProcessor(st *state.State) *processor {
	p := &processor{st: st, mem: st.Mem}
	p.mem.Permission = logger.Deny
	p.an = analyzer.NewAnalyzer(p.mem, nil, nil)
	p.an.Permission = logger.Deny
	st.Plumb(p.mem, p.an)
	p.c = jit.NewCompiler(p.mem, p.an)
	p.c.Permission = logger.Deny
	p.it = interpreter.NewInterpreter(st, p.an)
	return p
}

func newTestProcessor(program ...uint16) *processor {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	st := state.NewState(mem, state.Config{Vectoring: true, Permission: logger.Deny})
	p := newProcessor(st)
	mem.LoadIRAM(0, program)
	st.PC = 0
	return p
}

func TestStraightLine(t *testing.T) {
	// INC $AC0; INC $AC0; INC $AC1; ADDIS $AC0, #1; HALT
	p := newTestProcessor(0x7600, 0x7600, 0x7700, 0x0401, 0x0021)

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 5)
	test.ExpectEquality(t, b.End, uint32(5))
	test.ExpectEquality(t, len(b.Fixups), 0)
	test.ExpectEquality(t, len(b.Successors), 0)

	res := b.Run(p.st)
	test.ExpectEquality(t, res.Instructions, 5)
	test.ExpectEquality(t, res.Reason, jit.Halted)
	test.ExpectEquality(t, p.st.PC, uint16(4))
	test.ExpectEquality(t, p.st.GetLongAcc(0), int64(3))
	test.ExpectEquality(t, p.st.GetLongAcc(1), int64(1))
}

func TestMaxBlock(t *testing.T) {
	p := newTestProcessor(0x7600, 0x7600, 0x7600, 0x7600, 0x7600)
	p.c.MaxBlock = 3

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 3)
	test.DemandEquality(t, len(b.Successors), 1)
	test.ExpectEquality(t, b.Successors[0].Target, uint16(3))

	// INC does not read PC. PC is written when the block exits
	res := b.Run(p.st)
	test.ExpectEquality(t, res.Reason, jit.Fallthrough)
	test.ExpectEquality(t, res.Exit, b.Successors[0])
	test.ExpectEquality(t, p.st.PC, uint16(3))
	test.ExpectEquality(t, p.st.GetLongAcc(0), int64(3))
}

func TestConditionalFixup(t *testing.T) {
	// TST $AC0; JZ 0x0010; INC $AC0; HALT
	p := newTestProcessor(0xb100, 0x0295, 0x0010, 0x7600, 0x0021)

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 4)
	test.DemandEquality(t, len(b.Fixups), 1)
	test.ExpectEquality(t, b.Fixups[0].Target, uint16(0x0010))
	test.ExpectEquality(t, b.Unresolved(), 1)

	// taken
	res := b.Run(p.st)
	test.ExpectEquality(t, res.Instructions, 2)
	test.ExpectEquality(t, res.Reason, jit.Branched)
	test.ExpectEquality(t, res.Exit, b.Fixups[0])
	test.ExpectEquality(t, p.st.PC, uint16(0x0010))

	// not taken
	p.st.PC = 0
	p.st.SetLongAcc(0, 5)
	res = b.Run(p.st)
	test.ExpectEquality(t, res.Instructions, 4)
	test.ExpectEquality(t, res.Reason, jit.Halted)
	test.ExpectEquality(t, p.st.GetLongAcc(0), int64(6))
}

func TestLoopEnd(t *testing.T) {
	// LOOPI #3; INC $AC0
	p := newTestProcessor(0x1003, 0x7600)

	loop, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, loop.Length, 1)
	test.DemandEquality(t, len(loop.Successors), 1)
	test.ExpectEquality(t, loop.Successors[0].Target, uint16(1))

	body, err := p.c.Compile(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, body.Length, 1)
	test.DemandEquality(t, len(body.Successors), 1)
	test.ExpectEquality(t, body.Successors[0].Target, uint16(2))

	res := loop.Run(p.st)
	test.ExpectEquality(t, res.Reason, jit.Fallthrough)
	test.ExpectEquality(t, res.Exit, loop.Successors[0])

	for i := 0; i < 2; i++ {
		res = body.Run(p.st)
		test.ExpectEquality(t, res.Reason, jit.Branched)
		test.ExpectEquality(t, p.st.PC, uint16(1))
	}
	res = body.Run(p.st)
	test.ExpectEquality(t, res.Reason, jit.Fallthrough)
	test.ExpectEquality(t, res.Exit, body.Successors[0])
	test.ExpectEquality(t, p.st.PC, uint16(2))
	test.ExpectEquality(t, p.st.GetLongAcc(0), int64(3))
}

func TestUnsupported(t *testing.T) {
	p := newTestProcessor(0x0020)
	_, err := p.c.Compile(0)
	test.ExpectEquality(t, curated.Is(err, jit.Unsupported), true)

	// NOP; INC $AC0
	p = newTestProcessor(0x0000, 0x7600)
	p.c.SetExclude("inc")
	_, err = p.c.Compile(1)
	test.ExpectEquality(t, curated.Is(err, jit.Unsupported), true)

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 1)
	test.DemandEquality(t, len(b.Successors), 1)
	test.ExpectEquality(t, b.Successors[0].Target, uint16(1))

	// the second word of a two word instruction
	p = newTestProcessor(0x0295, 0x0010)
	_, err = p.c.Compile(1)
	test.ExpectEquality(t, curated.Is(err, jit.Unsupported), true)
}

func TestIdleCandidateEndsBlock(t *testing.T) {
	// NOP followed by a mail wait loop
	p := newTestProcessor(0x0000, 0x26fc, 0x02c0, 0x8000, 0x029d, 0x0001)

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 1)
	test.DemandEquality(t, len(b.Successors), 1)
	test.ExpectEquality(t, b.Successors[0].Target, uint16(1))
}

func TestCodeModified(t *testing.T) {
	// DMA two words from main RAM to instruction memory at 0x0040 and then
	// continue with two INC instructions
	p := newTestProcessor(
		0x16ce, 0x0000, // SI DSMAH
		0x16cf, 0x0000, // SI DSMAL
		0x16cd, 0x0040, // SI DSPA
		0x16c9, 0x0002, // SI DSCR
		0x16cb, 0x0004, // SI DSBL
		0x7600, 0x7600, 0x0021,
	)
	copy(p.mem.RAM, []byte{0x76, 0x00, 0x00, 0x21})

	b, err := p.c.Compile(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Length, 8)

	res := b.Run(p.st)
	test.ExpectEquality(t, res.Reason, jit.CodeModified)
	test.ExpectEquality(t, res.Instructions, 5)
	test.ExpectEquality(t, p.st.PC, uint16(10))
	test.ExpectEquality(t, p.mem.IRAM[0x40], uint16(0x7600))
	test.ExpectEquality(t, p.mem.IRAM[0x41], uint16(0x0021))
	test.ExpectEquality(t, p.st.GetLongAcc(0), int64(0))
}

// run the same random program through the interpreter and through compiled
// blocks and compare the state after each block
func equivalent(seed int64, program int, budget int) error {
	rnd := random.NewRandom(seed)

	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	st := state.NewState(mem, state.Config{Vectoring: true, Permission: logger.Deny})
	mem.LoadIRAM(0, rnd.Program(0, program))
	rnd.State(st)
	rnd.Data(st)
	st.PC = 0

	ref := newProcessor(st.Snapshot())
	compiled := newProcessor(st)

	for executed := 0; executed < budget && !compiled.st.Halted(); {
		from := compiled.st.PC

		b, err := compiled.c.Compile(from)
		if err != nil {
			compiled.it.Step()
			ref.it.Step()
			executed++
			if compiled.it.LastResult.Misaligned != ref.it.LastResult.Misaligned {
				return fmt.Errorf("seed %d: misaligned at %04x in one mode only", seed, from)
			}
			if compiled.it.LastResult.Misaligned {
				break
			}
		} else {
			res := b.Run(compiled.st)
			for i := 0; i < res.Instructions; i++ {
				ref.it.Step()
			}
			executed += res.Instructions
		}

		if d := comparison.Diff(ref.st, compiled.st); d != "" {
			return fmt.Errorf("seed %d: difference after running from %04x\n%s", seed, from, d)
		}
	}

	return nil
}

func TestEquivalence(t *testing.T) {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for seed := int64(1); seed <= 64; seed++ {
		g.Go(func() error {
			return equivalent(seed, 64, 256)
		})
	}

	test.ExpectSuccess(t, g.Wait())
}
