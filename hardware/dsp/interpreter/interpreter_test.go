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

package interpreter_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/interpreter"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

func newInterpreter() (*interpreter.Interpreter, *state.State) {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	st := state.NewState(mem, state.Config{Vectoring: true, Permission: logger.Deny})
	a := analyzer.NewAnalyzer(mem, nil, nil)
	a.Permission = logger.Deny
	st.Plumb(mem, a)
	it := interpreter.NewInterpreter(st, a)
	it.Permission = logger.Deny
	return it, st
}

// load the program at the start of IRAM and point PC at it
func load(st *state.State, program ...uint16) {
	st.Mem.LoadIRAM(0, program)
	st.PC = 0
}

func steps(it *interpreter.Interpreter, n int) {
	for i := 0; i < n; i++ {
		it.Step()
	}
}

func TestAddFlags(t *testing.T) {
	it, st := newInterpreter()

	// largest positive value plus one
	load(st, 0x4c00)
	st.SetLongAcc(0, 0x7fffffffff)
	st.SetLongAcc(1, 1)
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(-0x8000000000))
	test.ExpectEquality(t, st.SR, registers.SROverflow|registers.SROverflowStick|registers.SRSign|
		registers.SROverS32|registers.SRTopBitsEqual)

	// carry out to zero
	it, st = newInterpreter()
	load(st, 0x4c00)
	st.SetLongAcc(0, -1)
	st.SetLongAcc(1, 1)
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0))
	test.ExpectEquality(t, st.SR, registers.SRCarry|registers.SRArithZero|registers.SRTopBitsEqual)
}

func TestSubFlags(t *testing.T) {
	it, st := newInterpreter()
	load(st, 0x5c00)
	st.SetLongAcc(1, 1)
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(-1))
	test.ExpectEquality(t, st.SR, registers.SRSign|registers.SRTopBitsEqual)

	it, st = newInterpreter()
	load(st, 0x5c00)
	st.SetLongAcc(0, 5)
	st.SetLongAcc(1, 5)
	it.Step()
	test.ExpectEquality(t, st.SR, registers.SRCarry|registers.SRArithZero|registers.SRTopBitsEqual)
}

func TestCompare(t *testing.T) {
	it, st := newInterpreter()
	load(st, 0x8200)
	st.SetLongAcc(0, 3)
	st.SetLongAcc(1, 5)
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(3))
	test.ExpectEquality(t, st.SR, registers.SRSign|registers.SRTopBitsEqual)
	test.ExpectEquality(t, st.CheckCondition(0x1), true)
}

func TestLogic(t *testing.T) {
	it, st := newInterpreter()

	// ANDI $AC0.M, #0x0ff0; ANDCF $AC0.M, #0x8000; ANDCF $AC0.M, #0x0080
	load(st, 0x0240, 0x0ff0, 0x02c0, 0x8000, 0x02c0, 0x0080)
	st.AC[0].M = 0xf0f0
	it.Step()
	test.ExpectEquality(t, st.AC[0].M, uint16(0x00f0))
	test.ExpectEquality(t, st.SR, registers.SRTopBitsEqual)

	it.Step()
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRLogicZero), false)
	it.Step()
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRLogicZero), true)

	// logic operations do not change the low or high parts
	test.ExpectEquality(t, st.AC[0].L, uint16(0))
	test.ExpectEquality(t, st.AC[0].H, uint16(0))
}

func TestShifts(t *testing.T) {
	it, st := newInterpreter()

	// LSL $AC0, #16; LSR $AC1, #16; ASR $AC1, #16
	load(st, 0x1410, 0x1570, 0x15f0)
	st.SetLongAcc(0, 0x1234)
	st.SetLongAcc(1, -0x10000)

	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0x12340000))
	test.ExpectEquality(t, st.SR, registers.SRTopBitsEqual)

	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(1), int64(0x00ffffff))

	st.SetLongAcc(1, -0x10000)
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(1), int64(-1))
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRSign), true)
}

func TestVariableShift(t *testing.T) {
	it, st := newInterpreter()

	// LSRNR $AC0 twice. a positive shift moves left and a negative shift
	// moves right
	load(st, 0x3c80, 0x3c80)
	st.SetLongAcc(0, 0x10)
	st.AC[1].M = 0x0004
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0x100))

	// -2 in seven bits
	st.AC[1].M = 0x007e
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0x40))
}

func TestFortyBitLoadStore(t *testing.T) {
	it, st := newInterpreter()

	// SET40; LRI $AC0.M, #0x8000; SR @0x10, $AC0.M; LRI $AC0.H, #1; SR @0x11, $AC0.M
	load(st, 0x8f00, 0x009e, 0x8000, 0x00fe, 0x0010, 0x0090, 0x0001, 0x00fe, 0x0011)

	steps(it, 2)
	test.ExpectEquality(t, st.AC[0].H, uint16(0xffff))
	test.ExpectEquality(t, st.AC[0].M, uint16(0x8000))
	test.ExpectEquality(t, st.AC[0].L, uint16(0x0000))

	steps(it, 3)
	test.ExpectEquality(t, st.Mem.Peek(0x0010), uint16(0x8000))
	test.ExpectEquality(t, st.Mem.Peek(0x0011), uint16(0x7fff))
}

func TestSixteenBitLoad(t *testing.T) {
	it, st := newInterpreter()

	// LRI $AC0.M, #0x8000 without SET40
	load(st, 0x009e, 0x8000)
	st.AC[0].L = 0x1111
	it.Step()
	test.ExpectEquality(t, st.AC[0].H, uint16(0x0000))
	test.ExpectEquality(t, st.AC[0].L, uint16(0x1111))
}

func TestMultiply(t *testing.T) {
	it, st := newInterpreter()

	// MUL $AX0.L, $AX0.H; MULAC $AX0.L, $AX0.H, $AC1; M0; MUL $AX0.L, $AX0.H
	load(st, 0x9000, 0x9500, 0x8b00, 0x9000)
	st.AX[0].L = 2
	st.AX[0].H = 3
	st.SetLongAcc(1, 100)

	it.Step()
	test.ExpectEquality(t, st.GetLongProduct(), int64(12))
	it.Step()
	test.ExpectEquality(t, st.GetLongAcc(1), int64(112))
	test.ExpectEquality(t, st.GetLongProduct(), int64(12))
	steps(it, 2)
	test.ExpectEquality(t, st.GetLongProduct(), int64(6))
}

func TestHardwareLoop(t *testing.T) {
	it, st := newInterpreter()

	// LOOPI #3; INC $AC0; NOP
	load(st, 0x1003, 0x7600, 0x0000)
	it.Step()
	test.ExpectEquality(t, st.Stacks[registers.StackLoopCounter].Depth(), 1)

	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0001))
	test.ExpectEquality(t, it.LastResult.Looped, true)

	steps(it, 2)
	test.ExpectEquality(t, st.PC, uint16(0x0002))
	test.ExpectEquality(t, st.GetLongAcc(0), int64(3))
	for i := range st.Stacks {
		test.ExpectEquality(t, st.Stacks[i].Depth(), 0)
	}

	// a count of zero skips the body
	it, st = newInterpreter()
	load(st, 0x1000, 0x7600, 0x0000)
	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0002))
	test.ExpectEquality(t, st.Stacks[registers.StackCall].Depth(), 0)
}

func TestBlockLoop(t *testing.T) {
	it, st := newInterpreter()

	// BLOOPI #2, 0x0003; INC $AC0; INC $AC1; NOP
	load(st, 0x1102, 0x0003, 0x7600, 0x7700, 0x0000)
	steps(it, 3)
	test.ExpectEquality(t, st.PC, uint16(0x0002))
	steps(it, 2)
	test.ExpectEquality(t, st.PC, uint16(0x0004))
	test.ExpectEquality(t, st.GetLongAcc(0), int64(2))
	test.ExpectEquality(t, st.GetLongAcc(1), int64(2))
}

func TestCallReturn(t *testing.T) {
	it, st := newInterpreter()

	// CALL 0x0010 ... RET
	load(st, 0x02bf, 0x0010)
	st.Mem.WriteInstruction(0x0010, 0x02df)

	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0010))
	test.ExpectEquality(t, st.PeekStack(registers.StackCall), uint16(0x0002))
	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0002))
	test.ExpectEquality(t, st.Signals, state.NoSignals)
}

func TestConditionalSkip(t *testing.T) {
	it, st := newInterpreter()

	// TST $AC0; IFNZ; LRI $AC1.M, #5; NOP
	load(st, 0xb100, 0x0274, 0x009f, 0x0005, 0x0000)
	steps(it, 2)
	test.ExpectEquality(t, st.PC, uint16(0x0004))
	test.ExpectEquality(t, st.AC[1].M, uint16(0))
}

func TestStackUnderflow(t *testing.T) {
	// exception not serviced because interrupts are disabled
	it, st := newInterpreter()
	load(st, 0x02df)
	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0000))
	test.ExpectEquality(t, st.Signals.Has(state.StackUnderflow), true)
	test.ExpectInequality(t, st.Exceptions&(1<<state.ExceptionStack), uint8(0))
	test.ExpectEquality(t, it.LastResult.Vectored, false)

	// SBSET #3 enables interrupts
	it, st = newInterpreter()
	load(st, 0x1303, 0x02df)
	steps(it, 2)
	test.ExpectEquality(t, it.LastResult.Vectored, true)
	test.ExpectEquality(t, st.PC, uint16(state.ExceptionStack*2))
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRIntEnable), false)
	test.ExpectEquality(t, st.PeekStack(registers.StackData), registers.SRIntEnable)
	test.ExpectEquality(t, st.PeekStack(registers.StackCall), uint16(0x0000))
}

func TestExtendedOrdering(t *testing.T) {
	it, st := newInterpreter()

	// ADDAX $AC0, $AX0 : L $AX0.H, @$AR0
	load(st, 0x4850)
	st.AR[0] = 0x0020
	st.Mem.WriteData(0x0020, 0x1234)
	it.Step()

	// the main instruction sees the value of AX0 before the load
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0))
	test.ExpectEquality(t, st.AX[0].H, uint16(0x1234))
	test.ExpectEquality(t, st.AR[0], uint16(0x0021))
	test.ExpectEquality(t, it.LastResult.Ext.Name, "L")
}

func TestExtendedFortyBit(t *testing.T) {
	it, st := newInterpreter()

	// NX : L $AC0.M, @$AR0 in 40 bit mode
	load(st, 0x8070)
	st.SR |= registers.SR40Mode
	st.AR[0] = 0x0030
	st.AC[0].L = 0x5555
	st.Mem.WriteData(0x0030, 0x8001)
	it.Step()
	test.ExpectEquality(t, st.AC[0].H, uint16(0xffff))
	test.ExpectEquality(t, st.AC[0].M, uint16(0x8001))
	test.ExpectEquality(t, st.AC[0].L, uint16(0x0000))
}

func TestHalt(t *testing.T) {
	it, st := newInterpreter()
	load(st, 0x0000, 0x0021)
	steps(it, 2)
	test.ExpectEquality(t, st.Halted(), true)
	test.ExpectEquality(t, st.PC, uint16(0x0001))
}

func TestUnknownInstruction(t *testing.T) {
	it, st := newInterpreter()
	load(st, 0x0020)
	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0001))
	test.ExpectEquality(t, it.LastResult.Opcode == nil, true)
}

func TestMisaligned(t *testing.T) {
	it, st := newInterpreter()

	// JMP into the immediate word of LRI. the immediate is the HALT word
	load(st, 0x029f, 0x0003, 0x0080, 0x0021, 0x0000, 0x0000)
	it.Step()
	test.ExpectEquality(t, st.PC, uint16(0x0003))

	it.Step()
	test.ExpectEquality(t, it.LastResult.Misaligned, true)
	test.ExpectEquality(t, it.LastResult.String(), "0003: misaligned (inside 0002)")
	test.ExpectEquality(t, st.Halted(), false)
	test.ExpectEquality(t, st.PC, uint16(0x0003))

	// refused again without any change
	it.Step()
	test.ExpectEquality(t, it.LastResult.Misaligned, true)
	test.ExpectEquality(t, st.PC, uint16(0x0003))

	// the LRI itself is unaffected
	st.PC = 0x0002
	it.Step()
	test.ExpectEquality(t, it.LastResult.Misaligned, false)
	test.ExpectEquality(t, st.PC, uint16(0x0004))
	test.ExpectEquality(t, st.AR[0], uint16(0x0021))
	test.ExpectEquality(t, st.Halted(), false)
}

// the AX microcode waiting for the CPU to take its mail
var axMailWait = []uint16{0x26fc, 0x02c0, 0x8000, 0x029d, 0x0000, 0x0000}

func sendMail(st *state.State) {
	st.Mem.WriteData(memory.DMBH, 0x1234)
	st.Mem.WriteData(memory.DMBL, 0x5678)
}

func TestIdleSkip(t *testing.T) {
	it, st := newInterpreter()
	load(st, axMailWait...)
	test.ExpectEquality(t, it.IdleSkip(), false)

	sendMail(st)
	test.ExpectEquality(t, it.IdleSkip(), true)

	// the loop comes back to the start while the mail is unread
	steps(it, 3)
	test.ExpectEquality(t, st.PC, uint16(0x0000))
	test.ExpectEquality(t, it.IdleSkip(), true)

	it.IdleSkipEnabled = false
	test.ExpectEquality(t, it.IdleSkip(), false)
	it.IdleSkipEnabled = true

	// a pending exception stops the skip
	st.SetException(state.ExceptionAccelerator)
	test.ExpectEquality(t, it.IdleSkip(), false)
}

func TestIdleSkipSafety(t *testing.T) {
	literal, a := newInterpreter()
	load(a, axMailWait...)
	sendMail(a)

	skipped, b := newInterpreter()
	load(b, axMailWait...)
	sendMail(b)

	// spin literally in one processor and not at all in the other
	for i := 0; i < 30; i++ {
		literal.Step()
	}
	test.ExpectEquality(t, skipped.IdleSkip(), true)

	_, ok := a.Mem.ReadMail()
	test.ExpectEquality(t, ok, true)
	_, ok = b.Mem.ReadMail()
	test.ExpectEquality(t, ok, true)

	for a.PC != 0x0005 {
		literal.Step()
	}
	for b.PC != 0x0005 {
		skipped.Step()
	}
	test.ExpectEquality(t, a.String(), b.String())
	test.ExpectEquality(t, a.SR, b.SR)
}
