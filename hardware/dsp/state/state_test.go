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

package state_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

func newState(cfg state.Config) *state.State {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	cfg.Permission = logger.Deny
	return state.NewState(mem, cfg)
}

func TestReset(t *testing.T) {
	st := newState(state.DefaultConfig)
	test.ExpectEquality(t, st.PC, uint16(0x8000))
	test.ExpectEquality(t, st.CR, uint16(0x00ff))
	for i := range st.WR {
		test.ExpectEquality(t, st.WR[i], uint16(0xffff))
	}
}

func TestRegisterFile(t *testing.T) {
	st := newState(state.DefaultConfig)

	// writing ACH sign extends from eight bits
	st.WriteRegister(registers.ACH0, 0x0080)
	test.ExpectEquality(t, st.AC[0].H, uint16(0xff80))
	test.ExpectEquality(t, st.ReadRegister(registers.ACH0), uint16(0xff80))

	st.WriteRegister(registers.ACM0, 0x1234)
	st.WriteRegister(registers.ACL0, 0x5678)
	test.ExpectEquality(t, st.GetLongAcc(0), int64(-0x80)<<32|0x12345678)

	st.SetLongAcc(1, -1)
	test.ExpectEquality(t, st.AC[1].H, uint16(0xffff))
	test.ExpectEquality(t, st.AC[1].M, uint16(0xffff))
	test.ExpectEquality(t, st.AC[1].L, uint16(0xffff))

	// the ST registers are the stacks
	st.WriteRegister(registers.ST1, 0x1111)
	st.WriteRegister(registers.ST1, 0x2222)
	test.ExpectEquality(t, st.Stacks[registers.StackData].Depth(), 2)
	test.ExpectEquality(t, st.ReadRegister(registers.ST1), uint16(0x2222))
	test.ExpectEquality(t, st.ReadRegister(registers.ST1), uint16(0x1111))
	test.ExpectEquality(t, st.Signals, state.NoSignals)
}

func TestFortyBitMode(t *testing.T) {
	st := newState(state.DefaultConfig)

	st.SetLongAcc(0, 0x0012345678)
	st.ConditionalExtendAccum(registers.ACM0)
	test.ExpectEquality(t, st.GetLongAcc(0), int64(0x0012345678))

	st.SetSRFlag(registers.SR40Mode)
	st.AC[0].M = 0x8000
	st.ConditionalExtendAccum(registers.ACM0)
	test.ExpectEquality(t, st.AC[0].H, uint16(0xffff))
	test.ExpectEquality(t, st.AC[0].L, uint16(0x0000))

	// saturation of the middle part for stores
	st.SetLongAcc(0, 0x0100000000)
	test.ExpectEquality(t, st.ReadRegisterAndSaturate(registers.ACM0), uint16(0x7fff))
	st.SetLongAcc(0, -0x0100000000)
	test.ExpectEquality(t, st.ReadRegisterAndSaturate(registers.ACM0), uint16(0x8000))
	st.SetLongAcc(0, 0x0000123456)
	test.ExpectEquality(t, st.ReadRegisterAndSaturate(registers.ACM0), uint16(0x0012))

	// no saturation outside of 40 bit mode
	st.ClearSRFlag(registers.SR40Mode)
	st.SetLongAcc(0, 0x0100000000)
	test.ExpectEquality(t, st.ReadRegisterAndSaturate(registers.ACM0), uint16(0x0000))
}

func TestProduct(t *testing.T) {
	st := newState(state.DefaultConfig)

	st.Prod = state.Product{L: 0x0001, M: 0xfff0, H: 0x00ff, M2: 0x0010}
	test.ExpectEquality(t, st.GetLongProduct(), int64(1))

	st.SetLongProduct(-2)
	test.ExpectEquality(t, st.Prod.H, uint16(0x00ff))
	test.ExpectEquality(t, st.Prod.M2, uint16(0))
	test.ExpectEquality(t, st.GetLongProduct(), int64(-2))

	test.ExpectEquality(t, state.RoundLongAcc(0x18000), int64(0x20000))
	test.ExpectEquality(t, state.RoundLongAcc(0x08000), int64(0x00000))
	test.ExpectEquality(t, state.RoundLongAcc(0x08001), int64(0x10000))
}

func TestMultiply(t *testing.T) {
	st := newState(state.DefaultConfig)

	test.ExpectEquality(t, st.Multiply(0xffff, 0x0002, state.MulSigned), int64(-4))
	test.ExpectEquality(t, st.Multiply(0xffff, 0x0002, state.MulUnsigned), int64(-4))

	st.SetSRFlag(registers.SRMulUnsigned)
	test.ExpectEquality(t, st.Multiply(0xffff, 0x0002, state.MulUnsigned), int64(0x3fffc))
	test.ExpectEquality(t, st.Multiply(0xffff, 0xffff, state.MulMixed), int64(-0x1fffe))

	st.SetSRFlag(registers.SRMulModify)
	test.ExpectEquality(t, st.Multiply(0xffff, 0x0002, state.MulUnsigned), int64(0xfffe))
	test.ExpectEquality(t, st.MultiplyMulX(true, true, 0xffff, 0x0002), int64(-2))
	test.ExpectEquality(t, st.MultiplyMulX(false, false, 0xffff, 0x0002), int64(0xfffe))
}

func TestAddressArithmetic(t *testing.T) {
	// no wrapping
	test.ExpectEquality(t, state.IncrementAddress(0x0010, 0xffff), uint16(0x0011))
	test.ExpectEquality(t, state.DecrementAddress(0x0010, 0xffff), uint16(0x000f))
	test.ExpectEquality(t, state.IncrementAddress(0xffff, 0xffff), uint16(0x0000))
	test.ExpectEquality(t, state.IncreaseAddress(0x0010, 0xffff, 5), uint16(0x0015))
	test.ExpectEquality(t, state.IncreaseAddress(0x0010, 0xffff, -5), uint16(0x000b))
	test.ExpectEquality(t, state.DecreaseAddress(0x0010, 0xffff, 5), uint16(0x000b))
	test.ExpectEquality(t, state.DecreaseAddress(0x0010, 0xffff, -5), uint16(0x0015))

	// circular buffer of eight words at 0x0100
	test.ExpectEquality(t, state.IncrementAddress(0x0107, 0x0007), uint16(0x0100))
	test.ExpectEquality(t, state.DecrementAddress(0x0100, 0x0007), uint16(0x0107))
	test.ExpectEquality(t, state.IncreaseAddress(0x0106, 0x0007, 3), uint16(0x0101))
	test.ExpectEquality(t, state.IncreaseAddress(0x0101, 0x0007, -3), uint16(0x0106))
	test.ExpectEquality(t, state.DecreaseAddress(0x0101, 0x0007, 3), uint16(0x0106))

	// stepping around the whole buffer returns to the start
	a := uint16(0x0103)
	for i := 0; i < 8; i++ {
		a = state.IncrementAddress(a, 0x0007)
		test.ExpectEquality(t, a&0xfff8, uint16(0x0100))
	}
	test.ExpectEquality(t, a, uint16(0x0103))
	for i := 0; i < 8; i++ {
		a = state.DecrementAddress(a, 0x0007)
		test.ExpectEquality(t, a&0xfff8, uint16(0x0100))
	}
	test.ExpectEquality(t, a, uint16(0x0103))
}

func TestStackOverflow(t *testing.T) {
	st := newState(state.Config{CallStack: 2, DataStack: 2, LoopStack: 2, Vectoring: true})

	st.PushStack(registers.StackCall, 1)
	st.PushStack(registers.StackCall, 2)
	test.ExpectEquality(t, st.Signals, state.NoSignals)

	// the third push is discarded
	st.PushStack(registers.StackCall, 3)
	test.ExpectEquality(t, st.Signals, state.StackOverflow)
	test.ExpectEquality(t, st.Stacks[registers.StackCall].Depth(), 2)
	test.ExpectEquality(t, st.PeekStack(registers.StackCall), uint16(2))
	test.ExpectEquality(t, st.Exceptions, uint8(1<<state.ExceptionStack))

	test.ExpectEquality(t, st.PopStack(registers.StackCall), uint16(2))
	test.ExpectEquality(t, st.PopStack(registers.StackCall), uint16(1))
	test.ExpectEquality(t, st.PopStack(registers.StackCall), uint16(0))
	test.ExpectEquality(t, st.ClearSignals(), state.StackOverflow|state.StackUnderflow)
	test.ExpectEquality(t, st.Signals, state.NoSignals)
}

func TestVectoring(t *testing.T) {
	st := newState(state.DefaultConfig)
	st.PC = 0x0123

	// the stack exception requires the interrupt enable bit
	st.SetException(state.ExceptionStack)
	test.ExpectEquality(t, st.CheckExceptions(), false)
	test.ExpectEquality(t, st.PC, uint16(0x0123))

	st.SetSRFlag(registers.SRIntEnable)
	test.ExpectEquality(t, st.CheckExceptions(), true)
	test.ExpectEquality(t, st.PC, uint16(vectorAddress(state.ExceptionStack)))
	test.ExpectEquality(t, st.PeekStack(registers.StackCall), uint16(0x0123))
	test.ExpectEquality(t, st.PeekStack(registers.StackData), registers.SRIntEnable)
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRIntEnable), false)
	test.ExpectEquality(t, st.Exceptions, uint8(0))

	// external interrupt request is ignored until enabled
	st.RequestInterrupt()
	st.CheckExternalInterrupt()
	test.ExpectEquality(t, st.Exceptions, uint8(0))
	st.SetSRFlag(registers.SRExtIntEnable)
	st.CheckExternalInterrupt()
	test.ExpectEquality(t, st.Signals.Has(state.InterruptPending), true)
	test.ExpectEquality(t, st.Control&state.ControlExternalInt, uint16(0))

	// the external interrupt does not need the interrupt enable bit
	test.ExpectEquality(t, st.CheckExceptions(), true)
	test.ExpectEquality(t, st.PC, uint16(vectorAddress(state.ExceptionExternal)))
	test.ExpectEquality(t, st.IsSRFlagSet(registers.SRExtIntEnable), false)

	// no vectoring when disabled
	st.Vectoring = false
	st.SetException(state.ExceptionAccelerator)
	st.SetSRFlag(registers.SRIntEnable)
	test.ExpectEquality(t, st.CheckExceptions(), false)
}

func vectorAddress(vector int) int {
	return vector * 2
}

func TestAcceleratorOverflow(t *testing.T) {
	st := newState(state.DefaultConfig)
	mem := st.Mem

	mem.ARAM[0] = 0x12
	mem.ARAM[1] = 0x34
	mem.WriteData(memory.FORMAT, memory.FormatPCM16)
	mem.WriteData(memory.ACSAH, 0)
	mem.WriteData(memory.ACSAL, 0)
	mem.WriteData(memory.ACEAH, 0)
	mem.WriteData(memory.ACEAL, 2)
	mem.WriteData(memory.ACCAH, 0)
	mem.WriteData(memory.ACCAL, 0)

	test.ExpectEquality(t, mem.ReadData(memory.ACDSAMP), uint16(0x1234))
	test.ExpectEquality(t, st.Signals, state.NoSignals)
	mem.ReadData(memory.ACDSAMP)
	test.ExpectEquality(t, st.Signals, state.AddressOverflow)
	test.ExpectEquality(t, mem.Peek(memory.ACCAL), uint16(0))
	test.ExpectEquality(t, st.Exceptions, uint8(1<<state.ExceptionAccelerator))
}

func TestSignals(t *testing.T) {
	s, err := state.ParseSignals("overflow, Interrupt")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, state.StackOverflow|state.InterruptPending)
	test.ExpectEquality(t, s.String(), "overflow,interrupt")

	s, err = state.ParseSignals("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, state.NoSignals)

	_, err = state.ParseSignals("overflow,bogus")
	test.ExpectFailure(t, err)
}

func TestMarshal(t *testing.T) {
	st := newState(state.DefaultConfig)
	st.PC = 0x0042
	st.AR[2] = 0x1234
	st.SetLongAcc(1, -12345)
	st.SetSR(registers.SR40Mode | registers.SRCarry)
	st.PushStack(registers.StackLoopCounter, 7)
	st.Mem.IRAM[3] = 0xbeef
	st.Mem.DRAM[4] = 0xcafe
	st.Mem.ARAM[5] = 0x55
	st.Mem.PushMail(0x1234abcd)

	b, err := st.MarshalBinary()
	test.DemandSuccess(t, err)

	n := newState(state.DefaultConfig)
	test.DemandSuccess(t, n.UnmarshalBinary(b))

	test.ExpectEquality(t, n.PC, st.PC)
	test.ExpectEquality(t, n.AR, st.AR)
	test.ExpectEquality(t, n.AC, st.AC)
	test.ExpectEquality(t, n.GetSR(), st.GetSR())
	test.ExpectEquality(t, n.PeekStack(registers.StackLoopCounter), uint16(7))
	test.ExpectEquality(t, n.Mem.IRAM, st.Mem.IRAM)
	test.ExpectEquality(t, n.Mem.DRAM, st.Mem.DRAM)
	test.ExpectEquality(t, n.Mem.ARAM[5], byte(0x55))
	test.ExpectEquality(t, n.Mem.MailPending(), true)

	test.ExpectFailure(t, n.UnmarshalBinary(b[:20]))
}

func TestDeferredFlags(t *testing.T) {
	a := newState(state.DefaultConfig)
	b := newState(state.DefaultConfig)

	b.DeferFlags(true)
	for _, v := range []int64{0, -1, 0x80000000, 1} {
		ovf := v == 0x80000000
		a.UpdateSR64(v, v == 0, ovf)
		b.UpdateSR64(v, v == 0, ovf)
	}
	a.UpdateSR16(-2, false, false, true)
	b.UpdateSR16(-2, false, false, true)

	// sticky overflow survives the later updates
	test.ExpectEquality(t, b.GetSR(), a.GetSR())
	test.ExpectEquality(t, a.IsSRFlagSet(registers.SROverflowStick), true)
	b.DeferFlags(false)
	test.ExpectEquality(t, b.SR, a.SR)
}
