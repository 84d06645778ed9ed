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

package state

import (
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
)

// ReadRegister reads a register by index. Reading one of the ST registers
// pops the corresponding stack. Reading ACH returns the high part of the
// accumulator sign extended from eight bits.
func (st *State) ReadRegister(reg registers.Index) uint16 {
	switch reg {
	case registers.AR0, registers.AR1, registers.AR2, registers.AR3:
		return st.AR[reg-registers.AR0]
	case registers.IX0, registers.IX1, registers.IX2, registers.IX3:
		return st.IX[reg-registers.IX0]
	case registers.WR0, registers.WR1, registers.WR2, registers.WR3:
		return st.WR[reg-registers.WR0]
	case registers.ST0, registers.ST1, registers.ST2, registers.ST3:
		return st.PopStack(registers.Stack(reg - registers.ST0))
	case registers.ACH0, registers.ACH1:
		return uint16(int16(int8(st.AC[reg-registers.ACH0].H)))
	case registers.CR:
		return st.CR
	case registers.SR:
		return st.GetSR()
	case registers.PRODL:
		return st.Prod.L
	case registers.PRODM:
		return st.Prod.M
	case registers.PRODH:
		return st.Prod.H
	case registers.PRODM2:
		return st.Prod.M2
	case registers.AXL0, registers.AXL1:
		return st.AX[reg-registers.AXL0].L
	case registers.AXH0, registers.AXH1:
		return st.AX[reg-registers.AXH0].H
	case registers.ACL0, registers.ACL1:
		return st.AC[reg-registers.ACL0].L
	case registers.ACM0, registers.ACM1:
		return st.AC[reg-registers.ACM0].M
	}
	return 0
}

// WriteRegister writes a register by index. Writing one of the ST registers
// pushes onto the corresponding stack. Writing ACH sign extends the value
// from eight bits.
func (st *State) WriteRegister(reg registers.Index, val uint16) {
	switch reg {
	case registers.AR0, registers.AR1, registers.AR2, registers.AR3:
		st.AR[reg-registers.AR0] = val
	case registers.IX0, registers.IX1, registers.IX2, registers.IX3:
		st.IX[reg-registers.IX0] = val
	case registers.WR0, registers.WR1, registers.WR2, registers.WR3:
		st.WR[reg-registers.WR0] = val
	case registers.ST0, registers.ST1, registers.ST2, registers.ST3:
		st.PushStack(registers.Stack(reg-registers.ST0), val)
	case registers.ACH0, registers.ACH1:
		st.AC[reg-registers.ACH0].H = uint16(int16(int8(val)))
	case registers.CR:
		st.CR = val
	case registers.SR:
		st.SetSR(val)
	case registers.PRODL:
		st.Prod.L = val
	case registers.PRODM:
		st.Prod.M = val
	case registers.PRODH:
		st.Prod.H = val
	case registers.PRODM2:
		st.Prod.M2 = val
	case registers.AXL0, registers.AXL1:
		st.AX[reg-registers.AXL0].L = val
	case registers.AXH0, registers.AXH1:
		st.AX[reg-registers.AXH0].H = val
	case registers.ACL0, registers.ACL1:
		st.AC[reg-registers.ACL0].L = val
	case registers.ACM0, registers.ACM1:
		st.AC[reg-registers.ACM0].M = val
	}
}

// ConditionalExtendAccum is called after a load into a register. If the
// register is the middle part of an accumulator and the processor is in 40
// bit mode then the value is sign extended into the high part and the low
// part is cleared.
func (st *State) ConditionalExtendAccum(reg registers.Index) {
	if reg != registers.ACM0 && reg != registers.ACM1 {
		return
	}
	if !st.IsSRFlagSet(registers.SR40Mode) {
		return
	}
	ac := &st.AC[reg-registers.ACM0]
	if ac.M&0x8000 == 0x8000 {
		ac.H = 0xffff
	} else {
		ac.H = 0
	}
	ac.L = 0
}

// ReadRegisterAndSaturate reads a register for a store. In 40 bit mode the
// middle part of an accumulator saturates when the long value does not fit
// in 32 bits.
func (st *State) ReadRegisterAndSaturate(reg registers.Index) uint16 {
	if reg != registers.ACM0 && reg != registers.ACM1 {
		return st.ReadRegister(reg)
	}
	if st.IsSRFlagSet(registers.SR40Mode) {
		acc := st.GetLongAcc(int(reg - registers.ACM0))
		if acc != int64(int32(acc)) {
			if acc > 0 {
				return 0x7fff
			}
			return 0x8000
		}
	}
	return st.AC[reg-registers.ACM0].M
}

// ConvertLongAcc sign extends a value from 40 bits.
func ConvertLongAcc(val int64) int64 {
	return (val << 24) >> 24
}

// RoundLongAcc rounds a long accumulator value to the nearest multiple of
// 0x10000. Halfway values round to even.
func RoundLongAcc(val int64) int64 {
	if val&0x10000 == 0x10000 {
		val = (val + 0x8000) &^ 0xffff
	} else {
		val = (val + 0x7fff) &^ 0xffff
	}
	return val
}

// GetLongAcc returns the 40 bit value of the accumulator.
func (st *State) GetLongAcc(reg int) int64 {
	ac := &st.AC[reg]
	return int64(int8(ac.H))<<32 | int64(ac.M)<<16 | int64(ac.L)
}

// SetLongAcc sets the accumulator from a 40 bit value.
func (st *State) SetLongAcc(reg int, val int64) {
	ac := &st.AC[reg]
	ac.L = uint16(val)
	ac.M = uint16(val >> 16)
	ac.H = uint16(int16(int8(val >> 32)))
}

// GetAccL returns the low part of the accumulator.
func (st *State) GetAccL(reg int) uint16 {
	return st.AC[reg].L
}

// GetAccM returns the middle part of the accumulator.
func (st *State) GetAccM(reg int) uint16 {
	return st.AC[reg].M
}

// GetAccH returns the high part of the accumulator.
func (st *State) GetAccH(reg int) uint16 {
	return st.AC[reg].H
}

// GetLongACX returns the 32 bit value of the AX register.
func (st *State) GetLongACX(reg int) int64 {
	ax := &st.AX[reg]
	return int64(int32(uint32(ax.H)<<16 | uint32(ax.L)))
}

// GetAXL returns the low part of the AX register.
func (st *State) GetAXL(reg int) uint16 {
	return st.AX[reg].L
}

// GetAXH returns the high part of the AX register.
func (st *State) GetAXH(reg int) uint16 {
	return st.AX[reg].H
}

// GetLongProduct returns the 40 bit value of the product register.
func (st *State) GetLongProduct() int64 {
	p := &st.Prod
	val := int64(int8(p.H)) << 32
	low := (int64(p.M)+int64(p.M2))<<16 | int64(p.L)
	return val + low
}

// GetLongProductRounded returns the rounded value of the product register.
func (st *State) GetLongProductRounded() int64 {
	return RoundLongAcc(st.GetLongProduct())
}

// SetLongProduct sets the product register from a 40 bit value. The second
// middle part is cleared.
func (st *State) SetLongProduct(val int64) {
	val &= 0x000000ffffffffff
	st.Prod.L = uint16(val)
	st.Prod.M = uint16(val >> 16)
	st.Prod.H = uint16(val >> 32)
	st.Prod.M2 = 0
}
