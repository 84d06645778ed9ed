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

// the inputs of the most recent status update. when deferral is enabled the
// arithmetic bits of the status register are not computed until something
// needs them. the result of materialising the deferred update is identical
// to evaluating it immediately because the most recent update determines all
// the bits in SRCmpMask and the sticky overflow bit is only ever set
type deferredFlags struct {
	enabled bool
	pending bool
	wide    bool
	val     int64
	carry   bool
	ovf     bool
	os32    bool
	sticky  bool
}

// DeferFlags enables or disables deferred status updates. Any pending update
// is materialised first.
func (st *State) DeferFlags(enable bool) {
	st.FlushFlags()
	st.flags.enabled = enable
}

// FlushFlags materialises any deferred status update into SR.
func (st *State) FlushFlags() {
	if !st.flags.pending {
		return
	}
	f := st.flags
	st.flags.pending = false
	st.flags.sticky = false

	if f.wide {
		st.SR = updateSR64(st.SR, f.val, f.carry, f.ovf)
	} else {
		st.SR = updateSR16(st.SR, int16(f.val), f.carry, f.ovf, f.os32)
	}
	if f.sticky {
		st.SR |= registers.SROverflowStick
	}
}

// GetSR returns the status register.
func (st *State) GetSR() uint16 {
	st.FlushFlags()
	return st.SR
}

// SetSR sets the status register.
func (st *State) SetSR(v uint16) {
	st.FlushFlags()
	st.SR = v
}

// IsSRFlagSet returns true if all the bits in mask are set in SR.
func (st *State) IsSRFlagSet(mask uint16) bool {
	return st.GetSR()&mask == mask
}

// SetSRFlag sets the bits in mask.
func (st *State) SetSRFlag(mask uint16) {
	st.SetSR(st.GetSR() | mask)
}

// ClearSRFlag clears the bits in mask.
func (st *State) ClearSRFlag(mask uint16) {
	st.SetSR(st.GetSR() &^ mask)
}

// UpdateSR64 sets the arithmetic bits of SR for a 40 bit result.
func (st *State) UpdateSR64(val int64, carry bool, ovf bool) {
	if st.flags.enabled {
		st.flags.sticky = st.flags.sticky || ovf
		st.flags.pending = true
		st.flags.wide = true
		st.flags.val = val
		st.flags.carry = carry
		st.flags.ovf = ovf
		return
	}
	st.SR = updateSR64(st.SR, val, carry, ovf)
}

// UpdateSR16 sets the arithmetic bits of SR for a 16 bit result. The os32
// argument is the state of the "above 32 bits" bit, which cannot be derived
// from the 16 bit value.
func (st *State) UpdateSR16(val int16, carry bool, ovf bool, os32 bool) {
	if st.flags.enabled {
		st.flags.sticky = st.flags.sticky || ovf
		st.flags.pending = true
		st.flags.wide = false
		st.flags.val = int64(val)
		st.flags.carry = carry
		st.flags.ovf = ovf
		st.flags.os32 = os32
		return
	}
	st.SR = updateSR16(st.SR, val, carry, ovf, os32)
}

func updateSR64(sr uint16, val int64, carry bool, ovf bool) uint16 {
	sr &^= registers.SRCmpMask

	if carry {
		sr |= registers.SRCarry
	}
	if ovf {
		sr |= registers.SROverflow | registers.SROverflowStick
	}
	if val == 0 {
		sr |= registers.SRArithZero
	}
	if val < 0 {
		sr |= registers.SRSign
	}
	if IsOverS32(val) {
		sr |= registers.SROverS32
	}
	if v := val & 0xc0000000; v == 0 || v == 0xc0000000 {
		sr |= registers.SRTopBitsEqual
	}
	return sr
}

func updateSR16(sr uint16, val int16, carry bool, ovf bool, os32 bool) uint16 {
	sr &^= registers.SRCmpMask

	if carry {
		sr |= registers.SRCarry
	}
	if ovf {
		sr |= registers.SROverflow | registers.SROverflowStick
	}
	if val == 0 {
		sr |= registers.SRArithZero
	}
	if val < 0 {
		sr |= registers.SRSign
	}
	if os32 {
		sr |= registers.SROverS32
	}
	if v := uint16(val) >> 14; v == 0 || v == 3 {
		sr |= registers.SRTopBitsEqual
	}
	return sr
}

// IsCarry returns true if the addition of something to a produced res with a
// carry out of bit 39. Values are compared as unsigned 64 bit values.
func IsCarry(a uint64, res uint64) bool {
	return a > res
}

// IsCarry2 is the carry test for subtraction.
func IsCarry2(a uint64, res uint64) bool {
	return a >= res
}

// IsOverflow returns true if a+b=res overflowed.
func IsOverflow(a int64, b int64, res int64) bool {
	return ((a ^ res) & (b ^ res)) < 0
}

// IsOverS32 returns true if the value does not fit in 32 bits.
func IsOverS32(val int64) bool {
	return val != int64(int32(val))
}

// CheckCondition evaluates the condition code of a conditional instruction.
func (st *State) CheckCondition(cond uint16) bool {
	sr := st.GetSR()
	isSet := func(mask uint16) bool {
		return sr&mask == mask
	}
	isLess := func() bool {
		return isSet(registers.SROverflow) != isSet(registers.SRSign)
	}
	isZero := func() bool {
		return isSet(registers.SRArithZero)
	}
	isConditionA := func() bool {
		return (isSet(registers.SROverS32) || isSet(registers.SRTopBitsEqual)) && !isZero()
	}

	switch cond & 0xf {
	case 0x0: // GE
		return !isLess()
	case 0x1: // L
		return isLess()
	case 0x2: // G
		return !isLess() && !isZero()
	case 0x3: // LE
		return isLess() || isZero()
	case 0x4: // NZ
		return !isZero()
	case 0x5: // Z
		return isZero()
	case 0x6: // NC
		return !isSet(registers.SRCarry)
	case 0x7: // C
		return isSet(registers.SRCarry)
	case 0x8: // not above 32 bits
		return !isSet(registers.SROverS32)
	case 0x9: // above 32 bits
		return isSet(registers.SROverS32)
	case 0xa:
		return isConditionA()
	case 0xb:
		return !isConditionA()
	case 0xc: // LNZ
		return !isSet(registers.SRLogicZero)
	case 0xd: // LZ
		return isSet(registers.SRLogicZero)
	case 0xe: // O
		return isSet(registers.SROverflow)
	}
	return true
}
