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

// MulSign selects how the operands of a multiplication are interpreted.
type MulSign int

// List of valid MulSign values. The unsigned and mixed forms only take
// effect when the unsigned multiply bit in SR is set.
const (
	MulSigned MulSign = iota
	MulUnsigned
	MulMixed
)

// Multiply returns the product of a and b. The product is doubled unless
// the multiply modify bit in SR is set.
func (st *State) Multiply(a uint16, b uint16, sign MulSign) int64 {
	var prod int64

	unsigned := st.IsSRFlagSet(registers.SRMulUnsigned)
	switch {
	case sign == MulUnsigned && unsigned:
		prod = int64(uint32(a) * uint32(b))
	case sign == MulMixed && unsigned:
		prod = int64(a) * int64(int16(b))
	default:
		prod = int64(int16(a)) * int64(int16(b))
	}

	if !st.IsSRFlagSet(registers.SRMulModify) {
		prod <<= 1
	}
	return prod
}

// MultiplyAdd returns the product of a and b added to the product register.
func (st *State) MultiplyAdd(a uint16, b uint16, sign MulSign) int64 {
	return st.GetLongProduct() + st.Multiply(a, b, sign)
}

// MultiplySub returns the product of a and b subtracted from the product
// register.
func (st *State) MultiplySub(a uint16, b uint16, sign MulSign) int64 {
	return st.GetLongProduct() - st.Multiply(a, b, sign)
}

// MultiplyMulX is the multiplication used by the MULX family. The operand
// forms depend on whether each value came from the low or high half of an
// AX register. Low halves are unsigned.
func (st *State) MultiplyMulX(axh0 bool, axh1 bool, a uint16, b uint16) int64 {
	switch {
	case !axh0 && !axh1:
		return st.Multiply(a, b, MulUnsigned)
	case !axh0 && axh1:
		return st.Multiply(a, b, MulMixed)
	case axh0 && !axh1:
		return st.Multiply(b, a, MulMixed)
	}
	return st.Multiply(a, b, MulSigned)
}
