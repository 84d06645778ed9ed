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

package interpreter

import (
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

// operand selection for the MULX family. bit clear selects the low part of
// the AX register and bit set selects the high part
func mulxOperands(st *state.State, s int, t int) (uint16, uint16) {
	var a, b uint16
	if s == 0 {
		a = st.GetAXL(0)
	} else {
		a = st.GetAXH(0)
	}
	if t == 0 {
		b = st.GetAXL(1)
	} else {
		b = st.GetAXH(1)
	}
	return a, b
}

// the accumulating forms of the multiply instructions. the accumulator is
// set from the product as it was before the multiplication
type mulAccumulate int

const (
	mulOnly mulAccumulate = iota
	mulAddToAcc
	mulMoveToAcc
	mulMoveToAccRounded
)

func multiplyAndAccumulate(st *state.State, r int, form mulAccumulate, prod int64) {
	var acc int64
	switch form {
	case mulOnly:
		st.SetLongProduct(prod)
		return
	case mulAddToAcc:
		acc = st.GetLongAcc(r) + st.GetLongProduct()
	case mulMoveToAcc:
		acc = st.GetLongProduct()
	case mulMoveToAccRounded:
		acc = st.GetLongProductRounded() &^ 0xffff
	}
	st.SetLongProduct(prod)
	moveToAcc(st, r, acc)
}

// CLRP
func clrp(st *state.State, _ uint16, _ uint16) {
	st.Prod = state.Product{L: 0x0000, M: 0xfff0, H: 0x00ff, M2: 0x0010}
}

// TSTPROD
func tstprod(st *state.State, _ uint16, _ uint16) {
	st.UpdateSR64(st.GetLongProduct(), false, false)
}

// MOVP $acD
func movp(st *state.State, word uint16, _ uint16) {
	moveToAcc(st, dreg(word), st.GetLongProduct())
}

// MOVNP $acD
func movnp(st *state.State, word uint16, _ uint16) {
	moveToAcc(st, dreg(word), -st.GetLongProduct())
}

// MOVPZ $acD
func movpz(st *state.State, word uint16, _ uint16) {
	moveToAcc(st, dreg(word), st.GetLongProductRounded()&^0xffff)
}

// ADDPAXZ $acD, $axS
func addpaxz(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	prod := st.GetLongProductRounded() &^ 0xffff
	ax := st.GetLongACX(int(word>>9)&0x01) &^ 0xffff
	old := st.GetLongProduct()
	st.SetLongAcc(d, prod+ax)
	res := st.GetLongAcc(d)
	st.UpdateSR64(res, state.IsCarry(uint64(old), uint64(res)), false)
}

// MULAXH
func mulaxh(st *state.State, _ uint16, _ uint16) {
	st.SetLongProduct(st.Multiply(st.GetAXH(0), st.GetAXH(0), state.MulSigned))
}

// MUL, MULAC, MULMV and MULMVZ multiply the low and high parts of the same AX
// register
func mulForm(form mulAccumulate) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		s := int(word>>11) & 0x01
		prod := st.Multiply(st.GetAXL(s), st.GetAXH(s), state.MulSigned)
		multiplyAndAccumulate(st, dreg(word), form, prod)
	}
}

// MULX, MULXAC, MULXMV and MULXMVZ
func mulxForm(form mulAccumulate) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		t := int(word>>11) & 0x01
		s := int(word>>12) & 0x01
		a, b := mulxOperands(st, s, t)
		prod := st.MultiplyMulX(s == 1, t == 1, a, b)
		multiplyAndAccumulate(st, dreg(word), form, prod)
	}
}

// MULC, MULCAC, MULCMV and MULCMVZ multiply the middle part of an
// accumulator by the high part of an AX register
func mulcForm(form mulAccumulate) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		t := int(word>>11) & 0x01
		s := int(word>>12) & 0x01
		prod := st.Multiply(st.GetAccM(s), st.GetAXH(t), state.MulSigned)
		multiplyAndAccumulate(st, dreg(word), form, prod)
	}
}

// MADDX $ax0.S, $ax1.T
func maddx(st *state.State, word uint16, _ uint16) {
	a, b := mulxOperands(st, int(word>>9)&0x01, int(word>>8)&0x01)
	st.SetLongProduct(st.MultiplyAdd(a, b, state.MulSigned))
}

// MSUBX $ax0.S, $ax1.T
func msubx(st *state.State, word uint16, _ uint16) {
	a, b := mulxOperands(st, int(word>>9)&0x01, int(word>>8)&0x01)
	st.SetLongProduct(st.MultiplySub(a, b, state.MulSigned))
}

// MADDC $acS.m, $axT.h
func maddc(st *state.State, word uint16, _ uint16) {
	a := st.GetAccM(int(word>>9) & 0x01)
	b := st.GetAXH(int(word>>8) & 0x01)
	st.SetLongProduct(st.MultiplyAdd(a, b, state.MulSigned))
}

// MSUBC $acS.m, $axT.h
func msubc(st *state.State, word uint16, _ uint16) {
	a := st.GetAccM(int(word>>9) & 0x01)
	b := st.GetAXH(int(word>>8) & 0x01)
	st.SetLongProduct(st.MultiplySub(a, b, state.MulSigned))
}

// MADD $axS.l, $axS.h
func madd(st *state.State, word uint16, _ uint16) {
	s := dreg(word)
	st.SetLongProduct(st.MultiplyAdd(st.GetAXL(s), st.GetAXH(s), state.MulSigned))
}

// MSUB $axS.l, $axS.h
func msub(st *state.State, word uint16, _ uint16) {
	s := dreg(word)
	st.SetLongProduct(st.MultiplySub(st.GetAXL(s), st.GetAXH(s), state.MulSigned))
}
