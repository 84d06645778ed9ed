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

// mask for the 40 bits of an accumulator when treated as an unsigned value
const accMask = 0x000000ffffffffff

// the shift amount of the immediate right shift forms is the negation of the
// six bit immediate
func rightShiftImmediate(word uint16) uint {
	if word&0x3f == 0 {
		return 0
	}
	return uint(0x40 - word&0x3f)
}

// the shift amount of the variable shift forms is a seven bit signed value.
// the sign selects the direction
func variableShift(v uint16) int {
	if v&0x3f == 0 {
		return 0
	}
	if v&0x40 == 0x40 {
		return -0x40 + int(v&0x3f)
	}
	return int(v & 0x3f)
}

// logical shift of the accumulator. positive values shift left
func logicalShift(acc int64, n int) int64 {
	u := uint64(acc) & accMask
	switch {
	case n > 0:
		u <<= uint(n)
	case n < 0:
		u >>= uint(-n)
	}
	return int64(u)
}

// arithmetic shift of the accumulator. positive values shift left
func arithmeticShift(acc int64, n int) int64 {
	switch {
	case n > 0:
		return acc << uint(n)
	case n < 0:
		return acc >> uint(-n)
	}
	return acc
}

// LSL16 $acR
func lsl16(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, st.GetLongAcc(d)<<16)
}

// LSR16 $acR
func lsr16(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, logicalShift(st.GetLongAcc(d), -16))
}

// ASR16 $acR
func asr16(st *state.State, word uint16, _ uint16) {
	d := int(word>>11) & 0x01
	moveToAcc(st, d, st.GetLongAcc(d)>>16)
}

// LSL $acR, #I
func lsl(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, st.GetLongAcc(d)<<(word&0x3f))
}

// LSR $acR, #I
func lsr(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, logicalShift(st.GetLongAcc(d), -int(rightShiftImmediate(word))))
}

// ASL $acR, #I
func asl(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, st.GetLongAcc(d)<<(word&0x3f))
}

// ASR $acR, #I
func asr(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, st.GetLongAcc(d)>>rightShiftImmediate(word))
}

// LSRN. shifts AC0 by the value in AC1.M. unlike the other variable forms a
// positive value shifts right
func lsrn(st *state.State, _ uint16, _ uint16) {
	n := variableShift(st.GetAccM(1))
	moveToAcc(st, 0, logicalShift(st.GetLongAcc(0), -n))
}

// ASRN. as LSRN but arithmetic
func asrn(st *state.State, _ uint16, _ uint16) {
	n := variableShift(st.GetAccM(1))
	moveToAcc(st, 0, arithmeticShift(st.GetLongAcc(0), -n))
}

// LSRNRX $acD, $axS.h
func lsrnrx(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	n := variableShift(st.GetAXH(int(word>>9) & 0x01))
	moveToAcc(st, d, logicalShift(st.GetLongAcc(d), n))
}

// ASRNRX $acD, $axS.h
func asrnrx(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	n := variableShift(st.GetAXH(int(word>>9) & 0x01))
	moveToAcc(st, d, arithmeticShift(st.GetLongAcc(d), n))
}

// LSRNR $acD
func lsrnr(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	n := variableShift(st.GetAccM(1 - d))
	moveToAcc(st, d, logicalShift(st.GetLongAcc(d), n))
}

// ASRNR $acD
func asrnr(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	n := variableShift(st.GetAccM(1 - d))
	moveToAcc(st, d, arithmeticShift(st.GetLongAcc(d), n))
}
