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
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

// bit 8 of the instruction word selects the destination accumulator for most
// of the arithmetic instructions
func dreg(word uint16) int {
	return int(word>>8) & 0x01
}

// addition of val to the accumulator with status update
func addToAcc(st *state.State, d int, val int64) {
	acc := st.GetLongAcc(d)
	st.SetLongAcc(d, acc+val)
	res := st.GetLongAcc(d)
	st.UpdateSR64(res, state.IsCarry(uint64(acc), uint64(res)), state.IsOverflow(acc, val, res))
}

// subtraction of val from the accumulator with status update
func subFromAcc(st *state.State, d int, val int64) {
	acc := st.GetLongAcc(d)
	st.SetLongAcc(d, acc-val)
	res := st.GetLongAcc(d)
	st.UpdateSR64(res, state.IsCarry2(uint64(acc), uint64(res)), state.IsOverflow(acc, -val, res))
}

// comparison is a subtraction that does not store the result
func compare(st *state.State, acc int64, val int64) {
	res := state.ConvertLongAcc(acc - val)
	st.UpdateSR64(res, state.IsCarry2(uint64(acc), uint64(res)), state.IsOverflow(acc, -val, res))
}

// set the accumulator and update the status register from the stored value
func moveToAcc(st *state.State, d int, val int64) {
	st.SetLongAcc(d, val)
	st.UpdateSR64(st.GetLongAcc(d), false, false)
}

// ADDR $acD, $axS.l/h
func addr(st *state.State, word uint16, _ uint16) {
	sreg := registers.Index((word>>9)&0x03) + registers.AXL0
	ax := int64(int16(st.ReadRegister(sreg))) << 16
	addToAcc(st, dreg(word), ax)
}

// ADDAX $acD, $axS
func addax(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), st.GetLongACX(int(word>>9)&0x01))
}

// ADD $acD, $ac(1-D)
func add(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	addToAcc(st, d, st.GetLongAcc(1-d))
}

// ADDP $acD
func addp(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), st.GetLongProduct())
}

// ADDAXL $acD, $axS.l. the low part of AX is unsigned
func addaxl(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), int64(st.GetAXL(int(word>>9)&0x01)))
}

// ADDI $acD, #I
func addi(st *state.State, word uint16, imm uint16) {
	addToAcc(st, dreg(word), int64(int16(imm))<<16)
}

// ADDIS $acD, #I
func addis(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), int64(int8(word))<<16)
}

// INCM $acD
func incm(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), 0x10000)
}

// INC $acD
func inc(st *state.State, word uint16, _ uint16) {
	addToAcc(st, dreg(word), 1)
}

// SUBR $acD, $axS.l/h
func subr(st *state.State, word uint16, _ uint16) {
	sreg := registers.Index((word>>9)&0x03) + registers.AXL0
	ax := int64(int16(st.ReadRegister(sreg))) << 16
	subFromAcc(st, dreg(word), ax)
}

// SUBAX $acD, $axS
func subax(st *state.State, word uint16, _ uint16) {
	subFromAcc(st, dreg(word), st.GetLongACX(int(word>>9)&0x01))
}

// SUB $acD, $ac(1-D)
func sub(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	subFromAcc(st, d, st.GetLongAcc(1-d))
}

// SUBP $acD
func subp(st *state.State, word uint16, _ uint16) {
	subFromAcc(st, dreg(word), st.GetLongProduct())
}

// DECM $acD
func decm(st *state.State, word uint16, _ uint16) {
	subFromAcc(st, dreg(word), 0x10000)
}

// DEC $acD
func dec(st *state.State, word uint16, _ uint16) {
	subFromAcc(st, dreg(word), 1)
}

// NEG $acD. carry and overflow are always cleared
func neg(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, -st.GetLongAcc(d))
}

// ABS $acD
func abs(st *state.State, word uint16, _ uint16) {
	d := int(word>>11) & 0x01
	acc := st.GetLongAcc(d)
	if acc < 0 {
		acc = -acc
	}
	moveToAcc(st, d, acc)
}

// MOVR $acD, $axS.l/h
func movr(st *state.State, word uint16, _ uint16) {
	sreg := registers.Index((word>>9)&0x03) + registers.AXL0
	moveToAcc(st, dreg(word), int64(int16(st.ReadRegister(sreg)))<<16)
}

// MOVAX $acD, $axS
func movax(st *state.State, word uint16, _ uint16) {
	moveToAcc(st, dreg(word), st.GetLongACX(int(word>>9)&0x01))
}

// MOV $acD, $ac(1-D)
func mov(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, st.GetLongAcc(1-d))
}

// CLR $acR
func clr(st *state.State, word uint16, _ uint16) {
	st.SetLongAcc(int(word>>11)&0x01, 0)
	st.UpdateSR64(0, false, false)
}

// CLRL $acR. rounds the accumulator to the nearest multiple of 0x10000
func clrl(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	moveToAcc(st, d, state.RoundLongAcc(st.GetLongAcc(d)))
}

// TST $acR
func tst(st *state.State, word uint16, _ uint16) {
	st.UpdateSR64(st.GetLongAcc(int(word>>11)&0x01), false, false)
}

// TSTAXH $axR.h
func tstaxh(st *state.State, word uint16, _ uint16) {
	st.UpdateSR16(int16(st.GetAXH(dreg(word))), false, false, false)
}

// CMP. always compares AC0 with AC1
func cmp(st *state.State, _ uint16, _ uint16) {
	compare(st, st.GetLongAcc(0), st.GetLongAcc(1))
}

// CMPAXH $acS, $axR.h
func cmpaxh(st *state.State, word uint16, _ uint16) {
	r := int(word>>12) & 0x01
	s := int(word>>11) & 0x01
	compare(st, st.GetLongAcc(s), int64(int16(st.GetAXH(r)))<<16)
}

// CMPI $acD, #I
func cmpi(st *state.State, word uint16, imm uint16) {
	d := dreg(word)
	compare(st, st.GetLongAcc(d), int64(int16(imm))<<16)
}

// CMPIS $acD, #I
func cmpis(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	compare(st, st.GetLongAcc(d), int64(int8(word))<<16)
}

// the logic operations act on the middle part of an accumulator. the above
// 32 bits flag is taken from the whole accumulator
func logic(st *state.State, d int, f func(m uint16) uint16) {
	st.AC[d].M = f(st.AC[d].M)
	st.UpdateSR16(int16(st.AC[d].M), false, false, state.IsOverS32(st.GetLongAcc(d)))
}

// XORR $acD.m, $axS.h
func xorr(st *state.State, word uint16, _ uint16) {
	ax := st.GetAXH(int(word>>9) & 0x01)
	logic(st, dreg(word), func(m uint16) uint16 { return m ^ ax })
}

// ANDR $acD.m, $axS.h
func andr(st *state.State, word uint16, _ uint16) {
	ax := st.GetAXH(int(word>>9) & 0x01)
	logic(st, dreg(word), func(m uint16) uint16 { return m & ax })
}

// ORR $acD.m, $axS.h
func orr(st *state.State, word uint16, _ uint16) {
	ax := st.GetAXH(int(word>>9) & 0x01)
	logic(st, dreg(word), func(m uint16) uint16 { return m | ax })
}

// ANDC $acD.m, $ac(1-D).m
func andc(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	o := st.AC[1-d].M
	logic(st, d, func(m uint16) uint16 { return m & o })
}

// ORC $acD.m, $ac(1-D).m
func orc(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	o := st.AC[1-d].M
	logic(st, d, func(m uint16) uint16 { return m | o })
}

// XORC $acD.m, $ac(1-D).m
func xorc(st *state.State, word uint16, _ uint16) {
	d := dreg(word)
	o := st.AC[1-d].M
	logic(st, d, func(m uint16) uint16 { return m ^ o })
}

// NOT $acD.m
func not(st *state.State, word uint16, _ uint16) {
	logic(st, dreg(word), func(m uint16) uint16 { return m ^ 0xffff })
}

// XORI $acD.m, #I
func xori(st *state.State, word uint16, imm uint16) {
	logic(st, dreg(word), func(m uint16) uint16 { return m ^ imm })
}

// ANDI $acD.m, #I
func andi(st *state.State, word uint16, imm uint16) {
	logic(st, dreg(word), func(m uint16) uint16 { return m & imm })
}

// ORI $acD.m, #I
func ori(st *state.State, word uint16, imm uint16) {
	logic(st, dreg(word), func(m uint16) uint16 { return m | imm })
}

// ANDF and ANDCF only change the logic zero bit
func logicZero(st *state.State, set bool) {
	if set {
		st.SetSRFlag(registers.SRLogicZero)
	} else {
		st.ClearSRFlag(registers.SRLogicZero)
	}
}

// ANDF $acD.m, #I
func andf(st *state.State, word uint16, imm uint16) {
	logicZero(st, st.GetAccM(dreg(word))&imm == 0)
}

// ANDCF $acD.m, #I
func andcf(st *state.State, word uint16, imm uint16) {
	logicZero(st, st.GetAccM(dreg(word))&imm == imm)
}
