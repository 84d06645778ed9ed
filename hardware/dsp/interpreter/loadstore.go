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
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

// write a register as the result of a load. the middle part of an
// accumulator is sign extended in 40 bit mode
func load(st *state.State, reg registers.Index, val uint16) {
	st.WriteRegister(reg, val)
	st.ConditionalExtendAccum(reg)
}

// the post-modification of the address register used by the indirect loads
// and stores. bits 7 and 8 of the instruction word select the mode
func postModify(st *state.State, c opcodes.Class, ar int) {
	switch c {
	case opcodes.Lrrd, opcodes.Srrd, opcodes.Ilrrd:
		st.DecrementAR(ar)
	case opcodes.Lrri, opcodes.Srri, opcodes.Ilrri:
		st.IncrementAR(ar)
	case opcodes.Lrrn, opcodes.Srrn, opcodes.Ilrrn:
		st.IncreaseAR(ar)
	}
}

// LRI $D, #I
func lri(st *state.State, word uint16, imm uint16) {
	reg, _ := opcodes.DestinationRegister(word)
	load(st, reg, imm)
}

// LRIS $(0x18+D), #I
func lris(st *state.State, word uint16, _ uint16) {
	reg, _ := opcodes.DestinationRegister(word)
	load(st, reg, uint16(int16(int8(word))))
}

// LR $D, @M
func lr(st *state.State, word uint16, imm uint16) {
	reg, _ := opcodes.DestinationRegister(word)
	load(st, reg, st.Mem.ReadData(imm))
}

// SR @M, $S
func sr(st *state.State, word uint16, imm uint16) {
	reg, _ := opcodes.SourceRegister(word)
	st.Mem.WriteData(imm, st.ReadRegisterAndSaturate(reg))
}

// SI @M, #I. the address is the sign extended low byte of the instruction
// and so always in the hardware register page
func si(st *state.State, word uint16, imm uint16) {
	st.Mem.WriteData(uint16(int16(int8(word))), imm)
}

// MRR $D, $S
func mrr(st *state.State, word uint16, _ uint16) {
	src, _ := opcodes.SourceRegister(word)
	dst, _ := opcodes.DestinationRegister(word)
	load(st, dst, st.ReadRegisterAndSaturate(src))
}

// LRR, LRRD, LRRI and LRRN $D, @$S
func lrrForm(c opcodes.Class) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		ar := int(word>>5) & 0x03
		reg, _ := opcodes.DestinationRegister(word)
		load(st, reg, st.Mem.ReadData(st.AR[ar]))
		postModify(st, c, ar)
	}
}

// SRR, SRRD, SRRI and SRRN @$D, $S
func srrForm(c opcodes.Class) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		ar := int(word>>5) & 0x03
		reg, _ := opcodes.SourceRegister(word)
		st.Mem.WriteData(st.AR[ar], st.ReadRegisterAndSaturate(reg))
		postModify(st, c, ar)
	}
}

// ILRR, ILRRD, ILRRI and ILRRN $acD.m, @$arS. loads from instruction memory
func ilrrForm(c opcodes.Class) Semantic {
	return func(st *state.State, word uint16, _ uint16) {
		ar := int(word & 0x03)
		reg, _ := opcodes.DestinationRegister(word)
		load(st, reg, st.Mem.ReadInstruction(st.AR[ar]))
		postModify(st, c, ar)
	}
}

// the short addressing forms take the high byte of the address from CR
func shortAddress(st *state.State, word uint16) uint16 {
	return st.CR<<8 | word&0x00ff
}

// LRS $(0x18+D), @M
func lrs(st *state.State, word uint16, _ uint16) {
	reg, _ := opcodes.DestinationRegister(word)
	load(st, reg, st.Mem.ReadData(shortAddress(st, word)))
}

// SRS @M, $(0x1c+S)
func srs(st *state.State, word uint16, _ uint16) {
	reg, _ := opcodes.SourceRegister(word)
	st.Mem.WriteData(shortAddress(st, word), st.ReadRegisterAndSaturate(reg))
}

// SRSH @M, $acS.h
func srsh(st *state.State, word uint16, _ uint16) {
	reg, _ := opcodes.SourceRegister(word)
	st.Mem.WriteData(shortAddress(st, word), st.ReadRegister(reg))
}

// DAR $arD
func dar(st *state.State, word uint16, _ uint16) {
	st.DecrementAR(int(word & 0x03))
}

// IAR $arD
func iar(st *state.State, word uint16, _ uint16) {
	st.IncrementAR(int(word & 0x03))
}

// SUBARN $arD
func subarn(st *state.State, word uint16, _ uint16) {
	st.DecreaseAR(int(word & 0x03))
}

// ADDARN $arD, $ixS
func addarn(st *state.State, word uint16, _ uint16) {
	d := int(word & 0x03)
	s := int(word>>2) & 0x03
	st.AR[d] = state.IncreaseAddress(st.AR[d], st.WR[d], int16(st.IX[s]))
}

// SBCLR #I
func sbclr(st *state.State, word uint16, _ uint16) {
	st.ClearSRFlag(1 << (word&0x07 + registers.SRBitOffset))
}

// SBSET #I
func sbset(st *state.State, word uint16, _ uint16) {
	st.SetSRFlag(1 << (word&0x07 + registers.SRBitOffset))
}

// the mode instructions set or clear a single bit in SR
func modeBit(mask uint16, set bool) Semantic {
	return func(st *state.State, _ uint16, _ uint16) {
		if set {
			st.SetSRFlag(mask)
		} else {
			st.ClearSRFlag(mask)
		}
	}
}
