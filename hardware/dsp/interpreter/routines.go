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

// Semantic is the routine for an instruction class. The word is the first
// word of the instruction and imm is the second word of a two word
// instruction. PC has already been advanced past the instruction when the
// routine is called.
type Semantic func(st *state.State, word uint16, imm uint16)

// ExtSemantic is the routine for an extended opcode class.
type ExtSemantic func(st *state.State, word uint16)

// routines are created once. some of the routines are closures over the
// variant of the instruction
var routines [opcodes.NumClasses]Semantic
var extRoutines [opcodes.NumExtClasses]ExtSemantic

func init() {
	for c := range routines {
		routines[c] = newRoutine(opcodes.Class(c))
	}
	for c := range extRoutines {
		extRoutines[c] = newExtRoutine(opcodes.ExtClass(c))
	}
}

// Routine returns the semantic routine for an instruction class. The
// compiler binds the same routines as the interpreter.
func Routine(c opcodes.Class) Semantic {
	if c < 0 || c >= opcodes.NumClasses {
		return nop
	}
	return routines[c]
}

// ExtRoutine returns the semantic routine for an extended opcode class.
func ExtRoutine(c opcodes.ExtClass) ExtSemantic {
	if c < 0 || c >= opcodes.NumExtClasses {
		return extNop
	}
	return extRoutines[c]
}

func nop(_ *state.State, _ uint16, _ uint16) {
}

func newRoutine(c opcodes.Class) Semantic {
	switch c {
	case opcodes.Nop, opcodes.Nx:
		return nop
	case opcodes.Dar:
		return dar
	case opcodes.Iar:
		return iar
	case opcodes.Subarn:
		return subarn
	case opcodes.Addarn:
		return addarn
	case opcodes.Halt:
		return halt
	case opcodes.Ret:
		return ret
	case opcodes.Rti:
		return rti
	case opcodes.Call:
		return call
	case opcodes.If:
		return ifcc
	case opcodes.Jmp:
		return jmp
	case opcodes.Jmpr:
		return jmpr
	case opcodes.Callr:
		return callr
	case opcodes.Sbclr:
		return sbclr
	case opcodes.Sbset:
		return sbset
	case opcodes.Lsl:
		return lsl
	case opcodes.Lsr:
		return lsr
	case opcodes.Asl:
		return asl
	case opcodes.Asr:
		return asr
	case opcodes.Lsrn:
		return lsrn
	case opcodes.Asrn:
		return asrn
	case opcodes.Lri:
		return lri
	case opcodes.Lr:
		return lr
	case opcodes.Sr:
		return sr
	case opcodes.Mrr:
		return mrr
	case opcodes.Si:
		return si
	case opcodes.Addis:
		return addis
	case opcodes.Cmpis:
		return cmpis
	case opcodes.Lris:
		return lris
	case opcodes.Addi:
		return addi
	case opcodes.Xori:
		return xori
	case opcodes.Andi:
		return andi
	case opcodes.Ori:
		return ori
	case opcodes.Cmpi:
		return cmpi
	case opcodes.Andf:
		return andf
	case opcodes.Andcf:
		return andcf
	case opcodes.Ilrr, opcodes.Ilrrd, opcodes.Ilrri, opcodes.Ilrrn:
		return ilrrForm(c)
	case opcodes.Loop:
		return loop
	case opcodes.Bloop:
		return bloop
	case opcodes.Loopi:
		return loopi
	case opcodes.Bloopi:
		return bloopi
	case opcodes.Lrr, opcodes.Lrrd, opcodes.Lrri, opcodes.Lrrn:
		return lrrForm(c)
	case opcodes.Srr, opcodes.Srrd, opcodes.Srri, opcodes.Srrn:
		return srrForm(c)
	case opcodes.Lrs:
		return lrs
	case opcodes.Srsh:
		return srsh
	case opcodes.Srs:
		return srs
	case opcodes.Xorr:
		return xorr
	case opcodes.Andr:
		return andr
	case opcodes.Orr:
		return orr
	case opcodes.Andc:
		return andc
	case opcodes.Orc:
		return orc
	case opcodes.Xorc:
		return xorc
	case opcodes.Not:
		return not
	case opcodes.Lsrnrx:
		return lsrnrx
	case opcodes.Asrnrx:
		return asrnrx
	case opcodes.Lsrnr:
		return lsrnr
	case opcodes.Asrnr:
		return asrnr
	case opcodes.Addr:
		return addr
	case opcodes.Addax:
		return addax
	case opcodes.Add:
		return add
	case opcodes.Addp:
		return addp
	case opcodes.Subr:
		return subr
	case opcodes.Subax:
		return subax
	case opcodes.Sub:
		return sub
	case opcodes.Subp:
		return subp
	case opcodes.Movr:
		return movr
	case opcodes.Movax:
		return movax
	case opcodes.Mov:
		return mov
	case opcodes.Movp:
		return movp
	case opcodes.Addaxl:
		return addaxl
	case opcodes.Incm:
		return incm
	case opcodes.Inc:
		return inc
	case opcodes.Decm:
		return decm
	case opcodes.Dec:
		return dec
	case opcodes.Neg:
		return neg
	case opcodes.Movnp:
		return movnp
	case opcodes.Clr:
		return clr
	case opcodes.Cmp:
		return cmp
	case opcodes.Mulaxh:
		return mulaxh
	case opcodes.Clrp:
		return clrp
	case opcodes.Tstprod:
		return tstprod
	case opcodes.Tstaxh:
		return tstaxh
	case opcodes.M2:
		return modeBit(registers.SRMulModify, false)
	case opcodes.M0:
		return modeBit(registers.SRMulModify, true)
	case opcodes.Clr15:
		return modeBit(registers.SRMulUnsigned, false)
	case opcodes.Set15:
		return modeBit(registers.SRMulUnsigned, true)
	case opcodes.Set16:
		return modeBit(registers.SR40Mode, false)
	case opcodes.Set40:
		return modeBit(registers.SR40Mode, true)
	case opcodes.Mul:
		return mulForm(mulOnly)
	case opcodes.Asr16:
		return asr16
	case opcodes.Mulmvz:
		return mulForm(mulMoveToAccRounded)
	case opcodes.Mulac:
		return mulForm(mulAddToAcc)
	case opcodes.Mulmv:
		return mulForm(mulMoveToAcc)
	case opcodes.Mulx:
		return mulxForm(mulOnly)
	case opcodes.Abs:
		return abs
	case opcodes.Mulxmvz:
		return mulxForm(mulMoveToAccRounded)
	case opcodes.Mulxac:
		return mulxForm(mulAddToAcc)
	case opcodes.Mulxmv:
		return mulxForm(mulMoveToAcc)
	case opcodes.Tst:
		return tst
	case opcodes.Mulc:
		return mulcForm(mulOnly)
	case opcodes.Cmpaxh:
		return cmpaxh
	case opcodes.Mulcmvz:
		return mulcForm(mulMoveToAccRounded)
	case opcodes.Mulcac:
		return mulcForm(mulAddToAcc)
	case opcodes.Mulcmv:
		return mulcForm(mulMoveToAcc)
	case opcodes.Maddx:
		return maddx
	case opcodes.Msubx:
		return msubx
	case opcodes.Maddc:
		return maddc
	case opcodes.Msubc:
		return msubc
	case opcodes.Lsl16:
		return lsl16
	case opcodes.Madd:
		return madd
	case opcodes.Lsr16:
		return lsr16
	case opcodes.Msub:
		return msub
	case opcodes.Addpaxz:
		return addpaxz
	case opcodes.Clrl:
		return clrl
	case opcodes.Movpz:
		return movpz
	}
	return nop
}
