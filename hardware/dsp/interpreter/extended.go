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

// the extended opcodes run before the main instruction. memory is read and
// written immediately but register writes are queued in the state's backlog
// and made after the main instruction has completed. the main instruction
// therefore sees the registers as they were before the extended opcode

// next value of an address register after a post-increment
func incremented(st *state.State, ar int) uint16 {
	return state.IncrementAddress(st.AR[ar], st.WR[ar])
}

// next value of an address register after a post-decrement
func decremented(st *state.State, ar int) uint16 {
	return state.DecrementAddress(st.AR[ar], st.WR[ar])
}

// next value of an address register after adding the matching index register
func increased(st *state.State, ar int) uint16 {
	return state.IncreaseAddress(st.AR[ar], st.WR[ar], int16(st.IX[ar]))
}

// the post-modification of an address register by a paired load/store. the
// N form adds the index register
func stepped(st *state.State, ar int, n bool) uint16 {
	if n {
		return increased(st, ar)
	}
	return incremented(st, ar)
}

// the two addresses are in the same 1K page of data memory. a paired load
// from the same page reads the same word twice
func samePage(a uint16, b uint16) bool {
	return a>>10 == b>>10
}

// 'DR $arR
func extDr(st *state.State, word uint16) {
	ar := int(word & 0x03)
	st.QueueWrite(registers.Index(ar), decremented(st, ar))
}

// 'IR $arR
func extIr(st *state.State, word uint16) {
	ar := int(word & 0x03)
	st.QueueWrite(registers.Index(ar), incremented(st, ar))
}

// 'NR $arR
func extNr(st *state.State, word uint16) {
	ar := int(word & 0x03)
	st.QueueWrite(registers.Index(ar), increased(st, ar))
}

// 'MV $axD.D, $acS.S
func extMv(st *state.State, word uint16) {
	src := registers.Index(word&0x03) + registers.ACL0
	dst := registers.Index((word>>2)&0x03) + registers.AXL0
	st.QueueWrite(dst, st.ReadRegisterAndSaturate(src))
}

// 'S and 'SN @$arD, $acS.S
func extStore(n bool) ExtSemantic {
	return func(st *state.State, word uint16) {
		ar := int(word & 0x03)
		src := registers.Index((word>>3)&0x03) + registers.ACL0
		st.Mem.WriteData(st.AR[ar], st.ReadRegisterAndSaturate(src))
		st.QueueWrite(registers.Index(ar), stepped(st, ar, n))
	}
}

// 'L and 'LN $(0x18+D), @$arS
func extLoad(n bool) ExtSemantic {
	return func(st *state.State, word uint16) {
		ar := int(word & 0x03)
		dst := registers.Index((word>>3)&0x07) + registers.AXL0
		st.QueueLoad(dst, st.Mem.ReadData(st.AR[ar]))
		st.QueueWrite(registers.Index(ar), stepped(st, ar, n))
	}
}

// 'LS, 'SL and their N and M forms. the load and the store use AR0 and AR3.
// the N form adds IX0 to AR0 and the M form adds IX3 to AR3
func extLoadStore(storeFirst bool, n bool, m bool) ExtSemantic {
	return func(st *state.State, word uint16) {
		dst := registers.Index((word>>4)&0x03) + registers.AXL0
		src := registers.Index(word&0x01) + registers.ACM0

		loadAR, storeAR := 0, 3
		if storeFirst {
			loadAR, storeAR = 3, 0
		}

		st.Mem.WriteData(st.AR[storeAR], st.ReadRegisterAndSaturate(src))
		st.QueueWrite(dst, st.Mem.ReadData(st.AR[loadAR]))
		st.QueueWrite(registers.AR3, stepped(st, 3, m))
		st.QueueWrite(registers.AR0, stepped(st, 0, n))
	}
}

// 'LD $ax0.D, $ax1.R, @$arS and the N, M and NM forms. the second load always
// uses AR3
func extLd(n bool, m bool) ExtSemantic {
	return func(st *state.State, word uint16) {
		d := (word >> 5) & 0x01
		r := (word >> 4) & 0x01
		s := int(word & 0x03)

		var first, second registers.Index
		ar := s
		if s != 3 {
			first = d<<1 + registers.AXL0
			second = r<<1 + registers.AXL1
		} else {
			ar = int(d)
			first = r + registers.AXH0
			second = r + registers.AXL0
		}

		st.QueueWrite(first, st.Mem.ReadData(st.AR[ar]))
		if samePage(st.AR[ar], st.AR[3]) {
			st.QueueWrite(second, st.Mem.ReadData(st.AR[ar]))
		} else {
			st.QueueWrite(second, st.Mem.ReadData(st.AR[3]))
		}
		st.QueueWrite(registers.Index(ar), stepped(st, ar, n))
		st.QueueWrite(registers.AR3, stepped(st, 3, m))
	}
}

// 'LDAX $axR, @$arS and the N, M and NM forms
func extLdax(n bool, m bool) ExtSemantic {
	return func(st *state.State, word uint16) {
		s := int(word>>5) & 0x01
		r := registers.Index(word>>4) & 0x01

		st.QueueWrite(r+registers.AXH0, st.Mem.ReadData(st.AR[s]))
		if samePage(st.AR[s], st.AR[3]) {
			st.QueueWrite(r+registers.AXL0, st.Mem.ReadData(st.AR[s]))
		} else {
			st.QueueWrite(r+registers.AXL0, st.Mem.ReadData(st.AR[3]))
		}
		st.QueueWrite(registers.Index(s), stepped(st, s, n))
		st.QueueWrite(registers.AR3, stepped(st, 3, m))
	}
}

func extNop(_ *state.State, _ uint16) {
}

func newExtRoutine(c opcodes.ExtClass) ExtSemantic {
	switch c {
	case opcodes.ExtXxx:
		return extNop
	case opcodes.ExtDr:
		return extDr
	case opcodes.ExtIr:
		return extIr
	case opcodes.ExtNr:
		return extNr
	case opcodes.ExtMv:
		return extMv
	case opcodes.ExtS:
		return extStore(false)
	case opcodes.ExtSn:
		return extStore(true)
	case opcodes.ExtL:
		return extLoad(false)
	case opcodes.ExtLn:
		return extLoad(true)
	case opcodes.ExtLs:
		return extLoadStore(false, false, false)
	case opcodes.ExtSl:
		return extLoadStore(true, false, false)
	case opcodes.ExtLsn:
		return extLoadStore(false, true, false)
	case opcodes.ExtSln:
		return extLoadStore(true, true, false)
	case opcodes.ExtLsm:
		return extLoadStore(false, false, true)
	case opcodes.ExtSlm:
		return extLoadStore(true, false, true)
	case opcodes.ExtLsnm:
		return extLoadStore(false, true, true)
	case opcodes.ExtSlnm:
		return extLoadStore(true, true, true)
	case opcodes.ExtLdax:
		return extLdax(false, false)
	case opcodes.ExtLdaxn:
		return extLdax(true, false)
	case opcodes.ExtLdaxm:
		return extLdax(false, true)
	case opcodes.ExtLdaxnm:
		return extLdax(true, true)
	case opcodes.ExtLd:
		return extLd(false, false)
	case opcodes.ExtLdn:
		return extLd(true, false)
	case opcodes.ExtLdm:
		return extLd(false, true)
	case opcodes.ExtLdnm:
		return extLd(true, true)
	}
	return extNop
}
