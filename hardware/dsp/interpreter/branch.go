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

func condition(st *state.State, word uint16) bool {
	return st.CheckCondition(opcodes.Condition(word))
}

// skip the instruction at PC
func skip(st *state.State) {
	st.PC += opcodes.Size(st.Mem.ReadInstruction(st.PC))
}

// Jcc #A
func jmp(st *state.State, word uint16, imm uint16) {
	if condition(st, word) {
		st.PC = imm
	}
}

// JMPRcc $R
func jmpr(st *state.State, word uint16, _ uint16) {
	if condition(st, word) {
		st.PC = st.ReadRegister(registers.Index(word>>5) & 0x07)
	}
}

// CALLcc #A
func call(st *state.State, word uint16, imm uint16) {
	if condition(st, word) {
		st.PushStack(registers.StackCall, st.PC)
		st.PC = imm
	}
}

// CALLRcc $R
func callr(st *state.State, word uint16, _ uint16) {
	if condition(st, word) {
		addr := st.ReadRegister(registers.Index(word>>5) & 0x07)
		st.PushStack(registers.StackCall, st.PC)
		st.PC = addr
	}
}

// RETcc
func ret(st *state.State, word uint16, _ uint16) {
	if condition(st, word) {
		st.PC = st.PopStack(registers.StackCall)
	}
}

// RTIcc
func rti(st *state.State, word uint16, _ uint16) {
	if condition(st, word) {
		st.SetSR(st.PopStack(registers.StackData))
		st.PC = st.PopStack(registers.StackCall)
	}
}

// IFcc. the next instruction is skipped if the condition is false
func ifcc(st *state.State, word uint16, _ uint16) {
	if !condition(st, word) {
		skip(st)
	}
}

// HALT. the PC is left at the HALT instruction
func halt(st *state.State, _ uint16, _ uint16) {
	st.Control |= state.ControlHalt
	st.PC--
}

// set up a loop whose body is the single instruction at PC
func repeat(st *state.State, count uint16) {
	if count == 0 {
		skip(st)
		return
	}
	st.PushStack(registers.StackCall, st.PC)
	st.PushStack(registers.StackLoopAddress, st.PC)
	st.PushStack(registers.StackLoopCounter, count)
}

// set up a loop whose body runs from PC to the end address inclusive
func blockRepeat(st *state.State, count uint16, end uint16) {
	if count == 0 {
		st.PC = end + opcodes.Size(st.Mem.ReadInstruction(end))
		return
	}
	st.PushStack(registers.StackCall, st.PC)
	st.PushStack(registers.StackLoopAddress, end)
	st.PushStack(registers.StackLoopCounter, count)
}

// LOOP $R
func loop(st *state.State, word uint16, _ uint16) {
	reg, _ := opcodes.SourceRegister(word)
	repeat(st, st.ReadRegister(reg))
}

// LOOPI #I
func loopi(st *state.State, word uint16, _ uint16) {
	repeat(st, word&0x00ff)
}

// BLOOP $R, #A
func bloop(st *state.State, word uint16, imm uint16) {
	reg, _ := opcodes.SourceRegister(word)
	blockRepeat(st, st.ReadRegister(reg), imm)
}

// BLOOPI #I, #A
func bloopi(st *state.State, word uint16, imm uint16) {
	blockRepeat(st, word&0x00ff, imm)
}

// HandleLoop is called after the instruction at a loop end address has
// completed without changing the flow of the program. If the instruction is
// the end of the innermost active loop the loop counter is decremented and
// the PC returns to the start of the loop body. The loop stacks are popped
// when the counter reaches zero.
func HandleLoop(st *state.State, addr uint16) {
	loopAddr := st.PeekStack(registers.StackLoopAddress)
	counter := st.PeekStack(registers.StackLoopCounter)
	if loopAddr == 0 || counter == 0 || addr != loopAddr {
		return
	}

	counter--
	st.SetStackTop(registers.StackLoopCounter, counter)
	if counter > 0 {
		st.PC = st.PeekStack(registers.StackCall)
		return
	}

	st.PopStack(registers.StackCall)
	st.PopStack(registers.StackLoopAddress)
	st.PopStack(registers.StackLoopCounter)
}
