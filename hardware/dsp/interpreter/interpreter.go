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
	"fmt"

	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
)

// Analysis is the source of the per-address analysis flags.
type Analysis interface {
	Flags(addr uint16) analyzer.Flags
	Signature(addr uint16) (*analyzer.Signature, bool)
}

// Result describes the most recently executed instruction.
type Result struct {
	Address uint16
	Word    uint16
	Imm     uint16

	// nil if the instruction word was not recognised
	Opcode *opcodes.Opcode
	Ext    *opcodes.ExtOpcode

	// the hardware loop at the end of the instruction jumped back to the start
	// of the loop body
	Looped bool

	// an exception was serviced after the instruction
	Vectored bool

	// PC was inside a two word instruction and nothing was executed
	Misaligned bool
}

func (r Result) String() string {
	if r.Misaligned {
		return fmt.Sprintf("%04x: misaligned (inside %04x)", r.Address, r.Address-1)
	}
	if r.Opcode == nil {
		return fmt.Sprintf("%04x: %04x ???", r.Address, r.Word)
	}
	var next uint16
	if r.Opcode.Size == 2 {
		next = r.Imm
	}
	return fmt.Sprintf("%04x: %s", r.Address, opcodes.Disasm(r.Word, next))
}

// Interpreter executes one instruction at a time.
type Interpreter struct {
	st       *state.State
	analysis Analysis

	// the idle skip optimisation is applied by IdleSkip() only when enabled
	IdleSkipEnabled bool

	LastResult Result

	Permission logger.Permission
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type.
func NewInterpreter(st *state.State, analysis Analysis) *Interpreter {
	return &Interpreter{
		st:              st,
		analysis:        analysis,
		IdleSkipEnabled: true,
		Permission:      st.Permission,
	}
}

// Plumb a new state into the interpreter.
func (it *Interpreter) Plumb(st *state.State) {
	it.st = st
}

// Step executes the instruction at PC. An unrecognised instruction word is
// treated as a one word instruction that does nothing.
//
// PC is not allowed to point at the second word of a two word instruction.
// In that case nothing is executed, the state is left unchanged and
// LastResult.Misaligned is set.
func (it *Interpreter) Step() {
	st := it.st
	addr := st.PC

	if Misaligned(st, it.analysis) {
		logger.Logf(it.Permission, "interpreter", "PC %04x is inside the instruction at %04x", addr, addr-1)
		it.LastResult = Result{
			Address:    addr,
			Word:       st.Mem.PeekInstruction(addr),
			Misaligned: true,
		}
		return
	}

	word := st.Mem.ReadInstruction(addr)

	it.LastResult = Result{
		Address: addr,
		Word:    word,
	}

	op, ok := opcodes.Lookup(word)
	if !ok {
		logger.Logf(it.Permission, "interpreter", "unknown instruction %04x at %04x", word, addr)
		st.PC = addr + 1
		it.LastResult.Looped, it.LastResult.Vectored = Retire(st, it.analysis, addr, 1)
		return
	}

	var imm uint16
	if op.Size == 2 {
		imm = st.Mem.ReadInstruction(addr + 1)
	}

	it.LastResult.Opcode = op
	it.LastResult.Imm = imm
	if op.Is(opcodes.Extendable) {
		it.LastResult.Ext, _ = opcodes.LookupExt(word)
	}

	st.PC = addr + op.Size
	Execute(st, op, word, imm)
	it.LastResult.Looped, it.LastResult.Vectored = Retire(st, it.analysis, addr, op.Size)
}

// Misaligned returns true if PC points at the immediate word of a two word
// instruction.
func Misaligned(st *state.State, analysis Analysis) bool {
	return analysis.Flags(st.PC).Is(analyzer.Immediate)
}

// Execute runs the extended opcode, if any, followed by the main
// instruction and then makes the register writes queued by the extended
// opcode. PC must already point to the next instruction.
func Execute(st *state.State, op *opcodes.Opcode, word uint16, imm uint16) {
	if op.Is(opcodes.Extendable) {
		if ext, ok := opcodes.LookupExt(word); ok {
			ExtRoutine(ext.Class)(st, word)
		}
	}
	Routine(op.Class)(st, word, imm)
	if st.BacklogLen() > 0 {
		st.ApplyBacklog()
	}
}

// Retire completes the instruction at addr. If the instruction is at the end
// of a hardware loop and did not change the flow of the program the loop is
// handled. Exceptions are checked if the address following the instruction
// has been marked by the analyzer.
//
// Returns true for each of a loop jump and an exception being serviced.
func Retire(st *state.State, analysis Analysis, addr uint16, size uint16) (bool, bool) {
	var looped, vectored bool

	next := addr + size
	if st.PC == next && analysis.Flags(addr).Any(analyzer.AnyLoopEnd) {
		HandleLoop(st, addr)
		looped = st.PC != next
	}

	if analysis.Flags(next).Is(analyzer.CheckExceptionAfter) {
		vectored = st.CheckExceptions()
	}

	return looped, vectored
}

// IdleSkip returns true if the instruction at PC begins an idle loop that
// is currently waiting. While this is true executing the loop will not
// change the state of the processor other than by repeating the same
// writes.
//
// The loop is never skipped while an exception is pending because the
// exception is serviced inside the loop.
func (it *Interpreter) IdleSkip() bool {
	if !it.IdleSkipEnabled {
		return false
	}
	return Idle(it.st, it.analysis)
}

// Idle is the test used by IdleSkip() without the enabled check.
func Idle(st *state.State, analysis Analysis) bool {
	if st.Exceptions != 0 {
		return false
	}
	if !analysis.Flags(st.PC).Is(analyzer.IdleSkipCandidate) {
		return false
	}
	sig, ok := analysis.Signature(st.PC)
	if !ok {
		return false
	}
	if !sig.Spins(st.Mem, st.PC) {
		return false
	}
	return sig.Waiting(st.Mem.Peek(sig.PollAddress(st.Mem, st.PC, st.CR)))
}
