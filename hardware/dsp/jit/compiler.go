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

package jit

import (
	"strings"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/interpreter"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/logger"
)

// Unsupported is returned by Compile() when no block can be compiled at the
// address. The caller should interpret the instruction instead.
const Unsupported = "jit: unsupported at %04x: %s"

// DefaultMaxBlock is the maximum number of instructions in a block used by
// NewCompiler().
const DefaultMaxBlock = 64

// a single compiled instruction
type step struct {
	addr uint16
	next uint16
	word uint16
	imm  uint16
	op   *opcodes.Opcode

	// run the instruction. returns true if an exception was serviced
	run func(st *state.State) bool

	// PC is written by the step. when false, PC is stale after the step
	// and must be written if the block exits
	setsPC bool

	// the instruction can write to data memory. DMA started by a write to a
	// hardware register can change instruction memory
	writes bool

	fixup *Exit
}

// Compiler turns runs of instructions into blocks.
type Compiler struct {
	mem      *memory.Memory
	analysis interpreter.Analysis

	// maximum number of instructions in a block
	MaxBlock int

	// mnemonics or instruction class names that will not be compiled. keys
	// are upper case
	exclude map[string]bool

	Permission logger.Permission
}

// NewCompiler is the preferred method of initialisation for the Compiler
// type.
func NewCompiler(mem *memory.Memory, analysis interpreter.Analysis) *Compiler {
	return &Compiler{
		mem:        mem,
		analysis:   analysis,
		MaxBlock:   DefaultMaxBlock,
		exclude:    make(map[string]bool),
		Permission: logger.Allow,
	}
}

// Plumb a new memory into the compiler.
func (c *Compiler) Plumb(mem *memory.Memory) {
	c.mem = mem
}

// SetExclude sets the list of mnemonics that the compiler refuses to
// compile. The list is comma separated. Class names (eg. "JMP") exclude every
// variant of the instruction.
func (c *Compiler) SetExclude(list string) {
	c.exclude = make(map[string]bool)
	for _, m := range strings.Split(list, ",") {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m != "" {
			c.exclude[m] = true
		}
	}
}

func (c *Compiler) excluded(op *opcodes.Opcode) bool {
	if len(c.exclude) == 0 {
		return false
	}
	return c.exclude[op.Name] || c.exclude[op.Class.String()]
}

// Compile the instructions starting at the address into a block.
//
// Returns an error matching Unsupported if the address is not the start of
// an instruction or if the instruction there cannot be compiled.
func (c *Compiler) Compile(start uint16) (*Block, error) {
	if !c.analysis.Flags(start).Is(analyzer.StartOfInstruction) {
		return nil, curated.Errorf(Unsupported, start, "not the start of an instruction")
	}

	b := &Block{
		Entry:      start,
		Generation: c.mem.CodeGeneration(),
	}

	addr := start
	for {
		flags := c.analysis.Flags(addr)
		if len(b.steps) > 0 {
			if !flags.Is(analyzer.StartOfInstruction) || flags.Is(analyzer.IdleSkipCandidate) {
				b.Successors = append(b.Successors, &Exit{Target: addr})
				break
			}
		}

		word := c.mem.PeekInstruction(addr)
		op, ok := opcodes.Lookup(word)
		if ok && c.excluded(op) {
			ok = false
		}
		if !ok {
			if len(b.steps) == 0 {
				return nil, curated.Errorf(Unsupported, start, opcodes.Disasm(word, 0))
			}
			b.Successors = append(b.Successors, &Exit{Target: addr})
			break
		}

		s := c.compileStep(addr, word, op)
		addr = s.next

		last := false

		switch {
		case op.Is(opcodes.Branch | opcodes.Unconditional):
			// a static target is known for JMP and CALL. loop instructions
			// continue with the loop body at the next address
			switch {
			case op.Class == opcodes.Jmp || op.Class == opcodes.Call:
				b.Successors = append(b.Successors, &Exit{Target: s.imm})
			case op.Class.IsLoop() || op.Class.IsBlockLoop() || op.Class == opcodes.If:
				b.Successors = append(b.Successors, &Exit{Target: s.next})
			}
			last = true

		case op.Is(opcodes.Branch):
			if op.Class == opcodes.Jmp || op.Class == opcodes.Call {
				s.fixup = &Exit{Target: s.imm}
				b.Fixups = append(b.Fixups, s.fixup)
			} else {
				b.Successors = append(b.Successors, &Exit{Target: s.next})
				last = true
			}
		}

		if !last && flags.Any(analyzer.AnyLoopEnd) {
			b.Successors = append(b.Successors, &Exit{Target: s.next})
			last = true
		}

		if !last && len(b.steps)+1 >= c.MaxBlock {
			b.Successors = append(b.Successors, &Exit{Target: s.next})
			last = true
		}

		b.steps = append(b.steps, s)

		// a conditional branch in the middle of the block is not followed by
		// the fall through exit until the end of the block
		if last {
			break
		}

		// the block must not wrap around the address space
		if addr < start {
			b.Successors = append(b.Successors, &Exit{Target: addr})
			break
		}
	}

	b.Length = len(b.steps)
	l := b.steps[len(b.steps)-1]
	b.End = uint32(l.addr) + uint32(l.op.Size)

	logger.Logf(c.Permission, "jit", "compiled %s", b)

	return b, nil
}

// compileStep creates the closure for the instruction at the address. The
// bookkeeping that follows the instruction is decided here from the analysis
// flags.
func (c *Compiler) compileStep(addr uint16, word uint16, op *opcodes.Opcode) step {
	s := step{
		addr: addr,
		next: addr + op.Size,
		word: word,
		op:   op,
	}
	if op.Size == 2 {
		s.imm = c.mem.PeekInstruction(addr + 1)
	}

	routine := interpreter.Routine(op.Class)

	var ext interpreter.ExtSemantic
	extWrites := false
	if op.Is(opcodes.Extendable) {
		if e, ok := opcodes.LookupExt(word); ok && e.Class != opcodes.ExtXxx {
			ext = interpreter.ExtRoutine(e.Class)
			extWrites = e.Class.WritesData()
		}
	}

	loopEnd := c.analysis.Flags(addr).Any(analyzer.AnyLoopEnd)
	checkExceptions := c.analysis.Flags(s.next).Is(analyzer.CheckExceptionAfter)
	flush := c.analysis.Flags(addr).Is(analyzer.UpdateStatusBeforeBranch)

	s.setsPC = op.Is(opcodes.ReadsPC) || op.Is(opcodes.Branch) || loopEnd || checkExceptions
	s.writes = op.Class.WritesData() || extWrites

	next := s.next
	imm := s.imm

	var run func(st *state.State)

	switch {
	case ext != nil:
		run = func(st *state.State) {
			ext(st, word)
			routine(st, word, imm)
			st.ApplyBacklog()
		}
	default:
		run = bind(routine, word, imm)
	}

	if s.setsPC {
		inner := run
		run = func(st *state.State) {
			st.PC = next
			inner(st)
		}
	}

	if loopEnd {
		inner := run
		run = func(st *state.State) {
			inner(st)
			if st.PC == next {
				interpreter.HandleLoop(st, addr)
			}
		}
	}

	if flush {
		inner := run
		run = func(st *state.State) {
			inner(st)
			st.FlushFlags()
		}
	}

	if checkExceptions {
		s.run = func(st *state.State) bool {
			run(st)
			return st.CheckExceptions()
		}
	} else {
		s.run = func(st *state.State) bool {
			run(st)
			return false
		}
	}

	return s
}

// bind the main routine to the instruction word and immediate value.
func bind(routine interpreter.Semantic, word uint16, imm uint16) func(st *state.State) {
	return func(st *state.State) {
		routine(st, word, imm)
	}
}
