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

package random

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

// the seed used when zero is given to NewRandom()
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a seeded generator of programs and processor states.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// instructions chosen from the table
	table []opcodes.Opcode

	// the generator will not produce these instructions
	Exclude map[opcodes.Class]bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = baseSeed
	}
	return &Random{
		seed:    seed,
		rnd:     rand.New(rand.NewSource(seed)),
		table:   opcodes.Table(),
		Exclude: map[opcodes.Class]bool{},
	}
}

// Seed returns the seed used by the generator.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}

// Word returns a random 16 bit value.
func (rnd *Random) Word() uint16 {
	return uint16(rnd.rnd.Uint32())
}

// Instruction returns the words of one decodable instruction. Addresses in
// the instruction are inside the range origin to origin+span.
func (rnd *Random) Instruction(origin uint16, span uint16) []uint16 {
	for {
		op := &rnd.table[rnd.rnd.Intn(len(rnd.table))]
		if rnd.Exclude[op.Class] {
			continue
		}

		word := op.Opcode | (rnd.Word() &^ op.Mask)

		// the table is searched in order so a random operand can select an
		// earlier entry. that is not a problem as long as the entry is
		// not excluded
		dec, ok := opcodes.Lookup(word)
		if !ok || rnd.Exclude[dec.Class] {
			continue
		}

		if dec.Size == 1 {
			return []uint16{word}
		}

		var imm uint16
		switch {
		case dec.Is(opcodes.Branch) || dec.Class.IsBlockLoop():
			imm = origin + uint16(rnd.rnd.Intn(int(span)))
		default:
			imm = rnd.Word()
		}
		return []uint16{word, imm}
	}
}

// Program returns a sequence of decodable instructions that occupies
// exactly the number of words given. Branch targets are inside the program.
func (rnd *Random) Program(origin uint16, words int) []uint16 {
	p := make([]uint16, 0, words)
	for len(p) < words {
		ins := rnd.Instruction(origin, uint16(words))
		if len(p)+len(ins) > words {
			// fill the final word with a NOP
			p = append(p, 0x0000)
			continue
		}
		p = append(p, ins...)
	}
	return p
}

// State sets the registers of the processor state to random values. The
// address registers point into data memory below the hardware registers and
// the stacks are empty.
func (rnd *Random) State(st *state.State) {
	for i := range st.AR {
		st.AR[i] = rnd.Word() & 0x0fff
		st.IX[i] = uint16(int16(rnd.rnd.Intn(16) - 8))
		if rnd.rnd.Intn(4) == 0 {
			st.WR[i] = rnd.Word() & 0x00ff
		} else {
			st.WR[i] = 0xffff
		}
	}
	for i := range st.AC {
		st.AC[i].H = uint16(int16(int8(rnd.Word())))
		st.AC[i].M = rnd.Word()
		st.AC[i].L = rnd.Word()
		st.AX[i].H = rnd.Word()
		st.AX[i].L = rnd.Word()
	}
	st.Prod.L = rnd.Word()
	st.Prod.M = rnd.Word()
	st.Prod.H = rnd.Word() & 0x00ff
	st.Prod.M2 = rnd.Word()

	// keep short addresses out of the hardware registers
	st.CR = rnd.Word() & 0x000f

	// arithmetic bits and the mode bits. the interrupt enable bits are left
	// clear
	mode := registers.SRMulModify | registers.SR40Mode | registers.SRMulUnsigned
	st.SetSR(rnd.Word() & (registers.SRCmpMask | registers.SRLogicZero | registers.SROverflowStick | mode))

	for i := range st.Stacks {
		st.Stacks[i].Entries = st.Stacks[i].Entries[:0]
	}
}

// Data fills data memory with random values.
func (rnd *Random) Data(st *state.State) {
	for i := range st.Mem.DRAM {
		st.Mem.DRAM[i] = rnd.Word()
	}
}
