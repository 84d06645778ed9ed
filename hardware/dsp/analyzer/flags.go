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

package analyzer

import "strings"

// Flags is the set of analysis flags for a single instruction memory
// address.
type Flags uint16

// List of valid Flags.
const (
	// a decodable instruction begins at the address
	StartOfInstruction Flags = 1 << iota

	// the address holds a LOOP or LOOPI instruction
	LoopStart

	// the address is the single instruction body of a LOOP or LOOPI
	LoopEnd

	// the status register must be up to date after the instruction at the
	// address because a conditional branch follows
	UpdateStatusBeforeBranch

	// pending exceptions are checked once the instruction before the
	// address has completed
	CheckExceptionAfter

	// an idle loop signature matches at the address
	IdleSkipCandidate

	// the address holds a BLOOP or BLOOPI instruction
	BlockLoopStart

	// the address is the last instruction of a BLOOP or BLOOPI body
	BlockLoopEnd

	// the address holds the second word of a two word instruction
	Immediate
)

// AnyLoopEnd is the set of flags that cause hardware loop handling after an
// instruction.
const AnyLoopEnd = LoopEnd | BlockLoopEnd

// Is returns true if all flags in f are set.
func (fl Flags) Is(f Flags) bool {
	return fl&f == f
}

// Any returns true if any flag in f is set.
func (fl Flags) Any(f Flags) bool {
	return fl&f != 0
}

var flagNames = []struct {
	f    Flags
	name string
}{
	{StartOfInstruction, "start"},
	{LoopStart, "loop"},
	{LoopEnd, "loopend"},
	{BlockLoopStart, "bloop"},
	{BlockLoopEnd, "bloopend"},
	{UpdateStatusBeforeBranch, "updatesr"},
	{CheckExceptionAfter, "checkexc"},
	{IdleSkipCandidate, "idle"},
	{Immediate, "imm"},
}

func (fl Flags) String() string {
	if fl == 0 {
		return "-"
	}
	s := make([]string, 0, len(flagNames))
	for _, n := range flagNames {
		if fl.Is(n.f) {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, " ")
}
