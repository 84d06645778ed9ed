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

package registers

import "fmt"

// Index of a register in the register file. The numbering is the hardware
// numbering used by the instruction encoding.
type Index = uint16

// List of register indexes.
const (
	AR0 Index = iota
	AR1
	AR2
	AR3
	IX0
	IX1
	IX2
	IX3
	WR0
	WR1
	WR2
	WR3
	ST0
	ST1
	ST2
	ST3
	ACH0
	ACH1
	CR
	SR
	PRODL
	PRODM
	PRODH
	PRODM2
	AXL0
	AXL1
	AXH0
	AXH1
	ACL0
	ACL1
	ACM0
	ACM1

	NumRegisters
)

var names = [NumRegisters]string{
	"AR0", "AR1", "AR2", "AR3",
	"IX0", "IX1", "IX2", "IX3",
	"WR0", "WR1", "WR2", "WR3",
	"ST0", "ST1", "ST2", "ST3",
	"AC0.H", "AC1.H",
	"CR", "SR",
	"PROD.L", "PROD.M1", "PROD.H", "PROD.M2",
	"AX0.L", "AX1.L", "AX0.H", "AX1.H",
	"AC0.L", "AC1.L", "AC0.M", "AC1.M",
}

// Name returns the assembler name of the register.
func Name(reg Index) string {
	if reg >= NumRegisters {
		return fmt.Sprintf("R%02x", reg)
	}
	return names[reg]
}

// Stack identifies one of the four hardware stacks. The stacks are visible
// through the ST0 to ST3 registers.
type Stack int

// List of hardware stacks.
const (
	StackCall Stack = iota
	StackData
	StackLoopAddress
	StackLoopCounter

	NumStacks
)

func (s Stack) String() string {
	switch s {
	case StackCall:
		return "call"
	case StackData:
		return "data"
	case StackLoopAddress:
		return "loop address"
	case StackLoopCounter:
		return "loop counter"
	}
	return "unknown stack"
}
