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

package opcodes

import (
	"fmt"
	"strings"
)

// Disasm returns a one line description of the instruction word. The next
// word is used only if the instruction is two words long. The operand bits
// are shown as raw hex; there is no attempt to decode them into register
// names.
func Disasm(word uint16, next uint16) string {
	op, ok := Lookup(word)
	if !ok {
		return fmt.Sprintf("CW 0x%04x", word)
	}

	s := strings.Builder{}
	s.WriteString(op.Name)

	if operand := word &^ op.Mask; operand != 0 {
		if ext, ok := LookupExt(word); ok {
			operand &^= ExtIndex(word)
			if operand != 0 {
				s.WriteString(fmt.Sprintf(" 0x%x", operand))
			}
			if ext.Class != ExtXxx {
				s.WriteString(fmt.Sprintf(" : %s 0x%02x", ext.Name, ExtIndex(word)&^ext.Mask))
			}
		} else {
			s.WriteString(fmt.Sprintf(" 0x%x", operand))
		}
	}

	if op.Size == 2 {
		s.WriteString(fmt.Sprintf(" #0x%04x", next))
	}

	return s.String()
}
