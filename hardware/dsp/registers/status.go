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

import "strings"

// Bits in the status register.
const (
	SRCarry         uint16 = 0x0001
	SROverflow      uint16 = 0x0002
	SRArithZero     uint16 = 0x0004
	SRSign          uint16 = 0x0008
	SROverS32       uint16 = 0x0010
	SRTopBitsEqual  uint16 = 0x0020
	SRLogicZero     uint16 = 0x0040
	SROverflowStick uint16 = 0x0080
	SRIntEnable     uint16 = 0x0200
	SRExtIntEnable  uint16 = 0x0800
	SRMulModify     uint16 = 0x2000
	SR40Mode        uint16 = 0x4000
	SRMulUnsigned   uint16 = 0x8000

	// the bits that are set by arithmetic results. the logic zero bit is
	// outside of the mask and is only changed by ANDF and ANDCF
	SRCmpMask uint16 = 0x003f
)

// the SBSET and SBCLR instructions address status register bits with a three
// bit immediate offset by this amount.
const SRBitOffset = 6

// StatusString returns a string representation of the status register bits.
// Upper case letters indicate a set bit.
func StatusString(sr uint16) string {
	s := strings.Builder{}
	bit := func(mask uint16, c rune) {
		if sr&mask == mask {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + ('a' - 'A'))
		}
	}
	bit(SRMulUnsigned, 'U')
	bit(SR40Mode, 'X')
	bit(SRMulModify, 'M')
	bit(SRExtIntEnable, 'E')
	bit(SRIntEnable, 'I')
	s.WriteRune('-')
	bit(SROverflowStick, 'K')
	bit(SRLogicZero, 'L')
	bit(SRTopBitsEqual, 'T')
	bit(SROverS32, 'R')
	bit(SRSign, 'S')
	bit(SRArithZero, 'Z')
	bit(SROverflow, 'O')
	bit(SRCarry, 'C')
	return s.String()
}
