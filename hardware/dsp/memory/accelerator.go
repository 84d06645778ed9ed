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

package memory

import (
	"github.com/jetsetilly/dspcore/logger"
)

// accelerator sample formats written to the FORMAT register
const (
	FormatPCM16 = 0x000a
	FormatPCM8  = 0x0019
)

func (mem *Memory) accelAddress(h, l uint16) uint32 {
	return uint32(mem.HW[h&0xff])<<16 | uint32(mem.HW[l&0xff])
}

func (mem *Memory) setCurrentAddress(a uint32) {
	mem.HW[ACCAH&0xff] = uint16(a >> 16)
	mem.HW[ACCAL&0xff] = uint16(a)
}

// readSample returns the next sample from auxiliary RAM in the format given by
// the FORMAT register. passing the end address sets the current address back
// to the start address and raises the accelerator overflow
func (mem *Memory) readSample() uint16 {
	cur := mem.accelAddress(ACCAH, ACCAL)
	end := mem.accelAddress(ACEAH, ACEAL)

	var val uint16

	switch mem.HW[FORMAT&0xff] {
	case FormatPCM16:
		a := cur * 2
		if a+1 < uint32(len(mem.ARAM)) {
			val = uint16(mem.ARAM[a])<<8 | uint16(mem.ARAM[a+1])
		}
	case FormatPCM8:
		if cur < uint32(len(mem.ARAM)) {
			val = uint16(mem.ARAM[cur]) << 8
		}
	default:
		logger.Logf(mem.Permission, "memory", "unsupported accelerator format (%04x)", mem.HW[FORMAT&0xff])
	}

	mem.HW[YN2&0xff] = mem.HW[YN1&0xff]
	mem.HW[YN1&0xff] = val

	cur++
	if cur >= end {
		cur = mem.accelAddress(ACSAH, ACSAL)
		if mem.raiser != nil {
			mem.raiser.AcceleratorOverflow()
		}
	}
	mem.setCurrentAddress(cur)

	return val
}

// raw access to auxiliary RAM one word at a time. the current address is
// a word address
func (mem *Memory) readRaw() uint16 {
	cur := mem.accelAddress(ACCAH, ACCAL)
	var val uint16
	a := cur * 2
	if a+1 < uint32(len(mem.ARAM)) {
		val = uint16(mem.ARAM[a])<<8 | uint16(mem.ARAM[a+1])
	}
	mem.setCurrentAddress(cur + 1)
	return val
}

func (mem *Memory) writeRaw(value uint16) {
	cur := mem.accelAddress(ACCAH, ACCAL)
	a := cur * 2
	if a+1 < uint32(len(mem.ARAM)) {
		mem.ARAM[a] = byte(value >> 8)
		mem.ARAM[a+1] = byte(value)
	}
	mem.setCurrentAddress(cur + 1)
}
