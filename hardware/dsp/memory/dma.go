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

// bits in the DSCR register
const (
	dscrToRAM        = 0x0001
	dscrIMEM         = 0x0002
	dscrBusy         = 0x0004
	dscrDirectionMsk = dscrToRAM | dscrIMEM
)

// dma is triggered by a write to DSBL. the transfer completes immediately.
// transfers into instruction RAM go through the invalidator
func (mem *Memory) dma() {
	ramAddr := uint32(mem.HW[DSMAH&0xff])<<16 | uint32(mem.HW[DSMAL&0xff])
	dspAddr := mem.HW[DSPA&0xff]
	length := uint32(mem.HW[DSBL&0xff])
	ctl := mem.HW[DSCR&0xff]

	mem.HW[DSCR&0xff] |= dscrBusy
	defer func() {
		mem.HW[DSCR&0xff] &^= dscrBusy
	}()

	words := length / 2
	if ramAddr+length > uint32(len(mem.RAM)) {
		logger.Logf(mem.Permission, "memory", "DMA outside of RAM (%08x + %04x)", ramAddr, length)
		return
	}

	switch ctl & dscrDirectionMsk {
	case 0:
		for i := uint32(0); i < words; i++ {
			a := ramAddr + i*2
			mem.DRAM[(uint32(dspAddr)+i)&DRAMMask] = uint16(mem.RAM[a])<<8 | uint16(mem.RAM[a+1])
		}
	case dscrToRAM:
		for i := uint32(0); i < words; i++ {
			a := ramAddr + i*2
			w := mem.DRAM[(uint32(dspAddr)+i)&DRAMMask]
			mem.RAM[a] = byte(w >> 8)
			mem.RAM[a+1] = byte(w)
		}
	case dscrIMEM:
		for i := uint32(0); i < words; i++ {
			a := ramAddr + i*2
			mem.IRAM[(uint32(dspAddr)+i)&IRAMMask] = uint16(mem.RAM[a])<<8 | uint16(mem.RAM[a+1])
		}
		if words > 0 {
			start := dspAddr & IRAMMask
			end := uint32(start) + words
			if end > IRAMSize {
				// the transfer wrapped around the end of IRAM
				mem.invalidate(IRAMOrigin, IRAMOrigin+IRAMSize)
			} else {
				mem.invalidate(start, uint16(end))
			}
		}
	case dscrIMEM | dscrToRAM:
		for i := uint32(0); i < words; i++ {
			a := ramAddr + i*2
			w := mem.IRAM[(uint32(dspAddr)+i)&IRAMMask]
			mem.RAM[a] = byte(w >> 8)
			mem.RAM[a+1] = byte(w)
		}
	}
}
