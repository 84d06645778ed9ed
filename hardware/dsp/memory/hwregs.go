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
	"fmt"

	"github.com/jetsetilly/dspcore/logger"
)

// Hardware register addresses in data memory.
const (
	COEF_A1_0 = 0xffa0

	DSCR  = 0xffc9
	DSBL  = 0xffcb
	DSPA  = 0xffcd
	DSMAH = 0xffce
	DSMAL = 0xffcf

	FORMAT     = 0xffd1
	ACDRAW     = 0xffd3
	ACSAH      = 0xffd4
	ACSAL      = 0xffd5
	ACEAH      = 0xffd6
	ACEAL      = 0xffd7
	ACCAH      = 0xffd8
	ACCAL      = 0xffd9
	PRED_SCALE = 0xffda
	YN1        = 0xffdb
	YN2        = 0xffdc
	ACDSAMP    = 0xffdd
	GAIN       = 0xffde
	ACIN       = 0xffdf

	DIRQ = 0xfffb
	DMBH = 0xfffc
	DMBL = 0xfffd
	CMBH = 0xfffe
	CMBL = 0xffff
)

var hwNames = map[uint16]string{
	DSCR:       "DSCR",
	DSBL:       "DSBL",
	DSPA:       "DSPA",
	DSMAH:      "DSMAH",
	DSMAL:      "DSMAL",
	FORMAT:     "FORMAT",
	ACDRAW:     "ACDRAW",
	ACSAH:      "ACSAH",
	ACSAL:      "ACSAL",
	ACEAH:      "ACEAH",
	ACEAL:      "ACEAL",
	ACCAH:      "ACCAH",
	ACCAL:      "ACCAL",
	PRED_SCALE: "PRED_SCALE",
	YN1:        "YN1",
	YN2:        "YN2",
	ACDSAMP:    "ACDSAMP",
	GAIN:       "GAIN",
	ACIN:       "ACIN",
	DIRQ:       "DIRQ",
	DMBH:       "DMBH",
	DMBL:       "DMBL",
	CMBH:       "CMBH",
	CMBL:       "CMBL",
}

// HWName returns the name of the data memory address if it is a hardware
// register. Otherwise the address is returned formatted as hex.
func HWName(addr uint16) string {
	if n, ok := hwNames[addr]; ok {
		return n
	}
	if addr >= COEF_A1_0 && addr < COEF_A1_0+0x10 {
		i := addr - COEF_A1_0
		return fmt.Sprintf("COEF_A%d_%d", i%2+1, i/2)
	}
	return fmt.Sprintf("0x%04x", addr)
}

func (mem *Memory) readHW(addr uint16) uint16 {
	switch addr {
	case DMBH:
		return mem.mailboxHigh(dspMailbox)
	case DMBL:
		return mem.mailboxLow(dspMailbox)
	case CMBH:
		return mem.mailboxHigh(cpuMailbox)
	case CMBL:
		// reading the low half of the CPU mailbox acknowledges the mail
		v := mem.mailboxLow(cpuMailbox)
		mem.Mailbox[cpuMailbox] &^= mailValid
		return v
	case ACDSAMP:
		return mem.readSample()
	case ACDRAW:
		return mem.readRaw()
	}
	return mem.HW[addr&0xff]
}

func (mem *Memory) peekHW(addr uint16) uint16 {
	switch addr {
	case DMBH:
		return mem.mailboxHigh(dspMailbox)
	case DMBL:
		return mem.mailboxLow(dspMailbox)
	case CMBH:
		return mem.mailboxHigh(cpuMailbox)
	case CMBL:
		return mem.mailboxLow(cpuMailbox)
	}
	return mem.HW[addr&0xff]
}

func (mem *Memory) writeHW(addr uint16, value uint16) {
	switch addr {
	case DIRQ:
		if value&0x0001 == 0x0001 {
			mem.CPUInterrupt = true
		}
		return
	case DMBH:
		mem.writeMailboxHigh(dspMailbox, value)
		return
	case DMBL:
		mem.writeMailboxLow(dspMailbox, value)
		return
	case CMBH, CMBL:
		logger.Logf(mem.Permission, "memory", "DSP write to CPU mailbox ignored (%s)", HWName(addr))
		return
	case DSBL:
		mem.HW[addr&0xff] = value
		mem.dma()
		return
	case ACDRAW:
		mem.writeRaw(value)
		return
	}
	mem.HW[addr&0xff] = value
}
