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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

type invalidations struct {
	ranges [][2]uint16
}

func (inv *invalidations) InvalidateInstructions(start uint16, end uint16) {
	inv.ranges = append(inv.ranges, [2]uint16{start, end})
}

type raiser struct {
	overflows int
}

func (r *raiser) AcceleratorOverflow() {
	r.overflows++
}

func newMemory() (*memory.Memory, *invalidations, *raiser) {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	inv := &invalidations{}
	r := &raiser{}
	mem.Plumb(inv, r)
	return mem, inv, r
}

func TestInstructionMemory(t *testing.T) {
	mem, inv, _ := newMemory()

	gen := mem.CodeGeneration()
	mem.WriteInstruction(0x0010, 0x1234)
	test.ExpectEquality(t, mem.ReadInstruction(0x0010), uint16(0x1234))
	test.ExpectEquality(t, len(inv.ranges), 1)
	test.ExpectEquality(t, inv.ranges[0], [2]uint16{0x0010, 0x0011})
	test.ExpectInequality(t, mem.CodeGeneration(), gen)

	// writes to ROM are ignored and do not invalidate
	mem.WriteInstruction(0x8010, 0x1234)
	test.ExpectEquality(t, mem.ReadInstruction(0x8010), uint16(0))
	test.ExpectEquality(t, len(inv.ranges), 1)

	mem.LoadIROM([]uint16{0xaaaa, 0xbbbb})
	test.ExpectEquality(t, mem.ReadInstruction(0x8001), uint16(0xbbbb))
	test.ExpectEquality(t, inv.ranges[1], [2]uint16{0x8000, 0x9000})

	// unmapped
	test.ExpectEquality(t, mem.ReadInstruction(0x4000), uint16(0))
}

func TestDataMemory(t *testing.T) {
	mem, _, _ := newMemory()

	mem.WriteData(0x0123, 0x5555)
	test.ExpectEquality(t, mem.ReadData(0x0123), uint16(0x5555))

	// coefficient ROM is read only
	mem.LoadCOEF([]uint16{0x0001, 0x0002})
	mem.WriteData(0x1001, 0xffff)
	test.ExpectEquality(t, mem.ReadData(0x1001), uint16(0x0002))

	test.ExpectEquality(t, mem.ReadData(0x3000), uint16(0))
	mem.WriteData(0x3000, 0x1234)
	test.ExpectEquality(t, mem.Peek(0x3000), uint16(0))
	test.ExpectEquality(t, memory.HWName(memory.CMBL), "CMBL")
	test.ExpectEquality(t, memory.HWName(0xffa1), "COEF_A2_0")
}

func TestAddressWrap(t *testing.T) {
	mem, inv, _ := newMemory()

	// instruction RAM wraps inside its region
	mem.LoadIRAM(0x0fff, []uint16{0x1111, 0x2222})
	test.ExpectEquality(t, mem.ReadInstruction(0x0fff), uint16(0x1111))
	test.ExpectEquality(t, mem.ReadInstruction(0x0000), uint16(0x2222))

	// instruction memory outside IRAM and IROM is unmapped
	n := len(inv.ranges)
	mem.WriteInstruction(0x9000, 0x3333)
	test.ExpectEquality(t, mem.ReadInstruction(0x9000), uint16(0))
	test.ExpectEquality(t, len(inv.ranges), n)

	// coefficient ROM wraps inside its 0x0800 words
	mem.LoadCOEF([]uint16{0x4444})
	test.ExpectEquality(t, mem.ReadData(0x1800), uint16(0x4444))

	// the hardware registers are mirrored throughout the 0xf000 page
	mem.WriteData(0xf0d0, 0x5555)
	test.ExpectEquality(t, mem.Peek(0xffd0), uint16(0x5555))
	test.ExpectEquality(t, mem.ReadData(0xf4d0), uint16(0x5555))

	// including the registers with side effects
	mem.WriteData(0xf0fc, 0x8123)
	mem.WriteData(0xf0fd, 0x4567)
	test.ExpectEquality(t, mem.Peek(memory.DMBH), uint16(0x8123))
	test.ExpectEquality(t, mem.Peek(memory.DMBL), uint16(0x4567))
}

func TestMailbox(t *testing.T) {
	mem, _, _ := newMemory()

	// CPU to DSP
	test.ExpectEquality(t, mem.MailPending(), false)
	mem.PushMail(0x1234abcd)
	test.ExpectEquality(t, mem.MailPending(), true)
	test.ExpectEquality(t, mem.Peek(memory.CMBH), uint16(0x9234))
	test.ExpectEquality(t, mem.ReadData(memory.CMBH)&0x8000, uint16(0x8000))
	test.ExpectEquality(t, mem.MailPending(), true)
	test.ExpectEquality(t, mem.ReadData(memory.CMBL), uint16(0xabcd))
	test.ExpectEquality(t, mem.MailPending(), false)

	// DSP to CPU
	_, ok := mem.ReadMail()
	test.ExpectEquality(t, ok, false)
	mem.WriteData(memory.DMBH, 0x0011)
	_, ok = mem.ReadMail()
	test.ExpectEquality(t, ok, false)
	mem.WriteData(memory.DMBL, 0x2233)
	m, ok := mem.ReadMail()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, uint32(0x00112233))
	_, ok = mem.ReadMail()
	test.ExpectEquality(t, ok, false)

	// interrupt of the CPU
	test.ExpectEquality(t, mem.TakeCPUInterrupt(), false)
	mem.WriteData(memory.DIRQ, 0x0001)
	test.ExpectEquality(t, mem.TakeCPUInterrupt(), true)
	test.ExpectEquality(t, mem.TakeCPUInterrupt(), false)
}

func setupDMA(mem *memory.Memory, ramAddr uint32, dspAddr uint16, ctl uint16) {
	mem.WriteData(memory.DSMAH, uint16(ramAddr>>16))
	mem.WriteData(memory.DSMAL, uint16(ramAddr))
	mem.WriteData(memory.DSPA, dspAddr)
	mem.WriteData(memory.DSCR, ctl)
}

func TestDMA(t *testing.T) {
	mem, inv, _ := newMemory()

	copy(mem.RAM[0x100:], []byte{0x12, 0x34, 0x56, 0x78})

	// RAM to DRAM
	setupDMA(mem, 0x100, 0x0020, 0)
	mem.WriteData(memory.DSBL, 4)
	test.ExpectEquality(t, mem.ReadData(0x0020), uint16(0x1234))
	test.ExpectEquality(t, mem.ReadData(0x0021), uint16(0x5678))
	test.ExpectEquality(t, len(inv.ranges), 0)

	// DRAM to RAM
	mem.WriteData(0x0030, 0xabcd)
	setupDMA(mem, 0x200, 0x0030, 0x0001)
	mem.WriteData(memory.DSBL, 2)
	test.ExpectEquality(t, mem.RAM[0x200], byte(0xab))
	test.ExpectEquality(t, mem.RAM[0x201], byte(0xcd))

	// RAM to IRAM invalidates the destination range
	gen := mem.CodeGeneration()
	setupDMA(mem, 0x100, 0x0040, 0x0002)
	mem.WriteData(memory.DSBL, 4)
	test.ExpectEquality(t, mem.ReadInstruction(0x0040), uint16(0x1234))
	test.ExpectEquality(t, mem.ReadInstruction(0x0041), uint16(0x5678))
	test.ExpectEquality(t, len(inv.ranges), 1)
	test.ExpectEquality(t, inv.ranges[0], [2]uint16{0x0040, 0x0042})
	test.ExpectInequality(t, mem.CodeGeneration(), gen)

	// transfer busy bit is clear once complete
	test.ExpectEquality(t, mem.Peek(memory.DSCR)&0x0004, uint16(0))
}

func TestAccelerator(t *testing.T) {
	mem, _, r := newMemory()

	copy(mem.ARAM[0x10:], []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	// PCM8 addresses bytes
	mem.WriteData(memory.FORMAT, memory.FormatPCM8)
	mem.WriteData(memory.ACSAH, 0)
	mem.WriteData(memory.ACSAL, 0x10)
	mem.WriteData(memory.ACEAH, 0)
	mem.WriteData(memory.ACEAL, 0x12)
	mem.WriteData(memory.ACCAH, 0)
	mem.WriteData(memory.ACCAL, 0x10)

	test.ExpectEquality(t, mem.ReadData(memory.ACDSAMP), uint16(0x0100))
	test.ExpectEquality(t, r.overflows, 0)
	test.ExpectEquality(t, mem.ReadData(memory.ACDSAMP), uint16(0x0200))
	test.ExpectEquality(t, r.overflows, 1)
	test.ExpectEquality(t, mem.Peek(memory.ACCAL), uint16(0x10))
	test.ExpectEquality(t, mem.Peek(memory.YN1), uint16(0x0200))
	test.ExpectEquality(t, mem.Peek(memory.YN2), uint16(0x0100))

	// raw access by word
	mem.WriteData(memory.ACCAL, 0x08)
	test.ExpectEquality(t, mem.ReadData(memory.ACDRAW), uint16(0x0102))
	test.ExpectEquality(t, mem.Peek(memory.ACCAL), uint16(0x09))
	mem.WriteData(memory.ACDRAW, 0xfeed)
	test.ExpectEquality(t, mem.ARAM[0x12], byte(0xfe))
	test.ExpectEquality(t, mem.ARAM[0x13], byte(0xed))
}

func TestSnapshot(t *testing.T) {
	mem, _, _ := newMemory()
	mem.WriteData(0x0001, 0x1111)
	mem.ARAM[0] = 0x22

	snap := mem.Snapshot()
	mem.WriteData(0x0001, 0x3333)
	mem.ARAM[0] = 0x44

	test.ExpectEquality(t, snap.ReadData(0x0001), uint16(0x1111))
	test.ExpectEquality(t, snap.ARAM[0], byte(0x22))
}
