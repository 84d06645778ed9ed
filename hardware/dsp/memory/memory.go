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

// Sizes of the memory regions in words. All sizes are powers of two and
// addresses wrap inside a region by masking.
const (
	IRAMSize = 0x1000
	IROMSize = 0x1000
	DRAMSize = 0x1000
	COEFSize = 0x0800

	IRAMMask = IRAMSize - 1
	IROMMask = IROMSize - 1
	DRAMMask = DRAMSize - 1
	COEFMask = COEFSize - 1
)

// Origins of the memory regions.
const (
	IRAMOrigin = 0x0000
	IROMOrigin = 0x8000
	DRAMOrigin = 0x0000
	COEFOrigin = 0x1000
	HWOrigin   = 0xff00
)

// the hardware registers are mirrored throughout the 0xf000 page
const hwMirror = 0x0f00

// Default sizes of external memories in bytes. The main RAM is the source
// and destination of DMA transfers. The auxiliary RAM is read by the
// accelerator.
const (
	DefaultRAMSize  = 0x100000
	DefaultARAMSize = 0x100000
)

// Invalidator is called after every write to instruction memory. The start
// address is inclusive and the end address is exclusive.
type Invalidator interface {
	InvalidateInstructions(start uint16, end uint16)
}

// Raiser is notified of conditions detected by the memory mapped hardware.
type Raiser interface {
	AcceleratorOverflow()
}

// Memory holds the instruction and data memories of the DSP and the hardware
// registers mapped into the top page of data memory.
//
// Instruction memory must only ever be written through WriteInstruction(),
// LoadIRAM() or DMA. Those paths call the Invalidator so that cached analysis
// and compiled blocks are never stale.
type Memory struct {
	IRAM [IRAMSize]uint16
	IROM [IROMSize]uint16
	DRAM [DRAMSize]uint16
	COEF [COEFSize]uint16

	// hardware registers. see hwregs.go
	HW [0x100]uint16

	// mailboxes are 31 bits of data and a valid bit. see mailbox.go
	Mailbox [2]uint32

	// external memories
	RAM  []byte
	ARAM []byte

	// the DSP has requested an interrupt of the CPU through DIRQ
	CPUInterrupt bool

	// incremented on every write to instruction memory. compiled blocks use
	// this to detect that they have modified the code they are running
	codeGeneration uint64

	invalidator Invalidator
	raiser      Raiser

	// logging of unmapped accesses can be silenced by setting this to
	// logger.Deny
	Permission logger.Permission
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		RAM:        make([]byte, DefaultRAMSize),
		ARAM:       make([]byte, DefaultARAMSize),
		Permission: logger.Allow,
	}
	return mem
}

// Plumb the collaborators of the memory. Either argument can be nil.
func (mem *Memory) Plumb(inv Invalidator, raiser Raiser) {
	mem.invalidator = inv
	mem.raiser = raiser
}

// Snapshot creates a copy of the memory. The copy is not plumbed.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = make([]byte, len(mem.RAM))
	copy(n.RAM, mem.RAM)
	n.ARAM = make([]byte, len(mem.ARAM))
	copy(n.ARAM, mem.ARAM)
	n.invalidator = nil
	n.raiser = nil
	return &n
}

// Reset clears data memory and the hardware registers. Instruction memory is
// not changed.
func (mem *Memory) Reset() {
	clear(mem.DRAM[:])
	clear(mem.HW[:])
	clear(mem.Mailbox[:])
	mem.CPUInterrupt = false
}

// CodeGeneration returns a value that changes every time instruction memory
// is written.
func (mem *Memory) CodeGeneration() uint64 {
	return mem.codeGeneration
}

func (mem *Memory) invalidate(start uint16, end uint16) {
	mem.codeGeneration++
	if mem.invalidator != nil {
		mem.invalidator.InvalidateInstructions(start, end)
	}
}

// ReadInstruction returns the word at the instruction memory address.
// Unmapped addresses return zero.
func (mem *Memory) ReadInstruction(addr uint16) uint16 {
	switch addr >> 12 {
	case IRAMOrigin >> 12:
		return mem.IRAM[addr&IRAMMask]
	case IROMOrigin >> 12:
		return mem.IROM[addr&IROMMask]
	}
	logger.Logf(mem.Permission, "memory", "unmapped instruction read (%04x)", addr)
	return 0
}

// PeekInstruction returns the word at the instruction memory address.
// Unmapped addresses return zero and are not logged.
func (mem *Memory) PeekInstruction(addr uint16) uint16 {
	switch addr >> 12 {
	case IRAMOrigin >> 12:
		return mem.IRAM[addr&IRAMMask]
	case IROMOrigin >> 12:
		return mem.IROM[addr&IROMMask]
	}
	return 0
}

// WriteInstruction is the only way to write a single word of instruction
// memory. The Invalidator is called after the write.
func (mem *Memory) WriteInstruction(addr uint16, value uint16) {
	switch addr >> 12 {
	case IRAMOrigin >> 12:
		mem.IRAM[addr&IRAMMask] = value
		mem.invalidate(addr&IRAMMask, (addr&IRAMMask)+1)
		return
	case IROMOrigin >> 12:
		logger.Logf(mem.Permission, "memory", "write to instruction ROM ignored (%04x)", addr)
		return
	}
	logger.Logf(mem.Permission, "memory", "unmapped instruction write (%04x)", addr)
}

// LoadIRAM copies words into instruction RAM starting at the origin. The
// whole of instruction RAM is invalidated once the copy is complete.
func (mem *Memory) LoadIRAM(origin uint16, words []uint16) {
	for i, w := range words {
		mem.IRAM[(int(origin)+i)&IRAMMask] = w
	}
	mem.invalidate(IRAMOrigin, IRAMOrigin+IRAMSize)
}

// LoadIROM copies words into instruction ROM. Instruction ROM is invalidated
// once the copy is complete.
func (mem *Memory) LoadIROM(words []uint16) {
	copy(mem.IROM[:], words)
	mem.invalidate(IROMOrigin, IROMOrigin+IROMSize)
}

// LoadCOEF copies words into the coefficient ROM.
func (mem *Memory) LoadCOEF(words []uint16) {
	copy(mem.COEF[:], words)
}

// ReadData returns the word at the data memory address. Reads of some
// hardware registers have side effects. The hardware registers are mirrored
// throughout the 0xf000 page. Use Peek() to read without side
// effects.
func (mem *Memory) ReadData(addr uint16) uint16 {
	switch addr >> 12 {
	case DRAMOrigin >> 12:
		return mem.DRAM[addr&DRAMMask]
	case COEFOrigin >> 12:
		return mem.COEF[addr&COEFMask]
	case HWOrigin >> 12:
		return mem.readHW(addr | hwMirror)
	}
	logger.Logf(mem.Permission, "memory", "unmapped data read (%04x)", addr)
	return 0
}

// Peek returns the word at the data memory address without side effects.
func (mem *Memory) Peek(addr uint16) uint16 {
	switch addr >> 12 {
	case DRAMOrigin >> 12:
		return mem.DRAM[addr&DRAMMask]
	case COEFOrigin >> 12:
		return mem.COEF[addr&COEFMask]
	case HWOrigin >> 12:
		return mem.peekHW(addr | hwMirror)
	}
	return 0
}

// WriteData writes the word to the data memory address. Writes to the
// coefficient ROM and to unmapped addresses are ignored.
func (mem *Memory) WriteData(addr uint16, value uint16) {
	switch addr >> 12 {
	case DRAMOrigin >> 12:
		mem.DRAM[addr&DRAMMask] = value
		return
	case HWOrigin >> 12:
		mem.writeHW(addr|hwMirror, value)
		return
	}
	logger.Logf(mem.Permission, "memory", "unmapped data write (%04x)", addr)
}
