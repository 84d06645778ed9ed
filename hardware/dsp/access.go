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

package dsp

import (
	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/logger"
)

// ReadInstructionMemory returns the word at the address in instruction
// memory.
func (dsp *DSP) ReadInstructionMemory(addr uint16) uint16 {
	return dsp.Mem.PeekInstruction(addr)
}

// WriteInstructionMemory writes a word to instruction memory. Blocks that
// include the address are removed from the cache.
func (dsp *DSP) WriteInstructionMemory(addr uint16, value uint16) {
	dsp.Mem.WriteInstruction(addr, value)
}

// ReadDataMemory returns the word at the address in data memory. Reading a
// hardware register with this function has no side effects.
func (dsp *DSP) ReadDataMemory(addr uint16) uint16 {
	return dsp.Mem.Peek(addr)
}

// WriteDataMemory writes a word to data memory as if written by the DSP.
func (dsp *DSP) WriteDataMemory(addr uint16, value uint16) {
	dsp.Mem.WriteData(addr, value)
}

// LoadIRAM copies the words into instruction RAM at the origin.
func (dsp *DSP) LoadIRAM(origin uint16, words []uint16) {
	dsp.Mem.LoadIRAM(origin, words)
	logger.Logf(logger.Allow, "dsp", "IRAM loaded: %d words at %04x (%s)", len(words), origin, digest.Short(digest.UCode(words)))
}

// LoadIROM replaces the contents of instruction ROM.
func (dsp *DSP) LoadIROM(words []uint16) {
	dsp.Mem.LoadIROM(words)
	logger.Logf(logger.Allow, "dsp", "IROM loaded: %d words (%s)", len(words), digest.Short(digest.UCode(words)))
}

// LoadCoef replaces the contents of the coefficient ROM.
func (dsp *DSP) LoadCoef(words []uint16) {
	dsp.Mem.LoadCOEF(words)
}

// PushMail sends a mail from the CPU to the DSP.
func (dsp *DSP) PushMail(mail uint32) {
	dsp.Mem.PushMail(mail)
}

// ReadMail reads a mail sent from the DSP to the CPU. Returns false if no mail
// is waiting.
func (dsp *DSP) ReadMail() (uint32, bool) {
	return dsp.Mem.ReadMail()
}

// RequestInterrupt requests an external interrupt of the DSP. The request is
// taken at the start of the next slice.
func (dsp *DSP) RequestInterrupt() {
	dsp.State.RequestInterrupt()
}

// IRAMDigest returns the hash of instruction RAM.
func (dsp *DSP) IRAMDigest() string {
	return digest.UCode(dsp.Mem.IRAM[:])
}
