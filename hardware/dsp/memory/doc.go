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

// Package memory implements the instruction and data memories of the DSP.
//
// Instruction memory is IRAM at 0x0000 and IROM at 0x8000. Data memory is
// DRAM at 0x0000, the coefficient ROM at 0x1000 and the hardware registers in
// the page at 0xff00. Each region is addressed by the top four bits of the
// address and the remaining bits wrap inside the region. Unmapped reads
// return zero and unmapped writes are ignored; both are logged.
//
// The hardware registers cover the two mailboxes, the DMA engine and the
// accelerator. The accelerator reads 16 bit or 8 bit PCM from auxiliary RAM
// and wraps back to its start address when the end address is passed,
// notifying the Raiser.
//
// Every path that writes instruction memory (WriteInstruction, LoadIRAM,
// LoadIROM and DMA into IRAM) notifies the Invalidator after the write.
package memory
