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

// Package state holds the architected state of the DSP: the register file,
// the four hardware stacks, the status register and the pending exceptions.
//
// The register file is accessed by index with ReadRegister() and
// WriteRegister(). Reading one of the ST registers pops the stack and
// writing pushes. The accumulators are 40 bits wide and are accessed as a
// whole with GetLongAcc() and SetLongAcc().
//
// The arithmetic bits of the status register can be deferred with
// DeferFlags(). A deferred update is materialised whenever the status
// register is read or written through the accessor functions, so the value
// seen by the program is always the same as if the update had been made
// immediately.
//
// Extended opcodes write registers through a small backlog, see QueueWrite()
// and ApplyBacklog(). The backlog is applied after the main instruction.
package state
