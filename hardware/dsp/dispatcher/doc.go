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

// Package dispatcher runs the processor for a budget of cycles. Each
// instruction costs one cycle whether it is interpreted or run as part of a
// compiled block, so that the two modes of execution run identical
// instruction sequences for the same budget.
//
// A block is only run when the remaining budget covers the whole block.
// Otherwise the next instruction is interpreted. Addresses are compiled on
// the Threshold-th dispatch. Exits from a block that are linked to another
// block are followed without a cache lookup.
//
// An idle loop that is waiting for an external event is fast-forwarded by
// consuming the remainder of the budget without changing the state of the
// processor.
package dispatcher
