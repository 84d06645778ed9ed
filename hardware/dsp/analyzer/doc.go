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

// Package analyzer produces the side table of per-address flags that the
// interpreter and the compiler consult when executing instructions.
//
// The analysis is a single walk over each region of instruction memory. It
// finds the instruction boundaries, the hardware loop pairs, the
// instructions whose status result is needed by a following conditional
// branch and the addresses at which pending exceptions must be checked.
// Finally, every address is compared against a table of idle loop
// signatures.
//
// The side table is never patched. After any write to instruction memory the
// table is marked stale and recomputed in full on next use.
package analyzer
