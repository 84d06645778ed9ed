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

// Package dsp is the top level container of the emulated DSP. It wires the
// processor state, the memories, the analyzer, the compiler, the block cache
// and the dispatcher together and keeps them consistent with the values in
// the preferences.
//
// Instruction memory should only be changed through the DSP type (or through
// DMA initiated by the DSP program itself). Those paths invalidate analysis
// and compiled blocks.
package dsp
