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

// Package opcodes decodes DSP instruction words. Lookup() maps a word to an
// immutable Opcode entry and LookupExt() maps the low bits of an extendable
// word to an ExtOpcode entry.
//
// The decoding tables are built once at package initialisation and are safe
// for concurrent use. Words that match no entry are reported as unknown.
// Executors treat unknown words as one word no-ops so that data tables can be
// embedded in instruction memory.
package opcodes
