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

// Package random generates instruction sequences and processor states. It
// is used to compare the interpreter with the compiler.
//
// The same seed always produces the same sequence of instructions and the
// same processor state. A seed of zero is replaced by a seed taken from the
// time the program started.
//
// Generated programs only ever contain decodable instructions. Branch
// targets, block loop end addresses and the address registers are kept
// inside the program so that most of the execution stays inside the
// generated code.
package random
