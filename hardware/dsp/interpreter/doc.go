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

// Package interpreter executes DSP instructions one at a time.
//
// Every instruction class has a semantic routine, returned by Routine(). The
// extended opcodes that can be combined with the arithmetic instructions have
// their own routines, returned by ExtRoutine(). The compiler in the jit
// package binds the same routines so that the two execution modes cannot
// disagree.
//
// After an instruction has executed, Retire() handles the end of a hardware
// loop and checks for exceptions at the addresses marked by the analyzer.
package interpreter
