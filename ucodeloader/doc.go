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

// Package ucodeloader loads DSP microcode images from disk. Two formats are
// supported:
//
//	binary: big-endian 16-bit words, as dumped from instruction memory
//	text:   whitespace separated hexadecimal words. # starts a comment
//
// The format is chosen by the file extension. ".hex" and ".txt" files are
// text, everything else is binary.
package ucodeloader
