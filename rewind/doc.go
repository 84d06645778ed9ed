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

// Package rewind keeps a history of DSP snapshots. The monitor records an
// entry after every command that runs the processor and the user can move
// backwards and forwards through the history.
//
// Entries are stored in a circular array. When the array is full the oldest
// entry is forgotten. Recording an entry while rewound discards the entries
// after the current position.
//
// Every entry holds a complete copy of memory, including the external
// memories, so the number of entries should be kept modest. The number of
// entries is set by the rewind.maxentries preference.
package rewind
