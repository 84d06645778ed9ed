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

// Package comparison runs the same program through two processor
// instances, one interpreted and one using compiled blocks, and reports
// any difference in the final architected state.
//
// Differences are reported with the go-cmp package as a readable diff of
// the registers, the stacks, the pending exceptions and the memories. The
// external memories are compared as a whole and are only reported as
// differing or not.
package comparison
