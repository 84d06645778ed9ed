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

// Package blockcache holds the compiled blocks of a processor, keyed by the
// entry address of the block.
//
// When a block is added to the cache its exits are linked to any resident
// block with a matching entry address. Exits to addresses that have no
// resident block are remembered and are linked when a block for that
// address is compiled.
//
// The cache implements the memory.Invalidator interface. Every write to
// instruction memory removes the blocks whose span intersects the written
// range and marks the analysis as stale. Blocks that depend on analysis
// flags that change when the analysis is refreshed are removed by
// InvalidateAddresses(), which should be set as the analyzer's OnChange
// function.
//
// The cache has a fixed capacity. The oldest block is evicted when a new
// block is added to a full cache.
package blockcache
