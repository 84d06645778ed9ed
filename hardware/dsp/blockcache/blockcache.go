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

package blockcache

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/analyzer"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/logger"
)

// InvariantViolation is the panic value when a linked exit refers to a block
// that is no longer resident.
const InvariantViolation = "blockcache: invariant violation: %s"

// DefaultSize is the capacity of the cache used by NewCache() when a size of
// zero is given.
const DefaultSize = 1024

// Compiler creates blocks.
type Compiler interface {
	Compile(addr uint16) (*jit.Block, error)
}

// Analysis is the analysis side table used to decide the state of an
// address.
type Analysis interface {
	Flags(addr uint16) analyzer.Flags
	Stale() bool
	Refresh()
	Invalidate(start uint16, end uint16)
}

// State of an address in the cache.
type State int

// List of valid State values.
const (
	// the address is not the start of an instruction
	Unanalyzed State = iota

	// the address has not been compiled or cannot be compiled
	Interpretable

	// a block is resident but not all of its exits are linked
	Linkable

	// a block is resident and every exit is linked
	Linked
)

func (s State) String() string {
	switch s {
	case Unanalyzed:
		return "unanalyzed"
	case Interpretable:
		return "interpretable"
	case Linkable:
		return "linkable"
	case Linked:
		return "linked"
	}
	return "unknown"
}

// Stats are the counters of the cache. The counters are cumulative since the
// cache was created, apart from Resident and Links.
type Stats struct {
	Resident    int
	Links       int
	Compiled    int
	Refused     int
	Evicted     int
	Invalidated int
	Cleared     int
}

func (s Stats) String() string {
	return fmt.Sprintf("resident=%d links=%d compiled=%d refused=%d evicted=%d invalidated=%d cleared=%d",
		s.Resident, s.Links, s.Compiled, s.Refused, s.Evicted, s.Invalidated, s.Cleared)
}

// Cache of compiled blocks. Not safe for concurrent use.
type Cache struct {
	compiler Compiler
	analysis Analysis

	size int

	blocks map[uint16]*jit.Block

	// blocks in the order they were added. removed blocks are skipped when
	// evicting
	order []*jit.Block

	// exits linked to the block at the key address
	links map[uint16][]*jit.Exit

	// exits waiting for a block to be compiled at the key address
	pending map[uint16][]*jit.Exit

	// addresses where compilation has failed
	refused map[uint16]bool

	// number of times each address has been dispatched while not resident
	hits map[uint16]int

	stats Stats

	// invariant violations panic if Debug is true. otherwise the first
	// violation is logged and kept until Violation() is called and the
	// cache is cleared
	Debug     bool
	violation error

	Permission logger.Permission
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(compiler Compiler, analysis Analysis, size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	c := &Cache{
		compiler:   compiler,
		analysis:   analysis,
		size:       size,
		Permission: logger.Allow,
	}
	c.reset()
	return c
}

func (c *Cache) reset() {
	c.blocks = make(map[uint16]*jit.Block)
	c.order = c.order[:0]
	c.links = make(map[uint16][]*jit.Exit)
	c.pending = make(map[uint16][]*jit.Exit)
	c.refused = make(map[uint16]bool)
	c.hits = make(map[uint16]int)
}

// Resize changes the capacity of the cache. The cache is cleared.
func (c *Cache) Resize(size int) {
	if size <= 0 {
		size = DefaultSize
	}
	c.size = size
	c.Clear()
}

// Size returns the capacity of the cache.
func (c *Cache) Size() int {
	return c.size
}

// refresh the analysis if it is stale. blocks depending on changed flags
// are removed through InvalidateAddresses()
func (c *Cache) refresh() {
	if c.analysis.Stale() {
		c.analysis.Refresh()
	}
}

// Lookup returns the block at the entry address, if it is resident.
func (c *Cache) Lookup(addr uint16) (*jit.Block, bool) {
	c.refresh()
	b, ok := c.blocks[addr]
	return b, ok
}

// Hit records a dispatch of the address while no block is resident and
// returns the number of dispatches since the counters were last reset.
func (c *Cache) Hit(addr uint16) int {
	c.hits[addr]++
	return c.hits[addr]
}

// Refused returns true if compilation of the address has failed since the
// address was last invalidated.
func (c *Cache) Refused(addr uint16) bool {
	return c.refused[addr]
}

// GetOrCompile returns the block at the entry address, compiling and linking
// it if it is not resident. Returns an error matching jit.Unsupported if no
// block can be compiled at the address.
func (c *Cache) GetOrCompile(addr uint16) (*jit.Block, error) {
	if b, ok := c.Lookup(addr); ok {
		return b, nil
	}
	if c.refused[addr] {
		return nil, curated.Errorf(jit.Unsupported, addr, "refused")
	}

	b, err := c.compiler.Compile(addr)
	if err != nil {
		if curated.Is(err, jit.Unsupported) {
			c.refused[addr] = true
			c.stats.Refused++
		}
		return nil, err
	}

	// compilation may have refreshed the analysis
	if old, ok := c.blocks[addr]; ok {
		c.remove(old)
	}

	for len(c.blocks) >= c.size {
		c.evict()
	}

	c.blocks[addr] = b
	c.order = append(c.order, b)
	delete(c.hits, addr)
	c.stats.Compiled++

	c.Link(b)

	return b, nil
}

// Link the exits of the block to resident blocks and link exits waiting for
// the block to the block. The block must be resident.
func (c *Cache) Link(b *jit.Block) {
	for _, e := range b.Exits() {
		if e.Link != nil {
			continue
		}
		if t, ok := c.blocks[e.Target]; ok {
			e.Link = t
			c.links[e.Target] = append(c.links[e.Target], e)
		} else if !slices.Contains(c.pending[e.Target], e) {
			c.pending[e.Target] = append(c.pending[e.Target], e)
		}
	}

	if p, ok := c.pending[b.Entry]; ok {
		for _, e := range p {
			e.Link = b
		}
		c.links[b.Entry] = append(c.links[b.Entry], p...)
		delete(c.pending, b.Entry)
	}
}

// evict the oldest resident block.
func (c *Cache) evict() {
	for len(c.order) > 0 {
		b := c.order[0]
		c.order = c.order[1:]
		if c.blocks[b.Entry] == b {
			c.remove(b)
			c.stats.Evicted++
			logger.Logf(c.Permission, "blockcache", "evicted %s", b)
			return
		}
	}
}

// remove the block from the cache. exits linked to the block are unlinked
// and wait for the block to be compiled again. the exits of the block are
// forgotten
func (c *Cache) remove(b *jit.Block) {
	delete(c.blocks, b.Entry)

	for _, e := range c.links[b.Entry] {
		e.Link = nil
	}
	c.pending[b.Entry] = append(c.pending[b.Entry], c.links[b.Entry]...)
	delete(c.links, b.Entry)

	for _, e := range b.Exits() {
		c.links[e.Target] = deleteExit(c.links[e.Target], e)
		c.pending[e.Target] = deleteExit(c.pending[e.Target], e)
		if len(c.links[e.Target]) == 0 {
			delete(c.links, e.Target)
		}
		if len(c.pending[e.Target]) == 0 {
			delete(c.pending, e.Target)
		}
		e.Link = nil
	}

	// compact the order list when it has too many removed entries
	if len(c.order) > c.size*2 {
		c.order = slices.DeleteFunc(c.order, func(o *jit.Block) bool {
			return c.blocks[o.Entry] != o
		})
	}
}

func deleteExit(l []*jit.Exit, e *jit.Exit) []*jit.Exit {
	return slices.DeleteFunc(l, func(o *jit.Exit) bool {
		return o == e
	})
}

// Invalidate removes every block whose span intersects the range between
// start (inclusive) and end (exclusive) and marks the analysis stale.
func (c *Cache) Invalidate(start uint16, end uint16) {
	c.invalidate(uint32(start), uint32(end))
	c.analysis.Invalidate(start, end)
}

// InvalidateInstructions implements the memory.Invalidator interface.
func (c *Cache) InvalidateInstructions(start uint16, end uint16) {
	c.Invalidate(start, end)
}

func (c *Cache) invalidate(start uint32, end uint32) {
	var n int
	for _, b := range c.blocks {
		if b.Intersects(start, end) {
			c.remove(b)
			n++
		}
	}

	for a := range c.refused {
		if uint32(a) >= start && uint32(a) < end {
			delete(c.refused, a)
		}
	}

	clear(c.hits)

	c.stats.Invalidated += n
	if n > 0 {
		logger.Logf(c.Permission, "blockcache", "invalidated %d blocks (%04x to %04x)", n, start, end)
	}

	c.check()
}

// InvalidateAddresses removes every block that depends on the analysis flags
// of any of the addresses. A block depends on the flags of every address in
// its span and of the address following the block.
func (c *Cache) InvalidateAddresses(changed []uint16) {
	if len(changed) == 0 {
		return
	}

	var n int
	for _, b := range c.blocks {
		for _, a := range changed {
			if a >= b.Entry && uint32(a) <= b.End {
				c.remove(b)
				n++
				break
			}
		}
	}

	// a change in flags can make a refused address compilable
	for _, a := range changed {
		delete(c.refused, a)
	}

	clear(c.hits)

	c.stats.Invalidated += n
	if n > 0 {
		logger.Logf(c.Permission, "blockcache", "invalidated %d blocks after analysis", n)
	}

	c.check()
}

// Clear removes every block and marks the whole of the analysis stale.
func (c *Cache) Clear() {
	for _, b := range c.blocks {
		for _, e := range b.Exits() {
			e.Link = nil
		}
	}
	c.reset()
	c.stats.Cleared++
	for _, r := range analyzer.Regions {
		c.analysis.Invalidate(r.Start, r.End)
	}
}

// verify that every linked exit refers to a resident block and that every
// link is recorded.
func (c *Cache) verify() error {
	for _, b := range c.blocks {
		for _, e := range b.Exits() {
			if e.Link == nil {
				continue
			}
			if r, ok := c.blocks[e.Link.Entry]; !ok || r != e.Link {
				return curated.Errorf(InvariantViolation, fmt.Sprintf("exit from %s to removed %s", b, e.Link))
			}
		}
	}
	return nil
}

func (c *Cache) check() {
	err := c.verify()
	if err == nil {
		return
	}
	if c.Debug {
		panic(err)
	}
	logger.Log(logger.Allow, "blockcache", err)
	if c.violation == nil {
		c.violation = err
	}
	c.Clear()
}

// Violation returns and clears the first invariant violation found since the
// previous call.
func (c *Cache) Violation() error {
	err := c.violation
	c.violation = nil
	return err
}

// Verify is the exported form of the check made after every invalidation.
func (c *Cache) Verify() error {
	return c.verify()
}

// State returns the state of the address.
func (c *Cache) State(addr uint16) State {
	if b, ok := c.Lookup(addr); ok {
		if b.Unresolved() == 0 && len(b.Exits()) > 0 {
			return Linked
		}
		return Linkable
	}
	if !c.analysis.Flags(addr).Is(analyzer.StartOfInstruction) {
		return Unanalyzed
	}
	return Interpretable
}

// Stats returns the counters of the cache.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Resident = len(c.blocks)
	for _, l := range c.links {
		s.Links += len(l)
	}
	return s
}

// Entries returns the entry addresses of the resident blocks in ascending
// order.
func (c *Cache) Entries() []uint16 {
	e := make([]uint16, 0, len(c.blocks))
	for a := range c.blocks {
		e = append(e, a)
	}
	slices.Sort(e)
	return e
}
