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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
	"github.com/jetsetilly/dspcore/prefs"
)

// Sentinel errors.
const (
	Empty     = "rewind: history is empty"
	NoEntry   = "rewind: no entry %d in history"
	NoCompare = "rewind: no comparison point"
)

// Entry is a single snapshot in the history. Entries are numbered in the
// order they were recorded.
type Entry struct {
	Seq   int
	Label string
	State *state.State
}

func (e *Entry) String() string {
	return fmt.Sprintf("%d %s PC=%04x", e.Seq, e.Label, e.State.PC)
}

// Rewind contains a history of DSP states.
type Rewind struct {
	dsp *dsp.DSP

	// circular array of entries. start is the index of the oldest entry and
	// n is the number of entries in use
	entries []*Entry
	start   int
	n       int

	// position of the current entry counted from the oldest entry
	curr int

	// sequence number of the next entry
	seq int

	comparison *Entry
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The history is empty until Reset() or Record() is called.
func NewRewind(d *dsp.DSP) *Rewind {
	r := &Rewind{dsp: d}
	r.allocate(d.Prefs.RewindEntries.Get().(int))

	d.Prefs.RewindEntries.SetHookPost(func(v prefs.Value) error {
		r.allocate(v.(int))
		return nil
	})

	return r
}

// resize the circular array, keeping the most recent entries
func (r *Rewind) allocate(size int) {
	if size < 1 {
		size = 1
	}

	keep := min(r.n, size)
	skip := r.n - keep

	entries := make([]*Entry, size)
	for i := 0; i < keep; i++ {
		entries[i] = r.at(skip + i)
	}

	r.entries = entries
	r.start = 0
	r.n = keep
	r.curr = max(0, r.curr-skip)
	if r.curr >= r.n {
		r.curr = max(0, r.n-1)
	}
}

// the entry at the position counted from the oldest entry
func (r *Rewind) at(pos int) *Entry {
	return r.entries[(r.start+pos)%len(r.entries)]
}

// Reset the history and record the current state of the DSP. The new entry
// becomes the comparison point.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.start = 0
	r.n = 0
	r.curr = 0
	r.seq = 0
	r.Record("reset")
	r.comparison = r.at(0)
}

// Record a snapshot of the DSP. Entries after the current position are
// discarded.
func (r *Rewind) Record(label string) {
	if r.n > 0 {
		r.n = r.curr + 1
	}

	e := &Entry{
		Seq:   r.seq,
		Label: label,
		State: r.dsp.Snapshot(),
	}
	r.seq++

	if r.n == len(r.entries) {
		r.entries[r.start] = e
		r.start = (r.start + 1) % len(r.entries)
	} else {
		r.entries[(r.start+r.n)%len(r.entries)] = e
		r.n++
	}
	r.curr = r.n - 1
}

// plumb a copy of the entry at the position into the DSP. the stored state
// is never plumbed directly because the DSP changes the state it is given
func (r *Rewind) plumb(pos int) *Entry {
	r.curr = pos
	e := r.at(pos)
	r.dsp.Plumb(e.State.Snapshot())
	return e
}

// Back moves the DSP count entries back through the history. The oldest
// entry is used if there are not enough entries.
func (r *Rewind) Back(count int) (*Entry, error) {
	if r.n == 0 {
		return nil, curated.Errorf(Empty)
	}
	return r.plumb(max(0, r.curr-count)), nil
}

// Forward moves the DSP count entries forward through the history. The most
// recent entry is used if there are not enough entries.
func (r *Rewind) Forward(count int) (*Entry, error) {
	if r.n == 0 {
		return nil, curated.Errorf(Empty)
	}
	return r.plumb(min(r.n-1, r.curr+count)), nil
}

// GotoLast moves the DSP to the most recent entry.
func (r *Rewind) GotoLast() (*Entry, error) {
	if r.n == 0 {
		return nil, curated.Errorf(Empty)
	}
	return r.plumb(r.n - 1), nil
}

// Goto moves the DSP to the entry with the sequence number.
func (r *Rewind) Goto(seq int) (*Entry, error) {
	if r.n == 0 {
		return nil, curated.Errorf(Empty)
	}

	// sequence numbers increase from the oldest entry but there may be gaps
	// where entries were discarded by Record()
	s := 0
	e := r.n - 1
	for s <= e {
		m := (s + e) / 2
		q := r.at(m).Seq
		if q == seq {
			return r.plumb(m), nil
		}
		if seq < q {
			e = m - 1
		} else {
			s = m + 1
		}
	}

	return nil, curated.Errorf(NoEntry, seq)
}

// Current returns the current entry. Returns nil if the history is empty.
func (r *Rewind) Current() *Entry {
	if r.n == 0 {
		return nil
	}
	return r.at(r.curr)
}

// Timeline summarises the history.
type Timeline struct {
	Start   int
	End     int
	Current int
	Entries int
}

func (tl Timeline) String() string {
	return fmt.Sprintf("%d entries: %d to %d (current %d)", tl.Entries, tl.Start, tl.End, tl.Current)
}

// GetTimeline returns the sequence numbers of the oldest, the most recent and
// the current entries.
func (r *Rewind) GetTimeline() Timeline {
	if r.n == 0 {
		return Timeline{}
	}
	return Timeline{
		Start:   r.at(0).Seq,
		End:     r.at(r.n - 1).Seq,
		Current: r.at(r.curr).Seq,
		Entries: r.n,
	}
}

// Entries returns the entries in the history from oldest to most recent.
func (r *Rewind) Entries() []*Entry {
	l := make([]*Entry, r.n)
	for i := range l {
		l[i] = r.at(i)
	}
	return l
}
