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

package state

import (
	"strings"

	"github.com/jetsetilly/dspcore/curated"
)

// Signals is the set of conditions raised while the processor runs. Signals
// are accumulated until ClearSignals() is called.
type Signals uint8

// List of valid Signals.
const (
	StackOverflow Signals = 1 << iota
	StackUnderflow
	AddressOverflow
	InterruptPending
)

// NoSignals is the empty set.
const NoSignals Signals = 0

var signalNames = []struct {
	sig  Signals
	name string
}{
	{StackOverflow, "overflow"},
	{StackUnderflow, "underflow"},
	{AddressOverflow, "address"},
	{InterruptPending, "interrupt"},
}

func (s Signals) String() string {
	if s == NoSignals {
		return "none"
	}
	n := make([]string, 0, len(signalNames))
	for _, sn := range signalNames {
		if s&sn.sig == sn.sig {
			n = append(n, sn.name)
		}
	}
	return strings.Join(n, ",")
}

// Has returns true if any signal in t is also in s.
func (s Signals) Has(t Signals) bool {
	return s&t != 0
}

// UnknownSignal is returned by ParseSignals() when a signal name is not
// recognised.
const UnknownSignal = "signals: unknown signal (%s)"

// ParseSignals converts a comma separated list of signal names to a Signals
// set. The empty string is the empty set.
func ParseSignals(s string) (Signals, error) {
	var sigs Signals
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		found := false
		for _, sn := range signalNames {
			if sn.name == f {
				sigs |= sn.sig
				found = true
				break
			}
		}
		if !found {
			return NoSignals, curated.Errorf(UnknownSignal, f)
		}
	}
	return sigs, nil
}
