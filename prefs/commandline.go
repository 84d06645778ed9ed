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

package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// a group of preference values pushed by a single call to
// PushCommandLineStack(). values are deleted from the group as they are used
type group map[string]Value

// the command line stack allows preferences to be overridden for the duration
// of a single run. values on the stack take priority over values loaded from
// disk
var (
	commandLineStack []group
	commandLineCrit  sync.Mutex
)

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// string is of the form "key::value; key::value". Keys are not case
// sensitive.
//
// The group is always pushed. Malformed entries are left out of the group and
// reported in the returned error.
func PushCommandLineStack(prefs string) error {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	g := make(group)
	var bad []string

	for _, p := range strings.Split(prefs, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, v, ok := strings.Cut(p, "::")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" {
			bad = append(bad, p)
			continue
		}
		g[k] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, g)

	if len(bad) > 0 {
		return fmt.Errorf("prefs: malformed command line preference (%s)", strings.Join(bad, "; "))
	}
	return nil
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the values in the group that were never used, in the same form as
// the string given to PushCommandLineStack().
func PopCommandLineStack() string {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return ""
	}

	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	unused := make([]string, 0, len(g))
	for _, k := range slices.Sorted(maps.Keys(g)) {
		unused = append(unused, fmt.Sprintf("%s::%v", k, g[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref value from current group. The value is deleted when it is
// returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]
	key = strings.ToLower(key)
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}

	return false, nil
}
