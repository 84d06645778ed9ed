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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Disk represents preference values as stored on disk. Values are stored as
// YAML with the dotted key split into nested maps. For example, the keys
// "dsp.callstack" and "dsp.idleskip" are stored as:
//
//	dsp:
//	  callstack: 8
//	  idleskip: true
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load. If a value for the
// key has been pushed onto the command line stack then the value is set
// immediately. Values from the command line are not stored on save unless
// they are subsequently set by the program.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.ToLower(key)
	if isDefunct(key) {
		return fmt.Errorf("prefs: cannot add defunct key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Load preference values from disk. A missing file is not an error; the
// current values are kept.
func (dsk *Disk) Load() error {
	if _, err := os.Stat(dsk.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(dsk.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range dsk.keys() {
		src := k
		if !v.IsSet(src) {
			old, ok := renamedFrom(k)
			if !ok || !v.IsSet(old) {
				continue
			}
			src = old
		}
		if err := dsk.entries[k].Set(v.Get(src)); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}

// Save current preference values to disk. Any values in the existing file
// that are not handled by this Disk instance are preserved, unless they are
// defunct.
func (dsk *Disk) Save() error {
	tree := make(map[string]interface{})

	if b, err := os.ReadFile(dsk.path); err == nil {
		if err := yaml.Unmarshal(b, &tree); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		if tree == nil {
			tree = make(map[string]interface{})
		}
		for k := range defunct {
			deleteKey(tree, k)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range dsk.keys() {
		setKey(tree, k, dsk.entries[k].Get())
	}

	b, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.WriteFile(dsk.path, b, 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Reset all preference values handled by the Disk instance.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

func setKey(tree map[string]interface{}, key string, v Value) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := tree[p].(map[string]interface{})
		if !ok {
			sub = make(map[string]interface{})
			tree[p] = sub
		}
		tree = sub
	}
	tree[parts[len(parts)-1]] = v
}

func deleteKey(tree map[string]interface{}, key string) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := tree[p].(map[string]interface{})
		if !ok {
			return
		}
		tree = sub
	}
	delete(tree, parts[len(parts)-1])
}
