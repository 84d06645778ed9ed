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
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are common to all pref types. the hooks are called even if the value
// hasn't changed.
type hooks struct {
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. An error from the callback prevents the update.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. An error from the callback is returned by Set() but the
// value has already changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

// value is the storage shared by the pref types. values can be read from any
// goroutine
type value[T any] struct {
	hooks
	v atomic.Pointer[T]
}

func (p *value[T]) load(def T) T {
	if v := p.v.Load(); v != nil {
		return *v
	}
	return def
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.v.Store(&nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load(false))
}

// Set new value to Bool type. New value must be of type bool or a string
// accepted by strconv.ParseBool().
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Bool", v)
		}
		return p.store(b)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load(false)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
}

func (p *String) String() string {
	return p.load("")
}

// Set new value to String type. Lists of values, as they might arrive from a
// prefs file, are joined with commas.
func (p *String) Set(v Value) error {
	switch v := v.(type) {
	case string:
		return p.store(v)
	case []string:
		return p.store(strings.Join(v, ","))
	case []interface{}:
		s := make([]string, len(v))
		for i := range v {
			s[i] = fmt.Sprint(v[i])
		}
		return p.store(strings.Join(s, ","))
	}
	return p.store(fmt.Sprint(v))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load("")
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// List returns the string value split on commas. Empty fields are omitted.
func (p *String) List() []string {
	var l []string
	for _, s := range strings.Split(p.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			l = append(l, s)
		}
	}
	return l
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load(0))
}

// Set new value to Int type. New value can be any integer type, a float with
// no fractional part or a string. Strings may use a 0x prefix for
// hexadecimal values.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int64:
		return p.store(int(v))
	case int32:
		return p.store(int(v))
	case uint16:
		return p.store(int(v))
	case uint64:
		return p.store(int(v))
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("prefs: cannot convert %v to prefs.Int", v)
		}
		return p.store(int(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		return p.store(int(n))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load(0)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
