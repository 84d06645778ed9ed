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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.Name(registers.AR0), "AR0")
	test.ExpectEquality(t, registers.Name(registers.ACM1), "AC1.M")
	test.ExpectEquality(t, registers.Name(registers.PRODM2), "PROD.M2")
	test.ExpectEquality(t, registers.Name(0x20), "R20")
	test.ExpectEquality(t, int(registers.NumRegisters), 32)
}

func TestStatusString(t *testing.T) {
	test.ExpectEquality(t, registers.StatusString(0), "uxmei-kltrszoc")
	test.ExpectEquality(t, registers.StatusString(registers.SRCarry|registers.SRIntEnable), "uxmeI-kltrszoC")
}
