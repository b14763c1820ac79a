// This file is part of GopherBK.
//
// GopherBK is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBK is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBK.  If not, see <https://www.gnu.org/licenses/>.

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	// no definition
	r.InstructionWord = 0010001
	test.ExpectFailure(t, r.IsValid())

	r.Defn = instructions.Lookup(r.InstructionWord)
	r.Ticks = 12
	test.ExpectSuccess(t, r.IsValid())

	// wrong number of ticks
	r.Ticks = 13
	test.ExpectFailure(t, r.IsValid())

	// bus error includes the trap time
	r.BusError = true
	r.Trap = 4
	r.Ticks = 12
	test.ExpectFailure(t, r.IsValid())
	r.Ticks = 12 + instructions.TrapTicks
	test.ExpectSuccess(t, r.IsValid())

	// a fault fetching the instruction has no definition
	r.Reset()
	r.BusError = true
	r.Ticks = instructions.TrapTicks
	test.ExpectSuccess(t, r.IsValid())
	r.Ticks = 12
	test.ExpectFailure(t, r.IsValid())

	// illegal instructions have no definition
	r.Reset()
	r.Illegal = true
	r.InstructionWord = 0170000
	test.ExpectSuccess(t, r.IsValid())
	r.Defn = instructions.Lookup(0010001)
	test.ExpectFailure(t, r.IsValid())
}

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         001000,
		InstructionWord: 0010001,
		Defn:            instructions.Lookup(0010001),
		Ticks:           12,
	}
	test.ExpectEquality(t, r.String(), "001000: 010001 MOV [12]")

	r.BusError = true
	r.Trap = 4
	test.ExpectEquality(t, r.String(), "001000: 010001 MOV [12] bus-error trap=004")
}
