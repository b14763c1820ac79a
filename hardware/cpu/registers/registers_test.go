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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/test"
)

func TestByteMode(t *testing.T) {
	var r registers.Registers

	r.Write(false, 0, 0177400)
	r.Write(true, 0, 0123)
	test.ExpectEquality(t, r.Read(false, 0), 0177523)
	test.ExpectEquality(t, r.Read(true, 0), 0123)

	// byte mode does not sign extend
	r.Write(false, 1, 0377)
	test.ExpectEquality(t, r.Read(true, 1), 0377)
}

func TestStep(t *testing.T) {
	var r registers.Registers

	for reg := 0; reg < registers.SP; reg++ {
		r.Write(false, reg, 01000)
		r.Increment(true, reg)
		test.ExpectEquality(t, r.Read(false, reg), 01001, reg)
		r.Increment(false, reg)
		test.ExpectEquality(t, r.Read(false, reg), 01003, reg)
		r.Decrement(true, reg)
		test.ExpectEquality(t, r.Read(false, reg), 01002, reg)
	}

	for _, reg := range []int{registers.SP, registers.PC} {
		r.Write(false, reg, 01000)
		r.Increment(true, reg)
		test.ExpectEquality(t, r.Read(false, reg), 01002, reg)
		r.Decrement(true, reg)
		r.Decrement(true, reg)
		test.ExpectEquality(t, r.Read(false, reg), 0776, reg)
	}

	// wraparound
	r.Write(false, 0, 0177777)
	r.Increment(true, 0)
	test.ExpectEquality(t, r.Read(false, 0), 0)
}

func TestString(t *testing.T) {
	var r registers.Registers
	r.SetPC(0100000)
	r.SetSP(01000)
	test.ExpectEquality(t, r.String(), "R0=000000 R1=000000 R2=000000 R3=000000 R4=000000 R5=000000 SP=001000 PC=100000")
}

func TestStatus(t *testing.T) {
	var sw registers.Status

	sw.Reset()
	test.ExpectEquality(t, sw.Value(), registers.ResetValue)
	test.ExpectEquality(t, sw.Get(registers.Priority), true)
	test.ExpectEquality(t, sw.String(), "hPtnzvc")

	sw.Set(registers.Carry, true)
	sw.Set(registers.Negative, true)
	test.ExpectEquality(t, sw.Get(registers.ConditionCodes), true)
	test.ExpectEquality(t, sw.String(), "hPtNzvC")

	sw.Clear(registers.ConditionCodes)
	test.ExpectEquality(t, sw.Get(registers.ConditionCodes), false)

	sw.SetNZ(true, 0x0100)
	test.ExpectEquality(t, sw.Get(registers.Zero), true)
	test.ExpectEquality(t, sw.Get(registers.Negative), false)

	sw.SetNZ(false, 0x8000)
	test.ExpectEquality(t, sw.Get(registers.Zero), false)
	test.ExpectEquality(t, sw.Get(registers.Negative), true)
}
