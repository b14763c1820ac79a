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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/test"
)

// no two definitions can match the same instruction word
func TestUniqueEncodings(t *testing.T) {
	var seen [65536]*instructions.Definition

	defs := instructions.GetDefinitions()
	for i := range defs {
		d := &defs[i]
		mask := d.Format.OperandMask()
		for v := uint16(0); ; v++ {
			w := d.Opcode | v
			if seen[w] != nil {
				t.Fatalf("%s and %s share encoding %06o", seen[w].Mnemonic, d.Mnemonic, w)
			}
			seen[w] = d
			if v == mask {
				break
			}
		}
	}

	// spot check some of the unused encodings
	test.ExpectEquality(t, seen[0000007] == nil, true)
	test.ExpectEquality(t, seen[0000210] == nil, true)
	test.ExpectEquality(t, seen[0007000] == nil, true)
	test.ExpectEquality(t, seen[0070000] == nil, true)
	test.ExpectEquality(t, seen[0170000] == nil, true)
}

func TestLookup(t *testing.T) {
	d := instructions.Lookup(0012700)
	test.DemandSuccess(t, d != nil)
	test.ExpectEquality(t, d.Mnemonic, "MOV")

	d = instructions.Lookup(0112700)
	test.DemandSuccess(t, d != nil)
	test.ExpectEquality(t, d.Mnemonic, "MOVB")
	test.ExpectEquality(t, d.ByteMode, true)

	d = instructions.Lookup(0106427)
	test.DemandSuccess(t, d != nil)
	test.ExpectEquality(t, d.Mnemonic, "MTPS")

	d = instructions.Lookup(0167001)
	test.DemandSuccess(t, d != nil)
	test.ExpectEquality(t, d.Mnemonic, "SUB")
	test.ExpectEquality(t, d.ByteMode, false)

	test.ExpectEquality(t, instructions.Lookup(0000010) == nil, true)
}

func TestDecode(t *testing.T) {
	// MOV @(R2)+, 6(R4)
	w := uint16(0013264)
	test.ExpectEquality(t, instructions.SourceMode(w), instructions.AutoincrementDeferred)
	test.ExpectEquality(t, instructions.SourceRegister(w), 2)
	test.ExpectEquality(t, instructions.DestinationMode(w), instructions.Index)
	test.ExpectEquality(t, instructions.DestinationRegister(w), 4)

	// JSR R5, @#... and SOB R1, ...
	test.ExpectEquality(t, instructions.RegisterField(0004537), 5)
	test.ExpectEquality(t, instructions.RegisterField(0077103), 1)
	test.ExpectEquality(t, instructions.Register.Deferred(), false)

	// BR .-2
	test.ExpectEquality(t, instructions.BranchOffset(0000777), -2)
	test.ExpectEquality(t, instructions.BranchOffset(0000577), 0376)
	test.ExpectEquality(t, instructions.SOBOffset(0077103), 6)
	test.ExpectEquality(t, instructions.Number(0104377, instructions.Number8), 0377)
}

func TestTicks(t *testing.T) {
	mov := instructions.Lookup(0010000)
	test.DemandSuccess(t, mov != nil)

	// MOV R0, R1
	test.ExpectEquality(t, mov.Ticks(0010001), 12)

	// MOV @(R0)+, X(R1)
	test.ExpectEquality(t, mov.Ticks(0013061), 12+20+20)

	inc := instructions.Lookup(0005200)
	test.DemandSuccess(t, inc != nil)
	test.ExpectEquality(t, inc.Ticks(0005210), 12+16)

	br := instructions.Lookup(0000400)
	test.DemandSuccess(t, br != nil)
	test.ExpectEquality(t, br.Ticks(0000777), 16)
}

func TestAddressingModes(t *testing.T) {
	test.ExpectEquality(t, instructions.Register.Deferred(), false)
	test.ExpectEquality(t, instructions.RegisterDeferred.Deferred(), true)
	test.ExpectEquality(t, instructions.Autoincrement.Deferred(), false)
	test.ExpectEquality(t, instructions.IndexDeferred.Deferred(), true)
	test.ExpectEquality(t, instructions.Index.ExtraWord(), true)
	test.ExpectEquality(t, instructions.Autoincrement.ExtraWord(), false)
}
