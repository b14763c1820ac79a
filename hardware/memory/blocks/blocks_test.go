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

package blocks_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/memory/blocks"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
	"github.com/jetsetilly/gopherbk/test"
)

func TestRAMTypes(t *testing.T) {
	d := make([]uint16, 256)

	blocks.Generic.Fill(d)
	for i := range d {
		test.ExpectEquality(t, d[i], 0, i)
	}

	blocks.K565RU6.Fill(d)
	test.ExpectEquality(t, d[0], 0)
	test.ExpectEquality(t, d[1], 0177777)
	test.ExpectEquality(t, d[63], 0177777)
	test.ExpectEquality(t, d[64], 0177777)
	test.ExpectEquality(t, d[65], 0)
	test.ExpectEquality(t, d[128], 0)

	blocks.K565RU5.Fill(d)
	test.ExpectEquality(t, d[64], 0)
	test.ExpectEquality(t, d[65], 0177777)
	test.ExpectEquality(t, d[128], 0177777)
	test.ExpectEquality(t, d[129], 0)

	rt, err := blocks.ParseRAMType("k565ru5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rt, blocks.K565RU5)
	_, err = blocks.ParseRAMType("core")
	test.ExpectSuccess(t, curated.Is(err, blocks.UnknownRAMType))
}

func TestRAM(t *testing.T) {
	r := blocks.NewRAM("ram", 0, 16, blocks.Generic)
	test.ExpectEquality(t, r.Size(), 16)
	test.ExpectSuccess(t, r.IsRelatedAddress(0))
	test.ExpectSuccess(t, r.IsRelatedAddress(037))
	test.ExpectFailure(t, r.IsRelatedAddress(040))

	test.ExpectSuccess(t, r.Write(false, 2, 0123456))
	test.ExpectEquality(t, r.Read(2), 0123456)
	test.ExpectEquality(t, r.Read(3), 0123456)

	// byte writes preserve the other byte
	test.ExpectSuccess(t, r.Write(true, 2, 0377))
	test.ExpectEquality(t, r.Read(2), 0123777)
	test.ExpectSuccess(t, r.Write(true, 3, 0001))
	test.ExpectEquality(t, r.Read(2), 0000777)

	// out of range
	test.ExpectEquality(t, r.Read(040), bus.Error)
	test.ExpectEquality(t, r.Read(-1), bus.Error)
	test.ExpectFailure(t, r.Write(false, 040, 1))
}

func TestROM(t *testing.T) {
	r := blocks.NewROM("rom", 0100000, 4)
	test.ExpectSuccess(t, r.ReadOnly())
	test.ExpectSuccess(t, r.Load([]byte{0x01, 0x02, 0x03}))
	test.ExpectEquality(t, r.Read(0), 0x0201)
	test.ExpectEquality(t, r.Read(2), 0x0003)

	test.ExpectFailure(t, r.Write(false, 0, 0))
	test.ExpectFailure(t, r.Write(true, 1, 0))
	test.ExpectEquality(t, r.Read(0), 0x0201)

	test.ExpectFailure(t, r.Load(make([]byte, 9)))
}

func TestPaged(t *testing.T) {
	pg := blocks.NewPaged("paged", 040000, 8, 4, blocks.Generic)
	test.ExpectEquality(t, pg.Selected(), 0)
	test.ExpectSuccess(t, pg.Write(false, 0, 1))

	test.ExpectSuccess(t, pg.Select(3))
	test.ExpectEquality(t, pg.Read(0), 0)
	test.ExpectSuccess(t, pg.Write(false, 0, 3))

	test.ExpectSuccess(t, pg.Select(0))
	test.ExpectEquality(t, pg.Read(0), 1)
	test.ExpectEquality(t, pg.Page(3).Read(0), 3)

	test.ExpectFailure(t, pg.Select(4))
	test.ExpectEquality(t, pg.Selected(), 0)

	// nothing selected
	test.ExpectSuccess(t, pg.Select(-1))
	test.ExpectEquality(t, pg.Read(0), bus.Error)
	test.ExpectFailure(t, pg.Write(false, 0, 1))
	test.ExpectEquality(t, len(pg.Data()), 0)
}

func TestBanked(t *testing.T) {
	a := blocks.NewRAM("a", 0, 8, blocks.Generic)
	b := blocks.NewROM("b", 0, 8)
	test.ExpectSuccess(t, b.Load([]byte{0x34, 0x12}))

	bk, err := blocks.NewBanked("banked", 0100000, 8, a, b)
	test.DemandSuccess(t, err)

	// no bank selected by default
	test.ExpectEquality(t, bk.Read(0), bus.Error)

	test.ExpectSuccess(t, bk.Select(0))
	test.ExpectSuccess(t, bk.Write(false, 0, 0777))
	test.ExpectEquality(t, a.Read(0), 0777)

	test.ExpectSuccess(t, bk.Select(1))
	test.ExpectEquality(t, bk.Read(0), 0x1234)
	test.ExpectFailure(t, bk.Write(false, 0, 0))

	test.ExpectEquality(t, bk.Bank(1), bus.Block(b))
	test.ExpectEquality(t, bk.Bank(2) == nil, true)

	small := blocks.NewRAM("small", 0, 4, blocks.Generic)
	_, err = blocks.NewBanked("banked", 0100000, 8, a, small)
	test.ExpectSuccess(t, curated.Is(err, blocks.BankTooSmall))
}

func TestSegmented(t *testing.T) {
	backing := blocks.NewRAM("backing", 0, 32, blocks.Generic)
	for i := 0; i < 32; i++ {
		backing.Write(false, i*2, uint16(i))
	}

	sg, err := blocks.NewSegmented("seg", 0160000, 8, backing)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sg.NumSegments(), 4)
	test.ExpectEquality(t, sg.Read(0), 0)

	test.ExpectSuccess(t, sg.Select(2))
	test.ExpectEquality(t, sg.Read(0), 16)
	test.ExpectEquality(t, sg.Read(016), 23)
	test.ExpectEquality(t, sg.Data()[1], 17)

	// limits
	sg.SetLimits(010, 4)
	test.ExpectEquality(t, sg.Read(6), 19)
	test.ExpectEquality(t, sg.Read(010), bus.Error)
	test.ExpectSuccess(t, sg.Write(false, 2, 0777))
	test.ExpectFailure(t, sg.Write(false, 4, 0777))
	test.ExpectEquality(t, backing.Read(042), 0777)

	_, err = blocks.NewSegmented("seg", 0160000, 12, backing)
	test.ExpectSuccess(t, curated.Is(err, blocks.BadSegmentSize))
}

func TestSelectable(t *testing.T) {
	r := blocks.NewRAM("ram", 0120000, 8, blocks.Generic)
	sl := blocks.NewSelectable("sel", r, false)
	test.ExpectEquality(t, sl.Start(), 0120000)
	test.ExpectEquality(t, sl.Read(0), bus.Error)
	test.ExpectFailure(t, sl.Write(false, 0, 1))

	sl.SetEnabled(true)
	test.ExpectSuccess(t, sl.Write(false, 0, 1))
	test.ExpectEquality(t, sl.Read(0), 1)
}

func TestState(t *testing.T) {
	pg := blocks.NewPaged("paged", 0, 8, 2, blocks.Generic)
	pg.Write(false, 0, 0111)
	pg.Select(1)
	pg.Write(false, 0, 0222)

	s := state.NewStore()
	pg.SaveState(s)

	pg.Write(false, 0, 0333)
	pg.Select(0)

	test.ExpectSuccess(t, pg.RestoreState(s))
	test.ExpectEquality(t, pg.Selected(), 1)
	test.ExpectEquality(t, pg.Read(0), 0222)
	test.ExpectEquality(t, pg.Page(0).Read(0), 0111)

	// a bad store leaves the block unchanged
	s.SetInt("paged.index", 7)
	test.ExpectFailure(t, pg.RestoreState(s))
	test.ExpectEquality(t, pg.Selected(), 1)

	s.Delete("paged.page1.data")
	s.SetInt("paged.index", 0)
	test.ExpectFailure(t, pg.RestoreState(s))
	test.ExpectEquality(t, pg.Selected(), 1)
}

func TestBankedState(t *testing.T) {
	a := blocks.NewRAM("a", 0, 8, blocks.Generic)
	b := blocks.NewRAM("b", 0, 8, blocks.Generic)
	bk, err := blocks.NewBanked("banked", 0100000, 8, a, b)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, a.Write(false, 0, 0111))
	test.ExpectSuccess(t, b.Write(false, 0, 0222))
	test.ExpectSuccess(t, bk.Select(1))

	s := state.NewStore()
	bk.SaveState(s)

	test.ExpectSuccess(t, a.Write(false, 0, 0333))
	test.ExpectSuccess(t, b.Write(false, 0, 0444))
	test.ExpectSuccess(t, bk.Select(0))

	// the first bank would restore successfully but the second bank is
	// missing. no bank is changed
	s.Delete("b.data")
	test.ExpectFailure(t, bk.RestoreState(s))
	test.ExpectEquality(t, bk.Selected(), 0)
	test.ExpectEquality(t, a.Read(0), 0333)
	test.ExpectEquality(t, b.Read(0), 0444)

	s.SetWords("b.data", make([]uint16, 8))
	test.ExpectSuccess(t, bk.RestoreState(s))
	test.ExpectEquality(t, bk.Selected(), 1)
	test.ExpectEquality(t, a.Read(0), 0111)
	test.ExpectEquality(t, b.Read(0), 0)
}
