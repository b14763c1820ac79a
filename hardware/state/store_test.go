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

package state_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/state"
	"github.com/jetsetilly/gopherbk/test"
)

func TestStore(t *testing.T) {
	s := state.NewStore()

	s.SetUint16("cpu.r7", 0100000)
	s.SetUint64("clock.ticks", 123456789)
	s.SetBool("gate.enabled", true)
	s.SetInt("pager.index", -1)

	v, err := s.Uint16("cpu.r7")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0100000)

	t64, err := s.Uint64("clock.ticks")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, t64, 123456789)

	b, err := s.Bool("gate.enabled")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, true)

	i, err := s.Int("pager.index")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, i, -1)

	test.ExpectEquality(t, len(s.Keys()), 4)
	test.ExpectEquality(t, s.Keys()[0], "clock.ticks")
}

func TestErrors(t *testing.T) {
	s := state.NewStore()

	_, err := s.Uint16("missing")
	test.ExpectSuccess(t, curated.Is(err, state.MissingKey))

	s.SetBool("flag", true)
	_, err = s.Uint16("flag")
	test.ExpectSuccess(t, curated.Is(err, state.WrongType))

	s.SetWords("ram.data", []uint16{1, 2, 3})
	_, err = s.Words("ram.data", 4)
	test.ExpectSuccess(t, curated.Is(err, state.WrongSize))

	// any length
	w, err := s.Words("ram.data", -1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(w), 3)
}

func TestWordsAreCopied(t *testing.T) {
	s := state.NewStore()

	data := []uint16{1, 2, 3}
	s.SetWords("ram.data", data)
	data[0] = 100

	w, err := s.Words("ram.data", 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w[0], 1)

	w[1] = 200
	w, err = s.Words("ram.data", 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w[1], 2)
}
