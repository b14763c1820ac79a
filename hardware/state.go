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

package hardware

import (
	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// WrongModel is returned by RestoreState() when the state was saved from a
// different model.
const WrongModel = "hardware: state is for %s not %s"

// SaveState returns the complete state of the machine. ROM contents are not
// included.
func (cmp *Computer) SaveState() *state.Store {
	s := state.NewStore()
	s.SetInt("computer.model", int(cmp.Model))
	s.SetUint64("clock.ticks", cmp.Clock.Ticks())
	cmp.CPU.SaveState(s)
	cmp.Mem.SaveState(s)
	return s
}

// RestoreState restores the machine from a saved state. The machine is
// unchanged if an error is returned.
func (cmp *Computer) RestoreState(s *state.Store) error {
	m, err := s.Int("computer.model")
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	if Model(m) != cmp.Model {
		return curated.Errorf(WrongModel, Model(m), cmp.Model)
	}
	ticks, err := s.Uint64("clock.ticks")
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	if err := bus.RestoreAll(s, cmp.Mem, cmp.CPU); err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	cmp.Clock.SetTicks(ticks)
	cmp.Limiter.RequestResync()

	return nil
}
