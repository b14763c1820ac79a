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

package cpu

import (
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// SaveState implements the bus.Stateful interface.
func (mc *CPU) SaveState(s *state.Store) {
	regs := mc.Regs.Snapshot()
	s.SetWords("cpu.registers", regs[:])
	s.SetUint16("cpu.psw", mc.Status.Value())
	s.SetBool("cpu.waiting", mc.Waiting)
	s.SetBool("cpu.halted", mc.Halted)

	mc.crit.Lock()
	defer mc.crit.Unlock()
	s.SetWords("cpu.pending", mc.pending)
}

// RestoreState implements the bus.Stateful interface.
func (mc *CPU) RestoreState(s *state.Store) error {
	regs, err := s.Words("cpu.registers", registers.NumRegisters)
	if err != nil {
		return err
	}
	psw, err := s.Uint16("cpu.psw")
	if err != nil {
		return err
	}
	waiting, err := s.Bool("cpu.waiting")
	if err != nil {
		return err
	}
	halted, err := s.Bool("cpu.halted")
	if err != nil {
		return err
	}
	pending, err := s.Words("cpu.pending", -1)
	if err != nil {
		return err
	}

	var r [registers.NumRegisters]uint16
	copy(r[:], regs)
	mc.Regs.Plumb(r)
	mc.Status.Load(psw)
	mc.Waiting = waiting
	mc.Halted = halted
	mc.LastResult.Reset()

	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.pending = append(mc.pending[:0], pending...)
	mc.hasPending.Store(len(mc.pending) > 0)

	return nil
}
