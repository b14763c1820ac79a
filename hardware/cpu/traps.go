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
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/logger"
)

// Trap vectors.
const (
	VectorBusError = uint16(0004)
	VectorIllegal  = uint16(0010)
	VectorTrace    = uint16(0014)
	VectorIOT      = uint16(0020)
	VectorEMT      = uint16(0030)
	VectorTRAP     = uint16(0034)
)

const (
	vectorBusError = VectorBusError
	vectorIllegal  = VectorIllegal
	vectorTrace    = VectorTrace
)

// the bits of the status word that are loaded from a trap vector or from the
// stack by RTI and RTT
const pswMask = 0000377

// trap enters a trap in addition to whatever the instruction has done. the
// time taken to enter the trap is added to the instruction's ticks.
func (mc *CPU) trap(vector uint16) {
	mc.LastResult.Ticks += instructions.TrapTicks
	mc.enterTrap(vector)
}

// enterTrap pushes the status word and the PC to the stack and loads new
// values from the vector. if any of that fails the CPU is halted.
func (mc *CPU) enterTrap(vector uint16) bool {
	mc.LastResult.Trap = vector

	if mc.LogTraps {
		logger.Logf(logger.Allow, "cpu", "trap %03o at %06o", vector, mc.LastResult.Address)
	}

	if !mc.push(mc.Status.Value()) || !mc.push(mc.Regs.PC()) {
		return mc.doubleFault(vector)
	}

	pc := mc.mem.ReadMemory(false, vector)
	psw := mc.mem.ReadMemory(false, vector+2)
	if pc == bus.Error || psw == bus.Error {
		return mc.doubleFault(vector)
	}

	mc.Regs.SetPC(uint16(pc))
	mc.Status.Load(uint16(psw) & pswMask)

	return true
}

func (mc *CPU) doubleFault(vector uint16) bool {
	mc.Halted = true
	mc.LastResult.Halt = true
	logger.Logf(logger.Allow, "cpu", "halted entering trap %03o at %06o (SP=%06o)", vector, mc.LastResult.Address, mc.Regs.SP())
	return false
}

// push a word onto the stack. returns false if the bus did not accept the
// write. the stack pointer is changed regardless.
func (mc *CPU) push(value uint16) bool {
	sp := mc.Regs.SP() - 2
	mc.Regs.SetSP(sp)
	return mc.mem.WriteMemory(false, sp, value)
}

// pop a word from the stack. the stack pointer is unchanged if the bus did
// not answer.
func (mc *CPU) pop() (uint16, bool) {
	v := mc.mem.ReadMemory(false, mc.Regs.SP())
	if v == bus.Error {
		return 0, false
	}
	mc.Regs.SetSP(mc.Regs.SP() + 2)
	return uint16(v), true
}
