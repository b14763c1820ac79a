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
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
)

// location is the result of resolving an operand. the operand is either a
// register or an address on the bus.
type location struct {
	register bool
	reg      int
	address  uint16
}

// addressingMode is the implementation of one addressing mode.
//
// the pre function is called before the address is calculated and the post
// function after. the post function is called even if the address could not
// be calculated, meaning that register changes caused by the addressing mode
// are not undone by a bus fault.
type addressingMode struct {
	direct  bool
	pre     func(mc *CPU, byteMode bool, reg int)
	address func(mc *CPU, reg int) int
	post    func(mc *CPU, byteMode bool, reg int)
}

// readWord reads a word from the bus for the purposes of address calculation.
func (mc *CPU) readWord(address uint16) int {
	return mc.mem.ReadMemory(false, address)
}

// the base of an index is the register value. for the PC that is the address
// after the index word
func indexBase(mc *CPU, reg int) uint16 {
	if reg == registers.PC {
		return mc.Regs.PC() + 2
	}
	return mc.Regs.Read(false, reg)
}

func indexAddress(mc *CPU, reg int) int {
	x := mc.readWord(mc.Regs.PC())
	if x == bus.Error {
		return bus.Error
	}
	return int(indexBase(mc, reg) + uint16(x))
}

func skipIndexWord(mc *CPU, _ bool, _ int) {
	mc.Regs.SetPC(mc.Regs.PC() + 2)
}

func deferred(mc *CPU, address int) int {
	if address == bus.Error {
		return bus.Error
	}
	return mc.readWord(uint16(address))
}

// addressingModes is indexed by the addressing mode field of an instruction.
var addressingModes = [8]addressingMode{
	instructions.Register: {
		direct: true,
	},
	instructions.RegisterDeferred: {
		address: func(mc *CPU, reg int) int {
			return int(mc.Regs.Read(false, reg))
		},
	},
	instructions.Autoincrement: {
		address: func(mc *CPU, reg int) int {
			return int(mc.Regs.Read(false, reg))
		},
		post: func(mc *CPU, byteMode bool, reg int) {
			mc.Regs.Increment(byteMode, reg)
		},
	},
	instructions.AutoincrementDeferred: {
		address: func(mc *CPU, reg int) int {
			return mc.readWord(mc.Regs.Read(false, reg))
		},
		post: func(mc *CPU, _ bool, reg int) {
			mc.Regs.Increment(false, reg)
		},
	},
	instructions.Autodecrement: {
		pre: func(mc *CPU, byteMode bool, reg int) {
			mc.Regs.Decrement(byteMode, reg)
		},
		address: func(mc *CPU, reg int) int {
			return int(mc.Regs.Read(false, reg))
		},
	},
	instructions.AutodecrementDeferred: {
		pre: func(mc *CPU, _ bool, reg int) {
			mc.Regs.Decrement(false, reg)
		},
		address: func(mc *CPU, reg int) int {
			return mc.readWord(mc.Regs.Read(false, reg))
		},
	},
	instructions.Index: {
		address: indexAddress,
		post:    skipIndexWord,
	},
	instructions.IndexDeferred: {
		address: func(mc *CPU, reg int) int {
			return deferred(mc, indexAddress(mc, reg))
		},
		post: skipIndexWord,
	},
}

// resolve the operand for the addressing mode and register. returns false if
// the bus did not answer during address calculation, in which case the fault
// flag is set.
func (mc *CPU) resolve(byteMode bool, mode instructions.AddressingMode, reg int) (location, bool) {
	m := &addressingModes[mode]
	if m.direct {
		return location{register: true, reg: reg}, true
	}

	if m.pre != nil {
		m.pre(mc, byteMode, reg)
	}
	a := m.address(mc, reg)
	if m.post != nil {
		m.post(mc, byteMode, reg)
	}

	if a == bus.Error {
		mc.fault = true
		return location{}, false
	}

	return location{address: uint16(a)}, true
}

// readLocation returns the value at the location. in byte mode the value is
// the byte, with no sign extension.
func (mc *CPU) readLocation(byteMode bool, loc location) (uint16, bool) {
	if loc.register {
		return mc.Regs.Read(byteMode, loc.reg), true
	}
	v := mc.mem.ReadMemory(byteMode, loc.address)
	if v == bus.Error {
		mc.fault = true
		return 0, false
	}
	return uint16(v), true
}

// writeLocation writes the value to the location. in byte mode only the low
// byte of the value is written.
func (mc *CPU) writeLocation(byteMode bool, loc location, value uint16) bool {
	if loc.register {
		mc.Regs.Write(byteMode, loc.reg, value)
		return true
	}
	if !mc.mem.WriteMemory(byteMode, loc.address, value) {
		mc.fault = true
		return false
	}
	return true
}

// readOperand resolves the operand and reads the value.
func (mc *CPU) readOperand(byteMode bool, mode instructions.AddressingMode, reg int) (uint16, bool) {
	loc, ok := mc.resolve(byteMode, mode, reg)
	if !ok {
		return 0, false
	}
	return mc.readLocation(byteMode, loc)
}

// ResolveAddress returns the effective address for the addressing mode and
// register without changing the state of the CPU. Index modes read the index
// word at the PC. Returns bus.Error for the Register mode or if the bus does
// not answer. Used by debuggers.
func (mc *CPU) ResolveAddress(byteMode bool, mode instructions.AddressingMode, reg int) int {
	if addressingModes[mode].direct {
		return bus.Error
	}

	regs := mc.Regs.Snapshot()
	fault := mc.fault
	defer func() {
		mc.Regs.Plumb(regs)
		mc.fault = fault
	}()

	loc, ok := mc.resolve(byteMode, mode, reg)
	if !ok {
		return bus.Error
	}
	return int(loc.address)
}
