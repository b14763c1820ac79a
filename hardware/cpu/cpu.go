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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/logger"
)

// Sentinel errors returned by ExecuteInstruction().
const (
	Halted             = "cpu: halted at %06o"
	IllegalInstruction = "cpu: illegal instruction %06o at %06o"
)

// BootRegister is the address of the register that supplies the high byte of
// the program counter on reset.
const BootRegister = uint16(0177716)

// CPU implements the 1801VM1. Register logic is implemented by the Registers
// and Status types in the registers sub-package.
type CPU struct {
	Regs   registers.Registers
	Status registers.Status

	mem bus.CPUBus

	// last result. valid after every call to ExecuteInstruction()
	LastResult execution.Result

	// what to do when the instruction word is not a valid instruction
	Illegal IllegalPolicy

	// log every trap entry
	LogTraps bool

	// the CPU is waiting for an interrupt after a WAIT instruction
	Waiting bool

	// the CPU could not enter a trap. requires a Reset()
	Halted bool

	// set during execution of an instruction if the bus did not answer
	fault bool

	// pending interrupt requests. requests can come from any goroutine
	crit       sync.Mutex
	pending    []uint16
	hasPending atomic.Bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is in the reset state but the PC is not loaded from the boot register
// until Reset() is called.
func NewCPU(mem bus.CPUBus) *CPU {
	buildTable()
	mc := &CPU{
		mem: mem,
	}
	mc.Status.Reset()
	return mc
}

// Plumb a new CPUBus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s=%s", mc.Regs.String(), mc.Status.Label(), mc.Status.String())
}

// Reset the CPU. R0 to R6 are cleared, the status word is set to its reset
// value and the PC is loaded from the high byte of the boot register. Pending
// interrupts are discarded. Devices are not reset.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Regs.Reset()
	mc.Status.Reset()
	mc.Waiting = false
	mc.Halted = false
	mc.fault = false

	mc.crit.Lock()
	mc.pending = mc.pending[:0]
	mc.hasPending.Store(false)
	mc.crit.Unlock()

	v := mc.mem.ReadMemory(false, BootRegister)
	if v == bus.Error {
		logger.Logf(logger.Allow, "cpu", "no boot register at %06o", BootRegister)
		v = 0
	}
	mc.Regs.SetPC(uint16(v) & 0177400)
}

// RequestInterrupt asks for a vectored interrupt. The interrupt is serviced
// before the next instruction if the Priority flag is clear. Requests are
// serviced in the order they are made. Safe to call from any goroutine.
func (mc *CPU) RequestInterrupt(vector uint16) {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.pending = append(mc.pending, vector)
	mc.hasPending.Store(true)
}

// nextInterrupt returns the vector of the next pending interrupt
func (mc *CPU) nextInterrupt() (uint16, bool) {
	if !mc.hasPending.Load() {
		return 0, false
	}

	mc.crit.Lock()
	defer mc.crit.Unlock()

	if len(mc.pending) == 0 {
		return 0, false
	}
	v := mc.pending[0]
	mc.pending = mc.pending[1:]
	mc.hasPending.Store(len(mc.pending) > 0)

	return v, true
}

// ExecuteInstruction executes the instruction at the PC. If an interrupt is
// pending and can be serviced, the interrupt is serviced instead. If the CPU
// is waiting then no instruction is executed and a small amount of time
// passes.
//
// An error is returned only if the CPU is halted or if the instruction is
// illegal and the Illegal field is IllegalHalt.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC()

	if mc.Halted {
		mc.LastResult.Halt = true
		return curated.Errorf(Halted, mc.Regs.PC())
	}

	if !mc.Status.Get(registers.Priority) {
		if vector, ok := mc.nextInterrupt(); ok {
			mc.Waiting = false
			mc.LastResult.Interrupt = true
			mc.LastResult.Ticks = instructions.TrapTicks
			mc.enterTrap(vector)
			return nil
		}
	}

	if mc.Waiting {
		mc.LastResult.Waiting = true
		mc.LastResult.Ticks = instructions.WaitTicks
		return nil
	}

	traced := mc.Status.Get(registers.Trace)

	w := mc.mem.ReadMemory(false, mc.Regs.PC())
	if w == bus.Error {
		mc.LastResult.BusError = true
		mc.LastResult.Ticks = instructions.TrapTicks
		mc.enterTrap(vectorBusError)
		return nil
	}
	mc.Regs.SetPC(mc.Regs.PC() + 2)

	instruction := uint16(w)
	mc.LastResult.InstructionWord = instruction

	e := &table[instruction]
	if e.defn == nil {
		return mc.illegal(instruction)
	}

	mc.LastResult.Defn = e.defn
	mc.LastResult.Ticks = e.defn.Ticks(instruction)
	mc.fault = false

	e.exec(mc, e.defn, instruction)

	if mc.fault {
		mc.LastResult.BusError = true
		mc.trap(vectorBusError)
		return nil
	}

	// RTT inhibits the trace trap for one instruction. RTI does not
	switch e.defn.Operator {
	case instructions.RTT:
		traced = false
	case instructions.RTI:
		traced = traced || mc.Status.Get(registers.Trace)
	}

	if traced && !mc.Halted {
		mc.LastResult.Traced = true
		mc.trap(vectorTrace)
	}

	return nil
}

// illegal handles an instruction word with no definition according to the
// illegal instruction policy.
func (mc *CPU) illegal(instruction uint16) error {
	mc.LastResult.Illegal = true

	switch mc.Illegal {
	case IllegalHalt:
		mc.LastResult.Ticks = instructions.IllegalTicks
		mc.Halted = true
		mc.LastResult.Halt = true
		return curated.Errorf(IllegalInstruction, instruction, mc.LastResult.Address)
	case IllegalLog:
		mc.LastResult.Ticks = instructions.IllegalTicks
		logger.Logf(logger.Allow, "cpu", "illegal instruction %06o at %06o", instruction, mc.LastResult.Address)
	default:
		mc.LastResult.Ticks = instructions.TrapTicks
		mc.enterTrap(vectorIllegal)
	}

	return nil
}
