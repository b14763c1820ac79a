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

// Package cpu emulates the 1801VM1 microprocessor found in the BK-0010 and
// BK-0011M. The 1801VM1 executes the PDP-11 instruction set without the
// extended and floating point instructions but with the MARK, SOB, XOR, SXT,
// RTT, MTPS and MFPS instructions.
//
// The instance of the CPU type requires an implementation of the bus.CPUBus
// interface as the sole argument. The CPU never owns the bus, it is a
// handle to memory that is owned by something else.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Each call executes one instruction, services one interrupt or spends a
// short amount of time waiting for an interrupt. The LastResult field
// records what happened, including the number of ticks consumed. It is the
// responsibility of the caller to advance the clock.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		clock.Advance(mc.LastResult.Ticks)
//	}
//
// Instruction words are decoded with a table of 65536 entries, one for every
// possible instruction word. The table is shared by every instance of the
// CPU and is built the first time NewCPU() is called.
//
// Bus faults are not errors in the Go sense. A fault during an instruction
// stops the instruction from completing and the CPU enters the trap at
// vector 004. How much of the instruction completed before the fault depends
// on the instruction. A fault while entering a trap halts the CPU and the CPU
// must be reset.
package cpu
