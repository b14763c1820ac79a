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

package registers

import (
	"fmt"
	"strings"
)

// Register numbers with special meaning.
const (
	SP = 6
	PC = 7

	NumRegisters = 8
)

// Registers is the register file of the CPU.
type Registers struct {
	r [NumRegisters]uint16
}

// Label returns the canonical name for the register. R6 and R7 are labelled
// SP and PC.
func Label(reg int) string {
	switch reg {
	case SP:
		return "SP"
	case PC:
		return "PC"
	}
	return fmt.Sprintf("R%d", reg)
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for i := range r.r {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%06o", Label(i), r.r[i]))
	}
	return s.String()
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	clear(r.r[:])
}

// Read the register. In byte mode only the low byte is returned.
func (r *Registers) Read(byteMode bool, reg int) uint16 {
	if byteMode {
		return r.r[reg] & 0x00ff
	}
	return r.r[reg]
}

// Write value to register. In byte mode only the low byte of the register is
// changed.
func (r *Registers) Write(byteMode bool, reg int, value uint16) {
	if byteMode {
		r.r[reg] = (r.r[reg] & 0xff00) | (value & 0x00ff)
		return
	}
	r.r[reg] = value
}

// Step returns the amount a register changes by in an autoincrement or
// autodecrement addressing mode.
func Step(byteMode bool, reg int) uint16 {
	if byteMode && reg != SP && reg != PC {
		return 1
	}
	return 2
}

// Increment register by the amount returned by Step().
func (r *Registers) Increment(byteMode bool, reg int) {
	r.r[reg] += Step(byteMode, reg)
}

// Decrement register by the amount returned by Step().
func (r *Registers) Decrement(byteMode bool, reg int) {
	r.r[reg] -= Step(byteMode, reg)
}

// PC returns the value of the program counter.
func (r *Registers) PC() uint16 {
	return r.r[PC]
}

// SetPC sets the value of the program counter.
func (r *Registers) SetPC(value uint16) {
	r.r[PC] = value
}

// SP returns the value of the stack pointer.
func (r *Registers) SP() uint16 {
	return r.r[SP]
}

// SetSP sets the value of the stack pointer.
func (r *Registers) SetSP(value uint16) {
	r.r[SP] = value
}

// Snapshot returns a copy of all register values.
func (r *Registers) Snapshot() [NumRegisters]uint16 {
	return r.r
}

// Plumb register values from a previous call to Snapshot().
func (r *Registers) Plumb(values [NumRegisters]uint16) {
	r.r = values
}
