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
	"strings"
)

// Flag is a bit in the status word.
type Flag uint16

// List of valid flags. Priority is a single bit on the 1801VM1. Halt is the
// HALT mode bit.
const (
	Carry    Flag = 0000001
	Overflow Flag = 0000002
	Zero     Flag = 0000004
	Negative Flag = 0000010
	Trace    Flag = 0000020
	Priority Flag = 0000200
	Halt     Flag = 0000400

	// the condition codes affected by the CCC/SCC instructions
	ConditionCodes = Carry | Overflow | Zero | Negative
)

// ResetValue is the value of the status word after a reset.
const ResetValue = 0000340

// Status is the processor status word.
type Status struct {
	value uint16
}

// Label returns the canonical name for the status word.
func (sw Status) Label() string {
	return "PSW"
}

func (sw Status) String() string {
	s := strings.Builder{}

	flag := func(f Flag, set rune, unset rune) {
		if sw.Get(f) {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Halt, 'H', 'h')
	flag(Priority, 'P', 'p')
	flag(Trace, 'T', 't')
	flag(Negative, 'N', 'n')
	flag(Zero, 'Z', 'z')
	flag(Overflow, 'V', 'v')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Reset status word to the reset value.
func (sw *Status) Reset() {
	sw.value = ResetValue
}

// Value returns the status word as a 16 bit value.
func (sw Status) Value() uint16 {
	return sw.value
}

// Load a 16 bit value into the status word.
func (sw *Status) Load(value uint16) {
	sw.value = value
}

// Get returns true if the flag is set. If more than one flag is specified the
// function returns true if any of them are set.
func (sw Status) Get(f Flag) bool {
	return sw.value&uint16(f) != 0
}

// Set flag to the specified state.
func (sw *Status) Set(f Flag, set bool) {
	if set {
		sw.value |= uint16(f)
	} else {
		sw.value &^= uint16(f)
	}
}

// Clear all the specified flags.
func (sw *Status) Clear(f Flag) {
	sw.value &^= uint16(f)
}

// SetNZ sets the Negative and Zero flags according to the result. The sign
// bit depends on the byte mode.
func (sw *Status) SetNZ(byteMode bool, result uint16) {
	if byteMode {
		sw.Set(Negative, result&0x0080 != 0)
		sw.Set(Zero, result&0x00ff == 0)
		return
	}
	sw.Set(Negative, result&0x8000 != 0)
	sw.Set(Zero, result == 0)
}
