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

package bus

import (
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Error is returned by read functions when no memory block or device answered
// the read request. Valid read values are always in the range 0 to 0177777.
const Error = -1

// Block is a contiguous range of memory. The range begins at Start() and is
// Size() words long.
//
// Offsets are byte offsets from the start of the block. Read() returns the
// word that contains the offset, it is the responsibility of the caller to
// select the byte. In byte mode, Write() writes the low byte of value to the
// byte at offset. An even offset is the low byte of the word.
type Block interface {
	// the label is used in summaries and as the key prefix for saved state
	Label() string

	Start() uint16

	// size in words
	Size() int

	// the underlying data. may be nil if the block has no data of its own
	// or if no data is currently selected
	Data() []uint16

	Read(offset int) int
	Write(byteMode bool, offset int, value uint16) bool

	// returns true if the address falls in the block's range
	IsRelatedAddress(address uint16) bool
}

// Device is a memory mapped I/O device. A device answers to the word
// addresses listed by Addresses(). More than one device can answer to the
// same address.
//
// Every call is given the tick count of the machine at the time of the
// access. Devices should use that value to model their own timing and never
// consult the wall clock.
type Device interface {
	// the label is used in summaries and as the key prefix for saved state
	Label() string

	// the word addresses the device answers to
	Addresses() []uint16

	// initialise the device. hardReset is true on power on and on a reset
	// of the whole machine. it is false for the RESET instruction
	Init(tick uint64, hardReset bool)

	// read the word at the word address. returns Error if the device does
	// not answer reads at that address
	Read(tick uint64, address uint16) int

	// write to the device. the address is the byte address, meaning the
	// address is odd for a byte write to the high byte. in byte mode only
	// the low byte of value is meaningful. returns true if the device
	// accepted the write
	Write(tick uint64, byteMode bool, address uint16, value uint16) bool
}

// Stateful is implemented by blocks and devices that can save and restore
// their state.
//
// RestoreState() must check every value it needs from the Store before
// changing any state. If an error is returned the component must be
// unchanged.
type Stateful interface {
	SaveState(s *state.Store)
	RestoreState(s *state.Store) error
}

// RestoreAll restores each component from the Store in turn. If any component
// fails, every component is returned to the state it had before the call and
// the error is returned.
func RestoreAll(s *state.Store, components ...Stateful) error {
	backup := state.NewStore()
	for _, c := range components {
		c.SaveState(backup)
	}

	for _, c := range components {
		if err := c.RestoreState(s); err != nil {
			for _, r := range components {
				_ = r.RestoreState(backup)
			}
			return err
		}
	}

	return nil
}

// CPUBus defines the memory operations required by the CPU.
type CPUBus interface {
	ReadMemory(byteMode bool, address uint16) int
	WriteMemory(byteMode bool, address uint16, value uint16) bool

	// reinitialise devices as a result of the RESET instruction
	ResetDevices()
}

// DebuggerBus defines the meta-operations for memory. Peek() and Poke()
// operate on memory blocks only and have no side effects on devices.
type DebuggerBus interface {
	Peek(address uint16) int
	Poke(address uint16, value uint16) bool
}

// SelectByte returns the byte from a word value selected by the address. The
// high byte for odd addresses, the low byte for even addresses. Error values
// are returned unchanged.
func SelectByte(value int, address uint16) int {
	if value == Error {
		return Error
	}
	if address&1 == 1 {
		return (value >> 8) & 0xff
	}
	return value & 0xff
}

// Merge returns the result of writing value to the word at address. In byte
// mode the byte selected by the address is replaced and the other byte is
// preserved.
func Merge(word uint16, byteMode bool, address uint16, value uint16) uint16 {
	if !byteMode {
		return value
	}
	if address&1 == 1 {
		return (word & 0x00ff) | (value << 8)
	}
	return (word & 0xff00) | (value & 0x00ff)
}
