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

// Package sysreg implements the system register (SEL1) of the BK computers.
//
// Reading the register returns the high byte of the boot address, which the
// CPU uses as the PC after a reset. Writing the register drives the speaker
// and the tape outputs.
package sysreg

import (
	"fmt"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Address of the system register.
const Address = uint16(0177716)

// Bits in the value written to the system register.
const (
	TapeData  = uint16(0000020)
	TapeOut   = uint16(0000040)
	Speaker   = uint16(0000100)
	TapeMotor = uint16(0000200)

	// on the BK-0011M a word write with this bit set is a pager command and
	// is not seen by the system register
	PagerCommand = uint16(0004000)
)

// the bits that always read as one
const readBits = uint16(0000200)

// SpeakerFunc is called whenever the speaker bit changes.
type SpeakerFunc func(tick uint64, on bool)

// SystemRegister implements the bus.Device and bus.Stateful interfaces.
type SystemRegister struct {
	boot   uint16
	pager  bool
	output uint16

	speaker SpeakerFunc
}

// NewSystemRegister is the preferred method of initialisation for the
// SystemRegister type. The boot argument is the address the CPU should start
// from after reset. Only the high byte is significant.
//
// If pager is true, word writes with the PagerCommand bit set are refused.
func NewSystemRegister(boot uint16, pager bool) *SystemRegister {
	return &SystemRegister{
		boot:  boot & 0177400,
		pager: pager,
	}
}

func (sr *SystemRegister) String() string {
	return fmt.Sprintf("boot=%06o output=%03o", sr.boot, sr.output)
}

// SetSpeaker sets the function called when the speaker bit changes. A value
// of nil disconnects the speaker.
func (sr *SystemRegister) SetSpeaker(f SpeakerFunc) {
	sr.speaker = f
}

// SpeakerOn returns the current state of the speaker bit.
func (sr *SystemRegister) SpeakerOn() bool {
	return sr.output&Speaker == Speaker
}

// Label implements the bus.Device interface.
func (sr *SystemRegister) Label() string {
	return "sysreg"
}

// Addresses implements the bus.Device interface.
func (sr *SystemRegister) Addresses() []uint16 {
	return []uint16{Address}
}

// Init implements the bus.Device interface.
func (sr *SystemRegister) Init(tick uint64, hardReset bool) {
	if hardReset {
		sr.set(tick, 0)
	}
}

func (sr *SystemRegister) set(tick uint64, v uint16) {
	changed := (sr.output^v)&Speaker == Speaker
	sr.output = v
	if changed && sr.speaker != nil {
		sr.speaker(tick, sr.SpeakerOn())
	}
}

// Read implements the bus.Device interface.
func (sr *SystemRegister) Read(_ uint64, address uint16) int {
	if address != Address {
		return bus.Error
	}
	return int(sr.boot | readBits)
}

// Write implements the bus.Device interface. Writes to the high byte are
// accepted and ignored.
func (sr *SystemRegister) Write(tick uint64, byteMode bool, address uint16, value uint16) bool {
	if address&^1 != Address {
		return false
	}
	if !byteMode && sr.pager && value&PagerCommand == PagerCommand {
		return false
	}
	if byteMode && address&1 == 1 {
		return true
	}
	sr.set(tick, value&0x00ff)
	return true
}

// SaveState implements the bus.Stateful interface.
func (sr *SystemRegister) SaveState(s *state.Store) {
	s.SetUint16("sysreg.output", sr.output)
}

// RestoreState implements the bus.Stateful interface. The speaker function
// is not called.
func (sr *SystemRegister) RestoreState(s *state.Store) error {
	v, err := s.Uint16("sysreg.output")
	if err != nil {
		return err
	}
	sr.output = v
	return nil
}
