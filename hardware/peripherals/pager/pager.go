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

package pager

import (
	"fmt"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Address of the pager register. It is the same as the system register.
const Address = uint16(0177716)

// Command is the bit that marks a write as a pager command.
const Command = uint16(0004000)

// NumPages is the number of RAM pages that can be selected.
const NumPages = 8

// NumROMBanks is the number of ROM banks that can be selected in the second
// window.
const NumROMBanks = 4

// the physical page selected by each value of the page fields. the wiring of
// the page lines is not in numerical order
var pageMap = [NumPages]int{1, 5, 2, 3, 4, 7, 0, 6}

// the bits in the pager command that select a ROM bank, in bank order
var romBits = [NumROMBanks]uint16{0000001, 0000002, 0000010, 0000020}

// the command applied on power on. the first window shows the first page and
// the second window the first ROM bank
const powerOn = Command | 0000001

// Selector is implemented by the blocks that the pager drives. Banks 0 to 7
// of a selector are RAM pages. Banks 8 and upwards are ROM banks.
type Selector interface {
	Select(index int) bool
}

// Pager implements the bus.Device and bus.Stateful interfaces.
type Pager struct {
	windowA Selector
	windowB Selector
	value   uint16
}

// NewPager is the preferred method of initialisation for the Pager type.
func NewPager(windowA Selector, windowB Selector) *Pager {
	return &Pager{
		windowA: windowA,
		windowB: windowB,
	}
}

func (pg *Pager) String() string {
	a, b, rom := Decode(pg.value)
	if rom {
		return fmt.Sprintf("pager: A=page%d B=rom%d", a, b)
	}
	return fmt.Sprintf("pager: A=page%d B=page%d", a, b)
}

// Decode returns the page selected in the first window and the page or ROM
// bank selected in the second window. The rom flag is true if the second
// value is a ROM bank.
func Decode(value uint16) (a int, b int, rom bool) {
	a = pageMap[(value>>12)&7]
	for i, bit := range romBits {
		if value&bit == bit {
			return a, i, true
		}
	}
	return a, pageMap[(value>>8)&7], false
}

func (pg *Pager) apply(value uint16) {
	pg.value = value
	a, b, rom := Decode(value)
	pg.windowA.Select(a)
	if rom {
		pg.windowB.Select(NumPages + b)
	} else {
		pg.windowB.Select(b)
	}
}

// Value returns the most recent pager command.
func (pg *Pager) Value() uint16 {
	return pg.value
}

// Label implements the bus.Device interface.
func (pg *Pager) Label() string {
	return "pager"
}

// Addresses implements the bus.Device interface.
func (pg *Pager) Addresses() []uint16 {
	return []uint16{Address}
}

// Init implements the bus.Device interface. The RESET instruction does not
// change the selection.
func (pg *Pager) Init(_ uint64, hardReset bool) {
	if hardReset {
		pg.apply(powerOn)
	}
}

// Read implements the bus.Device interface. The pager is write only.
func (pg *Pager) Read(_ uint64, _ uint16) int {
	return bus.Error
}

// Write implements the bus.Device interface. Only word writes with the
// Command bit set are accepted.
func (pg *Pager) Write(_ uint64, byteMode bool, address uint16, value uint16) bool {
	if byteMode || address != Address || value&Command == 0 {
		return false
	}
	pg.apply(value)
	return true
}

// SaveState implements the bus.Stateful interface.
func (pg *Pager) SaveState(s *state.Store) {
	s.SetUint16("pager.value", pg.value)
}

// RestoreState implements the bus.Stateful interface. The windows are
// reselected from the restored value.
func (pg *Pager) RestoreState(s *state.Store) error {
	v, err := s.Uint16("pager.value")
	if err != nil {
		return err
	}
	pg.apply(v)
	return nil
}
