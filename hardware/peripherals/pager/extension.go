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

// ExtensionAddress is the address of the extension register.
const ExtensionAddress = uint16(0177600)

// Bits in the extension register.
const (
	ExtSegment = uint16(0000001)
	ExtPage    = uint16(0000006)
	ExtEnable  = uint16(0000010)
	ExtProtect = uint16(0000020)

	extBits = ExtSegment | ExtPage | ExtEnable | ExtProtect
)

// Gate is implemented by the block that switches the extension memory on
// and off.
type Gate interface {
	SetEnabled(enabled bool)
}

// Window is implemented by the block that selects the visible segment of
// the extension page.
type Window interface {
	Select(segment int) bool
	SetLimits(readable int, writable int)
}

// Extension implements the bus.Device and bus.Stateful interfaces.
type Extension struct {
	gate   Gate
	window Window
	pages  Selector

	// the readable and writable extents of the window in bytes when the
	// window is not write protected
	readable int
	writable int

	value uint16
}

// NewExtension is the preferred method of initialisation for the Extension
// type.
func NewExtension(gate Gate, window Window, pages Selector, readable int, writable int) *Extension {
	return &Extension{
		gate:     gate,
		window:   window,
		pages:    pages,
		readable: readable,
		writable: writable,
	}
}

func (ext *Extension) String() string {
	return fmt.Sprintf("extension: %03o", ext.value)
}

func (ext *Extension) apply(value uint16) {
	ext.value = value & extBits

	ext.pages.Select(int(ext.value&ExtPage) >> 1)
	ext.window.Select(int(ext.value & ExtSegment))
	if ext.value&ExtProtect == ExtProtect {
		ext.window.SetLimits(ext.readable, 0)
	} else {
		ext.window.SetLimits(ext.readable, ext.writable)
	}
	ext.gate.SetEnabled(ext.value&ExtEnable == ExtEnable)
}

// Label implements the bus.Device interface.
func (ext *Extension) Label() string {
	return "extension"
}

// Addresses implements the bus.Device interface.
func (ext *Extension) Addresses() []uint16 {
	return []uint16{ExtensionAddress}
}

// Init implements the bus.Device interface. Any reset disables the
// extension memory.
func (ext *Extension) Init(_ uint64, _ bool) {
	ext.apply(0)
}

// Read implements the bus.Device interface.
func (ext *Extension) Read(_ uint64, address uint16) int {
	if address != ExtensionAddress {
		return bus.Error
	}
	return int(ext.value)
}

// Write implements the bus.Device interface.
func (ext *Extension) Write(_ uint64, byteMode bool, address uint16, value uint16) bool {
	if address&^1 != ExtensionAddress {
		return false
	}
	ext.apply(bus.Merge(ext.value, byteMode, address, value))
	return true
}

// SaveState implements the bus.Stateful interface.
func (ext *Extension) SaveState(s *state.Store) {
	s.SetUint16("extension.value", ext.value)
}

// RestoreState implements the bus.Stateful interface.
func (ext *Extension) RestoreState(s *state.Store) error {
	v, err := s.Uint16("extension.value")
	if err != nil {
		return err
	}
	ext.apply(v)
	return nil
}
