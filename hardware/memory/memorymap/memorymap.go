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

package memorymap

// Area represents the different areas of the address space.
type Area int

// List of valid Area values.
const (
	Memory Area = iota
	Devices
)

func (a Area) String() string {
	switch a {
	case Memory:
		return "memory"
	case Devices:
		return "devices"
	}
	return "undefined"
}

// Important values in the address space.
const (
	// the number of bits to shift an address to find its slot
	SlotShift = 13

	// size of a memory slot in bytes
	SlotSize = 1 << SlotShift

	// the number of memory slots
	NumSlots = 8

	// the lowest address that can be a device register
	IOBase = uint16(0177000)

	// the number of word registers in the device table
	NumDeviceRegisters = (0200000 - int(IOBase)) >> 1

	// memory blocks can push the start of device space no further than
	// this address
	IOWindowCap = uint16(0177600)

	// the highest address in the address space
	Memtop = uint16(0177777)
)

// Slot returns the memory slot that contains the address.
func Slot(address uint16) int {
	return int(address >> SlotShift)
}

// SlotOrigin returns the first address of the slot.
func SlotOrigin(slot int) uint16 {
	return uint16(slot << SlotShift)
}

// DeviceIndex returns the index into the device table for the address. The
// address must not be less than IOBase.
func DeviceIndex(address uint16) int {
	return int(address-IOBase) >> 1
}

// DeviceAddress returns the word address for an index into the device table.
func DeviceAddress(idx int) uint16 {
	return IOBase + uint16(idx<<1)
}

// MapAddress returns the area the address belongs to, given the current start
// of the device space.
func MapAddress(address uint16, devicesStart uint16) Area {
	if address >= devicesStart {
		return Devices
	}
	return Memory
}

// PushDevicesStart returns the new start of device space after adding a
// memory block that ends at the specified address. The end address is the
// first address after the block, which is why it is an int.
func PushDevicesStart(devicesStart uint16, end int) uint16 {
	if end <= int(devicesStart) {
		return devicesStart
	}
	if end >= int(IOWindowCap) {
		return IOWindowCap
	}
	return uint16(end)
}
