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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbk/test"
)

func TestSlots(t *testing.T) {
	test.ExpectEquality(t, memorymap.Slot(0), 0)
	test.ExpectEquality(t, memorymap.Slot(017777), 0)
	test.ExpectEquality(t, memorymap.Slot(020000), 1)
	test.ExpectEquality(t, memorymap.Slot(0177777), 7)
	test.ExpectEquality(t, memorymap.SlotOrigin(4), 0100000)
}

func TestDeviceIndex(t *testing.T) {
	test.ExpectEquality(t, memorymap.NumDeviceRegisters, 256)
	test.ExpectEquality(t, memorymap.DeviceIndex(0177000), 0)
	test.ExpectEquality(t, memorymap.DeviceIndex(0177717), 0347)
	test.ExpectEquality(t, memorymap.DeviceAddress(0347), 0177716)
}

func TestDevicesStart(t *testing.T) {
	start := memorymap.IOBase
	test.ExpectEquality(t, memorymap.MapAddress(0176776, start), memorymap.Memory)
	test.ExpectEquality(t, memorymap.MapAddress(0177000, start), memorymap.Devices)

	// a block ending below the boundary does not move it
	start = memorymap.PushDevicesStart(start, 0100000)
	test.ExpectEquality(t, start, memorymap.IOBase)

	// a block ending past the boundary pushes it forward
	start = memorymap.PushDevicesStart(start, 0177200)
	test.ExpectEquality(t, start, 0177200)

	// but never backward
	start = memorymap.PushDevicesStart(start, 0177100)
	test.ExpectEquality(t, start, 0177200)

	// and no further than the cap
	start = memorymap.PushDevicesStart(start, 0200000)
	test.ExpectEquality(t, start, memorymap.IOWindowCap)
}
