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

// Package memory implements the BK memory model. The Memory type is the only
// way the CPU accesses memory and devices. The bus, blocks and memorymap
// sub-packages help with this.
//
// Memory is viewed differently by different parts of the emulation. As in
// the real hardware there is one bus but the emulation presents it through
// different Go interfaces, which are defined in the bus package.
//
//	    CPU ---- cpu bus ---- MEMORY ---- * ---- memory blocks
//	                                      |
//	                             |        |
//	                             |         ---- device table ---- devices
//	                             |
//	                        debugger bus
//	                             |
//	                             |
//	                          DEBUGGER
//
// The asterisk indicates that the address is first mapped to an area. The
// address space is 64KB. Addresses below the start of device space are
// served by memory blocks, one block for each 8KB slot at most. A block can
// cover more than one slot.
//
// Device space begins at 0177000 but the start can be pushed upward by a
// memory block that extends into it. The push can go no further than
// 0177600. Device space is a table of 256 word registers and each register
// can be served by any number of devices. The value read from a register
// is the OR of every device that answers. A write is accepted if any device
// accepts it.
//
// Word access always ignores the lowest bit of the address. Byte access
// reads the containing word and selects the byte.
//
// A failed access is not an error in the Go sense. Reads return bus.Error
// and writes return false. It is up to the CPU to decide what happens next.
package memory
