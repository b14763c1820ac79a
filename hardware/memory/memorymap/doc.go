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

// Package memorymap facilitates the translation of addresses to the parts of
// the machine that answer to them.
//
// The address space is 64KB. The lower part is divided into eight slots of
// 8KB each and memory blocks are placed in the slots. The top part of the
// address space, starting at IOBase, is the I/O register space. Device
// registers live there.
//
// The boundary between memory and devices is not fixed. It begins at IOBase
// and can be pushed upwards by a memory block that extends past it. It can
// never be pushed further than IOWindowCap.
package memorymap
