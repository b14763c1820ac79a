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

// Package blocks implements the memory blocks that can be attached to the
// memory bus. All types implement the bus.Block interface.
//
// RAM is a plain array of words. A RAM block can be made read-only, in which
// case it is ROM and every write is rejected. The contents of ROM are set
// with the Load() function.
//
// The composite blocks delegate every access to another block:
//
//	Paged      - one of N RAM pages owned by the block
//	Banked     - one of N delegate blocks, which can be shared with other
//	             blocks
//	Segmented  - one of N equal windows into a larger block, with limits on
//	             how much of the window is readable and writable
//	Selectable - a delegate that can be switched on and off
//
// Composite blocks can be nested. For example, the backing block of a
// Segmented block can be a Paged block.
//
// The data of a block is deliberately not protected by a mutex. The only
// critical section is the selection of the delegate in a composite block,
// which means a reader will never see a half changed selection.
package blocks
