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

// Package hardware is the base package for the BK emulation. The Computer
// type owns the memory bus, the CPU, the clock and the pacing of the
// emulation.
//
// A Computer is created for one of the supported models:
//
//	BK-0010
//
//	  000000-077777  RAM (32KB)
//	  100000-117777  monitor ROM
//	  120000-157777  BASIC ROM. only present if loaded
//	  160000-177577  ROM
//	  177600-177777  I/O registers
//
//	BK-0011M
//
//	  000000-037777  RAM page 0
//	  040000-077777  window A. any of the eight RAM pages
//	  100000-137777  window B. any of the eight RAM pages or one of four ROM banks
//	  140000-157777  system ROM
//	  160000-177577  extension memory. only present when enabled
//	  177600-177777  I/O registers
//
// Emulation is driven either one instruction at a time with Step() or
// continuously with Run(). The state of a running emulation is controlled by
// the Governor field.
package hardware
