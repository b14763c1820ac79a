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

// Package registers implements the register file and status word of the
// 1801VM1 CPU.
//
// The register file has eight 16 bit registers. By convention R6 is the stack
// pointer (SP) and R7 is the program counter (PC). Registers can be accessed
// in byte mode or word mode. In byte mode only the low byte is read or
// written, the high byte of the register is untouched and no sign extension
// happens:
//
//	r.Write(false, 0, 0177400)
//	r.Write(true, 0, 0123)
//	r.Read(false, 0) // 0177523
//	r.Read(true, 0)  // 0123
//
// Increment() and Decrement() step a register by one in byte mode and by two
// in word mode. SP and PC always step by two.
//
// The Status type is the processor status word (PSW). Flags are tested and
// changed with Get(), Set() and Clear(). The SetNZ() function is a helper for
// the common case of setting the Negative and Zero flags from a result.
package registers
