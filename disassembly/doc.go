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

// Package disassembly produces PDP-11 assembler listings of BK memory.
// Instructions are decoded with the Definitions of the instructions package,
// meaning that the disassembly always agrees with the CPU on which words are
// valid instructions.
//
// Operands are written in the standard PDP-11 assembler syntax. Program
// counter addressing is written in the immediate, absolute and relative
// forms. Absolute and relative addresses are replaced by a symbol when the
// symbols table has one.
//
// Memory is read with Peek() so disassembly never has an effect on devices.
package disassembly
