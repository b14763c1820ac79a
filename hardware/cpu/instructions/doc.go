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

// Package instructions defines the instruction set of the 1801VM1 CPU. This
// is the basic PDP-11 instruction set with the MARK, SOB, XOR, SXT, RTT, MFPS
// and MTPS additions. There is no EIS or FIS support.
//
// Each instruction is described by a Definition. An instruction word is
// matched to a Definition by its Opcode field and the operand bits given by
// the Format. For example, the MOV instruction has an opcode of 010000 and a
// DoubleOperand format, meaning every instruction word from 010000 to 017777
// is a MOV instruction.
//
// The operand fields of an instruction word are extracted with the decoding
// functions (SourceMode(), DestinationRegister(), BranchOffset(), etc.)
//
// The Ticks() function returns the number of clock ticks an instruction
// takes. This is the base cost of the instruction plus a surcharge for the
// addressing modes used.
package instructions
