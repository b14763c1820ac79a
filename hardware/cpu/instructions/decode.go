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

package instructions

// SourceMode returns the addressing mode of the source operand of a
// DoubleOperand instruction.
func SourceMode(instruction uint16) AddressingMode {
	return AddressingMode((instruction >> 9) & 07)
}

// SourceRegister returns the register of the source operand of a
// DoubleOperand instruction.
func SourceRegister(instruction uint16) int {
	return int((instruction >> 6) & 07)
}

// DestinationMode returns the addressing mode of the destination operand.
// Also used for the operand of SourceOperand instructions.
func DestinationMode(instruction uint16) AddressingMode {
	return AddressingMode((instruction >> 3) & 07)
}

// DestinationRegister returns the register of the destination operand. Also
// used for the register of RegisterOnly instructions.
func DestinationRegister(instruction uint16) int {
	return int(instruction & 07)
}

// RegisterField returns the register field of RegisterDestination and
// RegisterOffset instructions.
func RegisterField(instruction uint16) int {
	return int((instruction >> 6) & 07)
}

// BranchOffset returns the signed offset in bytes of a branch instruction.
func BranchOffset(instruction uint16) int {
	return int(int8(instruction&0377)) * 2
}

// SOBOffset returns the offset in bytes of a SOB instruction. The offset is
// always backwards and is returned as a positive number.
func SOBOffset(instruction uint16) int {
	return int(instruction&077) * 2
}

// Number returns the value of the number field for Number6 and Number8
// instructions.
func Number(instruction uint16, f Format) int {
	return int(instruction & f.OperandMask())
}
