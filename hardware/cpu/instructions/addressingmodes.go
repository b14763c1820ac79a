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

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of addressing modes. The value of each mode is the value of the mode
// field in the instruction word.
const (
	Register              AddressingMode = iota // Rn
	RegisterDeferred                            // (Rn)
	Autoincrement                               // (Rn)+
	AutoincrementDeferred                       // @(Rn)+
	Autodecrement                               // -(Rn)
	AutodecrementDeferred                       // @-(Rn)
	Index                                       // X(Rn)
	IndexDeferred                               // @X(Rn)
)

func (m AddressingMode) String() string {
	switch m {
	case Register:
		return "Register"
	case RegisterDeferred:
		return "RegisterDeferred"
	case Autoincrement:
		return "Autoincrement"
	case AutoincrementDeferred:
		return "AutoincrementDeferred"
	case Autodecrement:
		return "Autodecrement"
	case AutodecrementDeferred:
		return "AutodecrementDeferred"
	case Index:
		return "Index"
	case IndexDeferred:
		return "IndexDeferred"
	}
	return "unknown addressing mode"
}

// Deferred returns true if the addressing mode is one of the deferred modes.
func (m AddressingMode) Deferred() bool {
	return m&1 == 1 && m != Register
}

// ExtraWord returns true if the addressing mode consumes an additional word
// from the instruction stream. The Autoincrement modes used with the PC also
// consume a word (immediate and absolute addressing) but that is a consequence
// of the PC being incremented rather than a property of the mode.
func (m AddressingMode) ExtraWord() bool {
	return m == Index || m == IndexDeferred
}
