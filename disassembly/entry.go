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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
)

// NoTarget is the value of Entry.Target when the operand does not refer to an
// address that is known without executing the instruction.
const NoTarget = -1

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16

	// the instruction word and any extra words used by the operands. empty if
	// the address is not mapped
	Words []uint16

	// nil if the instruction word is not a valid instruction
	Defn *instructions.Definition

	Label    string
	Operator string
	Operand  string

	// the branch destination or the address of an absolute or relative
	// operand. NoTarget if there is no such address
	Target int
}

// Size returns the number of bytes used by the instruction. An unmapped
// address is treated as a single word.
func (e Entry) Size() uint16 {
	return uint16(max(len(e.Words), 1) * 2)
}

// Next returns the address of the following instruction.
func (e Entry) Next() uint16 {
	return e.Address + e.Size()
}

// Bytecode returns the words of the instruction in octal.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Words))
	for i, w := range e.Words {
		s[i] = fmt.Sprintf("%06o", w)
	}
	return strings.Join(s, " ")
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}
