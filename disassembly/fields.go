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

import "fmt"

// Field identifies which part of the disassembly entry is of interest.
type Field int

// List of valid fields.
const (
	Label Field = iota
	Address
	Bytecode
	Operator
	Operand
)

// widths of each field for a group of entries
type widths struct {
	label    int
	bytecode int
	operator int
}

func (w *widths) update(e Entry) {
	w.label = max(w.label, len(e.Label))
	w.bytecode = max(w.bytecode, len(e.Bytecode()))
	w.operator = max(w.operator, len(e.Operator))
}

// field returns the formatted field of the entry, padded to the width of the
// field in the group of entries
func (w widths) field(field Field, e Entry) string {
	switch field {
	case Label:
		return fmt.Sprintf("%-*s", w.label, e.Label)
	case Address:
		return fmt.Sprintf("%06o", e.Address)
	case Bytecode:
		return fmt.Sprintf("%-*s", w.bytecode, e.Bytecode())
	case Operator:
		return fmt.Sprintf("%-*s", w.operator, e.Operator)
	case Operand:
		return e.Operand
	}
	return ""
}
