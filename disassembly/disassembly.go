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
	"io"
	"strings"

	"github.com/jetsetilly/gopherbk/disassembly/symbols"
)

// Memory is the source of words to disassemble. The memory.Memory type
// satisfies this interface.
type Memory interface {
	Peek(address uint16) int
}

// Disassembly of BK memory.
type Disassembly struct {
	mem Memory
	sym *symbols.Symbols
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type. The symbols argument can be nil.
func NewDisassembly(mem Memory, sym *symbols.Symbols) *Disassembly {
	return &Disassembly{
		mem: mem,
		sym: sym,
	}
}

// Symbols returns the symbols used to annotate the disassembly. May be nil.
func (dsm *Disassembly) Symbols() *symbols.Symbols {
	return dsm.sym
}

// Decode the instruction at the address.
func (dsm *Disassembly) Decode(address uint16) Entry {
	return dsm.decode(address &^ 1)
}

// Range decodes count instructions starting at the address. Decoding stops
// early if the end of the address space is reached.
func (dsm *Disassembly) Range(address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for range count {
		e := dsm.Decode(address)
		entries = append(entries, e)
		if e.Next() < address {
			break
		}
		address = e.Next()
	}
	return entries
}

// Write count instructions starting at the address to the io.Writer, one
// instruction per line. Returns the address of the instruction following the
// last one written.
func (dsm *Disassembly) Write(w io.Writer, address uint16, count int) (uint16, error) {
	entries := dsm.Range(address, count)

	var wd widths
	for _, e := range entries {
		wd.update(e)
	}

	for _, e := range entries {
		s := strings.Builder{}
		if wd.label > 0 {
			s.WriteString(wd.field(Label, e))
			s.WriteString(" ")
		}
		s.WriteString(wd.field(Address, e))
		s.WriteString("  ")
		s.WriteString(wd.field(Bytecode, e))
		s.WriteString("  ")
		s.WriteString(wd.field(Operator, e))
		if e.Operand != "" {
			s.WriteString(" ")
			s.WriteString(wd.field(Operand, e))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(s.String(), " ")); err != nil {
			return address, err
		}
		address = e.Next()
	}

	return address, nil
}
