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

package symbols

import (
	"sync"
)

// canonical names of the device registers
var deviceSymbols = map[uint16]string{
	0177600: "EXTMEM",
	0177660: "KBSTAT",
	0177662: "KBDATA",
	0177664: "SCROLL",
	0177706: "TVE",
	0177710: "TCNT",
	0177712: "TCSR",
	0177714: "PARPORT",
	0177716: "SEL1",
}

// canonical names of the trap vectors
var vectorSymbols = map[uint16]string{
	0000004: "V.BUS",
	0000010: "V.RSV",
	0000014: "V.BPT",
	0000020: "V.IOT",
	0000030: "V.EMT",
	0000034: "V.TRAP",
	0000060: "V.KBD",
	0000100: "V.EVNT",
	0000274: "V.KBD2",
}

// Symbols contains all the currently defined symbols. It is safe to use from
// more than one goroutine.
type Symbols struct {
	crit sync.Mutex

	// labels for program addresses
	label *table

	// device registers and vectors
	system *table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The canonical symbols are added to the system table.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label:  newTable(),
		system: newTable(),
	}
	for a, s := range deviceSymbols {
		sym.system.add(a, s, true)
	}
	for a, s := range vectorSymbols {
		sym.system.add(a, s, true)
	}
	return sym
}

func (sym *Symbols) String() string {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.String() + sym.system.String()
}

// LabelWidth returns the maximum number of characters required by a label.
func (sym *Symbols) LabelWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.maxWidth
}

// AddLabel adds a label for the address. An existing label is only replaced
// if prefer is true.
func (sym *Symbols) AddLabel(addr uint16, label string, prefer bool) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.add(addr, label, prefer)
}

// RemoveLabel removes the label for the address.
func (sym *Symbols) RemoveLabel(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.remove(addr)
}

// GetLabel returns the label for the address.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.get(addr)
}

// GetSymbol returns a label for the address if there is one, otherwise the
// canonical symbol.
func (sym *Symbols) GetSymbol(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	if s, ok := sym.label.get(addr); ok {
		return s, true
	}
	return sym.system.get(addr)
}

// Search for the address of a symbol. Labels are searched before canonical
// symbols. The search is case insensitive.
func (sym *Symbols) Search(symbol string) (uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	if a, ok := sym.label.search(symbol); ok {
		return a, true
	}
	return sym.system.search(symbol)
}
