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

package blocks

import (
	"fmt"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Paged is a block that owns a number of RAM pages of identical size. Only one
// page is visible at a time.
type Paged struct {
	label string
	start uint16
	size  int
	pages []*RAM
	sel   selector
}

// NewPaged is the preferred method of initialisation for the Paged type. The
// size of each page is in words. The first page is selected.
func NewPaged(label string, start uint16, size int, numPages int, ramType RAMType) *Paged {
	pg := &Paged{
		label: label,
		start: start,
		size:  size,
		pages: make([]*RAM, numPages),
		sel:   newSelector(numPages, 0),
	}
	for i := range pg.pages {
		pg.pages[i] = NewRAM(fmt.Sprintf("%s.page%d", label, i), start, size, ramType)
	}
	return pg
}

func (pg *Paged) String() string {
	return fmt.Sprintf("%s paged %06o-%06o [%d of %d]", pg.label, pg.start, int(pg.start)+pg.size*2-1, pg.sel.get(), len(pg.pages))
}

// Select the page. Use -1 to select no page. Returns false if the index is
// out of range.
func (pg *Paged) Select(index int) bool {
	return pg.sel.set(index)
}

// Selected returns the index of the selected page. Returns -1 if no page is
// selected.
func (pg *Paged) Selected() int {
	return pg.sel.get()
}

// NumPages returns the number of pages in the block.
func (pg *Paged) NumPages() int {
	return len(pg.pages)
}

// Page returns the numbered page.
func (pg *Paged) Page(index int) *RAM {
	return pg.pages[index]
}

func (pg *Paged) current() *RAM {
	idx := pg.sel.get()
	if idx == noSelection {
		return nil
	}
	return pg.pages[idx]
}

// Label implements the bus.Block interface.
func (pg *Paged) Label() string {
	return pg.label
}

// Start implements the bus.Block interface.
func (pg *Paged) Start() uint16 {
	return pg.start
}

// Size implements the bus.Block interface.
func (pg *Paged) Size() int {
	return pg.size
}

// Data implements the bus.Block interface.
func (pg *Paged) Data() []uint16 {
	if p := pg.current(); p != nil {
		return p.Data()
	}
	return nil
}

// Read implements the bus.Block interface.
func (pg *Paged) Read(offset int) int {
	if p := pg.current(); p != nil {
		return p.Read(offset)
	}
	return bus.Error
}

// Write implements the bus.Block interface.
func (pg *Paged) Write(byteMode bool, offset int, value uint16) bool {
	if p := pg.current(); p != nil {
		return p.Write(byteMode, offset, value)
	}
	return false
}

// IsRelatedAddress implements the bus.Block interface.
func (pg *Paged) IsRelatedAddress(address uint16) bool {
	return address >= pg.start && int(address) < int(pg.start)+pg.size*2
}

// SaveState implements the bus.Stateful interface.
func (pg *Paged) SaveState(s *state.Store) {
	s.SetInt(pg.label+".index", pg.sel.get())
	for _, p := range pg.pages {
		p.SaveState(s)
	}
}

// RestoreState implements the bus.Stateful interface.
func (pg *Paged) RestoreState(s *state.Store) error {
	idx, err := s.Int(pg.label + ".index")
	if err != nil {
		return err
	}

	data := make([][]uint16, len(pg.pages))
	for i, p := range pg.pages {
		data[i], err = s.Words(p.Label()+".data", p.Size())
		if err != nil {
			return err
		}
	}

	if !pg.sel.set(idx) {
		return outOfRange(pg.label, idx)
	}
	for i, p := range pg.pages {
		copy(p.data, data[i])
	}

	return nil
}
