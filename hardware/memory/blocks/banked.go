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

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Sentinel errors for composite blocks.
const (
	BankTooSmall    = "blocks: %s: bank %d is too small (%d words instead of %d)"
	IndexOutOfRange = "blocks: %s: selection out of range (%d)"
)

func outOfRange(label string, idx int) error {
	return curated.Errorf(IndexOutOfRange, label, idx)
}

// Banked is a block that delegates every access to one of a number of banks.
// Unlike the Paged type, the banks are not owned by the Banked block and the
// same bank can appear in more than one Banked block.
type Banked struct {
	label string
	start uint16
	size  int
	banks []bus.Block
	sel   selector
}

// NewBanked is the preferred method of initialisation for the Banked type.
// The size is in words and every bank must be at least that size. No bank is
// selected.
func NewBanked(label string, start uint16, size int, banks ...bus.Block) (*Banked, error) {
	for i, b := range banks {
		if b.Size() < size {
			return nil, curated.Errorf(BankTooSmall, label, i, b.Size(), size)
		}
	}
	return &Banked{
		label: label,
		start: start,
		size:  size,
		banks: banks,
		sel:   newSelector(len(banks), noSelection),
	}, nil
}

func (bk *Banked) String() string {
	idx := bk.sel.get()
	if idx == noSelection {
		return fmt.Sprintf("%s banked %06o-%06o [none]", bk.label, bk.start, int(bk.start)+bk.size*2-1)
	}
	return fmt.Sprintf("%s banked %06o-%06o [%s]", bk.label, bk.start, int(bk.start)+bk.size*2-1, bk.banks[idx].Label())
}

// Select the bank. Use -1 to select no bank. Returns false if the index is out
// of range.
func (bk *Banked) Select(index int) bool {
	return bk.sel.set(index)
}

// Selected returns the index of the selected bank. Returns -1 if no bank is
// selected.
func (bk *Banked) Selected() int {
	return bk.sel.get()
}

// NumBanks returns the number of banks.
func (bk *Banked) NumBanks() int {
	return len(bk.banks)
}

// Bank returns the bank at the index. Returns nil if the index is out of
// range.
func (bk *Banked) Bank(index int) bus.Block {
	if index < 0 || index >= len(bk.banks) {
		return nil
	}
	return bk.banks[index]
}

func (bk *Banked) current() bus.Block {
	idx := bk.sel.get()
	if idx == noSelection {
		return nil
	}
	return bk.banks[idx]
}

// Label implements the bus.Block interface.
func (bk *Banked) Label() string {
	return bk.label
}

// Start implements the bus.Block interface.
func (bk *Banked) Start() uint16 {
	return bk.start
}

// Size implements the bus.Block interface.
func (bk *Banked) Size() int {
	return bk.size
}

// Data implements the bus.Block interface.
func (bk *Banked) Data() []uint16 {
	if b := bk.current(); b != nil {
		return b.Data()
	}
	return nil
}

// Read implements the bus.Block interface.
func (bk *Banked) Read(offset int) int {
	if offset < 0 || offset >= bk.size*2 {
		return bus.Error
	}
	if b := bk.current(); b != nil {
		return b.Read(offset)
	}
	return bus.Error
}

// Write implements the bus.Block interface.
func (bk *Banked) Write(byteMode bool, offset int, value uint16) bool {
	if offset < 0 || offset >= bk.size*2 {
		return false
	}
	if b := bk.current(); b != nil {
		return b.Write(byteMode, offset, value)
	}
	return false
}

// IsRelatedAddress implements the bus.Block interface.
func (bk *Banked) IsRelatedAddress(address uint16) bool {
	return address >= bk.start && int(address) < int(bk.start)+bk.size*2
}

// SaveState implements the bus.Stateful interface. The state of any bank that
// is itself stateful is also saved.
func (bk *Banked) SaveState(s *state.Store) {
	s.SetInt(bk.label+".index", bk.sel.get())
	for _, b := range bk.banks {
		if st, ok := b.(bus.Stateful); ok {
			st.SaveState(s)
		}
	}
}

// RestoreState implements the bus.Stateful interface.
func (bk *Banked) RestoreState(s *state.Store) error {
	idx, err := s.Int(bk.label + ".index")
	if err != nil {
		return err
	}
	if idx != noSelection && (idx < 0 || idx >= len(bk.banks)) {
		return outOfRange(bk.label, idx)
	}
	var banks []bus.Stateful
	for _, b := range bk.banks {
		if st, ok := b.(bus.Stateful); ok {
			banks = append(banks, st)
		}
	}
	if err := bus.RestoreAll(s, banks...); err != nil {
		return err
	}
	bk.sel.set(idx)
	return nil
}
