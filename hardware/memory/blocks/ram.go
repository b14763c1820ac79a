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

// RAM is a plain block of memory. If the block is read-only it is ROM.
type RAM struct {
	label    string
	start    uint16
	data     []uint16
	readOnly bool
}

// NewRAM is the preferred method of initialisation for a writable RAM block.
// The size is in words.
func NewRAM(label string, start uint16, size int, ramType RAMType) *RAM {
	r := &RAM{
		label: label,
		start: start,
		data:  make([]uint16, size),
	}
	ramType.Fill(r.data)
	return r
}

// NewROM is the preferred method of initialisation for a read-only RAM block.
// The size is in words. The contents are zero until Load() is called.
func NewROM(label string, start uint16, size int) *RAM {
	return &RAM{
		label:    label,
		start:    start,
		data:     make([]uint16, size),
		readOnly: true,
	}
}

func (r *RAM) String() string {
	kind := "RAM"
	if r.readOnly {
		kind = "ROM"
	}
	return fmt.Sprintf("%s %s %06o-%06o", r.label, kind, r.start, int(r.start)+len(r.data)*2-1)
}

// Label implements the bus.Block interface.
func (r *RAM) Label() string {
	return r.label
}

// Start implements the bus.Block interface.
func (r *RAM) Start() uint16 {
	return r.start
}

// Size implements the bus.Block interface.
func (r *RAM) Size() int {
	return len(r.data)
}

// Data implements the bus.Block interface.
func (r *RAM) Data() []uint16 {
	return r.data
}

// ReadOnly returns true if the block is ROM.
func (r *RAM) ReadOnly() bool {
	return r.readOnly
}

// Read implements the bus.Block interface.
func (r *RAM) Read(offset int) int {
	if offset < 0 || offset >= len(r.data)*2 {
		return bus.Error
	}
	return int(r.data[offset>>1])
}

// Write implements the bus.Block interface.
func (r *RAM) Write(byteMode bool, offset int, value uint16) bool {
	if r.readOnly {
		return false
	}
	if offset < 0 || offset >= len(r.data)*2 {
		return false
	}

	i := offset >> 1
	r.data[i] = bus.Merge(r.data[i], byteMode, uint16(offset), value)
	return true
}

// IsRelatedAddress implements the bus.Block interface.
func (r *RAM) IsRelatedAddress(address uint16) bool {
	return address >= r.start && int(address) < int(r.start)+len(r.data)*2
}

// Load little-endian byte data into the block, starting at the first word.
// Load works even if the block is read-only. An odd number of bytes is padded
// with a zero byte.
func (r *RAM) Load(data []byte) error {
	if len(data) > len(r.data)*2 {
		return curated.Errorf("blocks: %s: image too large (%d bytes for %d byte block)", r.label, len(data), len(r.data)*2)
	}
	for i := 0; i < len(data); i += 2 {
		w := uint16(data[i])
		if i+1 < len(data) {
			w |= uint16(data[i+1]) << 8
		}
		r.data[i>>1] = w
	}
	return nil
}

// SaveState implements the bus.Stateful interface. The contents of ROM are
// not saved.
func (r *RAM) SaveState(s *state.Store) {
	if r.readOnly {
		return
	}
	s.SetWords(r.label+".data", r.data)
}

// RestoreState implements the bus.Stateful interface.
func (r *RAM) RestoreState(s *state.Store) error {
	if r.readOnly {
		return nil
	}
	d, err := s.Words(r.label+".data", len(r.data))
	if err != nil {
		return err
	}
	copy(r.data, d)
	return nil
}
