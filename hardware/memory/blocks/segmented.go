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

// BadSegmentSize is returned by NewSegmented().
const BadSegmentSize = "blocks: %s: backing block of %d words cannot be divided into segments of %d words"

// Segmented is a window onto one segment of a larger backing block. The
// readable and writable extents of the window can be limited independently.
// Access to the window beyond those limits is a bus fault.
type Segmented struct {
	label   string
	start   uint16
	segSize int
	backing bus.Block

	// selection and limits are changed together in the critical section
	sel      selector
	readable int
	writable int
}

// NewSegmented is the preferred method of initialisation for the Segmented
// type. The segment size is in words. The size of the backing block must be
// a multiple of the segment size. The first segment is selected and the whole
// of the segment is readable and writable.
func NewSegmented(label string, start uint16, segSize int, backing bus.Block) (*Segmented, error) {
	if segSize <= 0 || backing.Size() < segSize || backing.Size()%segSize != 0 {
		return nil, curated.Errorf(BadSegmentSize, label, backing.Size(), segSize)
	}
	return &Segmented{
		label:    label,
		start:    start,
		segSize:  segSize,
		backing:  backing,
		sel:      newSelector(backing.Size()/segSize, 0),
		readable: segSize * 2,
		writable: segSize * 2,
	}, nil
}

func (sg *Segmented) String() string {
	seg, readable, writable := sg.selection()
	return fmt.Sprintf("%s segmented %06o-%06o [%d of %d] r=%06o w=%06o", sg.label, sg.start, int(sg.start)+sg.segSize*2-1,
		seg, sg.NumSegments(), readable, writable)
}

// Select the segment. Use -1 to select no segment. Returns false if the index
// is out of range.
func (sg *Segmented) Select(segment int) bool {
	return sg.sel.set(segment)
}

// Selected returns the index of the selected segment. Returns -1 if no segment
// is selected.
func (sg *Segmented) Selected() int {
	return sg.sel.get()
}

// NumSegments returns the number of segments in the backing block.
func (sg *Segmented) NumSegments() int {
	return sg.backing.Size() / sg.segSize
}

// Backing returns the block that is divided into segments.
func (sg *Segmented) Backing() bus.Block {
	return sg.backing
}

// SetLimits sets the readable and writable extent of the window, in bytes
// from the start of the window. Values are clamped to the segment size.
func (sg *Segmented) SetLimits(readable int, writable int) {
	readable = max(0, min(readable, sg.segSize*2))
	writable = max(0, min(writable, sg.segSize*2))

	sg.sel.crit.Lock()
	defer sg.sel.crit.Unlock()
	sg.readable = readable
	sg.writable = writable
}

// Limits returns the readable and writable extents of the window.
func (sg *Segmented) Limits() (readable int, writable int) {
	_, readable, writable = sg.selection()
	return readable, writable
}

func (sg *Segmented) selection() (int, int, int) {
	sg.sel.crit.Lock()
	defer sg.sel.crit.Unlock()
	return sg.sel.index, sg.readable, sg.writable
}

// Label implements the bus.Block interface.
func (sg *Segmented) Label() string {
	return sg.label
}

// Start implements the bus.Block interface.
func (sg *Segmented) Start() uint16 {
	return sg.start
}

// Size implements the bus.Block interface.
func (sg *Segmented) Size() int {
	return sg.segSize
}

// Data implements the bus.Block interface.
func (sg *Segmented) Data() []uint16 {
	seg := sg.sel.get()
	d := sg.backing.Data()
	if seg == noSelection || len(d) < (seg+1)*sg.segSize {
		return nil
	}
	return d[seg*sg.segSize : (seg+1)*sg.segSize]
}

// Read implements the bus.Block interface.
func (sg *Segmented) Read(offset int) int {
	seg, readable, _ := sg.selection()
	if seg == noSelection || offset < 0 || offset >= readable {
		return bus.Error
	}
	return sg.backing.Read(seg*sg.segSize*2 + offset)
}

// Write implements the bus.Block interface.
func (sg *Segmented) Write(byteMode bool, offset int, value uint16) bool {
	seg, _, writable := sg.selection()
	if seg == noSelection || offset < 0 || offset >= writable {
		return false
	}
	return sg.backing.Write(byteMode, seg*sg.segSize*2+offset, value)
}

// IsRelatedAddress implements the bus.Block interface.
func (sg *Segmented) IsRelatedAddress(address uint16) bool {
	return address >= sg.start && int(address) < int(sg.start)+sg.segSize*2
}

// SaveState implements the bus.Stateful interface. The state of the backing
// block is also saved if it is stateful.
func (sg *Segmented) SaveState(s *state.Store) {
	seg, readable, writable := sg.selection()
	s.SetInt(sg.label+".index", seg)
	s.SetInt(sg.label+".readable", readable)
	s.SetInt(sg.label+".writable", writable)
	if st, ok := sg.backing.(bus.Stateful); ok {
		st.SaveState(s)
	}
}

// RestoreState implements the bus.Stateful interface.
func (sg *Segmented) RestoreState(s *state.Store) error {
	seg, err := s.Int(sg.label + ".index")
	if err != nil {
		return err
	}
	if seg != noSelection && (seg < 0 || seg >= sg.NumSegments()) {
		return outOfRange(sg.label, seg)
	}
	readable, err := s.Int(sg.label + ".readable")
	if err != nil {
		return err
	}
	writable, err := s.Int(sg.label + ".writable")
	if err != nil {
		return err
	}
	if st, ok := sg.backing.(bus.Stateful); ok {
		if err := st.RestoreState(s); err != nil {
			return err
		}
	}
	sg.sel.set(seg)
	sg.SetLimits(readable, writable)
	return nil
}
