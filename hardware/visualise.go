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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherbk/hardware/memory/blocks"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
)

// MapNode describes one block in the memory map and the blocks it delegates
// to.
type MapNode struct {
	Label    string
	Kind     string
	Start    uint16
	Words    int
	Selected int
	Children []*MapNode
}

func mapNode(b bus.Block) *MapNode {
	n := &MapNode{
		Label:    b.Label(),
		Start:    b.Start(),
		Words:    b.Size(),
		Selected: -1,
	}

	switch b := b.(type) {
	case *blocks.RAM:
		n.Kind = "RAM"
		if b.ReadOnly() {
			n.Kind = "ROM"
		}
	case *blocks.Paged:
		n.Kind = "paged"
		n.Selected = b.Selected()
		for i := range b.NumPages() {
			n.Children = append(n.Children, mapNode(b.Page(i)))
		}
	case *blocks.Banked:
		n.Kind = "banked"
		n.Selected = b.Selected()
		for i := range b.NumBanks() {
			n.Children = append(n.Children, mapNode(b.Bank(i)))
		}
	case *blocks.Segmented:
		n.Kind = "segmented"
		n.Selected = b.Selected()
		n.Children = append(n.Children, mapNode(b.Backing()))
	case *blocks.Selectable:
		n.Kind = "selectable"
		if b.Enabled() {
			n.Selected = 0
		}
		n.Children = append(n.Children, mapNode(b.Delegate()))
	default:
		n.Kind = "block"
	}

	return n
}

// MemoryMap returns a description of every block attached to the memory map.
func (cmp *Computer) MemoryMap() []*MapNode {
	var nodes []*MapNode
	for _, b := range cmp.Mem.Blocks() {
		nodes = append(nodes, mapNode(b))
	}
	return nodes
}

// Visualise writes a graphviz description of the memory map to w.
func (cmp *Computer) Visualise(w io.Writer) {
	memviz.Map(w, cmp.MemoryMap())
}
