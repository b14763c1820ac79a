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
	"sync"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Selectable gates a delegate block. When enabled the block is transparent.
// When disabled every access is a bus fault.
type Selectable struct {
	label    string
	delegate bus.Block

	crit    sync.Mutex
	enabled bool
}

// NewSelectable is the preferred method of initialisation for the Selectable
// type.
func NewSelectable(label string, delegate bus.Block, enabled bool) *Selectable {
	return &Selectable{
		label:    label,
		delegate: delegate,
		enabled:  enabled,
	}
}

func (sl *Selectable) String() string {
	return fmt.Sprintf("%s selectable [enabled=%t] %s", sl.label, sl.Enabled(), sl.delegate.Label())
}

// SetEnabled switches the delegate on or off.
func (sl *Selectable) SetEnabled(enabled bool) {
	sl.crit.Lock()
	defer sl.crit.Unlock()
	sl.enabled = enabled
}

// Enabled returns true if the delegate is switched on.
func (sl *Selectable) Enabled() bool {
	sl.crit.Lock()
	defer sl.crit.Unlock()
	return sl.enabled
}

// Delegate returns the gated block.
func (sl *Selectable) Delegate() bus.Block {
	return sl.delegate
}

// Label implements the bus.Block interface.
func (sl *Selectable) Label() string {
	return sl.label
}

// Start implements the bus.Block interface.
func (sl *Selectable) Start() uint16 {
	return sl.delegate.Start()
}

// Size implements the bus.Block interface.
func (sl *Selectable) Size() int {
	return sl.delegate.Size()
}

// Data implements the bus.Block interface.
func (sl *Selectable) Data() []uint16 {
	if !sl.Enabled() {
		return nil
	}
	return sl.delegate.Data()
}

// Read implements the bus.Block interface.
func (sl *Selectable) Read(offset int) int {
	if !sl.Enabled() {
		return bus.Error
	}
	return sl.delegate.Read(offset)
}

// Write implements the bus.Block interface.
func (sl *Selectable) Write(byteMode bool, offset int, value uint16) bool {
	if !sl.Enabled() {
		return false
	}
	return sl.delegate.Write(byteMode, offset, value)
}

// IsRelatedAddress implements the bus.Block interface.
func (sl *Selectable) IsRelatedAddress(address uint16) bool {
	return sl.delegate.IsRelatedAddress(address)
}

// SaveState implements the bus.Stateful interface.
func (sl *Selectable) SaveState(s *state.Store) {
	s.SetBool(sl.label+".enabled", sl.Enabled())
	if st, ok := sl.delegate.(bus.Stateful); ok {
		st.SaveState(s)
	}
}

// RestoreState implements the bus.Stateful interface.
func (sl *Selectable) RestoreState(s *state.Store) error {
	enabled, err := s.Bool(sl.label + ".enabled")
	if err != nil {
		return err
	}
	if st, ok := sl.delegate.(bus.Stateful); ok {
		if err := st.RestoreState(s); err != nil {
			return err
		}
	}
	sl.SetEnabled(enabled)
	return nil
}
