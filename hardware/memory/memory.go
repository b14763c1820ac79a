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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Sentinel errors returned by AddMemory() and AddDevice().
const (
	MisalignedBlock  = "memory: %s: block does not start on a slot boundary (%06o)"
	OverlappingBlock = "memory: %s: block overlaps %s"
	OversizedBlock   = "memory: %s: block extends beyond the address space"
	UnmappedDevice   = "memory: %s: address is not in device space (%06o)"
)

// TickSource is the source of the tick count given to devices.
type TickSource interface {
	Ticks() uint64
}

// Memory is the central dispatcher for the address space. It implements the
// bus.CPUBus and bus.DebuggerBus interfaces.
type Memory struct {
	ticks TickSource

	// the block attached to each slot. the same block appears in more than one
	// slot if it is large enough
	slots [memorymap.NumSlots]bus.Block

	// blocks and devices in the order they were added
	blocks  []bus.Block
	devices []bus.Device

	// the devices that answer each register in device space
	table [memorymap.NumDeviceRegisters][]bus.Device

	devicesStart uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(ticks TickSource) *Memory {
	return &Memory{
		ticks:        ticks,
		devicesStart: memorymap.IOBase,
	}
}

func (mem *Memory) String() string {
	return mem.Summary()
}

// AddMemory attaches a memory block to the slots it covers. Blocks must begin
// on a slot boundary and must not overlap any other block.
func (mem *Memory) AddMemory(b bus.Block) error {
	start := int(b.Start())
	end := start + b.Size()*2

	if start%memorymap.SlotSize != 0 {
		return curated.Errorf(MisalignedBlock, b.Label(), start)
	}
	if end > int(memorymap.Memtop)+1 {
		return curated.Errorf(OversizedBlock, b.Label())
	}

	first := memorymap.Slot(uint16(start))
	last := (end - 1) >> memorymap.SlotShift
	for s := first; s <= last; s++ {
		if mem.slots[s] != nil {
			return curated.Errorf(OverlappingBlock, b.Label(), mem.slots[s].Label())
		}
	}

	for s := first; s <= last; s++ {
		mem.slots[s] = b
	}
	mem.blocks = append(mem.blocks, b)
	mem.devicesStart = memorymap.PushDevicesStart(mem.devicesStart, end)

	return nil
}

// AddDevice attaches a device to every register it answers to. More than one
// device can answer the same register.
func (mem *Memory) AddDevice(d bus.Device) error {
	addrs := d.Addresses()
	for _, a := range addrs {
		if a < memorymap.IOBase {
			return curated.Errorf(UnmappedDevice, d.Label(), a)
		}
	}
	for _, a := range addrs {
		idx := memorymap.DeviceIndex(a &^ 1)
		mem.table[idx] = append(mem.table[idx], d)
	}
	mem.devices = append(mem.devices, d)
	return nil
}

// DevicesStart returns the first address of device space.
func (mem *Memory) DevicesStart() uint16 {
	return mem.devicesStart
}

// Blocks returns the memory blocks in the order they were added.
func (mem *Memory) Blocks() []bus.Block {
	return mem.blocks
}

// Devices returns the devices in the order they were added.
func (mem *Memory) Devices() []bus.Device {
	return mem.devices
}

// InitDevices initialises every device. The hardReset argument is passed to
// each device unchanged.
func (mem *Memory) InitDevices(hardReset bool) {
	tick := mem.ticks.Ticks()
	for _, d := range mem.devices {
		d.Init(tick, hardReset)
	}
}

// ResetDevices implements the bus.CPUBus interface.
func (mem *Memory) ResetDevices() {
	mem.InitDevices(false)
}

// block returns the block and the offset into the block for the address. the
// block is nil if no block covers the address.
func (mem *Memory) block(address uint16) (bus.Block, int) {
	b := mem.slots[memorymap.Slot(address)]
	if b == nil || !b.IsRelatedAddress(address) {
		return nil, 0
	}
	return b, int(address) - int(b.Start())
}

// ReadMemory implements the bus.CPUBus interface.
func (mem *Memory) ReadMemory(byteMode bool, address uint16) int {
	word := address &^ 1

	var v int
	if memorymap.MapAddress(word, mem.devicesStart) == memorymap.Devices {
		v = mem.readDevices(word)
	} else if b, offset := mem.block(word); b != nil {
		v = b.Read(offset)
	} else {
		v = bus.Error
	}

	if byteMode {
		return bus.SelectByte(v, address)
	}
	return v
}

func (mem *Memory) readDevices(word uint16) int {
	tick := mem.ticks.Ticks()

	v := bus.Error
	for _, d := range mem.table[memorymap.DeviceIndex(word)] {
		r := d.Read(tick, word)
		if r == bus.Error {
			continue
		}
		if v == bus.Error {
			v = r
		} else {
			v |= r
		}
	}

	return v
}

// WriteMemory implements the bus.CPUBus interface.
func (mem *Memory) WriteMemory(byteMode bool, address uint16, value uint16) bool {
	if !byteMode {
		address &^= 1
	}

	if memorymap.MapAddress(address, mem.devicesStart) == memorymap.Devices {
		return mem.writeDevices(byteMode, address, value)
	}

	if b, offset := mem.block(address); b != nil {
		return b.Write(byteMode, offset, value)
	}

	return false
}

func (mem *Memory) writeDevices(byteMode bool, address uint16, value uint16) bool {
	tick := mem.ticks.Ticks()

	// every device sees the write even if an earlier device accepted it
	var accepted bool
	for _, d := range mem.table[memorymap.DeviceIndex(address&^1)] {
		if d.Write(tick, byteMode, address, value) {
			accepted = true
		}
	}

	return accepted
}

// Peek implements the bus.DebuggerBus interface. Device space is not visible
// to Peek() but any block underneath it is.
func (mem *Memory) Peek(address uint16) int {
	b, offset := mem.block(address &^ 1)
	if b == nil {
		return bus.Error
	}
	return b.Read(offset)
}

// Poke implements the bus.DebuggerBus interface. The data of the block is
// changed directly, meaning that Poke() can change ROM.
func (mem *Memory) Poke(address uint16, value uint16) bool {
	b, offset := mem.block(address &^ 1)
	if b == nil {
		return false
	}
	d := b.Data()
	if offset>>1 >= len(d) {
		return false
	}
	d[offset>>1] = value
	return true
}

// Summary returns a description of the memory map.
func (mem *Memory) Summary() string {
	s := strings.Builder{}

	s.WriteString("BK Memory Map\n-------------\n")
	for i, b := range mem.slots {
		origin := memorymap.SlotOrigin(i)
		if b == nil {
			s.WriteString(fmt.Sprintf("%06o\t<unmapped>\n", origin))
		} else {
			s.WriteString(fmt.Sprintf("%06o\t%s\n", origin, b))
		}
	}

	s.WriteString(fmt.Sprintf("%06o\tdevices\n", mem.devicesStart))
	for idx, l := range mem.table {
		if len(l) == 0 {
			continue
		}
		labels := make([]string, 0, len(l))
		for _, d := range l {
			labels = append(labels, d.Label())
		}
		s.WriteString(fmt.Sprintf("  %06o\t%s\n", memorymap.DeviceAddress(idx), strings.Join(labels, ", ")))
	}

	return s.String()
}

// SaveState saves the state of every block and device that implements the
// bus.Stateful interface.
func (mem *Memory) SaveState(s *state.Store) {
	for _, b := range mem.blocks {
		if st, ok := b.(bus.Stateful); ok {
			st.SaveState(s)
		}
	}
	for _, d := range mem.devices {
		if st, ok := d.(bus.Stateful); ok {
			st.SaveState(s)
		}
	}
}

// RestoreState restores the state of every block and device that implements
// the bus.Stateful interface. If an error is returned every block and device
// is unchanged.
func (mem *Memory) RestoreState(s *state.Store) error {
	var components []bus.Stateful
	for _, b := range mem.blocks {
		if st, ok := b.(bus.Stateful); ok {
			components = append(components, st)
		}
	}
	for _, d := range mem.devices {
		if st, ok := d.(bus.Stateful); ok {
			components = append(components, st)
		}
	}
	if err := bus.RestoreAll(s, components...); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	return nil
}
