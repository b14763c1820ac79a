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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/memory"
	"github.com/jetsetilly/gopherbk/hardware/memory/blocks"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/test"
)

type ticks uint64

func (t ticks) Ticks() uint64 {
	return uint64(t)
}

// register is a minimal device with a single register
type register struct {
	label    string
	address  uint16
	value    uint16
	readable bool
	writes   int
	inits    int
	hard     bool
}

func (r *register) Label() string {
	return r.label
}

func (r *register) Addresses() []uint16 {
	return []uint16{r.address}
}

func (r *register) Init(_ uint64, hardReset bool) {
	r.inits++
	r.hard = hardReset
}

func (r *register) Read(_ uint64, _ uint16) int {
	if !r.readable {
		return bus.Error
	}
	return int(r.value)
}

func (r *register) Write(_ uint64, _ bool, _ uint16, value uint16) bool {
	r.writes++
	r.value = value
	return true
}

// shortBlock only claims the first half of the RAM it wraps
type shortBlock struct {
	*blocks.RAM
}

func (b shortBlock) IsRelatedAddress(address uint16) bool {
	return address >= b.Start() && int(address) < int(b.Start())+b.Size()
}

func TestRelatedAddress(t *testing.T) {
	mem := memory.NewMemory(ticks(0))
	b := shortBlock{RAM: blocks.NewRAM("short", 040000, 16, blocks.Generic)}
	test.DemandSuccess(t, mem.AddMemory(b))

	test.ExpectSuccess(t, mem.WriteMemory(false, 040016, 0123))
	test.ExpectEquality(t, mem.ReadMemory(false, 040016), 0123)
	test.ExpectEquality(t, mem.Peek(040016), 0123)

	// the RAM would answer but the block does not claim the address
	test.ExpectFailure(t, mem.WriteMemory(false, 040020, 0456))
	test.ExpectEquality(t, mem.ReadMemory(false, 040020), bus.Error)
	test.ExpectEquality(t, mem.ReadMemory(true, 040021), bus.Error)
	test.ExpectEquality(t, mem.Peek(040020), bus.Error)
	test.ExpectFailure(t, mem.Poke(040020, 0456))

	// past the end of a block in the same slot
	test.ExpectEquality(t, mem.ReadMemory(false, 040040), bus.Error)
}

func TestBlocks(t *testing.T) {
	mem := memory.NewMemory(ticks(0))
	ram := blocks.NewRAM("ram", 0, 16384, blocks.Generic)
	test.DemandSuccess(t, mem.AddMemory(ram))

	test.ExpectSuccess(t, mem.WriteMemory(false, 01000, 0123456))
	test.ExpectEquality(t, mem.ReadMemory(false, 01000), 0123456)

	// word access ignores the lowest bit
	test.ExpectEquality(t, mem.ReadMemory(false, 01001), 0123456)
	test.ExpectSuccess(t, mem.WriteMemory(false, 01003, 0111))
	test.ExpectEquality(t, mem.ReadMemory(false, 01002), 0111)

	// byte access
	test.ExpectEquality(t, mem.ReadMemory(true, 01000), 0056)
	test.ExpectEquality(t, mem.ReadMemory(true, 01001), 0247)
	test.ExpectSuccess(t, mem.WriteMemory(true, 01001, 0377))
	test.ExpectEquality(t, mem.ReadMemory(false, 01000), 0177456)

	// unmapped slot
	test.ExpectEquality(t, mem.ReadMemory(false, 0100000), bus.Error)
	test.ExpectEquality(t, mem.ReadMemory(true, 0100001), bus.Error)
	test.ExpectFailure(t, mem.WriteMemory(false, 0100000, 1))

	// overlapping and misaligned blocks
	err := mem.AddMemory(blocks.NewRAM("more", 060000, 4096, blocks.Generic))
	test.ExpectSuccess(t, curated.Is(err, memory.OverlappingBlock))
	err = mem.AddMemory(blocks.NewRAM("odd", 0100002, 16, blocks.Generic))
	test.ExpectSuccess(t, curated.Is(err, memory.MisalignedBlock))
}

func TestDevices(t *testing.T) {
	mem := memory.NewMemory(ticks(100))

	a := &register{label: "a", address: 0177714, value: 0x00f0, readable: true}
	b := &register{label: "b", address: 0177714, value: 0x0f00, readable: true}
	c := &register{label: "c", address: 0177716}
	test.DemandSuccess(t, mem.AddDevice(a))
	test.DemandSuccess(t, mem.AddDevice(b))
	test.DemandSuccess(t, mem.AddDevice(c))

	// values of all answering devices are combined
	test.ExpectEquality(t, mem.ReadMemory(false, 0177714), 0x0ff0)
	test.ExpectEquality(t, mem.ReadMemory(true, 0177715), 0x0f)

	// write-only device
	test.ExpectEquality(t, mem.ReadMemory(false, 0177716), bus.Error)
	test.ExpectSuccess(t, mem.WriteMemory(false, 0177716, 1))
	test.ExpectEquality(t, c.value, 1)

	// every device sees the write
	test.ExpectSuccess(t, mem.WriteMemory(false, 0177714, 2))
	test.ExpectEquality(t, a.writes, 1)
	test.ExpectEquality(t, b.writes, 1)

	// nothing answers
	test.ExpectEquality(t, mem.ReadMemory(false, 0177700), bus.Error)
	test.ExpectFailure(t, mem.WriteMemory(false, 0177700, 0))

	mem.ResetDevices()
	test.ExpectEquality(t, a.inits, 1)
	test.ExpectFailure(t, a.hard)
	mem.InitDevices(true)
	test.ExpectEquality(t, c.inits, 2)
	test.ExpectSuccess(t, c.hard)

	err := mem.AddDevice(&register{label: "bad", address: 0100000})
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedDevice))
}

func TestDevicesStart(t *testing.T) {
	mem := memory.NewMemory(ticks(0))
	test.ExpectEquality(t, mem.DevicesStart(), 0177000)

	rom := blocks.NewROM("rom", 0160000, 4096)
	rom.Load([]byte{0x34, 0x12})
	test.DemandSuccess(t, mem.AddMemory(rom))
	test.ExpectEquality(t, mem.DevicesStart(), 0177600)

	// rom between the old and new start of device space is visible
	test.ExpectEquality(t, mem.ReadMemory(false, 0177000), 0)
	test.ExpectEquality(t, mem.ReadMemory(false, 0160000), 0x1234)
	test.ExpectFailure(t, mem.WriteMemory(false, 0160000, 0))

	// rom underneath device space is not
	test.ExpectEquality(t, mem.ReadMemory(false, 0177600), bus.Error)

	// but the debugger can see it and change it
	test.ExpectEquality(t, mem.Peek(0177600), 0)
	test.ExpectSuccess(t, mem.Poke(0160000, 0777))
	test.ExpectEquality(t, mem.ReadMemory(false, 0160000), 0777)
}
