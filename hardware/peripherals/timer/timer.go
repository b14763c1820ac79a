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

// Package timer implements the programmable timer of the BK computers.
//
// The timer has three registers. The preset register holds the value loaded
// into the counter when counting starts and when the counter reloads. The
// counter register is read-only. The control register selects the counting
// mode and the prescaler.
//
// The counter is not stepped on every tick. It is brought up to date with
// simple arithmetic whenever one of the registers is accessed or the state is
// saved.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/state"
)

// Register addresses.
const (
	PresetRegister  = uint16(0177706)
	CounterRegister = uint16(0177710)
	ControlRegister = uint16(0177712)
)

// Control register bits.
const (
	// counting is suspended. the counter holds its value
	Stop = uint16(0000001)

	// the counter passes through zero and continues from 0177777 instead of
	// reloading from the preset register
	Wraparound = uint16(0000002)

	// the Expired bit is set when the counter reaches zero
	ExpiryEnable = uint16(0000004)

	// counting stops when the counter reaches zero
	OneShot = uint16(0000010)

	// counting is enabled. setting this bit loads the counter from the
	// preset register
	Run = uint16(0000020)

	// prescaler multipliers
	Div16 = uint16(0000040)
	Div4  = uint16(0000100)

	// the counter has reached zero
	Expired = uint16(0000200)
)

// Prescaler is the number of ticks for each step of the counter before any
// multiplier is applied.
const Prescaler = 128

// the bits of the control register that do not exist read as ones
const unusedControlBits = uint16(0177400)

// Timer implements the bus.Device and bus.Stateful interfaces.
type Timer struct {
	preset  uint16
	counter uint16
	control uint16

	// the tick at which the counter was last brought up to date
	lastTick uint64

	// ticks counted towards the next step of the counter
	phase uint64
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("preset=%06o counter=%06o control=%03o", tmr.preset, tmr.counter, tmr.control)
}

// Label implements the bus.Device interface.
func (tmr *Timer) Label() string {
	return "timer"
}

// Addresses implements the bus.Device interface.
func (tmr *Timer) Addresses() []uint16 {
	return []uint16{PresetRegister, CounterRegister, ControlRegister}
}

// Init implements the bus.Device interface. A hard reset clears the preset
// and counter. Any reset stops the timer.
func (tmr *Timer) Init(tick uint64, hardReset bool) {
	if hardReset {
		tmr.preset = 0
		tmr.counter = 0
	}
	tmr.control = 0
	tmr.lastTick = tick
	tmr.phase = 0
}

// Period returns the number of ticks for each step of the counter with the
// current prescaler settings.
func (tmr *Timer) Period() uint64 {
	p := uint64(Prescaler)
	if tmr.control&Div16 == Div16 {
		p *= 16
	}
	if tmr.control&Div4 == Div4 {
		p *= 4
	}
	return p
}

func (tmr *Timer) counting() bool {
	return tmr.control&Run == Run && tmr.control&Stop == 0
}

// update brings the counter up to date with the tick value.
func (tmr *Timer) update(tick uint64) {
	if tick < tmr.lastTick {
		tmr.lastTick = tick
		return
	}

	elapsed := tick - tmr.lastTick
	tmr.lastTick = tick

	if !tmr.counting() {
		return
	}

	elapsed += tmr.phase
	period := tmr.Period()
	steps := elapsed / period
	tmr.phase = elapsed % period

	if steps == 0 {
		return
	}

	if steps < uint64(tmr.counter) {
		tmr.counter -= uint16(steps)
		return
	}

	// the counter reaches zero
	steps -= uint64(tmr.counter)
	if tmr.control&ExpiryEnable == ExpiryEnable {
		tmr.control |= Expired
	}

	switch {
	case tmr.control&OneShot == OneShot:
		tmr.counter = 0
		tmr.control &^= Run
		tmr.phase = 0
	case tmr.control&Wraparound == Wraparound:
		tmr.counter = uint16(0x10000 - steps%0x10000)
	default:
		reload := uint64(tmr.preset)
		if reload == 0 {
			reload = 0x10000
		}
		tmr.counter = uint16(reload - steps%reload)
	}
}

// Read implements the bus.Device interface.
func (tmr *Timer) Read(tick uint64, address uint16) int {
	tmr.update(tick)

	switch address {
	case PresetRegister:
		return int(tmr.preset)
	case CounterRegister:
		return int(tmr.counter)
	case ControlRegister:
		return int(tmr.control | unusedControlBits)
	}

	return bus.Error
}

// Write implements the bus.Device interface. Writes to the counter register
// are accepted and ignored.
func (tmr *Timer) Write(tick uint64, byteMode bool, address uint16, value uint16) bool {
	tmr.update(tick)

	switch address &^ 1 {
	case PresetRegister:
		tmr.preset = bus.Merge(tmr.preset, byteMode, address, value)
	case CounterRegister:
	case ControlRegister:
		// the high byte does not exist
		if byteMode && address&1 == 1 {
			return true
		}
		v := value &^ unusedControlBits
		if v&Run == Run && tmr.control&Run == 0 {
			tmr.counter = tmr.preset
			tmr.phase = 0
		}
		tmr.control = v
	default:
		return false
	}

	return true
}

// Counter returns the value of the counter at the tick.
func (tmr *Timer) Counter(tick uint64) uint16 {
	tmr.update(tick)
	return tmr.counter
}

// SaveState implements the bus.Stateful interface.
func (tmr *Timer) SaveState(s *state.Store) {
	s.SetUint16("timer.preset", tmr.preset)
	s.SetUint16("timer.counter", tmr.counter)
	s.SetUint16("timer.control", tmr.control)
	s.SetUint64("timer.tick", tmr.lastTick)
	s.SetUint64("timer.phase", tmr.phase)
}

// RestoreState implements the bus.Stateful interface.
func (tmr *Timer) RestoreState(s *state.Store) error {
	preset, err := s.Uint16("timer.preset")
	if err != nil {
		return err
	}
	counter, err := s.Uint16("timer.counter")
	if err != nil {
		return err
	}
	control, err := s.Uint16("timer.control")
	if err != nil {
		return err
	}
	tick, err := s.Uint64("timer.tick")
	if err != nil {
		return err
	}
	phase, err := s.Uint64("timer.phase")
	if err != nil {
		return err
	}

	tmr.preset = preset
	tmr.counter = counter
	tmr.control = control
	tmr.lastTick = tick
	tmr.phase = phase

	return nil
}
