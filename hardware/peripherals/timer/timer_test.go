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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/peripherals/timer"
	"github.com/jetsetilly/gopherbk/hardware/state"
	"github.com/jetsetilly/gopherbk/test"
)

// start the timer at tick zero with the preset and control values
func start(t *testing.T, preset uint16, control uint16) *timer.Timer {
	t.Helper()
	tmr := timer.NewTimer()
	tmr.Init(0, true)
	test.ExpectSuccess(t, tmr.Write(0, false, timer.PresetRegister, preset))
	test.ExpectSuccess(t, tmr.Write(0, false, timer.ControlRegister, control))
	return tmr
}

func expired(tmr *timer.Timer, tick uint64) bool {
	return uint16(tmr.Read(tick, timer.ControlRegister))&timer.Expired == timer.Expired
}

func TestOneShot(t *testing.T) {
	tmr := start(t, 10, timer.Run|timer.ExpiryEnable|timer.OneShot)

	test.ExpectEquality(t, tmr.Read(0, timer.CounterRegister), 10)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler-1, timer.CounterRegister), 10)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*5, timer.CounterRegister), 5)
	test.ExpectFailure(t, expired(tmr, timer.Prescaler*9))

	test.ExpectEquality(t, tmr.Read(timer.Prescaler*10, timer.CounterRegister), 0)
	test.ExpectSuccess(t, expired(tmr, timer.Prescaler*10))

	// holds at zero
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*1000, timer.CounterRegister), 0)
	test.ExpectEquality(t, uint16(tmr.Read(timer.Prescaler*1000, timer.ControlRegister))&timer.Run, 0)
}

func TestWraparound(t *testing.T) {
	tmr := start(t, 10, timer.Run|timer.ExpiryEnable|timer.Wraparound)

	test.ExpectEquality(t, tmr.Read(timer.Prescaler*10, timer.CounterRegister), 0)
	test.ExpectSuccess(t, expired(tmr, timer.Prescaler*10))
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*11, timer.CounterRegister), 0xffff)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*12, timer.CounterRegister), 0xfffe)

	// one complete cycle of the counter
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*(12+0x10000), timer.CounterRegister), 0xfffe)
}

func TestReload(t *testing.T) {
	tmr := start(t, 10, timer.Run|timer.ExpiryEnable)

	test.ExpectEquality(t, tmr.Read(timer.Prescaler*10, timer.CounterRegister), 10)
	test.ExpectSuccess(t, expired(tmr, timer.Prescaler*10))
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*13, timer.CounterRegister), 7)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*25, timer.CounterRegister), 5)

	// clearing the expired bit
	test.ExpectSuccess(t, tmr.Write(timer.Prescaler*25, true, timer.ControlRegister, timer.Run|timer.ExpiryEnable))
	test.ExpectFailure(t, expired(tmr, timer.Prescaler*25))
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*26, timer.CounterRegister), 4)
}

func TestExpiryDisabled(t *testing.T) {
	tmr := start(t, 3, timer.Run)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*3, timer.CounterRegister), 3)
	test.ExpectFailure(t, expired(tmr, timer.Prescaler*3))
}

func TestPrescaler(t *testing.T) {
	tmr := start(t, 100, timer.Run|timer.Div16|timer.Div4)
	test.ExpectEquality(t, tmr.Period(), uint64(timer.Prescaler*64))
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*64-1, timer.CounterRegister), 100)
	test.ExpectEquality(t, tmr.Read(timer.Prescaler*64, timer.CounterRegister), 99)

	// partial periods accumulate across accesses
	tmr = start(t, 100, timer.Run)
	for tick := uint64(0); tick <= timer.Prescaler*3; tick += 7 {
		tmr.Read(tick, timer.PresetRegister)
	}
	test.ExpectEquality(t, tmr.Counter(timer.Prescaler*4), 96)
}

func TestStop(t *testing.T) {
	tmr := start(t, 100, timer.Run)
	test.ExpectEquality(t, tmr.Counter(timer.Prescaler*10), 90)

	test.ExpectSuccess(t, tmr.Write(timer.Prescaler*10, false, timer.ControlRegister, timer.Run|timer.Stop))
	test.ExpectEquality(t, tmr.Counter(timer.Prescaler*50), 90)

	// clearing the stop bit continues counting without a reload
	test.ExpectSuccess(t, tmr.Write(timer.Prescaler*50, false, timer.ControlRegister, timer.Run))
	test.ExpectEquality(t, tmr.Counter(timer.Prescaler*60), 80)
}

func TestRegisters(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Init(0, true)

	test.ExpectEquality(t, tmr.Read(0, timer.ControlRegister), 0177400)
	test.ExpectEquality(t, tmr.Read(0, 0177714), bus.Error)
	test.ExpectFailure(t, tmr.Write(0, false, 0177714, 0))

	// byte writes to the preset register
	test.ExpectSuccess(t, tmr.Write(0, true, timer.PresetRegister, 0x34))
	test.ExpectSuccess(t, tmr.Write(0, true, timer.PresetRegister+1, 0x12))
	test.ExpectEquality(t, tmr.Read(0, timer.PresetRegister), 0x1234)

	// counter is read only
	test.ExpectSuccess(t, tmr.Write(0, false, timer.CounterRegister, 0777))
	test.ExpectEquality(t, tmr.Read(0, timer.CounterRegister), 0)

	// soft reset stops the timer but keeps the preset
	test.ExpectSuccess(t, tmr.Write(0, false, timer.ControlRegister, timer.Run))
	tmr.Init(100, false)
	test.ExpectEquality(t, tmr.Read(100, timer.ControlRegister), 0177400)
	test.ExpectEquality(t, tmr.Read(100, timer.PresetRegister), 0x1234)
}

func TestState(t *testing.T) {
	tmr := start(t, 10, timer.Run|timer.ExpiryEnable)
	tmr.Read(timer.Prescaler*3+5, timer.CounterRegister)

	s := state.NewStore()
	tmr.SaveState(s)

	other := timer.NewTimer()
	test.ExpectSuccess(t, other.RestoreState(s))
	test.ExpectEquality(t, other.Counter(timer.Prescaler*5), tmr.Counter(timer.Prescaler*5))

	s.Delete("timer.phase")
	test.ExpectFailure(t, timer.NewTimer().RestoreState(s))
}
