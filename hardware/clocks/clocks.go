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

// Package clocks defines the clock frequencies of the BK machines and the
// tick counter that is the single measure of emulated time.
//
// A tick is one CPU clock cycle. The tick count only ever increases and is
// the timestamp given to devices on every access. Devices should never
// consult the wall clock.
//
// Conversion between ticks and nanoseconds is in integer arithmetic and
// will not overflow for any tick count the emulation can reasonably reach.
package clocks

import (
	"sync/atomic"
	"time"
)

// Clock frequencies in kHz.
const (
	BK0010  = 3000
	BK0011M = 4000
)

// Clock is the tick counter of a single machine.
type Clock struct {
	// the tick count is written only by the emulation goroutine but can be
	// read from any goroutine
	ticks atomic.Uint64

	// frequency in kHz
	kHz atomic.Int64
}

// NewClock is the preferred method of initialisation for the Clock type.
// Frequency is in kHz.
func NewClock(kHz int) *Clock {
	clk := &Clock{}
	clk.SetFrequency(kHz)
	return clk
}

// Advance the tick counter.
func (clk *Clock) Advance(ticks int) {
	clk.ticks.Add(uint64(ticks))
}

// Ticks returns the current tick count.
func (clk *Clock) Ticks() uint64 {
	return clk.ticks.Load()
}

// SetTicks is used when restoring state. The tick count must not be set to a
// value lower than it has been since the last hard reset because devices
// assume that time does not go backwards.
func (clk *Clock) SetTicks(ticks uint64) {
	clk.ticks.Store(ticks)
}

// SetFrequency sets the clock frequency in kHz. Values less than one are
// treated as one.
func (clk *Clock) SetFrequency(kHz int) {
	clk.kHz.Store(int64(max(1, kHz)))
}

// Frequency returns the clock frequency in kHz.
func (clk *Clock) Frequency() int {
	return int(clk.kHz.Load())
}

// TicksToNanos converts a tick count to nanoseconds at the current frequency.
func (clk *Clock) TicksToNanos(ticks uint64) uint64 {
	return TicksToNanos(ticks, clk.Frequency())
}

// NanosToTicks converts nanoseconds to a tick count at the current frequency.
func (clk *Clock) NanosToTicks(nanos uint64) uint64 {
	return NanosToTicks(nanos, clk.Frequency())
}

// Uptime is the emulated time since power on.
func (clk *Clock) Uptime() time.Duration {
	return time.Duration(clk.TicksToNanos(clk.Ticks()))
}

// TicksToNanos converts a tick count to nanoseconds for a frequency in kHz.
// One tick at 1kHz is one millisecond.
func TicksToNanos(ticks uint64, kHz int) uint64 {
	k := uint64(kHz)
	return (ticks/k)*1000000 + (ticks%k)*1000000/k
}

// NanosToTicks converts nanoseconds to a tick count for a frequency in kHz.
func NanosToTicks(nanos uint64, kHz int) uint64 {
	k := uint64(kHz)
	return (nanos/1000000)*k + (nanos%1000000)*k/1000000
}
