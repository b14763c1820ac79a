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

// Package limiter paces the emulation to real time and measures the actual
// speed of the emulation.
//
// The limiter compares emulated time, as measured by the tick count, with
// wall clock time. Check() should be called after every instruction but it
// only does any work once every millisecond of emulated time. Because the
// check interval is measured in ticks it is the same in emulated time for any
// clock frequency.
//
// If the emulation is ahead of real time by more than the threshold then the
// limiter sleeps for the difference. The limiter never tries to speed up the
// emulation. If the emulation falls a long way behind real time (because the
// host was busy) the reference point is moved forward.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherbk/hardware/clocks"
)

// Clock is the source of emulated time.
type Clock interface {
	Ticks() uint64
	Frequency() int
}

// Threshold is how far ahead of real time the emulation can run before the
// limiter sleeps.
const Threshold = 10 * time.Millisecond

// MaxLag is how far behind real time the emulation can fall before the
// limiter gives up on catching up.
const MaxLag = 250 * time.Millisecond

// MeasurePeriod is how often the actual speed of the emulation is measured.
const MeasurePeriod = time.Second

// Limiter paces the emulation.
type Limiter struct {
	// whether to pace the emulation. the speed is measured regardless
	Active atomic.Bool

	// measured speed of the emulation in kHz
	Measured atomic.Value // float32

	clk Clock

	// a resync has been requested from outside the emulation goroutine
	resync atomic.Bool

	// reference point for pacing
	refTime  time.Time
	refTicks uint64

	// the tick count at which the next check will happen
	nextCheck uint64

	// reference point for measurement
	measureTime  time.Time
	measureTicks uint64

	// replaced during testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limiter is active.
func NewLimiter(clk Clock) *Limiter {
	lmtr := &Limiter{
		clk:   clk,
		now:   time.Now,
		sleep: time.Sleep,
	}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.Resync()
	return lmtr
}

// Resync moves the reference point to the current time. It should be called
// whenever the emulation has been stopped for any reason, so that time spent
// not emulating is not charged to the emulation.
func (lmtr *Limiter) Resync() {
	t := lmtr.now()
	ticks := lmtr.clk.Ticks()

	lmtr.refTime = t
	lmtr.refTicks = ticks
	lmtr.measureTime = t
	lmtr.measureTicks = ticks
	lmtr.nextCheck = ticks + lmtr.interval()
}

// RequestResync asks for Resync() to happen on the next call to Check().
// Unlike Resync() it is safe to call from any goroutine.
func (lmtr *Limiter) RequestResync() {
	lmtr.resync.Store(true)
}

// the check interval in ticks. this is one millisecond of emulated time
func (lmtr *Limiter) interval() uint64 {
	return uint64(lmtr.clk.Frequency())
}

// Check whether the emulation needs to be slowed down. The function returns
// immediately unless the check interval has elapsed.
func (lmtr *Limiter) Check() {
	if lmtr.resync.CompareAndSwap(true, false) {
		lmtr.Resync()
		return
	}

	ticks := lmtr.clk.Ticks()
	if ticks < lmtr.nextCheck {
		return
	}
	lmtr.nextCheck = ticks + lmtr.interval()

	t := lmtr.now()
	lmtr.measure(t, ticks)

	if !lmtr.Active.Load() {
		return
	}

	emulated := time.Duration(clocks.TicksToNanos(ticks-lmtr.refTicks, lmtr.clk.Frequency()))
	actual := t.Sub(lmtr.refTime)
	ahead := emulated - actual

	if ahead >= Threshold {
		lmtr.sleep(ahead)
	} else if ahead < -MaxLag {
		lmtr.refTime = t
		lmtr.refTicks = ticks
	}
}

func (lmtr *Limiter) measure(t time.Time, ticks uint64) {
	elapsed := t.Sub(lmtr.measureTime)
	if elapsed < MeasurePeriod {
		return
	}

	kHz := float64(ticks-lmtr.measureTicks) / float64(elapsed.Milliseconds())
	lmtr.Measured.Store(float32(kHz))

	lmtr.measureTime = t
	lmtr.measureTicks = ticks
}
