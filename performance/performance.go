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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/hardware/govern"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Result of a call to Check().
type Result struct {
	Ticks    uint64
	Duration time.Duration

	// speed of the emulation in kHz
	Speed float64

	// Speed as a percentage of the nominal clock frequency
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f kHz (%d ticks in %.2f seconds) %.1f%%", r.Speed, r.Ticks, r.Duration.Seconds(), r.Accuracy)
}

// Check the performance of the emulation. The Computer should have been
// prepared with any program that is to be run.
//
// The emulation is run for the specified duration after a short leadtime.
// Whether the emulation is paced depends on the Computer's preferences.
func Check(output io.Writer, profile Profile, cmp *hardware.Computer, leadtime time.Duration, duration time.Duration) (Result, error) {
	var res Result
	var startTicks uint64
	var startTime time.Time

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		performanceBrake := 0

		err := cmp.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startTicks = cmp.Clock.Ticks()
				startTime = time.Now()
			default:
			}
			return govern.Running, nil
		})
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, curated.Errorf("performance: %v", err)
	}

	if startTime.IsZero() {
		return res, curated.Errorf("performance: emulation ended before measurement began")
	}

	res.Ticks = cmp.Clock.Ticks() - startTicks
	res.Duration = time.Since(startTime)
	res.Speed = float64(res.Ticks) / res.Duration.Seconds() / 1000
	res.Accuracy = res.Speed * 100 / float64(cmp.Clock.Frequency())

	if output != nil {
		io.WriteString(output, res.String())
		io.WriteString(output, "\n")
	}

	return res, nil
}
