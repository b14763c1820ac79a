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
	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
//
// Run() also uses the value to decide how often to consult the Governor.
const PerformanceBrake = 100

// Run the emulation until the continueCheck function returns govern.Ending
// or until the Governor is stopped. The continueCheck function may be nil.
//
// Pacing is handled by the Limiter. When the Governor is paused Run() blocks
// until the emulation is resumed or stopped.
func (cmp *Computer) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	cmp.applyPrefs()
	cmp.Governor.Start()
	cmp.Limiter.Resync()

	var brake int
	var err error

	state := govern.Running

	for state != govern.Ending {
		brake++
		if brake >= PerformanceBrake {
			brake = 0

			switch cmp.Governor.State() {
			case govern.Ending:
				return nil
			case govern.Paused:
				st, resumed := cmp.Governor.Wait()
				if st == govern.Ending {
					return nil
				}
				if resumed {
					cmp.Limiter.Resync()
				}
			}
		}

		switch state {
		case govern.Running:
			err = cmp.Step()
			if err != nil {
				return err
			}
			cmp.Limiter.Check()
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
