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

// Step the emulation by one CPU instruction and advance the clock by the
// number of ticks the instruction took. A WAIT instruction with nothing to
// wake it is a step of the WAIT duration.
func (cmp *Computer) Step() error {
	err := cmp.CPU.ExecuteInstruction()
	cmp.Clock.Advance(cmp.CPU.LastResult.Ticks)
	return err
}

// StepFor steps the emulation until at least the number of ticks has passed.
// The continueCheck function is called after every instruction and can end
// the stepping early by returning false.
func (cmp *Computer) StepFor(ticks uint64, continueCheck func() bool) error {
	target := cmp.Clock.Ticks() + ticks
	for cmp.Clock.Ticks() < target {
		if err := cmp.Step(); err != nil {
			return err
		}
		if continueCheck != nil && !continueCheck() {
			break
		}
	}
	return nil
}
