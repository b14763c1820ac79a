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

package govern

import (
	"sync"
)

// Governor guards the emulation state. The zero value is not usable, use
// NewGovernor().
type Governor struct {
	crit  sync.Mutex
	cond  *sync.Cond
	state State

	// resumed is true if the state has moved from Paused to Running since the
	// last call to Wait()
	resumed bool
}

// NewGovernor is the preferred method of initialisation for the Governor
// type.
func NewGovernor() *Governor {
	gov := &Governor{
		state: Initialising,
	}
	gov.cond = sync.NewCond(&gov.crit)
	return gov
}

// State returns the current state.
func (gov *Governor) State() State {
	gov.crit.Lock()
	defer gov.crit.Unlock()
	return gov.state
}

// SetState changes the state and wakes anything blocked in Wait(). Returns
// false if the transition is not allowed, in which case the state is
// unchanged.
func (gov *Governor) SetState(state State) bool {
	gov.crit.Lock()
	defer gov.crit.Unlock()

	if !Valid(gov.state, state) {
		return false
	}
	if gov.state == Paused && state == Running {
		gov.resumed = true
	}
	gov.state = state
	gov.cond.Broadcast()

	return true
}

// Start moves the state from Initialising to Running. It has no effect in
// any other state. Returns true if the state was changed.
func (gov *Governor) Start() bool {
	gov.crit.Lock()
	defer gov.crit.Unlock()

	if gov.state != Initialising {
		return false
	}
	gov.state = Running
	gov.cond.Broadcast()

	return true
}

// Pause the emulation.
func (gov *Governor) Pause() bool {
	return gov.SetState(Paused)
}

// Resume the emulation.
func (gov *Governor) Resume() bool {
	return gov.SetState(Running)
}

// Stop the emulation. It can not be restarted.
func (gov *Governor) Stop() {
	gov.SetState(Ending)
}

// Wait blocks while the emulation is paused or initialising. It returns the
// state that ended the wait, which will be Running or Ending. The resumed
// value is true if the emulation has been resumed since the last call to
// Wait(), meaning that any record of wall clock time is out of date.
func (gov *Governor) Wait() (state State, resumed bool) {
	gov.crit.Lock()
	defer gov.crit.Unlock()

	for gov.state == Paused || gov.state == Initialising {
		gov.cond.Wait()
	}

	resumed = gov.resumed
	gov.resumed = false

	return gov.state, resumed
}
