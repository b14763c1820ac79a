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

package blocks

import "sync"

// noSelection is the index value when nothing is selected.
const noSelection = -1

// selector is the critical section shared by the composite blocks. the
// index is only ever read or written with the mutex held. the selected
// delegate is then used outside of the critical section.
type selector struct {
	crit  sync.Mutex
	index int
	limit int
}

func newSelector(limit int, index int) selector {
	return selector{
		index: index,
		limit: limit,
	}
}

// set the index. returns false if the index is out of range, in which case
// the index is unchanged. noSelection is always accepted.
func (sel *selector) set(index int) bool {
	if index != noSelection && (index < 0 || index >= sel.limit) {
		return false
	}
	sel.crit.Lock()
	defer sel.crit.Unlock()
	sel.index = index
	return true
}

func (sel *selector) get() int {
	sel.crit.Lock()
	defer sel.crit.Unlock()
	return sel.index
}
