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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/commandline"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
)

// watch halts execution when the word at the address changes. if matchValue
// is true then execution halts only when the word changes to value.
type watch struct {
	address    uint16
	value      uint16
	matchValue bool

	// value of the word at the last check. may be bus.Error
	last int
}

func (w *watch) String() string {
	if w.matchValue {
		return fmt.Sprintf("%06o->%06o", w.address, w.value)
	}
	return fmt.Sprintf("%06o", w.address)
}

type watches struct {
	dbg     *Debugger
	watches []*watch
}

func newWatches(dbg *Debugger) *watches {
	return &watches{dbg: dbg}
}

func (wtc *watches) peek(address uint16) int {
	return wtc.dbg.comp.Mem.Peek(address)
}

// prime records the current value of every watched word.
func (wtc *watches) prime() {
	for _, w := range wtc.watches {
		w.last = wtc.peek(w.address)
	}
}

// check returns a description of the first watch that has been triggered
// since the last check.
func (wtc *watches) check() (string, bool) {
	var reason string
	for _, w := range wtc.watches {
		v := wtc.peek(w.address)
		if v != w.last && reason == "" {
			if !w.matchValue || v == int(w.value) {
				if w.last == bus.Error {
					reason = fmt.Sprintf("watch on %s (%06o)", w, v)
				} else {
					reason = fmt.Sprintf("watch on %s (%06o -> %06o)", w, w.last, v)
				}
			}
		}
		w.last = v
	}
	return reason, reason != ""
}

func (wtc *watches) clear() {
	wtc.watches = wtc.watches[:0]
}

func (wtc *watches) drop(num int) error {
	if num < 0 || num >= len(wtc.watches) {
		return curated.Errorf("debugger: watch #%d is not defined", num)
	}
	wtc.watches = append(wtc.watches[:num], wtc.watches[num+1:]...)
	return nil
}

func (wtc *watches) list() {
	if len(wtc.watches) == 0 {
		wtc.dbg.printLine(terminal.StyleFeedback, "no watches")
		return
	}
	for i, w := range wtc.watches {
		wtc.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, w)
	}
}

// parseCommand adds a new watch
//
//	WATCH 1000
//	WATCH 1000 5
func (wtc *watches) parseCommand(tk *commandline.Tokens) error {
	a, err := wtc.dbg.getAddress(tk, 0)
	if err != nil {
		return err
	}

	nw := &watch{address: a &^ 1}
	if !tk.IsEnd() {
		v, err := tk.GetNumber(16, 0)
		if err != nil {
			return err
		}
		nw.value = uint16(v)
		nw.matchValue = true
	}
	if !tk.IsEnd() {
		return curated.Errorf(UnexpectedArgs, cmdWatch, tk.Remainder())
	}

	for _, w := range wtc.watches {
		if w.address == nw.address && w.matchValue == nw.matchValue && w.value == nw.value {
			return curated.Errorf("debugger: already exists (%s)", w)
		}
	}

	nw.last = wtc.peek(nw.address)
	wtc.watches = append(wtc.watches, nw)

	return nil
}
