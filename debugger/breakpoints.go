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

// breakpoints are used to halt execution when a target is *changed to* a
// specific value. compare to watches which are used to halt execution when
// a memory location changes from its current value.

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/commandline"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
)

// breakpoints keeps track of all the currently defined breakers
type breakpoints struct {
	dbg *Debugger

	// array of breakers are ORed together
	breaks []*breaker
}

// breaker defines a specific break condition
type breaker struct {
	target target
	value  uint16

	// single linked list ANDs breakers together
	next *breaker

	// whether the condition was met the last time it was checked. only the
	// first node in the list uses this
	matched bool
}

func (bk *breaker) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s->%06o", bk.target.label, bk.value))
	n := bk.next
	for n != nil {
		s.WriteString(fmt.Sprintf(" & %s->%06o", n.target.label, n.value))
		n = n.next
	}
	return s.String()
}

// compares two breakers for equality. returns true if the two breakers are
// logically the same.
func (bk *breaker) cmp(ck *breaker) bool {
	// count number of nodes
	bn := 0
	for b := bk; b != nil; b = b.next {
		bn++
	}
	cn := 0
	for c := ck; c != nil; c = c.next {
		cn++
	}

	// if counts are different then the comparison has failed
	if cn != bn {
		return false
	}

	// compare all nodes with one another
	for b := bk; b != nil; b = b.next {
		match := false
		for c := ck; c != nil; c = c.next {
			match = b.target.label == c.target.label && b.value == c.value
			if match {
				break // for loop
			}
		}
		if !match {
			return false
		}
	}

	return true
}

// condition returns true if every node in the list matches the current
// value of its target
func (bk *breaker) condition() bool {
	for b := bk; b != nil; b = b.next {
		if b.target.value() != b.value {
			return false
		}
	}
	return true
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	return &breakpoints{dbg: dbg}
}

// prime records the current state of every break condition. a condition
// that is already met will not halt execution until it has been unmet.
func (bp *breakpoints) prime() {
	for _, b := range bp.breaks {
		b.matched = b.condition()
	}
}

// check returns a description of the first break condition that has become
// true since the last check.
func (bp *breakpoints) check() (string, bool) {
	var reason string
	for _, b := range bp.breaks {
		m := b.condition()
		if m && !b.matched && reason == "" {
			reason = fmt.Sprintf("break on %s", b)
		}
		b.matched = m
	}
	return reason, reason != ""
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return curated.Errorf("debugger: breakpoint #%d is not defined", num)
	}
	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)
	return nil
}

func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, b)
	}
}

// parseCommand adds a new breakpoint. a single address is a break on the
// program counter. otherwise conditions are pairs of target and value,
// joined by &
//
//	BREAK 1000
//	BREAK PC 1000 & R1 5
func (bp *breakpoints) parseCommand(tk *commandline.Tokens) error {
	var head, tail *breaker

	for !tk.IsEnd() {
		nb := &breaker{}

		s, _ := tk.Peek()
		if isTarget(s) {
			tk.Get()
			t, err := bp.dbg.parseTarget(s)
			if err != nil {
				return err
			}
			if tk.IsEnd() {
				return curated.Errorf(MissingArgument, cmdBreak, "a value for "+t.label)
			}
			v, err := tk.GetNumber(16, 0)
			if err != nil {
				return err
			}
			nb.target = t
			nb.value = uint16(v)
		} else {
			a, err := bp.dbg.getAddress(tk, 0)
			if err != nil {
				return err
			}
			nb.target, _ = bp.dbg.parseTarget("PC")
			nb.value = a
		}

		if head == nil {
			head = nb
		} else {
			tail.next = nb
		}
		tail = nb

		// conjunction
		if s, ok := tk.Peek(); ok {
			if s != "&" && s != "&&" {
				return curated.Errorf(UnexpectedArgs, cmdBreak, tk.Remainder())
			}
			tk.Get()
			if tk.IsEnd() {
				return curated.Errorf(MissingArgument, cmdBreak, "a condition after &")
			}
		}
	}

	for _, b := range bp.breaks {
		if b.cmp(head) {
			return curated.Errorf("debugger: already exists (%s)", b)
		}
	}

	head.matched = head.condition()
	bp.breaks = append(bp.breaks, head)

	return nil
}
