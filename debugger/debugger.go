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
	"sync/atomic"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger/commandline"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"github.com/jetsetilly/gopherbk/disassembly"
	"github.com/jetsetilly/gopherbk/disassembly/symbols"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/hardware/state"
	"github.com/jetsetilly/gopherbk/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	comp *hardware.Computer
	dsm  *disassembly.Disassembly
	term terminal.Terminal

	breakpoints *breakpoints
	watches     *watches

	// print the result of every instruction as it is executed
	trace bool

	// machine state saved by the SNAPSHOT command
	snapshot *state.Store

	// set by Interrupt() and checked while the emulation is running
	interrupted atomic.Bool

	// nesting of SOURCE commands
	sourceDepth int

	quit bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session.
func NewDebugger(comp *hardware.Computer, term terminal.Terminal) (*Debugger, error) {
	if comp == nil {
		return nil, curated.Errorf("debugger: no computer")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		comp: comp,
		term: term,
		dsm:  disassembly.NewDisassembly(comp.Mem, symbols.NewSymbols()),
	}
	dbg.breakpoints = newBreakpoints(dbg)
	dbg.watches = newWatches(dbg)

	return dbg, nil
}

// Disassembly returns the disassembly used by the debugger. Labels added to
// its symbol table appear in the debugger's output.
func (dbg *Debugger) Disassembly() *disassembly.Disassembly {
	return dbg.dsm
}

// Interrupt halts a running emulation at the end of the current instruction.
// Safe to call from any goroutine.
func (dbg *Debugger) Interrupt() {
	dbg.interrupted.Store(true)
}

// Start the debugger. The initScript is a file of monitor commands which is
// run before any terminal input. It can be the empty string.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	logger.Logf(logger.Allow, "debugger", "starting monitor for %s", dbg.comp)

	if initScript != "" {
		if err := dbg.source(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.interrupted.Store(false)

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// parseInput tokenises and runs a single line of input. Empty lines and
// comments are ignored.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.IsEnd() {
		return nil
	}
	return dbg.parseCommand(tokens)
}

func (dbg *Debugger) prompt() string {
	pc := dbg.comp.CPU.Regs.PC()
	if l, ok := dbg.dsm.Symbols().GetLabel(pc); ok {
		return fmt.Sprintf("[%06o %s] > ", pc, l)
	}
	return fmt.Sprintf("[%06o] > ", pc)
}
