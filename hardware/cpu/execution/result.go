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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, the instruction word and the number
// of ticks it took.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction word. not meaningful if Interrupt or Waiting is set
	InstructionWord uint16

	// the definition of the instruction. nil if the instruction word is not
	// a valid instruction or if no instruction was executed
	Defn *instructions.Definition

	// the number of ticks the instruction took, including any trap
	Ticks int

	// the instruction word was not a valid instruction
	Illegal bool

	// a bus fault occurred during execution
	BusError bool

	// the instruction (or a failed trap sequence) halted the CPU
	Halt bool

	// the trap vector taken as a result of this step. zero if no trap was
	// taken. if more than one trap was taken it is the vector of the last
	Trap uint16

	// a trace trap was taken after the instruction
	Traced bool

	// a vectored interrupt was serviced instead of executing an instruction.
	// the Trap field holds the vector
	Interrupt bool

	// the CPU is waiting for an interrupt. no instruction was executed
	Waiting bool
}

// Reset the Result to its zero value.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}

	switch {
	case r.Waiting:
		s.WriteString(fmt.Sprintf("%06o: WAIT", r.Address))
	case r.Interrupt:
		s.WriteString(fmt.Sprintf("%06o: interrupt", r.Address))
	case r.Illegal || r.Defn == nil:
		s.WriteString(fmt.Sprintf("%06o: %06o ???", r.Address, r.InstructionWord))
	default:
		s.WriteString(fmt.Sprintf("%06o: %06o %s", r.Address, r.InstructionWord, r.Defn.Mnemonic))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Ticks))

	if r.BusError {
		s.WriteString(" bus-error")
	}
	if r.Trap != 0 {
		s.WriteString(fmt.Sprintf(" trap=%03o", r.Trap))
	}
	if r.Traced {
		s.WriteString(" traced")
	}
	if r.Halt {
		s.WriteString(" halt")
	}

	return s.String()
}
