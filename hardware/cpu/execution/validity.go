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
	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Waiting || r.Interrupt {
		if r.Defn != nil {
			return curated.Errorf("cpu: no instruction should have been executed")
		}
		return nil
	}

	if r.Illegal {
		if r.Defn != nil {
			return curated.Errorf("cpu: illegal instruction with a definition (%06o)", r.InstructionWord)
		}
		return nil
	}

	if r.Defn == nil {
		// a fault fetching the instruction word
		if r.BusError {
			if r.Ticks != instructions.TrapTicks {
				return curated.Errorf("cpu: number of ticks wrong for instruction fetch fault (%d)", r.Ticks)
			}
			return nil
		}
		return curated.Errorf("cpu: execution has no definition (%06o)", r.InstructionWord)
	}

	if !r.Defn.Matches(r.InstructionWord) {
		return curated.Errorf("cpu: instruction word %06o is not an encoding of %s", r.InstructionWord, r.Defn.Mnemonic)
	}

	// the number of ticks depends on how many traps were entered in addition
	// to any trap that is part of the instruction definition. a bus fault or
	// a trace trap means at least one additional trap must have been entered
	extra := r.Ticks - r.Defn.Ticks(r.InstructionWord)
	if extra < 0 || extra%instructions.TrapTicks != 0 {
		return curated.Errorf("cpu: number of ticks wrong for %06o [%s] (%d instead of %d)",
			r.InstructionWord, r.Defn.Mnemonic, r.Ticks, r.Defn.Ticks(r.InstructionWord))
	}
	if (r.BusError || r.Traced) && extra == 0 {
		return curated.Errorf("cpu: trap taken without trap ticks for %06o [%s]", r.InstructionWord, r.Defn.Mnemonic)
	}

	return nil
}
