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

package instructions

// TrapTicks is the number of ticks taken to enter a trap or interrupt service
// routine when it is not the result of an instruction. For example, a bus
// fault or a vectored interrupt request.
const TrapTicks = 68

// WaitTicks is the number of ticks that pass for each step of the CPU while
// it is waiting for an interrupt.
const WaitTicks = 16

// IllegalTicks is the number of ticks consumed by an instruction word that is
// not a valid instruction, when the word is skipped rather than trapped.
const IllegalTicks = 12

// surcharge tables indexed by addressing mode. more indirection means more
// ticks
var (
	sourceTicks = [8]int{0, 12, 12, 20, 12, 20, 20, 28}
	readTicks   = [8]int{0, 12, 12, 20, 12, 20, 20, 28}
	writeTicks  = [8]int{0, 12, 12, 20, 12, 20, 20, 28}
	modifyTicks = [8]int{0, 16, 16, 24, 16, 24, 24, 32}
	jumpTicks   = [8]int{0, 0, 4, 8, 4, 8, 8, 16}
)

// Ticks returns the number of ticks the instruction takes to execute. The
// instruction word is required because the surcharge depends on the
// addressing modes used.
//
// The time taken by any trap caused by executing the instruction is not
// included.
func (defn Definition) Ticks(instruction uint16) int {
	t := defn.Cycles

	switch defn.Format {
	case DoubleOperand:
		t += sourceTicks[SourceMode(instruction)]
		t += destinationTicks(defn.Effect, DestinationMode(instruction))
	case SingleOperand, SourceOperand:
		t += destinationTicks(defn.Effect, DestinationMode(instruction))
	case RegisterDestination:
		t += destinationTicks(defn.Effect, DestinationMode(instruction))
	}

	return t
}

func destinationTicks(effect EffectCategory, mode AddressingMode) int {
	switch effect {
	case Read:
		return readTicks[mode]
	case Write:
		return writeTicks[mode]
	case Modify:
		return modifyTicks[mode]
	case Flow, Subroutine:
		return jumpTicks[mode]
	}
	return 0
}
