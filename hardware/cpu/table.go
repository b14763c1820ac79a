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

package cpu

import (
	"sync"

	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
)

// executor performs the operation of an instruction.
type executor func(mc *CPU, defn *instructions.Definition, instruction uint16)

// entry in the opcode table. an entry with a nil definition is an illegal
// instruction.
type entry struct {
	defn *instructions.Definition
	exec executor
}

// table is indexed by the full instruction word. every encoding of an
// instruction shares the same definition and executor
var table [0200000]entry

var buildOnce sync.Once

// executors is indexed by operator
var executors = [instructions.NumOperators]executor{
	instructions.HALT:  opHALT,
	instructions.WAIT:  opWAIT,
	instructions.RTI:   opRTI,
	instructions.BPT:   opBPT,
	instructions.IOT:   opIOT,
	instructions.RESET: opRESET,
	instructions.RTT:   opRTI,
	instructions.JMP:   opJMP,
	instructions.RTS:   opRTS,
	instructions.CCC:   opCCC,
	instructions.SCC:   opSCC,
	instructions.SWAB:  opSWAB,
	instructions.BR:    opBranch,
	instructions.BNE:   opBranch,
	instructions.BEQ:   opBranch,
	instructions.BGE:   opBranch,
	instructions.BLT:   opBranch,
	instructions.BGT:   opBranch,
	instructions.BLE:   opBranch,
	instructions.BPL:   opBranch,
	instructions.BMI:   opBranch,
	instructions.BHI:   opBranch,
	instructions.BLOS:  opBranch,
	instructions.BVC:   opBranch,
	instructions.BVS:   opBranch,
	instructions.BCC:   opBranch,
	instructions.BCS:   opBranch,
	instructions.JSR:   opJSR,
	instructions.CLR:   opCLR,
	instructions.COM:   opModify,
	instructions.INC:   opModify,
	instructions.DEC:   opModify,
	instructions.NEG:   opModify,
	instructions.ADC:   opModify,
	instructions.SBC:   opModify,
	instructions.TST:   opTST,
	instructions.ROR:   opModify,
	instructions.ROL:   opModify,
	instructions.ASR:   opModify,
	instructions.ASL:   opModify,
	instructions.MARK:  opMARK,
	instructions.SXT:   opSXT,
	instructions.MTPS:  opMTPS,
	instructions.MFPS:  opMFPS,
	instructions.MOV:   opMOV,
	instructions.CMP:   opCompare,
	instructions.BIT:   opCompare,
	instructions.BIC:   opDouble,
	instructions.BIS:   opDouble,
	instructions.ADD:   opDouble,
	instructions.SUB:   opDouble,
	instructions.XOR:   opXOR,
	instructions.SOB:   opSOB,
	instructions.EMT:   opEMT,
	instructions.TRAP:  opTRAP,
}

// buildTable fills the opcode table from the instruction definitions. it is
// safe to call more than once.
func buildTable() {
	buildOnce.Do(func() {
		defns := instructions.GetDefinitions()
		for i := range defns {
			defn := &defns[i]
			exec := executors[defn.Operator]
			mask := defn.Format.OperandMask()
			for v := uint16(0); v <= mask; v++ {
				table[defn.Opcode|v] = entry{defn: defn, exec: exec}
			}
		}
	})
}

// Definition returns the instruction definition for the instruction word.
// Returns nil if the word is not a valid instruction.
func Definition(instruction uint16) *instructions.Definition {
	buildTable()
	return table[instruction].defn
}
