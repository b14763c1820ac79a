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

import (
	"fmt"
)

// Format describes the layout of the operand fields in an instruction word.
type Format int

// List of instruction formats.
const (
	// no operand fields
	NoOperands Format = iota

	// low four bits are a mask of condition codes
	ConditionCode

	// low six bits are the destination mode and register
	SingleOperand

	// low six bits are the source mode and register
	SourceOperand

	// bits 6 to 11 are the source, low six bits are the destination
	DoubleOperand

	// bits 6 to 8 are a register, low six bits are the destination
	RegisterDestination

	// low three bits are a register
	RegisterOnly

	// low eight bits are a signed word offset
	BranchOffset8

	// bits 6 to 8 are a register, low six bits are an unsigned word offset
	RegisterOffset

	// low six bits are a number
	Number6

	// low eight bits are a number
	Number8
)

// OperandMask returns the bits of an instruction word used by the operand
// fields of the format.
func (f Format) OperandMask() uint16 {
	switch f {
	case ConditionCode:
		return 0000017
	case SingleOperand, SourceOperand, Number6:
		return 0000077
	case DoubleOperand:
		return 0007777
	case RegisterDestination, RegisterOffset:
		return 0000777
	case RegisterOnly:
		return 0000007
	case BranchOffset8, Number8:
		return 0000377
	}
	return 0
}

// EffectCategory categorises an instruction by the effect it has on its
// destination operand.
type EffectCategory int

// List of effect categories.
const (
	// destination is read but not written
	Read EffectCategory = iota

	// destination is written but not read
	Write

	// destination is read and then written
	Modify

	// the program counter is changed
	Flow

	// subroutine call or return
	Subroutine

	// trap, interrupt return or processor control
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	Operator Operator
	Mnemonic string
	Opcode   uint16
	Format   Format
	ByteMode bool
	Effect   EffectCategory

	// the base number of ticks for the instruction. see Ticks()
	Cycles int
}

func (defn Definition) String() string {
	return fmt.Sprintf("%06o %s (%d cycles) [format=%d byte=%t effect=%s]", defn.Opcode, defn.Mnemonic, defn.Cycles, defn.Format, defn.ByteMode, defn.Effect)
}

// Matches returns true if the instruction word is an encoding of the
// instruction.
func (defn Definition) Matches(instruction uint16) bool {
	return instruction&^defn.Format.OperandMask() == defn.Opcode
}

// IsBranch returns true if the instruction is a conditional or unconditional
// branch.
func (defn Definition) IsBranch() bool {
	return defn.Format == BranchOffset8
}

// base cycle counts shared by groups of instructions
const (
	cyclesBasic   = 12
	cyclesBranch  = 16
	cyclesTrap    = 68
	cyclesReturn  = 40
	cyclesSubCall = 32
	cyclesReset   = 1140
)

// definitions of every instruction. the order of the list is not important
// because no two definitions share an encoding.
var definitions = []Definition{
	{Operator: HALT, Opcode: 0000000, Format: NoOperands, Effect: Interrupt, Cycles: cyclesTrap},
	{Operator: WAIT, Opcode: 0000001, Format: NoOperands, Effect: Interrupt, Cycles: cyclesBasic},
	{Operator: RTI, Opcode: 0000002, Format: NoOperands, Effect: Interrupt, Cycles: cyclesReturn},
	{Operator: BPT, Opcode: 0000003, Format: NoOperands, Effect: Interrupt, Cycles: cyclesTrap},
	{Operator: IOT, Opcode: 0000004, Format: NoOperands, Effect: Interrupt, Cycles: cyclesTrap},
	{Operator: RESET, Opcode: 0000005, Format: NoOperands, Effect: Interrupt, Cycles: cyclesReset},
	{Operator: RTT, Opcode: 0000006, Format: NoOperands, Effect: Interrupt, Cycles: cyclesReturn},
	{Operator: JMP, Opcode: 0000100, Format: SingleOperand, Effect: Flow, Cycles: cyclesBasic},
	{Operator: RTS, Opcode: 0000200, Format: RegisterOnly, Effect: Subroutine, Cycles: cyclesSubCall},
	{Operator: CCC, Opcode: 0000240, Format: ConditionCode, Effect: Interrupt, Cycles: cyclesBasic},
	{Operator: SCC, Opcode: 0000260, Format: ConditionCode, Effect: Interrupt, Cycles: cyclesBasic},
	{Operator: SWAB, Opcode: 0000300, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},

	{Operator: BR, Opcode: 0000400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BNE, Opcode: 0001000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BEQ, Opcode: 0001400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BGE, Opcode: 0002000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BLT, Opcode: 0002400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BGT, Opcode: 0003000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BLE, Opcode: 0003400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BPL, Opcode: 0100000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BMI, Opcode: 0100400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BHI, Opcode: 0101000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BLOS, Opcode: 0101400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BVC, Opcode: 0102000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BVS, Opcode: 0102400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BCC, Opcode: 0103000, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},
	{Operator: BCS, Opcode: 0103400, Format: BranchOffset8, Effect: Flow, Cycles: cyclesBranch},

	{Operator: JSR, Opcode: 0004000, Format: RegisterDestination, Effect: Subroutine, Cycles: cyclesSubCall},

	{Operator: CLR, Opcode: 0005000, Format: SingleOperand, Effect: Write, Cycles: cyclesBasic},
	{Operator: COM, Opcode: 0005100, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: INC, Opcode: 0005200, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: DEC, Opcode: 0005300, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: NEG, Opcode: 0005400, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ADC, Opcode: 0005500, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: SBC, Opcode: 0005600, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: TST, Opcode: 0005700, Format: SingleOperand, Effect: Read, Cycles: cyclesBasic},
	{Operator: ROR, Opcode: 0006000, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ROL, Opcode: 0006100, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ASR, Opcode: 0006200, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ASL, Opcode: 0006300, Format: SingleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: MARK, Opcode: 0006400, Format: Number6, Effect: Subroutine, Cycles: 36},
	{Operator: SXT, Opcode: 0006700, Format: SingleOperand, Effect: Write, Cycles: cyclesBasic},

	{Operator: MOV, Opcode: 0010000, Format: DoubleOperand, Effect: Write, Cycles: cyclesBasic},
	{Operator: CMP, Opcode: 0020000, Format: DoubleOperand, Effect: Read, Cycles: cyclesBasic},
	{Operator: BIT, Opcode: 0030000, Format: DoubleOperand, Effect: Read, Cycles: cyclesBasic},
	{Operator: BIC, Opcode: 0040000, Format: DoubleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: BIS, Opcode: 0050000, Format: DoubleOperand, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ADD, Opcode: 0060000, Format: DoubleOperand, Effect: Modify, Cycles: cyclesBasic},

	{Operator: XOR, Opcode: 0074000, Format: RegisterDestination, Effect: Modify, Cycles: cyclesBasic},
	{Operator: SOB, Opcode: 0077000, Format: RegisterOffset, Effect: Flow, Cycles: 20},

	{Operator: EMT, Opcode: 0104000, Format: Number8, Effect: Interrupt, Cycles: cyclesTrap},
	{Operator: TRAP, Opcode: 0104400, Format: Number8, Effect: Interrupt, Cycles: cyclesTrap},

	{Operator: CLR, Opcode: 0105000, Format: SingleOperand, ByteMode: true, Effect: Write, Cycles: cyclesBasic},
	{Operator: COM, Opcode: 0105100, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: INC, Opcode: 0105200, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: DEC, Opcode: 0105300, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: NEG, Opcode: 0105400, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ADC, Opcode: 0105500, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: SBC, Opcode: 0105600, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: TST, Opcode: 0105700, Format: SingleOperand, ByteMode: true, Effect: Read, Cycles: cyclesBasic},
	{Operator: ROR, Opcode: 0106000, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ROL, Opcode: 0106100, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ASR, Opcode: 0106200, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: ASL, Opcode: 0106300, Format: SingleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: MTPS, Opcode: 0106400, Format: SourceOperand, ByteMode: true, Effect: Read, Cycles: 24},
	{Operator: MFPS, Opcode: 0106700, Format: SingleOperand, ByteMode: true, Effect: Write, Cycles: cyclesBasic},

	{Operator: MOV, Opcode: 0110000, Format: DoubleOperand, ByteMode: true, Effect: Write, Cycles: cyclesBasic},
	{Operator: CMP, Opcode: 0120000, Format: DoubleOperand, ByteMode: true, Effect: Read, Cycles: cyclesBasic},
	{Operator: BIT, Opcode: 0130000, Format: DoubleOperand, ByteMode: true, Effect: Read, Cycles: cyclesBasic},
	{Operator: BIC, Opcode: 0140000, Format: DoubleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: BIS, Opcode: 0150000, Format: DoubleOperand, ByteMode: true, Effect: Modify, Cycles: cyclesBasic},
	{Operator: SUB, Opcode: 0160000, Format: DoubleOperand, Effect: Modify, Cycles: cyclesBasic},
}

func init() {
	for i := range definitions {
		d := &definitions[i]
		d.Mnemonic = d.Operator.String()
		if d.ByteMode && d.Operator != MTPS && d.Operator != MFPS {
			d.Mnemonic += "B"
		}
	}
}

// GetDefinitions returns the instruction definitions for the 1801VM1. The
// returned slice should not be modified.
func GetDefinitions() []Definition {
	return definitions
}

// Lookup returns the Definition for the instruction word. Returns nil if the
// instruction word is not a valid instruction.
//
// This function searches the list of definitions and is too slow for use
// during emulation. The CPU builds its own table for that purpose.
func Lookup(instruction uint16) *Definition {
	for i := range definitions {
		if definitions[i].Matches(instruction) {
			return &definitions[i]
		}
	}
	return nil
}
