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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
)

// operator used for words that are not instructions
const dataOperator = ".WORD"

// operator used for addresses that are not mapped
const unmappedOperator = "??"

// decoder follows the instruction stream of a single instruction
type decoder struct {
	dsm   *Disassembly
	entry *Entry
	pc    uint16
}

// word reads the next word of the instruction stream. the value is bus.Error
// if the address is not mapped
func (dec *decoder) word() int {
	v := dec.dsm.mem.Peek(dec.pc)
	dec.pc += 2
	if v == bus.Error {
		dec.entry.Words = append(dec.entry.Words, 0)
	} else {
		dec.entry.Words = append(dec.entry.Words, uint16(v))
	}
	return v
}

func (dec *decoder) address(a uint16) string {
	dec.entry.Target = int(a)
	if dec.dsm.sym != nil {
		if s, ok := dec.dsm.sym.GetSymbol(a); ok {
			return s
		}
	}
	return fmt.Sprintf("%06o", a)
}

func (dec *decoder) operand(mode instructions.AddressingMode, reg int) string {
	r := registers.Label(reg)

	if reg == registers.PC {
		switch mode {
		case instructions.Autoincrement:
			v := dec.word()
			if v == bus.Error {
				return "#?"
			}
			return fmt.Sprintf("#%06o", v)
		case instructions.AutoincrementDeferred:
			v := dec.word()
			if v == bus.Error {
				return "@#?"
			}
			return "@#" + dec.address(uint16(v))
		case instructions.Index:
			v := dec.word()
			if v == bus.Error {
				return "?"
			}
			return dec.address(dec.pc + uint16(v))
		case instructions.IndexDeferred:
			v := dec.word()
			if v == bus.Error {
				return "@?"
			}
			return "@" + dec.address(dec.pc+uint16(v))
		}
	}

	switch mode {
	case instructions.Register:
		return r
	case instructions.RegisterDeferred:
		return fmt.Sprintf("(%s)", r)
	case instructions.Autoincrement:
		return fmt.Sprintf("(%s)+", r)
	case instructions.AutoincrementDeferred:
		return fmt.Sprintf("@(%s)+", r)
	case instructions.Autodecrement:
		return fmt.Sprintf("-(%s)", r)
	case instructions.AutodecrementDeferred:
		return fmt.Sprintf("@-(%s)", r)
	case instructions.Index, instructions.IndexDeferred:
		v := dec.word()
		x := "?"
		if v != bus.Error {
			x = fmt.Sprintf("%o", v)
		}
		if mode == instructions.IndexDeferred {
			return fmt.Sprintf("@%s(%s)", x, r)
		}
		return fmt.Sprintf("%s(%s)", x, r)
	}

	return "?"
}

// names of the condition code instructions in the order of the flag bits
var clearNames = []string{"CLC", "CLV", "CLZ", "CLN"}
var setNames = []string{"SEC", "SEV", "SEZ", "SEN"}

func conditionCodes(defn *instructions.Definition, instruction uint16) string {
	mask := instruction & 017
	switch mask {
	case 0:
		return "NOP"
	case 017:
		return defn.Mnemonic
	}

	names := clearNames
	if defn.Operator == instructions.SCC {
		names = setNames
	}

	var s []string
	for i, n := range names {
		if mask&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, "!")
}

// decode the instruction at the address
func (dsm *Disassembly) decode(address uint16) Entry {
	e := Entry{
		Address: address,
		Target:  NoTarget,
	}

	if dsm.sym != nil {
		e.Label, _ = dsm.sym.GetLabel(address)
	}

	dec := decoder{dsm: dsm, entry: &e, pc: address}

	v := dec.word()
	if v == bus.Error {
		e.Words = nil
		e.Operator = unmappedOperator
		return e
	}
	instruction := uint16(v)

	e.Defn = instructions.Lookup(instruction)
	if e.Defn == nil {
		e.Operator = dataOperator
		e.Operand = fmt.Sprintf("%06o", instruction)
		return e
	}

	e.Operator = e.Defn.Mnemonic

	switch e.Defn.Format {
	case instructions.NoOperands:
	case instructions.ConditionCode:
		e.Operator = conditionCodes(e.Defn, instruction)
	case instructions.SingleOperand, instructions.SourceOperand:
		e.Operand = dec.operand(instructions.DestinationMode(instruction), instructions.DestinationRegister(instruction))
	case instructions.DoubleOperand:
		src := dec.operand(instructions.SourceMode(instruction), instructions.SourceRegister(instruction))
		dst := dec.operand(instructions.DestinationMode(instruction), instructions.DestinationRegister(instruction))
		e.Operand = fmt.Sprintf("%s,%s", src, dst)
	case instructions.RegisterDestination:
		dst := dec.operand(instructions.DestinationMode(instruction), instructions.DestinationRegister(instruction))
		e.Operand = fmt.Sprintf("%s,%s", registers.Label(instructions.RegisterField(instruction)), dst)
	case instructions.RegisterOnly:
		e.Operand = registers.Label(instructions.DestinationRegister(instruction))
	case instructions.BranchOffset8:
		e.Operand = dec.address(address + 2 + uint16(instructions.BranchOffset(instruction)))
	case instructions.RegisterOffset:
		target := dec.address(address + 2 - uint16(instructions.SOBOffset(instruction)))
		e.Operand = fmt.Sprintf("%s,%s", registers.Label(instructions.RegisterField(instruction)), target)
	case instructions.Number6, instructions.Number8:
		e.Operand = fmt.Sprintf("%o", instructions.Number(instruction, e.Defn.Format))
	}

	return e
}
