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

// Operator identifies the operation an instruction performs. Byte and word
// versions of an instruction share an Operator. The Definition of the
// instruction says whether it is the byte version.
type Operator int

// List of operators.
const (
	HALT Operator = iota
	WAIT
	RTI
	BPT
	IOT
	RESET
	RTT
	JMP
	RTS
	CCC
	SCC
	SWAB
	BR
	BNE
	BEQ
	BGE
	BLT
	BGT
	BLE
	BPL
	BMI
	BHI
	BLOS
	BVC
	BVS
	BCC
	BCS
	JSR
	CLR
	COM
	INC
	DEC
	NEG
	ADC
	SBC
	TST
	ROR
	ROL
	ASR
	ASL
	MARK
	SXT
	MTPS
	MFPS
	MOV
	CMP
	BIT
	BIC
	BIS
	ADD
	SUB
	XOR
	SOB
	EMT
	TRAP

	// the number of operators
	NumOperators
)

var operatorNames = [NumOperators]string{
	"HALT", "WAIT", "RTI", "BPT", "IOT", "RESET", "RTT", "JMP", "RTS", "CCC",
	"SCC", "SWAB", "BR", "BNE", "BEQ", "BGE", "BLT", "BGT", "BLE", "BPL", "BMI",
	"BHI", "BLOS", "BVC", "BVS", "BCC", "BCS", "JSR", "CLR", "COM", "INC", "DEC",
	"NEG", "ADC", "SBC", "TST", "ROR", "ROL", "ASR", "ASL", "MARK", "SXT",
	"MTPS", "MFPS", "MOV", "CMP", "BIT", "BIC", "BIS", "ADD", "SUB", "XOR", "SOB",
	"EMT", "TRAP",
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown operator"
	}
	return operatorNames[op]
}
