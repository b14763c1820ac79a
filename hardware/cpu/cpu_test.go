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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/cpu"
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/test"
)

// mockMem is 32KB of RAM from address zero. everything above that is
// unmapped except for the boot register
type mockMem struct {
	data   [040000]uint16
	boot   int
	resets int
}

func newMockMem() *mockMem {
	return &mockMem{boot: bus.Error}
}

func (mem *mockMem) ReadMemory(byteMode bool, address uint16) int {
	var v int
	switch {
	case address&^1 == cpu.BootRegister:
		v = mem.boot
	case address >= 0100000:
		return bus.Error
	default:
		v = int(mem.data[address>>1])
	}
	if byteMode {
		return bus.SelectByte(v, address)
	}
	return v
}

func (mem *mockMem) WriteMemory(byteMode bool, address uint16, value uint16) bool {
	if address >= 0100000 {
		return false
	}
	i := address >> 1
	if byteMode {
		if address&1 == 1 {
			mem.data[i] = (mem.data[i] & 0x00ff) | (value << 8)
		} else {
			mem.data[i] = (mem.data[i] & 0xff00) | (value & 0x00ff)
		}
		return true
	}
	mem.data[i] = value
	return true
}

func (mem *mockMem) ResetDevices() {
	mem.resets++
}

func (mem *mockMem) putInstructions(origin uint16, words ...uint16) uint16 {
	for i, w := range words {
		mem.data[int(origin>>1)+i] = w
	}
	return origin + uint16(len(words)*2)
}

func (mem *mockMem) putVector(vector uint16, pc uint16, psw uint16) {
	mem.data[vector>>1] = pc
	mem.data[(vector+2)>>1] = psw
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint16) {
	t.Helper()
	if mem.data[address>>1] != value {
		t.Errorf("assert mockMem failed (%06o - wanted %06o at address %06o)", mem.data[address>>1], value, address)
	}
}

const origin = uint16(001000)
const stack = uint16(000700)

func newTestCPU() (*mockMem, *cpu.CPU) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs.SetPC(origin)
	mc.Regs.SetSP(stack)
	mc.Status.Load(0)

	mem.putVector(cpu.VectorBusError, 002000, 0)
	mem.putVector(cpu.VectorIllegal, 002100, 0)
	mem.putVector(cpu.VectorTrace, 002200, 0)
	mem.putVector(cpu.VectorEMT, 002300, 0)

	return mem, mc
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectSuccess(t, mc.LastResult.IsValid(), mc.LastResult.String())
}

func TestTable(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		test.ExpectEquality(t, cpu.Definition(defn.Opcode).Mnemonic, defn.Mnemonic)
		test.ExpectEquality(t, cpu.Definition(defn.Opcode|defn.Format.OperandMask()).Mnemonic, defn.Mnemonic)
	}
	test.ExpectEquality(t, cpu.Definition(0000007) == nil, true)
	test.ExpectEquality(t, cpu.Definition(0170000) == nil, true)
	test.ExpectEquality(t, cpu.Definition(0000240).Mnemonic, "CCC")
	test.ExpectEquality(t, cpu.Definition(0112737).Mnemonic, "MOVB")
}

func TestAutoincrement(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(004000, 0x1234, 0x5678)
	mem.putInstructions(origin,
		0112001,         // MOVB (R0)+, R1
		0012001,         // MOV (R0)+, R1
		0112601,         // MOVB (SP)+, R1
		0112701, 000012, // MOVB #12, R1
		0114201,         // MOVB -(R2), R1
	)

	mc.Regs.Write(false, 0, 004000)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 004001)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 0x34)

	mc.Regs.Write(false, 0, 004002)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 004004)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 0x5678)

	// stack pointer always steps by two
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.SP(), stack+2)

	// as does the program counter
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 000012)
	test.ExpectEquality(t, mc.Regs.PC(), origin+012)

	mc.Regs.Write(false, 2, 004001)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 2), 004000)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 0x34)
}

func TestIndex(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(004010, 0111)
	mem.putInstructions(004020, 004010)
	mem.putInstructions(origin,
		0016001, 000010, // MOV 10(R0), R1
		0017002, 000020, // MOV @20(R0), R2
		0016703, 002774, // MOV 2774(PC), R3
	)

	mc.Regs.Write(false, 0, 004000)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 0111)
	test.ExpectEquality(t, mc.Regs.PC(), origin+4)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 2), 0111)

	// the base of a PC index is the address after the index word
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 3), 0111)
	test.ExpectEquality(t, mc.Regs.PC(), origin+014)
}

func TestADC(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0105500, // ADCB R0
		0005500, // ADC R0
		0105500, // ADCB R0
		0005500, // ADC R0
	)

	// byte boundary
	mc.Regs.Write(false, 0, 0000377)
	mc.Status.Set(registers.Carry, true)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0)
	test.ExpectEquality(t, mc.Status.String(), "hptnZvC")

	// word boundary
	mc.Regs.Write(false, 0, 0177777)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0)
	test.ExpectEquality(t, mc.Status.String(), "hptnZvC")

	// overflow into the sign bit
	mc.Regs.Write(false, 0, 0000177)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0000200)
	test.ExpectEquality(t, mc.Status.String(), "hptNzVc")

	// no carry in
	mc.Regs.Write(false, 0, 0000005)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0000005)
	test.ExpectEquality(t, mc.Status.String(), "hptnzvc")
}

func TestOperators(t *testing.T) {
	type operation struct {
		name   string
		instr  uint16
		r0     uint16
		r1     uint16
		cin    bool
		result uint16
		flags  string
	}

	ops := []operation{
		{name: "COM", instr: 0005100, r0: 0, result: 0177777, flags: "hptNzvC"},
		{name: "INC", instr: 0005200, r0: 0077777, result: 0100000, flags: "hptNzVc"},
		{name: "INC carry", instr: 0005200, r0: 0, cin: true, result: 1, flags: "hptnzvC"},
		{name: "DEC", instr: 0005300, r0: 0100000, result: 0077777, flags: "hptnzVc"},
		{name: "NEG", instr: 0005400, r0: 1, result: 0177777, flags: "hptNzvC"},
		{name: "NEG zero", instr: 0005400, r0: 0, result: 0, flags: "hptnZvc"},
		{name: "NEG min", instr: 0005400, r0: 0100000, result: 0100000, flags: "hptNzVC"},
		{name: "SBC", instr: 0005600, r0: 0, cin: true, result: 0177777, flags: "hptNzvC"},
		{name: "SBC min", instr: 0005600, r0: 0100000, result: 0100000, flags: "hptNzVc"},
		{name: "TST", instr: 0005700, r0: 0, cin: true, result: 0, flags: "hptnZvc"},
		{name: "ROR", instr: 0006000, r0: 1, result: 0, flags: "hptnZVC"},
		{name: "ROL", instr: 0006100, r0: 0100000, cin: true, result: 1, flags: "hptnzVC"},
		{name: "ASR", instr: 0006200, r0: 0100001, result: 0140000, flags: "hptNzvC"},
		{name: "ASL", instr: 0006300, r0: 0040000, result: 0100000, flags: "hptNzVc"},
		{name: "SWAB", instr: 0000300, r0: 0x00ff, cin: true, result: 0xff00, flags: "hptnZvc"},
		{name: "CLRB", instr: 0105000, r0: 0177777, cin: true, result: 0177400, flags: "hptnZvc"},
		{name: "COMB", instr: 0105100, r0: 0, result: 0000377, flags: "hptNzvC"},
		{name: "INCB", instr: 0105200, r0: 0000177, result: 0000200, flags: "hptNzVc"},
		{name: "ASLB", instr: 0106300, r0: 0000200, result: 0, flags: "hptnZVC"},
		{name: "ADD", instr: 0060100, r0: 0077777, r1: 1, result: 0100000, flags: "hptNzVc"},
		{name: "ADD carry", instr: 0060100, r0: 0177777, r1: 1, result: 0, flags: "hptnZvC"},
		{name: "SUB", instr: 0160100, r0: 0, r1: 1, result: 0177777, flags: "hptNzvC"},
		{name: "SUB overflow", instr: 0160100, r0: 0077777, r1: 0177777, result: 0100000, flags: "hptNzVC"},
		{name: "CMP", instr: 0020100, r0: 2, r1: 1, result: 2, flags: "hptNzvC"},
		{name: "CMPB", instr: 0120100, r0: 0000200, r1: 0, result: 0000200, flags: "hptNzVC"},
		{name: "BIT", instr: 0030100, r0: 2, r1: 1, cin: true, result: 2, flags: "hptnZvC"},
		{name: "BIC", instr: 0040100, r0: 3, r1: 1, result: 2, flags: "hptnzvc"},
		{name: "BIS", instr: 0050100, r0: 1, r1: 0100000, result: 0100001, flags: "hptNzvc"},
		{name: "XOR", instr: 0074100, r0: 5, r1: 3, result: 6, flags: "hptnzvc"},
		{name: "MOVB", instr: 0110100, r0: 0, r1: 0000377, result: 0177777, flags: "hptNzvc"},
		{name: "MOV", instr: 0010100, r0: 0, r1: 0, cin: true, result: 0, flags: "hptnZvC"},
	}

	for _, op := range ops {
		mem, mc := newTestCPU()
		mem.putInstructions(origin, op.instr)
		mc.Regs.Write(false, 0, op.r0)
		mc.Regs.Write(false, 1, op.r1)
		mc.Status.Set(registers.Carry, op.cin)
		step(t, mc)
		test.ExpectEquality(t, mc.Regs.Read(false, 0), op.result, op.name)
		test.ExpectEquality(t, mc.Status.String(), op.flags, op.name)
	}
}

func TestStatusWord(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0000277, // SCC
		0000257, // CCC
		0106401, // MTPS R1
		0106700, // MFPS R0
		0006702, // SXT R2
	)

	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "hptNZVC")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "hptnzvc")

	// MTPS does not change the trace flag
	mc.Regs.Write(false, 1, 0000377)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0000357)

	// MFPS to a register is sign extended
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0177757)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), true)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 2), 0177777)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), false)
}

func TestBranches(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0022700, 000005, // CMP #5, R0
		0001401,         // BEQ .+4
		0005201,         // INC R1
		0001001,         // BNE .+4
		0005202,         // INC R2
		0000777,         // BR .
	)

	mc.Regs.Write(false, 0, 5)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), origin+010)

	// BNE is not taken because Z is still set
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 2), 1)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 0)

	// branch to self
	pc := mc.Regs.PC()
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), pc)
}

func TestSubroutine(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0004737, 002000, // JSR PC, @#2000
	)
	mem.putInstructions(002000,
		0000207, // RTS PC
	)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), 002000)
	test.ExpectEquality(t, mc.Regs.SP(), stack-2)
	mem.assert(t, stack-2, origin+4)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), origin+4)
	test.ExpectEquality(t, mc.Regs.SP(), stack)

	// JSR with a link register other than the PC
	mem.putInstructions(origin+4, 0004537, 003000) // JSR R5, @#3000
	mem.putInstructions(003000, 0000205)          // RTS R5
	mc.Regs.Write(false, 5, 0123)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Read(false, 5), origin+010)
	mem.assert(t, stack-2, 0123)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), origin+010)
	test.ExpectEquality(t, mc.Regs.Read(false, 5), 0123)
}

func TestMARK(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin, 0006402) // MARK 2
	mem.putInstructions(origin+6, 001234)
	mc.Regs.Write(false, 5, 003000)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), 003000)
	test.ExpectEquality(t, mc.Regs.Read(false, 5), 001234)
	test.ExpectEquality(t, mc.Regs.SP(), origin+010)
}

func TestSOB(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0005201, // INC R1
		0077002, // SOB R0, .-2
	)

	mc.Regs.Write(false, 0, 3)
	for i := 0; i < 6; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.Regs.Read(false, 0), 0)
	test.ExpectEquality(t, mc.Regs.Read(false, 1), 3)
	test.ExpectEquality(t, mc.Regs.PC(), origin+4)
}

func TestBusError(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0013700, 0100000, // MOV @#100000, R0
	)
	mc.Status.Load(0000017)

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.BusError)
	test.ExpectEquality(t, mc.LastResult.Trap, cpu.VectorBusError)
	test.ExpectEquality(t, mc.LastResult.Ticks, mc.LastResult.Defn.Ticks(0013700)+instructions.TrapTicks)
	test.ExpectEquality(t, mc.Regs.PC(), 002000)
	test.ExpectEquality(t, mc.Status.Value(), 0)
	mem.assert(t, stack-2, 0000017)
	mem.assert(t, stack-4, origin+4)

	// unmapped instruction fetch
	mc.Regs.SetPC(0120000)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.BusError)
	test.ExpectEquality(t, mc.LastResult.Ticks, instructions.TrapTicks)
	test.ExpectEquality(t, mc.Regs.PC(), 002000)
}

func TestFlagsOnFault(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0005037, 0100000, // CLR @#100000
		0005237, 0100000, // INC @#100000
		0010137, 0100000, // MOV R1, @#100000
	)

	// the status word pushed by the bus error trap shows the flags as they
	// were at the moment of the fault

	// CLR sets the flags even though the write fails
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.BusError)
	mem.assert(t, stack-2, uint16(registers.Zero))

	// INC changes nothing if the read fails
	mc.Regs.SetPC(origin + 4)
	mc.Regs.SetSP(stack)
	mc.Status.Load(0)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.BusError)
	mem.assert(t, stack-2, 0)

	// MOV sets the flags from the source even though the write fails
	mc.Regs.SetPC(origin + 010)
	mc.Regs.SetSP(stack)
	mc.Regs.Write(false, 1, 0100000)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.BusError)
	mem.assert(t, stack-2, uint16(registers.Negative))
}

func TestJMP(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0000137, 003000, // JMP @#3000
	)
	mem.putInstructions(003000,
		0000100, // JMP R0
	)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), 003000)

	// JMP to a register is not possible
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Trap, cpu.VectorBusError)
	test.ExpectEquality(t, mc.Regs.PC(), 002000)
}

func TestTraps(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0104017, // EMT 17
		0000000, // HALT
	)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Trap, cpu.VectorEMT)
	test.ExpectEquality(t, mc.LastResult.Ticks, 68)
	test.ExpectEquality(t, mc.Regs.PC(), 002300)

	mc.Regs.SetPC(origin + 2)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Halt)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.Regs.PC(), 002000)

	// a stack that is not writable halts the CPU
	mc.Regs.SetPC(origin)
	mc.Regs.SetSP(0120000)
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.Halted))
}

func TestIllegal(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin, 0170000, 0170000, 0170000)

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Illegal)
	test.ExpectEquality(t, mc.LastResult.Trap, cpu.VectorIllegal)
	test.ExpectEquality(t, mc.Regs.PC(), 002100)

	mc.Illegal = cpu.IllegalLog
	mc.Regs.SetPC(origin + 2)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Illegal)
	test.ExpectEquality(t, mc.Regs.PC(), origin+4)

	mc.Illegal = cpu.IllegalHalt
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalInstruction))
	test.ExpectSuccess(t, mc.Halted)

	p, err := cpu.ParseIllegalPolicy("HALT")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, cpu.IllegalHalt)
	_, err = cpu.ParseIllegalPolicy("ignore")
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownIllegalPolicy))
}

func TestInterrupts(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putVector(0000060, 004000, 0000200)
	mem.putInstructions(origin,
		0000240, // NOP
		0000001, // WAIT
	)

	// priority prevents the interrupt
	mc.Status.Set(registers.Priority, true)
	mc.RequestInterrupt(0000060)
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.Interrupt)
	test.ExpectEquality(t, mc.Regs.PC(), origin+2)

	// wait for the interrupt
	mc.Status.Set(registers.Priority, false)
	mem.putInstructions(004000, 0000002) // RTI

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Interrupt)
	test.ExpectEquality(t, mc.LastResult.Ticks, instructions.TrapTicks)
	test.ExpectEquality(t, mc.Regs.PC(), 004000)
	test.ExpectSuccess(t, mc.Status.Get(registers.Priority))

	step(t, mc)
	test.ExpectEquality(t, mc.Regs.PC(), origin+2)

	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Waiting)
	test.ExpectEquality(t, mc.LastResult.Ticks, instructions.WaitTicks)

	mc.RequestInterrupt(0000060)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Interrupt)
	test.ExpectFailure(t, mc.Waiting)
}

func TestTrace(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin,
		0000240, // NOP
		0000006, // RTT
	)
	mem.putInstructions(005000, 0000240) // NOP

	mc.Status.Set(registers.Trace, true)
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Traced)
	test.ExpectEquality(t, mc.LastResult.Ticks, 12+instructions.TrapTicks)
	test.ExpectEquality(t, mc.Regs.PC(), 002200)

	// RTT returning with the trace flag set does not trap until after the
	// next instruction
	mc.Regs.SetPC(origin + 2)
	mc.Regs.SetSP(stack - 4)
	mem.putInstructions(stack-4, 005000, 0000020)
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.Traced)
	test.ExpectEquality(t, mc.Regs.PC(), 005000)

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Traced)
	test.ExpectEquality(t, mc.Regs.PC(), 002200)
}

func TestRESET(t *testing.T) {
	mem, mc := newTestCPU()
	mem.putInstructions(origin, 0000005)
	step(t, mc)
	test.ExpectEquality(t, mem.resets, 1)
}

func TestReset(t *testing.T) {
	mem, mc := newTestCPU()
	mem.boot = 0100123

	for r := 0; r < registers.NumRegisters; r++ {
		mc.Regs.Write(false, r, uint16(r+1))
	}
	mc.Status.Load(0000017)

	mc.Reset()
	regs := mc.Regs.Snapshot()
	psw := mc.Status.Value()

	test.ExpectEquality(t, mc.Regs.PC(), 0100000)
	test.ExpectEquality(t, psw, registers.ResetValue)
	for r := 0; r < registers.SP+1; r++ {
		test.ExpectEquality(t, mc.Regs.Read(false, r), 0, r)
	}

	// reset is idempotent
	mc.Reset()
	test.ExpectEquality(t, mc.Regs.Snapshot(), regs)
	test.ExpectEquality(t, mc.Status.Value(), psw)
}
