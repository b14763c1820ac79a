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
	"github.com/jetsetilly/gopherbk/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbk/hardware/cpu/registers"
)

// the value mask and the sign bit for byte or word operations
func width(byteMode bool) (uint16, uint16) {
	if byteMode {
		return 0x00ff, 0x0080
	}
	return 0xffff, 0x8000
}

// sign extend a byte to a word
func signExtend(v uint16) uint16 {
	return uint16(int16(int8(v)))
}

// the value of the carry flag as a number
func (mc *CPU) carry() uint16 {
	if mc.Status.Get(registers.Carry) {
		return 1
	}
	return 0
}

func destination(instruction uint16) (instructions.AddressingMode, int) {
	return instructions.DestinationMode(instruction), instructions.DestinationRegister(instruction)
}

func source(instruction uint16) (instructions.AddressingMode, int) {
	return instructions.SourceMode(instruction), instructions.SourceRegister(instruction)
}

func opHALT(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.LastResult.Halt = true
	mc.enterTrap(vectorBusError)
}

func opWAIT(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.Waiting = true
}

func opBPT(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.enterTrap(VectorTrace)
}

func opIOT(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.enterTrap(VectorIOT)
}

func opEMT(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.enterTrap(VectorEMT)
}

func opTRAP(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.enterTrap(VectorTRAP)
}

func opRESET(mc *CPU, _ *instructions.Definition, _ uint16) {
	mc.mem.ResetDevices()
}

// RTI and RTT differ only in how the trace trap is treated afterwards
func opRTI(mc *CPU, _ *instructions.Definition, _ uint16) {
	pc, ok := mc.pop()
	if !ok {
		mc.fault = true
		return
	}
	psw, ok := mc.pop()
	if !ok {
		mc.fault = true
		return
	}
	mc.Regs.SetPC(pc)
	mc.Status.Load(psw & pswMask)
}

func opCCC(mc *CPU, _ *instructions.Definition, instruction uint16) {
	mc.Status.Clear(registers.Flag(instruction) & registers.ConditionCodes)
}

func opSCC(mc *CPU, _ *instructions.Definition, instruction uint16) {
	f := registers.Flag(instruction) & registers.ConditionCodes
	mc.Status.Set(f, true)
}

func (mc *CPU) branchCondition(op instructions.Operator) bool {
	n := mc.Status.Get(registers.Negative)
	z := mc.Status.Get(registers.Zero)
	v := mc.Status.Get(registers.Overflow)
	c := mc.Status.Get(registers.Carry)

	switch op {
	case instructions.BR:
		return true
	case instructions.BNE:
		return !z
	case instructions.BEQ:
		return z
	case instructions.BGE:
		return n == v
	case instructions.BLT:
		return n != v
	case instructions.BGT:
		return !z && n == v
	case instructions.BLE:
		return z || n != v
	case instructions.BPL:
		return !n
	case instructions.BMI:
		return n
	case instructions.BHI:
		return !c && !z
	case instructions.BLOS:
		return c || z
	case instructions.BVC:
		return !v
	case instructions.BVS:
		return v
	case instructions.BCC:
		return !c
	case instructions.BCS:
		return c
	}
	return false
}

func opBranch(mc *CPU, defn *instructions.Definition, instruction uint16) {
	if mc.branchCondition(defn.Operator) {
		mc.Regs.SetPC(mc.Regs.PC() + uint16(instructions.BranchOffset(instruction)))
	}
}

func opSOB(mc *CPU, _ *instructions.Definition, instruction uint16) {
	reg := instructions.RegisterField(instruction)
	v := mc.Regs.Read(false, reg) - 1
	mc.Regs.Write(false, reg, v)
	if v != 0 {
		mc.Regs.SetPC(mc.Regs.PC() - uint16(instructions.SOBOffset(instruction)))
	}
}

func opJMP(mc *CPU, _ *instructions.Definition, instruction uint16) {
	mode, reg := destination(instruction)
	if mode == instructions.Register {
		mc.trap(vectorBusError)
		return
	}
	loc, ok := mc.resolve(false, mode, reg)
	if !ok {
		return
	}
	mc.Regs.SetPC(loc.address)
}

func opJSR(mc *CPU, _ *instructions.Definition, instruction uint16) {
	mode, reg := destination(instruction)
	if mode == instructions.Register {
		mc.trap(vectorBusError)
		return
	}
	loc, ok := mc.resolve(false, mode, reg)
	if !ok {
		return
	}

	link := instructions.RegisterField(instruction)
	if !mc.push(mc.Regs.Read(false, link)) {
		mc.fault = true
		return
	}
	mc.Regs.Write(false, link, mc.Regs.PC())
	mc.Regs.SetPC(loc.address)
}

func opRTS(mc *CPU, _ *instructions.Definition, instruction uint16) {
	link := instructions.DestinationRegister(instruction)
	v, ok := mc.pop()
	if !ok {
		mc.fault = true
		return
	}
	mc.Regs.SetPC(mc.Regs.Read(false, link))
	mc.Regs.Write(false, link, v)
}

func opMARK(mc *CPU, defn *instructions.Definition, instruction uint16) {
	n := instructions.Number(instruction, defn.Format)
	mc.Regs.SetSP(mc.Regs.PC() + uint16(n*2))
	mc.Regs.SetPC(mc.Regs.Read(false, 5))
	v, ok := mc.pop()
	if !ok {
		mc.fault = true
		return
	}
	mc.Regs.Write(false, 5, v)
}

// CLR sets the flags even if the write fails
func opCLR(mc *CPU, defn *instructions.Definition, instruction uint16) {
	mc.Status.Set(registers.Negative, false)
	mc.Status.Set(registers.Zero, true)
	mc.Status.Clear(registers.Overflow | registers.Carry)

	mode, reg := destination(instruction)
	loc, ok := mc.resolve(defn.ByteMode, mode, reg)
	if !ok {
		return
	}
	mc.writeLocation(defn.ByteMode, loc, 0)
}

// SXT sets the flags even if the write fails
func opSXT(mc *CPU, _ *instructions.Definition, instruction uint16) {
	var v uint16
	n := mc.Status.Get(registers.Negative)
	if n {
		v = 0177777
	}
	mc.Status.Set(registers.Zero, !n)
	mc.Status.Clear(registers.Overflow)

	mode, reg := destination(instruction)
	loc, ok := mc.resolve(false, mode, reg)
	if !ok {
		return
	}
	mc.writeLocation(false, loc, v)
}

func opTST(mc *CPU, defn *instructions.Definition, instruction uint16) {
	mode, reg := destination(instruction)
	v, ok := mc.readOperand(defn.ByteMode, mode, reg)
	if !ok {
		return
	}
	mc.Status.SetNZ(defn.ByteMode, v)
	mc.Status.Clear(registers.Overflow | registers.Carry)
}

// MFPS sets the flags once the status word has been read, regardless of
// whether the write succeeds. a register destination is sign extended
func opMFPS(mc *CPU, _ *instructions.Definition, instruction uint16) {
	v := mc.Status.Value() & 0x00ff
	mc.Status.SetNZ(true, v)
	mc.Status.Clear(registers.Overflow)

	mode, reg := destination(instruction)
	loc, ok := mc.resolve(true, mode, reg)
	if !ok {
		return
	}
	if loc.register {
		mc.Regs.Write(false, loc.reg, signExtend(v))
		return
	}
	mc.writeLocation(true, loc, v)
}

// MTPS does not change the trace flag
func opMTPS(mc *CPU, _ *instructions.Definition, instruction uint16) {
	mode, reg := destination(instruction)
	v, ok := mc.readOperand(true, mode, reg)
	if !ok {
		return
	}
	t := mc.Status.Value() & uint16(registers.Trace)
	mc.Status.Load((v &^ uint16(registers.Trace) & pswMask) | t)
}

func opSWAB(mc *CPU, _ *instructions.Definition, instruction uint16) {
	mode, reg := destination(instruction)
	loc, ok := mc.resolve(false, mode, reg)
	if !ok {
		return
	}
	v, ok := mc.readLocation(false, loc)
	if !ok {
		return
	}
	r := (v << 8) | (v >> 8)
	if !mc.writeLocation(false, loc, r) {
		return
	}
	mc.Status.SetNZ(true, r)
	mc.Status.Clear(registers.Overflow | registers.Carry)
}

// opModify implements the single operand instructions that read and then
// write the destination. the flags are not changed if the read or the write
// fails
func opModify(mc *CPU, defn *instructions.Definition, instruction uint16) {
	b := defn.ByteMode
	mode, reg := destination(instruction)
	loc, ok := mc.resolve(b, mode, reg)
	if !ok {
		return
	}
	v, ok := mc.readLocation(b, loc)
	if !ok {
		return
	}

	mask, sign := width(b)
	r, c, ov := mc.modify(defn.Operator, v, mask, sign)
	r &= mask

	if !mc.writeLocation(b, loc, r) {
		return
	}

	mc.Status.SetNZ(b, r)
	mc.Status.Set(registers.Overflow, ov)
	switch defn.Operator {
	case instructions.INC, instructions.DEC:
	default:
		mc.Status.Set(registers.Carry, c)
	}
}

// modify returns the result, the carry and the overflow for the single
// operand instructions. the carry is ignored for INC and DEC
func (mc *CPU) modify(op instructions.Operator, v uint16, mask uint16, sign uint16) (uint16, bool, bool) {
	switch op {
	case instructions.COM:
		return ^v, true, false

	case instructions.INC:
		r := (v + 1) & mask
		return r, false, r == sign

	case instructions.DEC:
		r := (v - 1) & mask
		return r, false, v == sign

	case instructions.NEG:
		r := (-v) & mask
		return r, r != 0, r == sign

	case instructions.ADC:
		cin := mc.Status.Get(registers.Carry)
		r := (v + mc.carry()) & mask
		return r, cin && r == 0, cin && r == sign

	case instructions.SBC:
		cin := mc.Status.Get(registers.Carry)
		r := (v - mc.carry()) & mask
		return r, cin && v == 0, v == sign

	case instructions.ROR:
		r := (v >> 1) | (mc.carry() * sign)
		c := v&1 != 0
		return r, c, (r&sign != 0) != c

	case instructions.ROL:
		r := ((v << 1) | mc.carry()) & mask
		c := v&sign != 0
		return r, c, (r&sign != 0) != c

	case instructions.ASR:
		r := (v >> 1) | (v & sign)
		c := v&1 != 0
		return r, c, (r&sign != 0) != c

	case instructions.ASL:
		r := (v << 1) & mask
		c := v&sign != 0
		return r, c, (r&sign != 0) != c
	}

	return v, false, false
}

// MOV sets the flags once the source has been read, regardless of whether the
// write succeeds. MOVB to a register is sign extended
func opMOV(mc *CPU, defn *instructions.Definition, instruction uint16) {
	b := defn.ByteMode
	smode, sreg := source(instruction)
	v, ok := mc.readOperand(b, smode, sreg)
	if !ok {
		return
	}

	mc.Status.SetNZ(b, v)
	mc.Status.Clear(registers.Overflow)

	mode, reg := destination(instruction)
	loc, ok := mc.resolve(b, mode, reg)
	if !ok {
		return
	}
	if b && loc.register {
		mc.Regs.Write(false, loc.reg, signExtend(v))
		return
	}
	mc.writeLocation(b, loc, v)
}

// CMP and BIT read both operands and write neither. the flags are not changed
// if either read fails
func opCompare(mc *CPU, defn *instructions.Definition, instruction uint16) {
	b := defn.ByteMode
	smode, sreg := source(instruction)
	src, ok := mc.readOperand(b, smode, sreg)
	if !ok {
		return
	}
	dmode, dreg := destination(instruction)
	dst, ok := mc.readOperand(b, dmode, dreg)
	if !ok {
		return
	}

	mask, sign := width(b)

	if defn.Operator == instructions.BIT {
		mc.Status.SetNZ(b, src&dst)
		mc.Status.Clear(registers.Overflow)
		return
	}

	r := (src - dst) & mask
	mc.Status.SetNZ(b, r)
	mc.Status.Set(registers.Overflow, (src^dst)&^(dst^r)&sign != 0)
	mc.Status.Set(registers.Carry, src < dst)
}

// opDouble implements the double operand instructions that modify the
// destination. the flags are not changed if a read or the write fails
func opDouble(mc *CPU, defn *instructions.Definition, instruction uint16) {
	b := defn.ByteMode
	smode, sreg := source(instruction)
	src, ok := mc.readOperand(b, smode, sreg)
	if !ok {
		return
	}
	mode, reg := destination(instruction)
	loc, ok := mc.resolve(b, mode, reg)
	if !ok {
		return
	}
	dst, ok := mc.readLocation(b, loc)
	if !ok {
		return
	}

	mask, sign := width(b)

	var r uint16
	var c, ov bool
	switch defn.Operator {
	case instructions.BIC:
		r = dst &^ src
	case instructions.BIS:
		r = dst | src
	case instructions.ADD:
		sum := uint32(src) + uint32(dst)
		r = uint16(sum) & mask
		c = sum > uint32(mask)
		ov = ^(src^dst)&(src^r)&sign != 0
	case instructions.SUB:
		r = (dst - src) & mask
		c = dst < src
		ov = (src^dst)&^(src^r)&sign != 0
	}

	if !mc.writeLocation(b, loc, r) {
		return
	}

	mc.Status.SetNZ(b, r)
	mc.Status.Set(registers.Overflow, ov)
	switch defn.Operator {
	case instructions.ADD, instructions.SUB:
		mc.Status.Set(registers.Carry, c)
	}
}

func opXOR(mc *CPU, _ *instructions.Definition, instruction uint16) {
	src := mc.Regs.Read(false, instructions.RegisterField(instruction))
	mode, reg := destination(instruction)
	loc, ok := mc.resolve(false, mode, reg)
	if !ok {
		return
	}
	dst, ok := mc.readLocation(false, loc)
	if !ok {
		return
	}
	r := src ^ dst
	if !mc.writeLocation(false, loc, r) {
		return
	}
	mc.Status.SetNZ(false, r)
	mc.Status.Clear(registers.Overflow)
}
