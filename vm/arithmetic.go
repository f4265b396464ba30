package vm

import "github.com/ianwlarson/sodapop/isa"

// addOverflow reports whether a signed 32-bit addition overflowed, by
// comparing operand and result sign bits (the same sign-bit-comparison
// technique the ARM flag calculator uses for its V flag, adapted here
// to a trap condition instead of a status flag).
func addOverflow(a, b, result uint32) bool {
	aSign := a >> 31 & 1
	bSign := b >> 31 & 1
	rSign := result >> 31 & 1
	return aSign == bSign && aSign != rSign
}

// subOverflow reports whether a signed 32-bit subtraction overflowed.
func subOverflow(a, b, result uint32) bool {
	aSign := a >> 31 & 1
	bSign := b >> 31 & 1
	rSign := result >> 31 & 1
	return aSign != bSign && aSign != rSign
}

func signExtend16(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}

func execAdd(p *Processor, inst *isa.Instruction, pc uint32) error {
	a, b := p.Reg(inst.Rs), p.Reg(inst.Rt)
	result := a + b
	if addOverflow(a, b, result) {
		return newTrap(KindIntegerOverflow, pc, "add overflow")
	}
	p.SetReg(inst.Rd, result)
	return nil
}

func execAddi(p *Processor, inst *isa.Instruction, pc uint32) error {
	a, b := p.Reg(inst.Rs), signExtend16(inst.Imm)
	result := a + b
	if addOverflow(a, b, result) {
		return newTrap(KindIntegerOverflow, pc, "addi overflow")
	}
	p.SetReg(inst.Rt, result)
	return nil
}

func execSub(p *Processor, inst *isa.Instruction, pc uint32) error {
	a, b := p.Reg(inst.Rs), p.Reg(inst.Rt)
	result := a - b
	if subOverflow(a, b, result) {
		return newTrap(KindIntegerOverflow, pc, "sub overflow")
	}
	p.SetReg(inst.Rd, result)
	return nil
}

func execAddu(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rs)+p.Reg(inst.Rt))
}

func execAddiu(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rt, p.Reg(inst.Rs)+signExtend16(inst.Imm))
}

func execSubu(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rs)-p.Reg(inst.Rt))
}

func execAnd(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rs)&p.Reg(inst.Rt))
}

func execOr(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rs)|p.Reg(inst.Rt))
}

func execXor(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rs)^p.Reg(inst.Rt))
}

func execAndi(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rt, p.Reg(inst.Rs)&uint32(inst.Imm))
}

func execOri(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rt, p.Reg(inst.Rs)|uint32(inst.Imm))
}

func execXori(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rt, p.Reg(inst.Rs)^uint32(inst.Imm))
}

func execSlt(p *Processor, inst *isa.Instruction) {
	if int32(p.Reg(inst.Rs)) < int32(p.Reg(inst.Rt)) {
		p.SetReg(inst.Rd, 1)
	} else {
		p.SetReg(inst.Rd, 0)
	}
}

func execSltu(p *Processor, inst *isa.Instruction) {
	if p.Reg(inst.Rs) < p.Reg(inst.Rt) {
		p.SetReg(inst.Rd, 1)
	} else {
		p.SetReg(inst.Rd, 0)
	}
}

func execSlti(p *Processor, inst *isa.Instruction) {
	if int32(p.Reg(inst.Rs)) < int32(signExtend16(inst.Imm)) {
		p.SetReg(inst.Rt, 1)
	} else {
		p.SetReg(inst.Rt, 0)
	}
}

func execSltiu(p *Processor, inst *isa.Instruction) {
	if p.Reg(inst.Rs) < signExtend16(inst.Imm) {
		p.SetReg(inst.Rt, 1)
	} else {
		p.SetReg(inst.Rt, 0)
	}
}
