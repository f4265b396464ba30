package vm

import "github.com/ianwlarson/sodapop/isa"

var raIndex = mustRegisterIndex("ra")

func mustRegisterIndex(name string) int {
	idx, ok := isa.RegisterIndex(name)
	if !ok {
		panic("vm: register '" + name + "' not found in catalog")
	}
	return idx
}

func branchTarget(next uint32, imm uint16) uint32 {
	return next + signExtend16(imm)*4
}

func execBeq(p *Processor, inst *isa.Instruction, next uint32) {
	if p.Reg(inst.Rs) == p.Reg(inst.Rt) {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBne(p *Processor, inst *isa.Instruction, next uint32) {
	if p.Reg(inst.Rs) != p.Reg(inst.Rt) {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBgez(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) >= 0 {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBgtz(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) > 0 {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBlez(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) <= 0 {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBltz(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) < 0 {
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

// execBgezal and execBltzal link ra only when the branch is taken, to
// the instruction two words past the branch (next + 4), before
// offsetting PC.
func execBgezal(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) >= 0 {
		p.SetReg(raIndex, next+4)
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execBltzal(p *Processor, inst *isa.Instruction, next uint32) {
	if int32(p.Reg(inst.Rs)) < 0 {
		p.SetReg(raIndex, next+4)
		p.Pc = branchTarget(next, inst.Imm)
	} else {
		p.Pc = next
	}
}

func execJ(p *Processor, inst *isa.Instruction, next uint32) {
	p.Pc = (next & 0xF0000000) | (inst.Target * 4)
}

func execJal(p *Processor, inst *isa.Instruction, pc, next uint32) {
	p.SetReg(raIndex, pc+8)
	p.Pc = (next & 0xF0000000) | (inst.Target * 4)
}

func execJr(p *Processor, inst *isa.Instruction, pc uint32) error {
	target := p.Reg(inst.Rs)
	if target%4 != 0 {
		return newTrap(KindAddressError, pc, "jr: misaligned target")
	}
	p.Pc = target
	return nil
}
