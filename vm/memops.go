package vm

import "github.com/ianwlarson/sodapop/isa"

func effectiveAddress(p *Processor, inst *isa.Instruction) uint32 {
	return p.Reg(inst.Rs) + signExtend16(inst.Imm)
}

func execLb(p *Processor, inst *isa.Instruction, pc uint32) error {
	addr := effectiveAddress(p, inst)
	b, err := p.Mem.ReadByte(addr)
	if err != nil {
		return attachPC(err, pc)
	}
	p.SetReg(inst.Rt, uint32(int32(int8(b))))
	return nil
}

func execLw(p *Processor, inst *isa.Instruction, pc uint32) error {
	addr := effectiveAddress(p, inst)
	w, err := p.Mem.ReadWord(addr)
	if err != nil {
		return attachPC(err, pc)
	}
	p.SetReg(inst.Rt, w)
	return nil
}

func execSb(p *Processor, inst *isa.Instruction, pc uint32) error {
	addr := effectiveAddress(p, inst)
	if err := p.Mem.WriteByte(addr, byte(p.Reg(inst.Rt))); err != nil {
		return attachPC(err, pc)
	}
	return nil
}

func execSw(p *Processor, inst *isa.Instruction, pc uint32) error {
	addr := effectiveAddress(p, inst)
	if addr%4 != 0 {
		return newTrap(KindAddressError, pc, "sw: misaligned address")
	}
	if err := p.Mem.WriteWord(addr, p.Reg(inst.Rt)); err != nil {
		return attachPC(err, pc)
	}
	return nil
}

func execLui(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rt, uint32(inst.Imm)<<16)
}

// attachPC fills in the PC on a *TrapError raised by the memory layer,
// which has no notion of the instruction that triggered it.
func attachPC(err error, pc uint32) error {
	if te, ok := err.(*TrapError); ok {
		te.PC = pc
	}
	return err
}
