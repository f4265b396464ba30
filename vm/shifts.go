package vm

import "github.com/ianwlarson/sodapop/isa"

func execSll(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rt)<<inst.Shamt)
}

func execSrl(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Reg(inst.Rt)>>inst.Shamt)
}

func execSra(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, uint32(int32(p.Reg(inst.Rt))>>inst.Shamt))
}

// execSllv and execSrlv read the shift amount from the register whose
// index the decoder placed into inst.Rs (the variable-shift register
// slot, see isa's C2 category).
func execSllv(p *Processor, inst *isa.Instruction) {
	shift := p.Reg(inst.Rs) & 0x1F
	p.SetReg(inst.Rd, p.Reg(inst.Rt)<<shift)
}

func execSrlv(p *Processor, inst *isa.Instruction) {
	shift := p.Reg(inst.Rs) & 0x1F
	p.SetReg(inst.Rd, p.Reg(inst.Rt)>>shift)
}
