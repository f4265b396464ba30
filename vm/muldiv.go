package vm

import "github.com/ianwlarson/sodapop/isa"

func execMult(p *Processor, inst *isa.Instruction) {
	product := int64(int32(p.Reg(inst.Rs))) * int64(int32(p.Reg(inst.Rt)))
	p.Hi = uint32(uint64(product) >> 32)
	p.Lo = uint32(uint64(product))
}

func execMultu(p *Processor, inst *isa.Instruction) {
	product := uint64(p.Reg(inst.Rs)) * uint64(p.Reg(inst.Rt))
	p.Hi = uint32(product >> 32)
	p.Lo = uint32(product)
}

// execDiv and execDivu leave HI/LO unmodified and raise no trap on
// division by zero, per the undefined-behaviour resolution documented
// in DESIGN.md.
func execDiv(p *Processor, inst *isa.Instruction) {
	divisor := int32(p.Reg(inst.Rt))
	if divisor == 0 {
		return
	}
	dividend := int32(p.Reg(inst.Rs))
	p.Lo = uint32(dividend / divisor)
	p.Hi = uint32(dividend % divisor)
}

func execDivu(p *Processor, inst *isa.Instruction) {
	divisor := p.Reg(inst.Rt)
	if divisor == 0 {
		return
	}
	dividend := p.Reg(inst.Rs)
	p.Lo = dividend / divisor
	p.Hi = dividend % divisor
}

func execMfhi(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Hi)
}

func execMflo(p *Processor, inst *isa.Instruction) {
	p.SetReg(inst.Rd, p.Lo)
}
