package vm

import (
	"fmt"

	"github.com/ianwlarson/sodapop/isa"
)

// Step fetches, decodes, and executes exactly one instruction. On
// success it advances Cycles and appends to InstructionLog. On a trap
// it returns the *TrapError with PC already filled in and leaves
// Cycles/the log untouched for that step.
func (p *Processor) Step() error {
	pc := p.Pc
	word, err := p.Mem.ReadWord(pc)
	if err != nil {
		return attachPC(err, pc)
	}

	inst, err := Decode(word)
	if err != nil {
		return attachPC(err, pc)
	}

	next := pc + 4
	if err := dispatch(p, inst, pc, next); err != nil {
		// Handlers set the trap PC themselves (SYSCALL's is already advanced).
		return err
	}

	if p.trace != nil {
		dest, val, hasDest := destinationValue(p, inst)
		p.trace.record(pc, word, inst, dest, val, hasDest)
	}

	p.Cycles++
	p.InstructionLog = append(p.InstructionLog, pc)
	return nil
}

// ExecuteProgram sets PC to entry and steps until maxInstr instructions
// have executed (Unbounded for no limit) or a trap aborts the run. A
// trap is returned to the caller; reaching the step budget is not an
// error.
func (p *Processor) ExecuteProgram(entry uint32, maxInstr int) error {
	p.Pc = entry
	for i := 0; maxInstr == Unbounded || i < maxInstr; i++ {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(p *Processor, inst *isa.Instruction, pc, next uint32) error {
	switch inst.Mnemonic {
	case isa.NOOP:
		p.Pc = next
		return nil

	case isa.ADD:
		err := execAdd(p, inst, pc)
		p.Pc = next
		return err
	case isa.ADDI:
		err := execAddi(p, inst, pc)
		p.Pc = next
		return err
	case isa.SUB:
		err := execSub(p, inst, pc)
		p.Pc = next
		return err
	case isa.ADDU:
		execAddu(p, inst)
	case isa.ADDIU:
		execAddiu(p, inst)
	case isa.SUBU:
		execSubu(p, inst)
	case isa.AND:
		execAnd(p, inst)
	case isa.OR:
		execOr(p, inst)
	case isa.XOR:
		execXor(p, inst)
	case isa.ANDI:
		execAndi(p, inst)
	case isa.ORI:
		execOri(p, inst)
	case isa.XORI:
		execXori(p, inst)
	case isa.SLT:
		execSlt(p, inst)
	case isa.SLTU:
		execSltu(p, inst)
	case isa.SLTI:
		execSlti(p, inst)
	case isa.SLTIU:
		execSltiu(p, inst)

	case isa.SLL:
		execSll(p, inst)
	case isa.SRL:
		execSrl(p, inst)
	case isa.SRA:
		execSra(p, inst)
	case isa.SLLV:
		execSllv(p, inst)
	case isa.SRLV:
		execSrlv(p, inst)

	case isa.MULT:
		execMult(p, inst)
	case isa.MULTU:
		execMultu(p, inst)
	case isa.DIV:
		execDiv(p, inst)
	case isa.DIVU:
		execDivu(p, inst)
	case isa.MFHI:
		execMfhi(p, inst)
	case isa.MFLO:
		execMflo(p, inst)

	case isa.LB:
		err := execLb(p, inst, pc)
		p.Pc = next
		return err
	case isa.LW:
		err := execLw(p, inst, pc)
		p.Pc = next
		return err
	case isa.SB:
		err := execSb(p, inst, pc)
		p.Pc = next
		return err
	case isa.SW:
		err := execSw(p, inst, pc)
		p.Pc = next
		return err
	case isa.LUI:
		execLui(p, inst)

	case isa.BEQ:
		execBeq(p, inst, next)
		return nil
	case isa.BNE:
		execBne(p, inst, next)
		return nil
	case isa.BGEZ:
		execBgez(p, inst, next)
		return nil
	case isa.BGTZ:
		execBgtz(p, inst, next)
		return nil
	case isa.BLEZ:
		execBlez(p, inst, next)
		return nil
	case isa.BLTZ:
		execBltz(p, inst, next)
		return nil
	case isa.BGEZAL:
		execBgezal(p, inst, next)
		return nil
	case isa.BLTZAL:
		execBltzal(p, inst, next)
		return nil
	case isa.J:
		execJ(p, inst, next)
		return nil
	case isa.JAL:
		execJal(p, inst, pc, next)
		return nil
	case isa.JR:
		if err := execJr(p, inst, pc); err != nil {
			return err
		}
		return nil

	case isa.SYSCALL:
		return execSyscall(p, next)

	default:
		return newTrap(KindIllegalInstruction, pc, fmt.Sprintf("unhandled mnemonic %s", inst.Mnemonic))
	}

	p.Pc = next
	return nil
}

// destinationValue identifies the register a just-executed instruction
// wrote, for diagnostics only; it has no bearing on execution semantics.
func destinationValue(p *Processor, inst *isa.Instruction) (int, uint32, bool) {
	switch inst.Mnemonic {
	case isa.LB, isa.LW:
		return inst.Rt, p.Reg(inst.Rt), true
	}
	switch isa.CategoryOf(inst.Mnemonic) {
	case isa.C1, isa.C2, isa.C3, isa.C9:
		return inst.Rd, p.Reg(inst.Rd), true
	case isa.C4, isa.C10:
		return inst.Rt, p.Reg(inst.Rt), true
	default:
		return 0, 0, false
	}
}
