package vm

import (
	"fmt"

	"github.com/ianwlarson/sodapop/isa"
)

// Decode converts a 32-bit instruction word into a structured
// isa.Instruction, the inverse of encoder.Encode for every word that is
// the encoding of a well-formed record. The PC field on the returned
// *TrapError is left zero; callers fill it in from the processor's
// program counter at the fetch site.
func Decode(word uint32) (*isa.Instruction, error) {
	if word == 0 {
		return isa.NOOPInstruction(), nil
	}

	primary := word >> 26

	var m isa.Mnemonic
	var ok bool
	switch primary {
	case 0:
		m, ok = isa.MnemonicForFunct(word & 0x3F)
		if !ok {
			return nil, newTrap(KindIllegalInstruction, 0, fmt.Sprintf("unmapped funct code 0x%02X", word&0x3F))
		}
	case 1:
		m, ok = isa.MnemonicForRegimmRT((word >> 16) & 0x1F)
		if !ok {
			return nil, newTrap(KindIllegalInstruction, 0, fmt.Sprintf("unmapped REGIMM rt sub-code %d", (word>>16)&0x1F))
		}
	default:
		m, ok = isa.MnemonicForOpcode(primary)
		if !ok {
			return nil, newTrap(KindIllegalInstruction, 0, fmt.Sprintf("unmapped opcode 0x%02X", primary))
		}
	}

	inst := &isa.Instruction{Mnemonic: m}

	switch isa.CategoryOf(m) {
	case isa.C0: // SYSCALL

	case isa.C1: // ADD, ADDU, AND, OR, SLT, SLTU, SUB, SUBU, XOR
		inst.Rs, inst.Rt, inst.Rd = rsOf(word), rtOf(word), rdOf(word)

	case isa.C2: // SLLV, SRLV: shift-amount register lives in the rs field
		inst.Rt, inst.Rd, inst.Rs = rtOf(word), rdOf(word), rsOf(word)

	case isa.C3: // SLL, SRA, SRL
		inst.Rt, inst.Rd, inst.Shamt = rtOf(word), rdOf(word), shamtOf(word)

	case isa.C4, isa.C5: // ADDI family, LB/LW/SB/SW
		inst.Rs, inst.Rt, inst.Imm = rsOf(word), rtOf(word), immOf(word)

	case isa.C6: // JR
		inst.Rs = rsOf(word)

	case isa.C7: // J, JAL
		inst.Target = targetOf(word)

	case isa.C8: // DIV, DIVU, MULT, MULTU
		inst.Rs, inst.Rt = rsOf(word), rtOf(word)

	case isa.C9: // MFHI, MFLO
		inst.Rd = rdOf(word)

	case isa.C10: // LUI
		inst.Rt, inst.Imm = rtOf(word), immOf(word)

	case isa.C11: // BGEZ, BGEZAL, BGTZ, BLEZ, BLTZ, BLTZAL
		inst.Rs, inst.Imm = rsOf(word), immOf(word)

	case isa.C12: // BEQ, BNE
		inst.Rs, inst.Rt, inst.Imm = rsOf(word), rtOf(word), immOf(word)
	}

	isa.BuildArgs(inst)
	return inst, nil
}

func rsOf(word uint32) int         { return int((word >> 21) & 0x1F) }
func rtOf(word uint32) int         { return int((word >> 16) & 0x1F) }
func rdOf(word uint32) int         { return int((word >> 11) & 0x1F) }
func shamtOf(word uint32) uint32   { return (word >> 6) & 0x1F }
func immOf(word uint32) uint16     { return uint16(word & 0xFFFF) }
func targetOf(word uint32) uint32  { return word & 0x3FFFFFF }
