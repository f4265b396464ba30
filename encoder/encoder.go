// Package encoder converts structured isa.Instruction records, as produced
// by the parser or the decoder, into their 32-bit MIPS32 word encoding.
package encoder

import (
	"fmt"

	"github.com/ianwlarson/sodapop/isa"
)

// Encode converts a single parsed or decoded instruction into its 32-bit
// word. It is total over records that came from the parser or from the
// decoder of a well-formed word.
func Encode(inst *isa.Instruction) (uint32, error) {
	if inst.Mnemonic == isa.NOOP {
		return 0, nil
	}

	switch isa.CategoryOf(inst.Mnemonic) {
	case isa.C0: // SYSCALL
		return packR(0, 0, 0, 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C1: // ADD, ADDU, AND, OR, SLT, SLTU, SUB, SUBU, XOR: rs, rt, rd
		return packR(uint32(inst.Rs), uint32(inst.Rt), uint32(inst.Rd), 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C2: // SLLV, SRLV: rs, rt, rd; shamt=0
		return packR(uint32(inst.Rs), uint32(inst.Rt), uint32(inst.Rd), 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C3: // SLL, SRA, SRL: rs=0, rt, rd, shamt
		return packR(0, uint32(inst.Rt), uint32(inst.Rd), inst.Shamt, isa.Funct6[inst.Mnemonic]), nil

	case isa.C4: // ADDI, ADDIU, ANDI, ORI, SLTI, SLTIU, XORI: rs, rt, imm
		return packI(isa.Opcode6[inst.Mnemonic], uint32(inst.Rs), uint32(inst.Rt), uint32(inst.Imm)), nil

	case isa.C5: // LB, LW, SB, SW: rs, rt, imm
		return packI(isa.Opcode6[inst.Mnemonic], uint32(inst.Rs), uint32(inst.Rt), uint32(inst.Imm)), nil

	case isa.C6: // JR: rs only
		return packR(uint32(inst.Rs), 0, 0, 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C7: // J, JAL: target
		return packJ(isa.Opcode6[inst.Mnemonic], inst.Target), nil

	case isa.C8: // DIV, DIVU, MULT, MULTU: rs, rt
		return packR(uint32(inst.Rs), uint32(inst.Rt), 0, 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C9: // MFHI, MFLO: rd
		return packR(0, 0, uint32(inst.Rd), 0, isa.Funct6[inst.Mnemonic]), nil

	case isa.C10: // LUI: rt, imm; rs = 0
		return packI(isa.Opcode6[inst.Mnemonic], 0, uint32(inst.Rt), uint32(inst.Imm)), nil

	case isa.C11:
		if inst.Mnemonic == isa.BGEZ || inst.Mnemonic == isa.BGEZAL ||
			inst.Mnemonic == isa.BLTZ || inst.Mnemonic == isa.BLTZAL {
			// REGIMM branches: opcode=1, rs, rt=regimm sub-code, imm
			return packI(1, uint32(inst.Rs), isa.RegimmRT5[inst.Mnemonic], uint32(inst.Imm)), nil
		}
		// BLEZ, BGTZ: rs, rt=0, imm
		return packI(isa.Opcode6[inst.Mnemonic], uint32(inst.Rs), 0, uint32(inst.Imm)), nil

	case isa.C12: // BEQ, BNE: rs, rt, imm
		return packI(isa.Opcode6[inst.Mnemonic], uint32(inst.Rs), uint32(inst.Rt), uint32(inst.Imm)), nil
	}

	return 0, fmt.Errorf("encoder: unhandled mnemonic %s", inst.Mnemonic)
}

// packR assembles the R-type field layout: opcode(0) | rs | rt | rd | shamt | funct.
func packR(rs, rt, rd, shamt, funct uint32) uint32 {
	return (rs&0x1F)<<21 | (rt&0x1F)<<16 | (rd&0x1F)<<11 | (shamt&0x1F)<<6 | (funct & 0x3F)
}

// packI assembles the I-type field layout: opcode | rs | rt | imm.
func packI(op, rs, rt, imm uint32) uint32 {
	return (op&0x3F)<<26 | (rs&0x1F)<<21 | (rt&0x1F)<<16 | (imm & 0xFFFF)
}

// packJ assembles the J-type field layout: opcode | target.
func packJ(op, target uint32) uint32 {
	return (op&0x3F)<<26 | (target & 0x3FFFFFF)
}
