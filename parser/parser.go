// Package parser implements the single-line textual assembly parser:
// given one non-empty, comment-and-whitespace-stripped line, it produces a
// structured isa.Instruction (mnemonic plus operands in canonical order).
package parser

import (
	"strings"

	"github.com/ianwlarson/sodapop/isa"
)

// ParseLine parses one assembly statement and returns its structured
// instruction record. Comments and surrounding whitespace must already be
// stripped by the caller (the assembler driver does this in its first
// pass).
func ParseLine(line string) (*isa.Instruction, error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return nil, newError(ErrUnknownMnemonic, line, "empty instruction")
	}

	mnemonicTok := strings.ToLower(tokens[0])
	operands := tokens[1:]

	m, ok := isa.LookupMnemonic(mnemonicTok)
	if !ok {
		return nil, newError(ErrUnknownMnemonic, line, "unknown mnemonic '"+mnemonicTok+"'")
	}

	inst := &isa.Instruction{Mnemonic: m}

	switch isa.CategoryOf(m) {
	case isa.C0:
		if err := expectArity(line, operands, 0); err != nil {
			return nil, err
		}

	case isa.C1: // op rd, rs, rt
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rd, rs, rt, err := regs3(line, operands[0], operands[1], operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rd, inst.Rs, inst.Rt = rd, rs, rt

	case isa.C2: // op rd, rt, rs
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rd, rt, rs, err := regs3(line, operands[0], operands[1], operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rd, inst.Rt, inst.Rs = rd, rt, rs

	case isa.C3: // op rd, rt, shamt
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rd, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		rt, err := reg(line, operands[1])
		if err != nil {
			return nil, err
		}
		shamt, err := number(line, operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rd, inst.Rt, inst.Shamt = rd, rt, toShamt5(shamt)

	case isa.C4: // op rt, rs, imm
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rt, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		rs, err := reg(line, operands[1])
		if err != nil {
			return nil, err
		}
		imm, err := number(line, operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rt, inst.Rs, inst.Imm = rt, rs, toImm16(imm)

	case isa.C5: // op rt, offset(rs)
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rt, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		off, err := number(line, operands[1])
		if err != nil {
			return nil, err
		}
		rs, err := reg(line, operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rt, inst.Imm, inst.Rs = rt, toImm16(off), rs

	case isa.C6: // op rs
		if err := expectArity(line, operands, 1); err != nil {
			return nil, err
		}
		rs, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		inst.Rs = rs

	case isa.C7: // op target
		if err := expectArity(line, operands, 1); err != nil {
			return nil, err
		}
		target, err := number(line, operands[0])
		if err != nil {
			return nil, err
		}
		inst.Target = toTarget26(target)

	case isa.C8: // op rs, rt
		if err := expectArity(line, operands, 2); err != nil {
			return nil, err
		}
		rs, rt, err := regs2(line, operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		inst.Rs, inst.Rt = rs, rt

	case isa.C9: // op rd
		if err := expectArity(line, operands, 1); err != nil {
			return nil, err
		}
		rd, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		inst.Rd = rd

	case isa.C10: // op rt, imm
		if err := expectArity(line, operands, 2); err != nil {
			return nil, err
		}
		rt, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		imm, err := number(line, operands[1])
		if err != nil {
			return nil, err
		}
		inst.Rt, inst.Imm = rt, toImm16(imm)

	case isa.C11: // op rs, offset
		if err := expectArity(line, operands, 2); err != nil {
			return nil, err
		}
		rs, err := reg(line, operands[0])
		if err != nil {
			return nil, err
		}
		off, err := number(line, operands[1])
		if err != nil {
			return nil, err
		}
		inst.Rs, inst.Imm = rs, toImm16(off)

	case isa.C12: // op rs, rt, offset
		if err := expectArity(line, operands, 3); err != nil {
			return nil, err
		}
		rs, rt, err := regs2(line, operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		off, err := number(line, operands[2])
		if err != nil {
			return nil, err
		}
		inst.Rs, inst.Rt, inst.Imm = rs, rt, toImm16(off)
	}

	isa.BuildArgs(inst)
	return inst, nil
}

func expectArity(line string, operands []string, want int) error {
	if len(operands) != want {
		return newError(ErrWrongArity, line, "wrong number of operands")
	}
	return nil
}

func reg(line, tok string) (int, error) {
	idx, ok := isa.RegisterIndex(strings.ToLower(tok))
	if !ok {
		return 0, newError(ErrUnknownRegister, line, "unknown register '"+tok+"'")
	}
	return idx, nil
}

func regs2(line, a, b string) (int, int, error) {
	ra, err := reg(line, a)
	if err != nil {
		return 0, 0, err
	}
	rb, err := reg(line, b)
	if err != nil {
		return 0, 0, err
	}
	return ra, rb, nil
}

func regs3(line, a, b, c string) (int, int, int, error) {
	ra, rb, err := regs2(line, a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	rc, err := reg(line, c)
	if err != nil {
		return 0, 0, 0, err
	}
	return ra, rb, rc, nil
}

func number(line, tok string) (int64, error) {
	v, err := parseNumber(tok)
	if err != nil {
		return 0, newError(ErrBadImmediate, line, "invalid numeric literal '"+tok+"'")
	}
	return v, nil
}
