package isa

// BuildArgs derives the canonical positional argument vector for an
// instruction record from its category and raw fields. Both the textual
// parser and the decoder call this after populating Rs/Rt/Rd/Shamt/Imm/
// Target, so the two producers always agree on Args for the same
// instruction.
func BuildArgs(inst *Instruction) {
	switch CategoryOf(inst.Mnemonic) {
	case C0:
		inst.Args = nil
	case C1: // op rd, rs, rt
		inst.Args = []int32{int32(inst.Rd), int32(inst.Rs), int32(inst.Rt)}
	case C2: // op rd, rt, rs
		inst.Args = []int32{int32(inst.Rd), int32(inst.Rt), int32(inst.Rs)}
	case C3: // op rd, rt, shamt
		inst.Args = []int32{int32(inst.Rd), int32(inst.Rt), int32(inst.Shamt)}
	case C4: // op rt, rs, imm
		inst.Args = []int32{int32(inst.Rt), int32(inst.Rs), int32(inst.Imm)}
	case C5: // op rt, offset(rs)
		inst.Args = []int32{int32(inst.Rt), int32(inst.Imm), int32(inst.Rs)}
	case C6: // op rs
		inst.Args = []int32{int32(inst.Rs)}
	case C7: // op target
		inst.Args = []int32{int32(inst.Target)}
	case C8: // op rs, rt
		inst.Args = []int32{int32(inst.Rs), int32(inst.Rt)}
	case C9: // op rd
		inst.Args = []int32{int32(inst.Rd)}
	case C10: // op rt, imm
		inst.Args = []int32{int32(inst.Rt), int32(inst.Imm)}
	case C11: // op rs, offset
		inst.Args = []int32{int32(inst.Rs), int32(inst.Imm)}
	case C12: // op rs, rt, offset
		inst.Args = []int32{int32(inst.Rs), int32(inst.Rt), int32(inst.Imm)}
	}
}
