package isa

// Register name order, index 0..31.
var registerNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

var registerByName map[string]int

func init() {
	registerByName = make(map[string]int, len(registerNames))
	for i, name := range registerNames {
		registerByName[name] = i
	}
}

// RegisterName returns the symbolic name for a register index, or "" if
// the index is out of range.
func RegisterName(index int) string {
	if index < 0 || index >= len(registerNames) {
		return ""
	}
	return registerNames[index]
}

// RegisterIndex resolves a symbolic register name to its index 0..31.
func RegisterIndex(name string) (int, bool) {
	idx, ok := registerByName[name]
	return idx, ok
}
