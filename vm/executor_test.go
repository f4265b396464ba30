package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianwlarson/sodapop/encoder"
	"github.com/ianwlarson/sodapop/isa"
	"github.com/ianwlarson/sodapop/parser"
	"github.com/ianwlarson/sodapop/vm"
)

func assemble(t *testing.T, line string) uint32 {
	t.Helper()
	inst, err := parser.ParseLine(line)
	require.NoError(t, err, "ParseLine(%q)", line)
	word, err := encoder.Encode(inst)
	require.NoError(t, err, "Encode(%q)", line)
	return word
}

func regIndex(t *testing.T, name string) int {
	t.Helper()
	idx, ok := isa.RegisterIndex(name)
	require.True(t, ok, "unknown register %q", name)
	return idx
}

func TestAddiOverflowTraps(t *testing.T) {
	p := vm.NewProcessor(256)
	t0, t1 := regIndex(t, "t0"), regIndex(t, "t1")
	p.SetReg(t0, 0x7FFFFFFF)

	word := assemble(t, "addi $t1, $t0, 2")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))

	err := p.ExecuteProgram(0, 1)
	var trap *vm.TrapError
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, vm.KindIntegerOverflow, trap.Kind)
	assert.Zero(t, p.Reg(t1), "destination register should be unchanged on trap")
}

func TestAddiuWraps(t *testing.T) {
	p := vm.NewProcessor(256)
	t0, t1 := regIndex(t, "t0"), regIndex(t, "t1")
	p.SetReg(t0, 0xFFFFFFFF)

	word := assemble(t, "addiu $t1, $t0, 2")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))
	require.NoError(t, p.ExecuteProgram(0, 1))
	assert.Equal(t, uint32(1), p.Reg(t1))
}

func TestBeqTakenAdvancesPCByWordDisplacement(t *testing.T) {
	p := vm.NewProcessor(256)
	t0, s0 := regIndex(t, "t0"), regIndex(t, "s0")
	p.SetReg(t0, 10)
	p.SetReg(s0, 10)
	p.Pc = 10

	word := assemble(t, "beq $t0, $s0, 3")
	require.NoError(t, p.LoadProgram(10, wordBytes(word)))
	require.NoError(t, p.Step())
	assert.Equal(t, uint32(26), p.Pc)
}

func TestSwMisalignedTraps(t *testing.T) {
	p := vm.NewProcessor(256)
	s0, s1 := regIndex(t, "s0"), regIndex(t, "s1")
	p.SetReg(s1, 1)

	word := assemble(t, "sw $s0, 0($s1)")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))

	before := make([]byte, p.Mem.Len())
	for i := range before {
		b, err := p.Mem.ReadByte(uint32(i))
		require.NoError(t, err)
		before[i] = b
	}

	err := p.ExecuteProgram(0, 1)
	var trap *vm.TrapError
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, vm.KindAddressError, trap.Kind)

	for i := range before {
		b, err := p.Mem.ReadByte(uint32(i))
		require.NoError(t, err)
		assert.Equal(t, before[i], b, "memory mutated at %d despite trap", i)
	}
}

func TestLbSignExtends(t *testing.T) {
	p := vm.NewProcessor(1024)
	s0, s1 := regIndex(t, "s0"), regIndex(t, "s1")
	require.NoError(t, p.Mem.WriteByte(0x2f8, 0xA0))
	p.SetReg(s1, 0x2f8-4)

	word := assemble(t, "lb $s0, 4($s1)")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))
	require.NoError(t, p.Step())
	assert.Equal(t, int32(-96), int32(p.Reg(s0)))
}

func TestAddWritesDestinationWithoutOverflow(t *testing.T) {
	p := vm.NewProcessor(256)
	t0, t1, t2 := regIndex(t, "t0"), regIndex(t, "t1"), regIndex(t, "t2")
	p.SetReg(t0, 1)
	p.SetReg(t1, 2)
	p.SetReg(t2, 0xDEADBEEF)

	word := assemble(t, "add $t2, $t0, $t1")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))
	require.NoError(t, p.Step())
	assert.Equal(t, uint32(3), p.Reg(t2))
}

func TestRegisterZeroIsArchitecturallyConstant(t *testing.T) {
	p := vm.NewProcessor(16)
	p.SetReg(0, 0xFFFFFFFF)
	assert.Zero(t, p.Reg(0))
}

func TestJumpAndLinkSetsReturnAddress(t *testing.T) {
	p := vm.NewProcessor(1024)
	ra := regIndex(t, "ra")
	p.Pc = 100

	word := assemble(t, "jal 20")
	require.NoError(t, p.LoadProgram(100, wordBytes(word)))
	require.NoError(t, p.Step())
	assert.Equal(t, uint32(108), p.Reg(ra))
	assert.Equal(t, uint32(80), p.Pc)
}

func TestSyscallRaisesSoftwareInterrupt(t *testing.T) {
	p := vm.NewProcessor(64)
	word := assemble(t, "syscall")
	require.NoError(t, p.LoadProgram(0, wordBytes(word)))

	err := p.Step()
	var trap *vm.TrapError
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, vm.KindSoftwareInterrupt, trap.Kind)
	assert.Equal(t, uint32(4), p.Pc)
}

func TestDecodeIllegalInstruction(t *testing.T) {
	p := vm.NewProcessor(64)
	// funct 0x3F is unmapped for primary opcode 0.
	require.NoError(t, p.Mem.WriteWord(0, 0x0000003F))

	err := p.Step()
	var trap *vm.TrapError
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, vm.KindIllegalInstruction, trap.Kind)
}

func wordBytes(w uint32) []byte {
	return []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}
