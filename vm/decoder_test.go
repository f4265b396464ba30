package vm_test

import (
	"testing"

	"github.com/ianwlarson/sodapop/encoder"
	"github.com/ianwlarson/sodapop/isa"
	"github.com/ianwlarson/sodapop/parser"
	"github.com/ianwlarson/sodapop/vm"
)

var wellFormed = []string{
	"add $s0, $t0, $t1", "addi $s0, $t0, 0xfffb", "addi $s1, $t1, -5",
	"addiu $s0, $t0, 42", "addu $s0, $t0, $t1", "and $s0, $t0, $t1",
	"andi $s0, $t0, 0xaaaa", "beq $s0, $t0, 2000", "bgez $s0, 1000",
	"bgezal $s0, 50", "blez $s0, 100", "bltz $s0, 1001", "bltzal $s0, 500",
	"bne $s0, $t0, 2001", "div $s0, $t0", "divu $s0, $t0", "j 1000200",
	"jal 1000201", "jr $s4", "lb $s1, 50($t0)", "lui $s0, 5321",
	"lw $s1, 65($t0)", "mfhi $s0", "mflo $s1", "mult $t1, $t2",
	"multu $t1, $t2", "noop", "or $s0, $t1, $t2", "ori $s0, $t1, 500",
	"sb $s0, 22($s1)", "sll $s0, $t6, 5", "sllv $t0, $t6, $t3",
	"slt $s0, $t5, $t4", "slti $s0, $t3, -100", "sltiu $s0, $t3, 1000",
	"sltu $s0, $t3, $t7", "sra $s0, $t5, 6", "srl $s0, $s5, 2",
	"srlv $s0, $s1, $s2", "sub $s3, $s0, $s2", "subu $s2, $s3, $s5",
	"sw $t0, 25($s3)", "syscall", "xor $s3, $t3, $s1", "xori $s4, $t2, 0xFFFF",
}

func TestDecodeEncodeRoundtripOnWellFormedCorpus(t *testing.T) {
	for _, line := range wellFormed {
		inst, err := parser.ParseLine(line)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", line, err)
		}
		word, err := encoder.Encode(inst)
		if err != nil {
			t.Fatalf("Encode(%q): %v", line, err)
		}
		decoded, err := vm.Decode(word)
		if err != nil {
			t.Fatalf("Decode(%q -> 0x%08X): %v", line, word, err)
		}
		if !inst.Equal(decoded) {
			t.Errorf("roundtrip mismatch for %q: parsed=%+v decoded=%+v", line, inst, decoded)
		}

		reencoded, err := encoder.Encode(decoded)
		if err != nil {
			t.Fatalf("re-Encode(%q): %v", line, err)
		}
		if reencoded != word {
			t.Errorf("encode(decode(word)) mismatch for %q: 0x%08X != 0x%08X", line, reencoded, word)
		}
	}
}

func TestDecodeKnownAddWord(t *testing.T) {
	inst, err := vm.Decode(0x02328020)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	parsed, err := parser.ParseLine("add $s0, $s1, $s2")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !inst.Equal(parsed) {
		t.Fatalf("decoded %+v != parsed %+v", inst, parsed)
	}
}

func TestDecodeZeroWordIsNoop(t *testing.T) {
	inst, err := vm.Decode(0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if inst.Mnemonic != isa.NOOP {
		t.Fatalf("expected NOOP, got %v", inst.Mnemonic)
	}
}

func TestEncodeNoopEqualsZero(t *testing.T) {
	word, err := encoder.Encode(isa.NOOPInstruction())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if word != 0 {
		t.Fatalf("expected 0, got 0x%08X", word)
	}
}
