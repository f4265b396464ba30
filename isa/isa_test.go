package isa

import "testing"

func TestFunctTableInjective(t *testing.T) {
	seen := make(map[uint32]Mnemonic)
	for m, f := range Funct6 {
		if other, ok := seen[f]; ok {
			t.Fatalf("funct 0x%02x used by both %s and %s", f, other, m)
		}
		seen[f] = m
	}
}

func TestRegimmTableInjective(t *testing.T) {
	seen := make(map[uint32]Mnemonic)
	for m, rt := range RegimmRT5 {
		if other, ok := seen[rt]; ok {
			t.Fatalf("regimm rt 0x%02x used by both %s and %s", rt, other, m)
		}
		seen[rt] = m
	}
}

func TestEveryZeroOpcodeMnemonicHasFunct(t *testing.T) {
	for m := Mnemonic(0); m < mnemonicCount; m++ {
		// NOOP is the all-zero word itself; funct 0 belongs to SLL.
		if Opcode6[m] != 0 || m == NOOP {
			continue
		}
		if _, ok := Funct6[m]; !ok {
			t.Fatalf("mnemonic %s has primary opcode 0 but no funct code", m)
		}
	}
}

func TestEveryRegimmMnemonicHasSubcode(t *testing.T) {
	for m := Mnemonic(0); m < mnemonicCount; m++ {
		if Opcode6[m] != 1 {
			continue
		}
		if _, ok := RegimmRT5[m]; !ok {
			t.Fatalf("mnemonic %s has primary opcode 1 but no regimm rt code", m)
		}
	}
}

func TestRegisterCatalogRoundtrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		name := RegisterName(i)
		if name == "" {
			t.Fatalf("register %d has no name", i)
		}
		idx, ok := RegisterIndex(name)
		if !ok || idx != i {
			t.Fatalf("register %s did not round-trip to index %d (got %d, ok=%v)", name, i, idx, ok)
		}
	}
}

func TestMnemonicNameRoundtrip(t *testing.T) {
	for m := Mnemonic(0); m < mnemonicCount; m++ {
		name := m.String()
		got, ok := LookupMnemonic(name)
		if !ok || got != m {
			t.Fatalf("mnemonic %v did not round-trip via name %q", m, name)
		}
	}
}
