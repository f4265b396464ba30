package vm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ianwlarson/sodapop/isa"
)

// TraceEntry is one recorded step: the instruction's address, the
// decoded mnemonic, and the value written to its destination register
// (if any), captured after the handler ran.
type TraceEntry struct {
	PC       uint32
	Word     uint32
	Mnemonic string
	Dest     int
	DestVal  uint32
	HasDest  bool
}

// ExecutionTrace is an append-only diagnostics recorder, modelled on
// the reference emulator's execution trace / performance statistics
// subsystem but scoped to this processor. Attaching one never changes
// execution semantics; it only observes.
type ExecutionTrace struct {
	Entries []TraceEntry
}

// NewExecutionTrace returns an empty recorder.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{}
}

func (t *ExecutionTrace) record(pc, word uint32, inst *isa.Instruction, dest int, destVal uint32, hasDest bool) {
	t.Entries = append(t.Entries, TraceEntry{
		PC: pc, Word: word, Mnemonic: inst.Mnemonic.String(),
		Dest: dest, DestVal: destVal, HasDest: hasDest,
	})
}

// WriteText renders one line per entry: "0x00000010 add      s0 <- 0x0000002A".
func (t *ExecutionTrace) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, e := range t.Entries {
		if e.HasDest {
			fmt.Fprintf(&b, "0x%08X %-8s %s <- 0x%08X\n", e.PC, e.Mnemonic, isa.RegisterName(e.Dest), e.DestVal)
		} else {
			fmt.Fprintf(&b, "0x%08X %-8s\n", e.PC, e.Mnemonic)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the entire trace as a JSON array.
func (t *ExecutionTrace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Entries)
}
