package vm

import "fmt"

// Kind distinguishes the architectural trap conditions the execution
// engine can raise. Each is surfaced as a *TrapError carrying its Kind, so
// callers can use errors.As or errors.Is instead of matching on message text.
type Kind int

const (
	KindIllegalInstruction Kind = iota
	KindIntegerOverflow
	KindAddressError
	KindSoftwareInterrupt
	KindMemoryError
)

func (k Kind) String() string {
	switch k {
	case KindIllegalInstruction:
		return "IllegalInstruction"
	case KindIntegerOverflow:
		return "IntegerOverflow"
	case KindAddressError:
		return "AddressError"
	case KindSoftwareInterrupt:
		return "SoftwareInterrupt"
	case KindMemoryError:
		return "MemoryError"
	default:
		return "UnknownTrap"
	}
}

// TrapError is the single error type raised by the decoder and the
// fetch/decode/execute loop. PC is the program counter at the time of
// the fault (already advanced for SoftwareInterrupt, as architecturally
// specified).
type TrapError struct {
	Kind Kind
	PC   uint32
	Msg  string
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("%s at pc=0x%08X: %s", e.Kind, e.PC, e.Msg)
}

func newTrap(kind Kind, pc uint32, msg string) *TrapError {
	return &TrapError{Kind: kind, PC: pc, Msg: msg}
}

// Is lets errors.Is(err, &TrapError{Kind: KindX}) match by kind alone,
// mirroring the parser's Kind-based comparison.
func (e *TrapError) Is(target error) bool {
	t, ok := target.(*TrapError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
