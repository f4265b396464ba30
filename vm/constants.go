package vm

// DefaultMemoryCapacity is the processor's default byte-addressable
// memory size (spec default: 10^6 bytes).
const DefaultMemoryCapacity = 1_000_000

// DefaultEntryPoint is the fixed load offset the simulator's boot
// protocol uses: load_program(12, bytes); execute_prog(12, ...).
const DefaultEntryPoint = 12

// DefaultMaxCycles is the simulator's default step budget.
const DefaultMaxCycles = 1000

// Unbounded requests an unbounded run from ExecuteProgram.
const Unbounded = -1
