// Command sodasim loads a binary produced by sodaasm and executes it on
// the MIPS32-subset simulator.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ianwlarson/sodapop/isa"
	"github.com/ianwlarson/sodapop/vm"
)

func main() {
	var debug bool
	var maxInstr int
	var memCapacity int

	root := &cobra.Command{
		Use:   "sodasim <file.bin>",
		Short: "Run a MIPS32-subset binary on the simulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(args[0], debug, maxInstr, memCapacity)
		},
	}
	root.Flags().BoolVarP(&debug, "debug", "d", false, "print decoded mnemonic and register deltas for every step")
	root.Flags().IntVar(&maxInstr, "max-instr", vm.DefaultMaxCycles, "instruction step budget")
	root.Flags().IntVar(&memCapacity, "mem-capacity", vm.DefaultMemoryCapacity, "processor memory capacity in bytes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func simulate(path string, debug bool, maxInstr, memCapacity int) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sodasim: cannot open %s: %w", path, err)
	}

	p := vm.NewProcessor(memCapacity)
	if debug {
		p.EnableTrace(vm.NewExecutionTrace())
	}

	if err := p.LoadProgram(vm.DefaultEntryPoint, bytes); err != nil {
		return fmt.Errorf("sodasim: %w", err)
	}

	runErr := p.ExecuteProgram(vm.DefaultEntryPoint, maxInstr)

	if debug && p.Trace() != nil {
		if err := p.Trace().WriteText(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "sodasim: failed to write trace: %v\n", err)
		}
	}

	printRegisters(p)

	if runErr != nil {
		var trap *vm.TrapError
		if errors.As(runErr, &trap) {
			fmt.Fprintf(os.Stderr, "sodasim: trap %s at pc=0x%08X: %s\n", trap.Kind, trap.PC, trap.Msg)
		} else {
			fmt.Fprintf(os.Stderr, "sodasim: %v\n", runErr)
		}
		os.Exit(1)
	}
	return nil
}

func printRegisters(p *vm.Processor) {
	for _, name := range []string{"t0", "t1", "t2", "t3"} {
		idx, _ := isa.RegisterIndex(name)
		fmt.Printf("%s = 0x%08X\n", name, p.Reg(idx))
	}
}
