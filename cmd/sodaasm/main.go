// Command sodaasm assembles a single MIPS32-subset source file into a raw
// binary word stream.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ianwlarson/sodapop/assembler"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:   "sodaasm <file.asm>",
		Short: "Assemble a MIPS32-subset source file into a .bin word stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assemble(args[0], debug)
		},
	}
	root.Flags().BoolVarP(&debug, "debug", "d", false, "log line count, word count and output path to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func assemble(path string, debug bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("sodaasm: cannot open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("sodaasm: reading %s: %w", path, err)
	}

	if debug {
		fmt.Fprintf(os.Stderr, "sodaasm: read %d source lines from %s\n", len(lines), path)
	}

	words, err := assembler.Assemble(lines)
	if err != nil {
		return fmt.Errorf("sodaasm: %w", err)
	}

	if debug {
		fmt.Fprintf(os.Stderr, "sodaasm: encoded %d words\n", len(words))
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".bin"
	if err := os.WriteFile(outPath, assembler.EncodeWords(words), 0644); err != nil {
		return fmt.Errorf("sodaasm: writing %s: %w", outPath, err)
	}

	if debug {
		fmt.Fprintf(os.Stderr, "sodaasm: wrote %s\n", outPath)
	}
	return nil
}
