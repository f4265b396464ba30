// Package assembler drives the four-pass translation from source lines to
// a stream of encoded instruction words: comment stripping, label
// collection, PC-relative displacement substitution, then parsing and
// encoding each resulting line.
package assembler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ianwlarson/sodapop/encoder"
	"github.com/ianwlarson/sodapop/parser"
)

var labelDefinition = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*:$`)

// Assemble runs the four passes over raw source lines and returns the
// encoded word stream. Errors are wrapped with the 1-based position of the
// failing line in the comment- and label-free stream; it equals the source
// line number only when no comment, blank or label line precedes it.
func Assemble(lines []string) ([]uint32, error) {
	stripped := stripComments(lines)
	labels, body := collectLabels(stripped)
	substituted := substituteDisplacements(body, labels)

	words := make([]uint32, 0, len(substituted))
	for i, line := range substituted {
		inst, err := parser.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("assembler: line %d: %w", i+1, err)
		}
		word, err := encoder.Encode(inst)
		if err != nil {
			return nil, fmt.Errorf("assembler: line %d: %w", i+1, err)
		}
		words = append(words, word)
	}
	return words, nil
}

// EncodeWords concatenates a word stream into its little-endian byte
// representation, matching the simulator's little-endian memory model.
func EncodeWords(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = append(out, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return out
}

// stripComments removes everything from the first ';' onward, trims
// whitespace, and discards lines left empty.
func stripComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// collectLabels scans the comment-stripped lines for label definitions
// (an entire trimmed line of the form "identifier:"), recording each
// one's output index (its position in the label-free stream) and
// dropping it from the body.
func collectLabels(lines []string) (map[string]int, []string) {
	labels := make(map[string]int)
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		if labelDefinition.MatchString(line) {
			name := strings.TrimSuffix(line, ":")
			labels[name] = len(body)
			continue
		}
		body = append(body, line)
	}
	return labels, body
}

// substituteDisplacements replaces every whitespace-delimited token that
// names a known label with the decimal PC-relative word displacement the
// branch instructions expect: labels[k] - i - 1, where i is the token's
// line's index in the label-free stream.
func substituteDisplacements(lines []string, labels map[string]int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		for _, tok := range strings.Fields(line) {
			target, ok := labels[tok]
			if !ok {
				continue
			}
			disp := strconv.Itoa(target - i - 1)
			line = strings.Replace(line, tok, disp, 1)
		}
		out[i] = line
	}
	return out
}
