package parser

import "strings"

// tokenize splits one assembly line into its mnemonic and operand tokens.
// Per spec, each of `, $ ( )` is replaced with a space, then the line is
// split on whitespace, discarding empty fragments.
func tokenize(line string) []string {
	replacer := strings.NewReplacer(",", " ", "$", " ", "(", " ", ")", " ")
	return strings.Fields(replacer.Replace(line))
}
