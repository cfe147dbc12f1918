package bot

import "strings"

// Parse tokenizes a raw chat message into a command name and arguments.
// The input is trimmed, lower-cased and split on runs of whitespace; the
// first token is the command, the rest are arguments. Empty input yields
// an empty command and nil args, which classifies as unrecognized.
func Parse(raw string) (command string, args []string) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
