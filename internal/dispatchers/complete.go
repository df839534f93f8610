package dispatchers

import (
	"slices"
	"strings"
)

// Complete suggests the next token for a partial command line (the tokens
// after the program name). It never fails; no match yields nil.
func (p *Parser) Complete(tokens []string) []string {
	if len(tokens) == 0 {
		return p.table.Names()
	}

	cmd, ok := p.table.Lookup(tokens[0])
	if len(tokens) == 1 {
		if ok {
			return cmd.Names()
		}
		var out []string
		for _, name := range p.table.Names() {
			if strings.HasPrefix(name, tokens[0]) {
				out = append(out, name)
			}
		}
		return out
	}
	if !ok {
		return nil
	}

	rest := tokens[1:]
	last := rest[len(rest)-1]
	afterValue := len(rest) >= 2 && cmd.isArgument(rest[len(rest)-2])

	var out []string
	for _, name := range cmd.Names() {
		if slices.Contains(rest, name) {
			continue
		}
		if afterValue || cmd.isFlag(last) || strings.HasPrefix(name, last) {
			out = append(out, name)
		}
	}
	return out
}
