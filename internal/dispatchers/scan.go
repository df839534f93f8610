package dispatchers

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnote-tools/cli/internal/usage"
)

// scan parses the tokens following the command name. It writes nothing;
// the parser reports the returned error.
func (c CommandSpec) scan(tokens []string) (Options, *usage.Error) {
	tokens = slices.Clone(tokens)
	raw := make(map[string]any)

	for _, a := range c.Arguments {
		if a.Default.IsSet() {
			raw[a.Name] = a.Default.Get()
		}
		replaceFirst(tokens, a.Alias, a.Name)
	}
	for _, f := range c.Flags {
		if f.Default.IsSet() {
			raw[f.Name] = f.Default.Get()
		}
		replaceFirst(tokens, f.Alias, f.Name)
	}

	if c.FirstArg != "" {
		if len(tokens) == 0 {
			tokens = []string{c.FirstArg}
		} else if !c.isName(tokens[0]) {
			tokens = append([]string{c.FirstArg}, tokens...)
		}
	}

	seen := make(map[string]bool)
	var active *ArgumentSpec

	for _, tok := range tokens {
		if active != nil {
			if !c.isName(tok) {
				v, err := active.coerce(tok)
				if err != nil {
					return nil, err
				}
				active.store(raw, v)
				active = nil
				continue
			}
			if !active.EmptyValue.IsSet() {
				return nil, usage.UnexpectedValue(tok, active.Name)
			}
			active.store(raw, active.EmptyValue.Get())
			active = nil
		}

		if a, ok := c.argument(tok); ok {
			seen[a.Name] = true
			active = &a
			continue
		}
		if f, ok := c.flag(tok); ok {
			seen[f.Name] = true
			raw[f.Name] = f.setValue()
			continue
		}
		return nil, usage.UnexpectedArgument(tok, c.Name)
	}

	if active != nil {
		if !active.EmptyValue.IsSet() {
			return nil, usage.UnexpectedValue("", active.Name)
		}
		active.store(raw, active.EmptyValue.Get())
	}

	for _, a := range c.Arguments {
		if a.Required && !seen[a.Name] {
			return nil, usage.MissingArgument(a.Name, c.Name)
		}
	}
	for _, f := range c.Flags {
		if f.Required && !seen[f.Name] {
			return nil, usage.MissingArgument(f.Name, c.Name)
		}
	}

	opts := make(Options, len(raw))
	for k, v := range raw {
		opts[Normalize(k)] = v
	}
	return opts, nil
}

// store records v. Repetitive arguments collect every value, empty values
// included.
func (a *ArgumentSpec) store(raw map[string]any, v any) {
	if !a.Repetitive {
		raw[a.Name] = v
		return
	}
	list, _ := raw[a.Name].([]any)
	raw[a.Name] = append(list, v)
}

func (a *ArgumentSpec) coerce(tok string) (any, *usage.Error) {
	switch a.Type {
	case TypeNone, TypeString:
		return tok, nil
	case TypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, usage.UnexpectedValue(tok, a.Name)
		}
		return n, nil
	default:
		return nil, usage.Misconfigured("unsupported argument type %s for %q", a.Type, a.Name)
	}
}

// replaceFirst rewrites the first occurrence of alias in place.
func replaceFirst(tokens []string, alias, name string) {
	if alias == "" {
		return
	}
	if i := slices.Index(tokens, alias); i >= 0 {
		tokens[i] = name
	}
}
