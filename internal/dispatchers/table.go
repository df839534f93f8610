package dispatchers

import (
	"slices"
	"strings"

	"github.com/gnote-tools/cli/internal/usage"
)

// Table is an immutable set of command grammars.
type Table struct {
	order    []string
	commands map[string]CommandSpec
}

// NewTable validates the specs and builds a Table. Specs are copied; later
// changes to the caller's slices do not reach the table.
func NewTable(specs ...CommandSpec) (*Table, error) {
	t := &Table{commands: make(map[string]CommandSpec, len(specs))}

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, usage.Misconfigured("command with empty name")
		}
		if strings.HasPrefix(spec.Name, "-") {
			return nil, usage.Misconfigured("command %q must not start with a dash", spec.Name)
		}
		if _, dup := t.commands[spec.Name]; dup {
			return nil, usage.Misconfigured("duplicate command %q", spec.Name)
		}
		if err := validateCommand(spec); err != nil {
			return nil, err
		}
		t.order = append(t.order, spec.Name)
		t.commands[spec.Name] = spec.clone()
	}

	return t, nil
}

// MustTable is NewTable for statically declared tables.
func MustTable(specs ...CommandSpec) *Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

func validateCommand(spec CommandSpec) error {
	names := make(map[string]bool)
	aliases := make(map[string]bool)

	claim := func(name, alias string) error {
		if !strings.HasPrefix(name, "-") {
			return usage.Misconfigured("%s: option %q must start with a dash", spec.Name, name)
		}
		if names[name] {
			return usage.Misconfigured("%s: duplicate option %q", spec.Name, name)
		}
		names[name] = true
		if alias == "" {
			return nil
		}
		if aliases[alias] {
			return usage.Misconfigured("%s: alias %q used twice", spec.Name, alias)
		}
		aliases[alias] = true
		return nil
	}

	for _, a := range spec.Arguments {
		if err := claim(a.Name, a.Alias); err != nil {
			return err
		}
		switch a.Type {
		case TypeNone, TypeString, TypeInt:
		default:
			return usage.Misconfigured("%s: unsupported argument type %s for %q", spec.Name, a.Type, a.Name)
		}
		if a.Repetitive && a.Default.IsSet() {
			return usage.Misconfigured("%s: repetitive argument %q cannot have a default", spec.Name, a.Name)
		}
	}
	for _, f := range spec.Flags {
		if err := claim(f.Name, f.Alias); err != nil {
			return err
		}
	}

	for alias := range aliases {
		if names[alias] {
			return usage.Misconfigured("%s: alias %q shadows an option name", spec.Name, alias)
		}
	}

	if spec.FirstArg != "" && !spec.isArgument(spec.FirstArg) {
		return usage.Misconfigured("%s: first argument %q is not declared", spec.Name, spec.FirstArg)
	}
	return nil
}

// Lookup returns a copy of the named command.
func (t *Table) Lookup(name string) (CommandSpec, bool) {
	spec, ok := t.commands[name]
	if !ok {
		return CommandSpec{}, false
	}
	return spec.clone(), true
}

// Names returns command names in declaration order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Commands returns copies of all commands in declaration order.
func (t *Table) Commands() []CommandSpec {
	out := make([]CommandSpec, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.commands[name].clone())
	}
	return out
}
