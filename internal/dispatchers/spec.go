package dispatchers

import (
	"fmt"
	"slices"
)

// ValueType selects the coercion applied to an argument value.
type ValueType int

const (
	TypeNone ValueType = iota
	TypeString
	TypeInt
)

func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value is an optional option value. The zero Value means "not declared",
// which is different from a declared nil.
type Value struct {
	v   any
	set bool
}

// Some declares a value, nil included.
func Some(v any) Value {
	return Value{v: v, set: true}
}

// IsSet reports whether the value was declared.
func (v Value) IsSet() bool { return v.set }

// Get returns the declared value, or nil.
func (v Value) Get() any { return v.v }

// ArgumentSpec describes an argument that takes a value.
type ArgumentSpec struct {
	Name       string // canonical name, e.g. "--title"
	Alias      string // short spelling, e.g. "-t"
	Help       string
	Required   bool
	Repetitive bool

	// EmptyValue is stored when the argument appears without a value.
	EmptyValue Value
	Type       ValueType
	Default    Value
}

// FlagSpec describes a boolean switch.
type FlagSpec struct {
	Name     string
	Alias    string
	Help     string
	Required bool

	// Value is stored when the flag appears. A nil Value means true.
	Value   any
	Default Value
}

func (f FlagSpec) setValue() any {
	if f.Value == nil {
		return true
	}
	return f.Value
}

// CommandSpec is the grammar of one command.
type CommandSpec struct {
	Name string
	Help string

	// FirstArg names the argument a bare leading value is shorthand for.
	FirstArg  string
	Arguments []ArgumentSpec
	Flags     []FlagSpec
}

func (c CommandSpec) argument(name string) (ArgumentSpec, bool) {
	for _, a := range c.Arguments {
		if a.Name == name {
			return a, true
		}
	}
	return ArgumentSpec{}, false
}

func (c CommandSpec) flag(name string) (FlagSpec, bool) {
	for _, f := range c.Flags {
		if f.Name == name {
			return f, true
		}
	}
	return FlagSpec{}, false
}

func (c CommandSpec) isArgument(name string) bool {
	_, ok := c.argument(name)
	return ok
}

func (c CommandSpec) isFlag(name string) bool {
	_, ok := c.flag(name)
	return ok
}

func (c CommandSpec) isName(name string) bool {
	return c.isArgument(name) || c.isFlag(name)
}

// Names returns the canonical argument names followed by the flag names,
// in declaration order.
func (c CommandSpec) Names() []string {
	names := make([]string, 0, len(c.Arguments)+len(c.Flags))
	for _, a := range c.Arguments {
		names = append(names, a.Name)
	}
	for _, f := range c.Flags {
		names = append(names, f.Name)
	}
	return names
}

func (c CommandSpec) clone() CommandSpec {
	c.Arguments = slices.Clone(c.Arguments)
	c.Flags = slices.Clone(c.Flags)
	return c
}
