package dispatchers

import (
	"fmt"
	"strings"
)

// Options maps normalized option names to parsed values.
//
// Values are string, int or bool; nil for an argument whose empty value is
// nil; []any for repetitive arguments.
type Options map[string]any

// Normalize turns a canonical option name into its Options key:
// leading dashes are stripped and the remaining dashes become underscores.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.TrimLeft(name, "-"), "-", "_")
}

// Has reports whether the key is present, nil values included.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the value as a string. Ints are formatted; missing and nil
// values yield "" and false.
func (o Options) String(key string) (string, bool) {
	switch v := o[key].(type) {
	case string:
		return v, true
	case int:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// Int returns an int value, or false when the key is absent or not an int.
func (o Options) Int(key string) (int, bool) {
	v, ok := o[key].(int)
	return v, ok
}

// Bool returns a bool value; anything else is false.
func (o Options) Bool(key string) bool {
	v, _ := o[key].(bool)
	return v
}

// Strings returns the elements of a repetitive argument that are strings,
// in encounter order. A scalar string is returned as a single element.
func (o Options) Strings(key string) []string {
	switch v := o[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case int:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
