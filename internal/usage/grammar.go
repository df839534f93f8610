package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first token names no command.
// Suggestions, when present, are listed under a "Did you mean?" line.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Unexpected command \"%s\"", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean?\n   " + strings.Join(suggestions, "\n   ")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// UnexpectedArgument is returned when a token is not a declared argument or flag.
func UnexpectedArgument(arg, command string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("Unexpected argument \"%s\" for command \"%s\"", arg, command),
	}
}

// UnexpectedValue is returned when an argument received no usable value.
func UnexpectedValue(value, arg string) *Error {
	return &Error{
		Kind:    ErrUnexpectedValue,
		Message: fmt.Sprintf("Unexpected value \"%s\" for argument \"%s\"", value, arg),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg, command string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("Not found required argument \"%s\" for command \"%s\"", arg, command),
	}
}

// Misconfigured reports a broken command table. It is never caused by user input.
func Misconfigured(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrMisconfigured,
		Message: "gnote: command table: " + fmt.Sprintf(format, args...),
	}
}
