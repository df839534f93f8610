package usage

import "fmt"

// InvalidValue is returned when an option value has the wrong format.
func InvalidValue(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotLoggedIn is returned by commands that need a session.
func NotLoggedIn() *Error {
	return &Error{
		Kind:    ErrNotLoggedIn,
		Message: "You are not logged in. Run 'gnote login' first.",
	}
}

// NotFound is returned when a lookup by name or number matched nothing.
func NotFound(what string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: what,
	}
}

// Cancelled is returned when the user declined a confirmation or a selection.
func Cancelled() *Error {
	return &Error{
		Kind:    ErrCancelled,
		Message: "Cancelled.",
	}
}

// InvalidConfigKey is returned for keys that are not part of the configuration.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("gnote: unknown config key '%s'. See 'gnote config-list'.", key),
	}
}

// FailedConfigPath is returned when the rc file location cannot be resolved.
func FailedConfigPath() *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: "gnote: could not resolve the config file path",
	}
}

// SessionExpired is returned after the service rejected the stored token.
func SessionExpired() *Error {
	return &Error{
		Kind:    ErrNotLoggedIn,
		Message: "Your session has expired. Run 'gnote login' to log in again.",
	}
}
