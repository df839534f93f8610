package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnexpectedArgument
	ErrUnexpectedValue
	ErrMissingArgument
	ErrInvalidValue
	ErrMisconfigured
	ErrInvalidConfigKey
	ErrFailedConfigPath
	ErrNotLoggedIn
	ErrNotFound
	ErrCancelled
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Misconfigured command table
//	  - Invalid config key
//	  - Failed config path
//	  - Not logged in
//	  - Not found
//	  - Cancelled by the user
//
//	Exit 2: User input errors
//	  - Unexpected argument
//	  - Unexpected value
//	  - Missing argument
//	  - Invalid value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrUnknownCommand:     1,
	ErrUnexpectedArgument: 2,
	ErrUnexpectedValue:    2,
	ErrMissingArgument:    2,
	ErrInvalidValue:       2,
	ErrMisconfigured:      1,
	ErrInvalidConfigKey:   1,
	ErrFailedConfigPath:   1,
	ErrNotLoggedIn:        1,
	ErrNotFound:           1,
	ErrCancelled:          1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	// Shown is set when the message (and help) was already written to the
	// user, so the caller must only translate the error into an exit status.
	Shown bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
