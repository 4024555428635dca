package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidMode
	ErrInvalidConfigKey
	ErrInvalidBackup
	ErrNotConfirmed
	ErrNotATerminal
	ErrFailedConfigPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Failed config path
//	  - Not a terminal
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid theme mode
//	  - Invalid backup file
//	  - Destructive action not confirmed
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidMode:      2,
	ErrInvalidConfigKey: 1,
	ErrInvalidBackup:    2,
	ErrNotConfirmed:     2,
	ErrNotATerminal:     1,
	ErrFailedConfigPath: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the code derived from Kind when non-zero
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
