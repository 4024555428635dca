package usage

import "fmt"

func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("luvr: '%s' is not a luvr command. See 'luvr --help'.", command),
	}
}
