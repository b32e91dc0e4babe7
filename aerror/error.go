package aerror

import "fmt"

// Error is the error value used for internal failures in animus. It carries a
// pre-formatted message and nothing else; frame-path code never returns these,
// it degrades and logs instead.
type Error struct {
	Err string
}

// New returns a new Error with the given format and arguments.
func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
