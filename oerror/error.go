package oerror

import "fmt"

// Error is the formatted error type used at collaborator boundaries. The
// simulation core itself never returns errors mid-tick; anything invalid is
// rejected before it reaches the tick loop.
type Error struct {
	msg string
}

func New(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.msg
}
