// Package apperr defines the error type shared by countdown packages. Each package
// declares its errors as templates which are formatted or wrapped at the call
// site while remaining comparable with errors.Is
package apperr

import "fmt"

// Error is an application error with a user-facing message.
type Error struct {
	Message string
	tmpl    *Error
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the template with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		tmpl:    e.root(),
		cause:   e.cause,
	}
}

// Wrap returns a copy of the template that carries err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		tmpl:    e.root(),
		cause:   err,
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the template this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}
