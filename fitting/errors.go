package fitting

import "errors"

// Errors reported by ElementContainer and Element implementations. Callers
// should test for them with errors.Is.
var (
	ErrNoSuchElement       = errors.New("no such element")
	ErrNoSuchWindow        = errors.New("no such window")
	ErrNoSuchFrame         = errors.New("no such frame")
	ErrUnsupportedSelector = errors.New("unsupported selector")
	ErrInvalidArgument     = errors.New("invalid argument")
)

// Error is a generic failure of a fitting operation.
type Error struct {
	Message string
	Err     error
}

// NewError returns an Error with the given message wrapping err, which may
// be nil.
func NewError(message string, err error) *Error {
	return &Error{Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
