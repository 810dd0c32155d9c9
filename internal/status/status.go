// Package status defines the result type returned by numnet operators.
package status

import (
	"errors"
	"fmt"
)

// Category tells where a failure comes from.
type Category int

// Failure categories.
const (
	None   Category = iota // No failure.
	Core                   // Library-level: bad provider, bad buffer, bad shape.
	Kernel                 // Reported by a provider's kernel.
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Core:
		return "numnet"
	case Kernel:
		return "kernel"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Code identifies the kind of failure.
type Code int

// Failure codes.
const (
	OK Code = iota
	Fail
	InvalidArgument
	InvalidParam
	MismatchedShape
	MismatchedDType
	NotImplemented
	DivideByZero
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case Fail:
		return "FAIL"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case InvalidParam:
		return "INVALID_PARAM"
	case MismatchedShape:
		return "MISMATCHED_SHAPE"
	case MismatchedDType:
		return "MISMATCHED_DTYPE"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	case DivideByZero:
		return "DIVIDE_BY_ZERO"
	default:
		return fmt.Sprintf("CODE(%d)", int(c))
	}
}

// Status is either ok or a (category, code, message) failure.
// The zero value is ok.
type Status struct {
	category Category
	code     Code
	message  string
}

// Ok returns the success status.
func Ok() Status {
	return Status{}
}

// New returns a failure status. A code of OK yields the success status.
func New(category Category, code Code, format string, args ...any) Status {
	if code == OK {
		return Status{}
	}
	return Status{category: category, code: code, message: fmt.Sprintf(format, args...)}
}

// IsOK reports whether s is the success status.
func (s Status) IsOK() bool {
	return s.code == OK
}

// Category returns the failure category.
func (s Status) Category() Category {
	return s.category
}

// Code returns the failure code.
func (s Status) Code() Code {
	return s.code
}

// Message returns the human-readable failure message.
func (s Status) Message() string {
	return s.message
}

// WithCategory returns s re-tagged with category. Ok statuses stay ok.
func (s Status) WithCategory(category Category) Status {
	if s.IsOK() {
		return s
	}
	s.category = category
	return s
}

// String renders the status, e.g. "numnet INVALID_ARGUMENT: unsupported provider".
func (s Status) String() string {
	if s.IsOK() {
		return "OK"
	}
	return fmt.Sprintf("%s %s: %s", s.category, s.code, s.message)
}

// Err returns nil for ok statuses and an *Error otherwise.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return &Error{status: s}
}

// Error is the error form of a failed Status.
type Error struct {
	status Status
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.status.String()
}

// Status returns the wrapped status.
func (e *Error) Status() Status {
	return e.status
}

// Code returns the failure code.
func (e *Error) Code() Code {
	return e.status.code
}

// Category returns the failure category.
func (e *Error) Category() Category {
	return e.status.category
}

// Message returns the human-readable failure message.
func (e *Error) Message() string {
	return e.status.message
}

// Is matches errors with the same code. A target with category None
// matches any category.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if t.status.code != e.status.code {
		return false
	}
	return t.status.category == None || t.status.category == e.status.category
}

// Sentinel errors for errors.Is, matching any category.
var (
	ErrFail            = &Error{status: Status{code: Fail}}
	ErrInvalidArgument = &Error{status: Status{code: InvalidArgument}}
	ErrInvalidParam    = &Error{status: Status{code: InvalidParam}}
	ErrMismatchedShape = &Error{status: Status{code: MismatchedShape}}
	ErrMismatchedDType = &Error{status: Status{code: MismatchedDType}}
	ErrNotImplemented  = &Error{status: Status{code: NotImplemented}}
	ErrDivideByZero    = &Error{status: Status{code: DivideByZero}}
)

// FromError converts err to a Status. nil is ok; errors that are not an
// *Error become Core/Fail with the error text as message.
func FromError(err error) Status {
	if err == nil {
		return Status{}
	}
	var e *Error
	if errors.As(err, &e) {
		return e.status
	}
	return Status{category: Core, code: Fail, message: err.Error()}
}
