// Package errors defines the error taxonomy shared by every groveray package.
package errors

import (
	stderrors "errors"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindSubsystemNotInitialized     Kind = "subsystem_not_initialized"
	KindSubsystemAlreadyInitialized Kind = "subsystem_already_initialized"
	KindUnableToLoad                Kind = "unable_to_load"
	KindThreadAlreadyLocked         Kind = "thread_already_locked"
	KindOperationNotSupported       Kind = "operation_not_supported"
	KindNestingViolation            Kind = "nesting_violation"
	KindTooManyPhysicsBodies        Kind = "too_many_physics_bodies"
	KindInvalidArgument             Kind = "invalid_argument"
	KindIO                          Kind = "io"
)

// Error is the structured error returned by fallible operations.
type Error struct {
	Cause  error
	Kind   Kind
	Name   string // subsystem, resource kind or lock name
	Verb   string // OperationNotSupported and IO
	Noun   string // OperationNotSupported only
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	switch e.Kind {
	case KindSubsystemNotInitialized:
		b.WriteString(e.Name)
		b.WriteString(" subsystem has not yet been initialized")
	case KindSubsystemAlreadyInitialized:
		b.WriteString(e.Name)
		b.WriteString(" subsystem has already been initialized")
	case KindUnableToLoad:
		b.WriteString("unable to load ")
		b.WriteString(e.Name)
	case KindThreadAlreadyLocked:
		b.WriteString("can't acquire ")
		b.WriteString(e.Name)
		b.WriteString(" lock as it is already held")
	case KindOperationNotSupported:
		b.WriteString(e.Verb)
		b.WriteString(" operation not supported by ")
		b.WriteString(e.Noun)
	case KindNestingViolation:
		b.WriteString("cannot end ")
		b.WriteString(e.Name)
		b.WriteString(" while a nested scope is still open")
	case KindTooManyPhysicsBodies:
		b.WriteString("physics body limit reached")
	case KindIO:
		b.WriteString("unable to ")
		b.WriteString(e.Verb)
		b.WriteString(" ")
		b.WriteString(e.Name)
	default:
		b.WriteString(string(e.Kind))
		if e.Name != "" {
			b.WriteString(" ")
			b.WriteString(e.Name)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty
// Name (or Verb/Noun) matches any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e.Kind != t.Kind {
		return false
	}
	if t.Name != "" && t.Name != e.Name {
		return false
	}
	if t.Verb != "" && t.Verb != e.Verb {
		return false
	}
	return t.Noun == "" || t.Noun == e.Noun
}

// Sentinels for errors.Is matching by kind only.
var (
	ErrSubsystemNotInitialized     = &Error{Kind: KindSubsystemNotInitialized}
	ErrSubsystemAlreadyInitialized = &Error{Kind: KindSubsystemAlreadyInitialized}
	ErrUnableToLoad                = &Error{Kind: KindUnableToLoad}
	ErrThreadAlreadyLocked         = &Error{Kind: KindThreadAlreadyLocked}
	ErrOperationNotSupported       = &Error{Kind: KindOperationNotSupported}
	ErrNestingViolation            = &Error{Kind: KindNestingViolation}
	ErrTooManyPhysicsBodies        = &Error{Kind: KindTooManyPhysicsBodies}
	ErrInvalidArgument             = &Error{Kind: KindInvalidArgument}
	ErrIO                          = &Error{Kind: KindIO}
)

func SubsystemNotInitialized(name string) *Error {
	return &Error{Kind: KindSubsystemNotInitialized, Name: name}
}

func SubsystemAlreadyInitialized(name string) *Error {
	return &Error{Kind: KindSubsystemAlreadyInitialized, Name: name}
}

func UnableToLoad(name string) *Error {
	return &Error{Kind: KindUnableToLoad, Name: name}
}

// UnableToLoadCause is UnableToLoad carrying the decoder or I/O failure.
func UnableToLoadCause(name string, cause error) *Error {
	return &Error{Kind: KindUnableToLoad, Name: name, Cause: cause}
}

func ThreadAlreadyLocked(name string) *Error {
	return &Error{Kind: KindThreadAlreadyLocked, Name: name}
}

func OperationNotSupported(verb, noun string) *Error {
	return &Error{Kind: KindOperationNotSupported, Verb: verb, Noun: noun}
}

func NestingViolation(name string) *Error {
	return &Error{Kind: KindNestingViolation, Name: name}
}

func TooManyPhysicsBodies() *Error {
	return &Error{Kind: KindTooManyPhysicsBodies}
}

// IO reports a failed native file operation, e.g. IO("export", "image.png").
func IO(verb, path string) *Error {
	return &Error{Kind: KindIO, Verb: verb, Name: path}
}

func InvalidArgument(detail string) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: detail}
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is, As and Join forward to the standard library so callers need a single import.
func Is(err, target error) bool     { return stderrors.Is(err, target) }
func As(err error, target any) bool { return stderrors.As(err, target) }
func Join(errs ...error) error      { return stderrors.Join(errs...) }
