package common

import (
	"errors"
	"fmt"
)

type ErrorKind uint8

const (
	Args ErrorKind = iota
	Deserialize
	Io
	Parse
)

var (
	ErrArgs        = &Error{Kind: Args}
	ErrDeserialize = &Error{Kind: Deserialize}
	ErrIo          = &Error{Kind: Io}
	ErrParse       = &Error{Kind: Parse}
)

func (k ErrorKind) String() string {
	switch k {
	case Args:
		return "Args"
	case Deserialize:
		return "Deserialize"
	case Io:
		return "Io"
	case Parse:
		return "Parse"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) WithError(err error) *Error {
	return &Error{Kind: k, Err: err}
}

func (k ErrorKind) Errorf(format string, args ...any) *Error {
	return &Error{Kind: k, Err: fmt.Errorf(format, args...)}
}

// Error carries a kind so callers can branch with errors.Is(err, ErrDeserialize).
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
