// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error the grocery core returns.
type ErrorKind int

const (
	// KindUnknown is reported for errors that did not originate in the core.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument covers empty names, zero quantities, unsupported formats and over-removal.
	KindInvalidArgument
	// KindNotFound is returned when an operation requires an item that does not exist.
	KindNotFound
	// KindFormat marks malformed persisted content.
	KindFormat
	// KindIO marks filesystem failures distinct from format issues.
	KindIO
)

// Sentinel errors, one per kind. Match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrFormat          = errors.New("format error")
	ErrIO              = errors.New("i/o error")
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindFormat:
		return "FormatError"
	case KindIO:
		return "IOError"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindNotFound:
		return ErrNotFound
	case KindFormat:
		return ErrFormat
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// Error carries a kind and a single-line, human-readable detail.
type Error struct {
	Err    error
	Detail string
	Kind   ErrorKind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// InvalidArgument creates a KindInvalidArgument error.
func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

// FormatError creates a KindFormat error.
func FormatError(format string, args ...any) error {
	return &Error{Kind: KindFormat, Detail: fmt.Sprintf(format, args...)}
}

// WrapFormat wraps a decoding failure as a KindFormat error.
func WrapFormat(err error, format string, args ...any) error {
	return &Error{Kind: KindFormat, Detail: fmt.Sprintf(format, args...), Err: err}
}

// WrapIO wraps a filesystem failure as a KindIO error.
func WrapIO(err error, format string, args ...any) error {
	return &Error{Kind: KindIO, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
