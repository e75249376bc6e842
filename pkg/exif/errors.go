package exif

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is wrapped by ArgumentError when a required input is nil.
	ErrNilArgument = errors.New("exif: nil argument")

	// ErrEmptyArgument is wrapped by ArgumentError when a required input is empty.
	ErrEmptyArgument = errors.New("exif: empty argument")

	// ErrNotFound is returned by typed accessors when the profile has no such tag.
	ErrNotFound = errors.New("exif: tag not found")

	// ErrTypeMismatch is returned when a value is read as a type it does not hold.
	ErrTypeMismatch = errors.New("exif: type mismatch")

	// ErrEmptyValue marks entries dropped at encode time for holding nothing.
	ErrEmptyValue = errors.New("exif: empty value")

	// ErrUnsupportedValue marks entries dropped at encode time for not matching
	// their tag's declared type or count.
	ErrUnsupportedValue = errors.New("exif: unsupported value")

	// ErrMalformed is wrapped by every decode diagnostic.
	ErrMalformed = errors.New("exif: malformed data")

	// ErrNotJPEG is returned by ReadJPEG when the stream has no SOI marker.
	ErrNotJPEG = errors.New("exif: not a JPEG stream")
)

// ArgumentError reports a programmer error at a public entry point
type ArgumentError struct {
	Param string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Param)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func nilArgument(param string) error {
	return &ArgumentError{Param: param, Err: ErrNilArgument}
}

// malformed builds a decode diagnostic
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
