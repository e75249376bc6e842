package format

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is wrapped by ArgumentError when a required input is nil.
	ErrNilArgument = errors.New("format: nil argument")

	// ErrEmptyArgument is wrapped by ArgumentError when a required input is empty.
	ErrEmptyArgument = errors.New("format: empty argument")
)

// ArgumentError names the parameter a lookup rejected
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
