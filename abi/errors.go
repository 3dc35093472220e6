package abi

import (
	"errors"
	"fmt"
)

var (
	ErrArgIndex      = errors.New("only args 0 through 3 supported")
	ErrFloatArgIndex = errors.New("floats only supported in arg 0")
	ErrReturnKind    = errors.New("unsupported return kind")
)

// FatalError is the panic value for a call site the translator emitted
// incorrectly. It is never returned; the process is expected to die with it.
type FatalError struct {
	Op  string
	Err error
	Arg any
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("[Fatal] %s: %v (%v)", e.Op, e.Err, e.Arg)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(op string, err error, arg any) {
	panic(&FatalError{Op: op, Err: err, Arg: arg})
}
