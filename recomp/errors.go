package recomp

import "errors"

var (
	ErrRegInvalid    = errors.New("register invalid")
	ErrBatchMismatch = errors.New("register batch length mismatch")
)
