package container

import "errors"

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrInvalidSize = errors.New("invalid container size")
)
