package parloop

import "errors"

const Namespace = "parloop"

var (
	ErrInvalidArgument = errors.New(Namespace + ": invalid argument")
	ErrInvalidConfig   = errors.New(Namespace + ": invalid configuration")
	ErrBodyPanicked    = errors.New(Namespace + ": loop body panicked")
)
