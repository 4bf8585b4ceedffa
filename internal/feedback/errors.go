package feedback

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid feedback input")
	ErrUnknownSolution = errors.New("unknown solution")
)
