package matchruns

import "errors"

// ErrNotFound indicates the requested match run does not exist.
var ErrNotFound = errors.New("match run not found")

// ErrInvalidRequest indicates a match request that fails validation.
// Wrapped errors carry the specific field problem.
var ErrInvalidRequest = errors.New("invalid match request")

// ErrUnknownSolutions indicates solutionIds referencing catalog entries
// that do not exist.
var ErrUnknownSolutions = errors.New("unknown solution ids")
