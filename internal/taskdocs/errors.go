package taskdocs

import "errors"

var (
	ErrNotFound     = errors.New("task document not found")
	ErrInvalidInput = errors.New("invalid task document input")
	ErrExtraction   = errors.New("text extraction failed")
)
