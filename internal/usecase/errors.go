package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	// ErrStorage marks failures reported by the persistence layer. Match it
	// with cockroachdb/errors.Is, it is attached as a mark and not wrapped.
	ErrStorage = errors.New("storage failure")
)
