package domain

import (
	"github.com/allisson/jwtcrack/internal/errors"
)

var (
	// ErrEmptyAlphabet indicates neither a charset nor any character class was selected.
	ErrEmptyAlphabet = errors.Wrap(errors.ErrInvalidInput, "alphabet is empty")

	// ErrUnknownCharClass indicates an unrecognized character class name.
	ErrUnknownCharClass = errors.Wrap(
		errors.ErrInvalidInput,
		"unknown character class (valid options: lower, upper, digits, special)",
	)

	// ErrInvalidCharset indicates a custom charset that is not valid UTF-8.
	ErrInvalidCharset = errors.Wrap(errors.ErrInvalidInput, "charset must be valid UTF-8")

	// ErrInvalidRange indicates a key length below one.
	ErrInvalidRange = errors.Wrap(errors.ErrInvalidInput, "key lengths must be at least 1")

	// ErrSearchNotFound indicates the search job does not exist.
	ErrSearchNotFound = errors.Wrap(errors.ErrNotFound, "search not found")

	// ErrTooManySearches indicates the concurrent search limit has been reached.
	ErrTooManySearches = errors.Wrap(errors.ErrConflict, "too many running searches")

	// ErrSearchManagerClosed indicates a search was started after shutdown began.
	ErrSearchManagerClosed = errors.Wrap(errors.ErrConflict, "search manager is shutting down")
)
