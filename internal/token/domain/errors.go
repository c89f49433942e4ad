package domain

import (
	"github.com/allisson/jwtcrack/internal/errors"
)

var (
	// ErrMalformedToken indicates the token does not split into three non-empty dot-separated segments.
	ErrMalformedToken = errors.Wrap(errors.ErrInvalidInput, "malformed token")

	// ErrInvalidSegment indicates a segment is not valid unpadded base64url.
	ErrInvalidSegment = errors.Wrap(errors.ErrInvalidInput, "invalid token segment")

	// ErrInvalidJSON indicates a decoded header or payload is not a JSON object.
	ErrInvalidJSON = errors.Wrap(errors.ErrInvalidInput, "token segment is not a JSON object")

	// ErrUnsupportedAlgorithm indicates an algorithm outside the HMAC family.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrEmptyKey indicates an attempt to sign with an empty key.
	ErrEmptyKey = errors.Wrap(errors.ErrInvalidInput, "signing key must not be empty")
)
