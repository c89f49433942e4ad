// Package service implements the signed-token codec, the keyed-hash signature
// verifier used as the brute-force unit of work, and re-signing helpers.
package service

import (
	"github.com/allisson/jwtcrack/internal/token/domain"
)

// TokenDecoder renders a token's header and payload as readable JSON.
type TokenDecoder interface {
	Decode(text string) (*domain.DecodedToken, error)
}

// TokenSigner produces a new token from header and payload JSON documents.
type TokenSigner interface {
	Sign(header, payload, key string) (string, error)
}
