// Package usecase exposes single-token operations: decoding, checking a
// known key and re-signing with a recovered key.
package usecase

import (
	"context"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// TokenUseCase defines the single-token operations.
type TokenUseCase interface {
	Decode(ctx context.Context, text string) (*tokenDomain.DecodedToken, error)
	// Verify checks key against the token. A wrong key or an expired token is
	// reported as Valid=false, not as an error; only malformed tokens error.
	Verify(ctx context.Context, text, key string) (*tokenDomain.VerifyResult, error)
	Sign(ctx context.Context, header, payload, key string) (string, error)
}
