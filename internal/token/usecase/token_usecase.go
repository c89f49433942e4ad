package usecase

import (
	"context"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
	tokenService "github.com/allisson/jwtcrack/internal/token/service"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	decoder tokenService.TokenDecoder
	signer  tokenService.TokenSigner
}

// NewTokenUseCase creates a new TokenUseCase.
func NewTokenUseCase(decoder tokenService.TokenDecoder, signer tokenService.TokenSigner) TokenUseCase {
	return &tokenUseCase{
		decoder: decoder,
		signer:  signer,
	}
}

// Decode returns the token's header and payload as readable JSON.
func (t *tokenUseCase) Decode(ctx context.Context, text string) (*tokenDomain.DecodedToken, error) {
	return t.decoder.Decode(text)
}

// Verify checks key against the token.
func (t *tokenUseCase) Verify(ctx context.Context, text, key string) (*tokenDomain.VerifyResult, error) {
	verifier, err := tokenService.NewVerifier(text)
	if err != nil {
		return nil, err
	}

	claims, ok := verifier.Verify(key)
	return &tokenDomain.VerifyResult{
		Valid:     ok,
		Algorithm: verifier.Algorithm(),
		Claims:    claims,
	}, nil
}

// Sign builds and signs a token from header and payload JSON.
func (t *tokenUseCase) Sign(ctx context.Context, header, payload, key string) (string, error) {
	return t.signer.Sign(header, payload, key)
}
