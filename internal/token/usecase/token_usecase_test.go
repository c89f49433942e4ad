package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
	tokenService "github.com/allisson/jwtcrack/internal/token/service"
)

func newTestUseCase() TokenUseCase {
	return NewTokenUseCase(tokenService.NewDecoder(), tokenService.NewSigner())
}

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestTokenUseCase_Verify(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "exp": exp}, "secret")

	tests := []struct {
		name          string
		token         string
		key           string
		expectedValid bool
		expectedAlg   tokenDomain.Algorithm
		expectedErr   error
	}{
		{
			name:          "correct key",
			token:         token,
			key:           "secret",
			expectedValid: true,
			expectedAlg:   tokenDomain.HS256,
		},
		{
			name:          "wrong key",
			token:         token,
			key:           "Secret",
			expectedValid: false,
			expectedAlg:   tokenDomain.HS256,
		},
		{
			name:          "expired token with correct key",
			token:         signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"exp": 1}, "secret"),
			key:           "secret",
			expectedValid: false,
			expectedAlg:   tokenDomain.HS256,
		},
		{
			name:          "HS512 token",
			token:         signToken(t, jwt.SigningMethodHS512, jwt.MapClaims{"exp": exp}, "secret"),
			key:           "secret",
			expectedValid: true,
			expectedAlg:   tokenDomain.HS512,
		},
		{
			name:        "malformed token",
			token:       "abc",
			key:         "secret",
			expectedErr: tokenDomain.ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestUseCase().Verify(context.Background(), tt.token, tt.key)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedValid, result.Valid)
			assert.Equal(t, tt.expectedAlg, result.Algorithm)
			if tt.expectedValid {
				assert.NotEmpty(t, result.Claims)
			} else {
				assert.Nil(t, result.Claims)
			}
		})
	}
}

func TestTokenUseCase_Decode(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS384, jwt.MapClaims{"sub": "alice"}, "secret")

	decoded, err := newTestUseCase().Decode(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, tokenDomain.HS384, decoded.Algorithm)
	assert.Contains(t, decoded.Payload, `"sub": "alice"`)
	assert.Contains(t, decoded.Header, `"alg": "HS384"`)

	_, err = newTestUseCase().Decode(context.Background(), "a.b")
	assert.ErrorIs(t, err, tokenDomain.ErrMalformedToken)
}

func TestTokenUseCase_SignThenVerify(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	signed, err := uc.Sign(ctx, `{"alg":"HS256","typ":"JWT"}`, `{"sub":"mallory","admin":true}`, "ab")
	require.NoError(t, err)

	result, err := uc.Verify(ctx, signed, "ab")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "mallory", result.Claims["sub"])
	assert.Equal(t, true, result.Claims["admin"])

	_, err = uc.Sign(ctx, `{"alg":"RS256"}`, `{}`, "ab")
	assert.ErrorIs(t, err, tokenDomain.ErrUnsupportedAlgorithm)
}
