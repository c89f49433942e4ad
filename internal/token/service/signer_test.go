package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/jwtcrack/internal/token/domain"
)

func TestSigner_Sign(t *testing.T) {
	signer := NewSigner()

	t.Run("Success_RoundTripsThroughVerifier", func(t *testing.T) {
		signed, err := signer.Sign(`{"alg":"HS256","typ":"JWT"}`, `{"sub":"alice","admin":true}`, "ab")
		require.NoError(t, err)

		claims, ok := Verify(signed, "ab")
		require.True(t, ok)
		assert.Equal(t, "alice", claims["sub"])
		assert.Equal(t, true, claims["admin"])
	})

	t.Run("Success_HS512", func(t *testing.T) {
		signed, err := signer.Sign(`{"alg":"HS512"}`, `{"n":1}`, "key")
		require.NoError(t, err)

		v, err := NewVerifier(signed)
		require.NoError(t, err)
		assert.Equal(t, domain.HS512, v.Algorithm())
		assert.True(t, v.Match("key"))
	})

	t.Run("Success_MissingTypOmitted", func(t *testing.T) {
		signed, err := signer.Sign(`{"alg":"HS256"}`, `{}`, "key")
		require.NoError(t, err)

		decoded, err := NewDecoder().Decode(signed)
		require.NoError(t, err)
		assert.NotContains(t, decoded.Header, "typ")
	})

	t.Run("Success_DefaultAlgorithm", func(t *testing.T) {
		signed, err := signer.Sign(`{}`, `{"a":"b"}`, "key")
		require.NoError(t, err)

		_, ok := Verify(signed, "key")
		assert.True(t, ok)
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		_, err := signer.Sign(`{"alg":"RS256"}`, `{}`, "key")
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
	})

	t.Run("Error_InvalidHeader", func(t *testing.T) {
		_, err := signer.Sign(`{`, `{}`, "key")
		assert.ErrorIs(t, err, domain.ErrInvalidJSON)
	})

	t.Run("Error_InvalidPayload", func(t *testing.T) {
		_, err := signer.Sign(`{}`, `[1,2]`, "key")
		assert.ErrorIs(t, err, domain.ErrInvalidJSON)
	})

	t.Run("Error_EmptyKey", func(t *testing.T) {
		_, err := signer.Sign(`{}`, `{}`, "")
		assert.ErrorIs(t, err, domain.ErrEmptyKey)
	})
}
