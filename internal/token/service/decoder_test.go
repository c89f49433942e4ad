package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/jwtcrack/internal/token/domain"
)

func TestDecoder_Decode(t *testing.T) {
	decoder := NewDecoder()

	t.Run("Success_PrettyPrintsJSON", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS384, jwt.MapClaims{"sub": "alice"}, "k")

		decoded, err := decoder.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"alg\": \"HS384\",\n  \"typ\": \"JWT\"\n}", decoded.Header)
		assert.Equal(t, "{\n  \"sub\": \"alice\"\n}", decoded.Payload)
		assert.Equal(t, domain.HS384, decoded.Algorithm)
	})

	t.Run("Success_NonJSONSegmentReturnedVerbatim", func(t *testing.T) {
		text := EncodeSegment([]byte("plain header")) + "." + EncodeSegment([]byte("plain payload")) + ".sig"

		decoded, err := decoder.Decode(text)
		require.NoError(t, err)
		assert.Equal(t, "plain header", decoded.Header)
		assert.Equal(t, "plain payload", decoded.Payload)
		assert.Equal(t, domain.HS256, decoded.Algorithm)
		assert.Equal(t, "sig", decoded.Signature)
	})

	t.Run("Error_Malformed", func(t *testing.T) {
		_, err := decoder.Decode("not-a-token")
		assert.ErrorIs(t, err, domain.ErrMalformedToken)
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		_, err := decoder.Decode("!!!.e30.sig")
		assert.ErrorIs(t, err, domain.ErrInvalidSegment)
	})
}
