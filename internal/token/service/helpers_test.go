package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signToken signs claims with key using method and fails the test on error.
func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func farFuture() int64 {
	return time.Now().Add(100 * 365 * 24 * time.Hour).Unix()
}

// signRaw signs arbitrary encoded segments with HMAC-SHA256.
func signRaw(header, payload, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(header + "." + payload))
	return header + "." + payload + "." + EncodeSegment(mac.Sum(nil))
}
