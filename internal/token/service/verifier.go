package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"hash"
	"time"

	"github.com/allisson/jwtcrack/internal/token/domain"
)

// maxEncodedDigest is the unpadded base64url length of a SHA-512 digest.
const maxEncodedDigest = 86

// Verifier checks candidate keys against one token. The token is parsed once;
// Match is the per-candidate hot path and only allocates the HMAC state.
type Verifier struct {
	token        *domain.Token
	algorithm    domain.Algorithm
	hash         func() hash.Hash
	signingInput []byte
	signature    []byte
	now          func() time.Time
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithClock overrides the wall clock used for the expiry check.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *Verifier) {
		v.now = now
	}
}

// NewVerifier parses tokenText and prepares it for repeated verification.
// Returns ErrMalformedToken if the token does not have three segments.
func NewVerifier(tokenText string, opts ...VerifierOption) (*Verifier, error) {
	token, err := Parse(tokenText)
	if err != nil {
		return nil, err
	}

	alg := headerAlgorithm(token.Header)
	v := &Verifier{
		token:        token,
		algorithm:    alg,
		hash:         hashFor(alg),
		signingInput: []byte(token.SigningInput()),
		signature:    []byte(token.Signature),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Algorithm returns the keyed-hash algorithm used for verification.
func (v *Verifier) Algorithm() domain.Algorithm {
	return v.algorithm
}

// Match reports whether key reproduces the token signature.
func (v *Verifier) Match(key string) bool {
	mac := hmac.New(v.hash, []byte(key))
	mac.Write(v.signingInput)

	var sum [sha512.Size]byte
	digest := mac.Sum(sum[:0])

	var encoded [maxEncodedDigest]byte
	n := base64.RawURLEncoding.EncodedLen(len(digest))
	base64.RawURLEncoding.Encode(encoded[:n], digest)

	return hmac.Equal(encoded[:n], v.signature)
}

// Verify returns the decoded claims when key reproduces the signature, the
// payload is a JSON object and any "exp" claim is not in the past.
// An expired token never verifies, even with the correct key.
func (v *Verifier) Verify(key string) (domain.Claims, bool) {
	if !v.Match(key) {
		return nil, false
	}

	claims, err := decodeObject(v.token.Payload)
	if err != nil {
		return nil, false
	}
	if expired(claims, v.now()) {
		return nil, false
	}
	return claims, true
}

// Verify is the one-shot form of Verifier.Verify. Malformed tokens never verify.
func Verify(tokenText, key string) (domain.Claims, bool) {
	v, err := NewVerifier(tokenText)
	if err != nil {
		return nil, false
	}
	return v.Verify(key)
}

// expired reports whether a numeric "exp" claim is strictly before now.
// Non-numeric expiry values are ignored.
func expired(claims domain.Claims, now time.Time) bool {
	number, ok := claims[domain.ExpirationClaim].(json.Number)
	if !ok {
		return false
	}

	current := now.Unix()
	if exp, err := number.Int64(); err == nil {
		return exp < current
	}
	if exp, err := number.Float64(); err == nil {
		return exp < float64(current)
	}
	return false
}

func hashFor(alg domain.Algorithm) func() hash.Hash {
	switch alg {
	case domain.HS384:
		return sha512.New384
	case domain.HS512:
		return sha512.New
	default:
		return sha256.New
	}
}
