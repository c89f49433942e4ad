package domain

// Algorithm identifies the keyed-hash scheme named by the token header "alg" field.
type Algorithm string

const (
	// HS256 is HMAC with SHA-256.
	HS256 Algorithm = "HS256"
	// HS384 is HMAC with SHA-384.
	HS384 Algorithm = "HS384"
	// HS512 is HMAC with SHA-512.
	HS512 Algorithm = "HS512"
)

const (
	// ExpirationClaim is the payload field holding the expiry in seconds since epoch.
	ExpirationClaim = "exp"

	// AlgorithmHeader is the header field naming the signing algorithm.
	AlgorithmHeader = "alg"

	// TypeHeader is the header field naming the token type.
	TypeHeader = "typ"
)

// ParseAlgorithm returns the Algorithm for name. An empty name selects HS256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "", HS256:
		return HS256, nil
	case HS384:
		return HS384, nil
	case HS512:
		return HS512, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
