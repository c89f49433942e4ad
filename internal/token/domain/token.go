// Package domain defines the signed-token model shared by the codec, verifier and signer.
package domain

import "strings"

// Token is a dot-delimited three-part signed token. Segments are kept in
// their original base64url encoding because the signature is computed over
// the encoded header and payload, not their decoded bytes.
type Token struct {
	Raw       string
	Header    string
	Payload   string
	Signature string
}

// SigningInput returns "header.payload" exactly as it appeared in the token.
func (t *Token) SigningInput() string {
	var b strings.Builder
	b.Grow(len(t.Header) + 1 + len(t.Payload))
	b.WriteString(t.Header)
	b.WriteByte('.')
	b.WriteString(t.Payload)
	return b.String()
}

// Claims is a decoded payload. Numbers are kept as json.Number.
type Claims map[string]any

// DecodedToken holds the human-readable form of a token.
type DecodedToken struct {
	Header    string
	Payload   string
	Algorithm Algorithm
	Signature string
}

// VerifyResult is the outcome of checking one key against a token.
type VerifyResult struct {
	Valid     bool
	Algorithm Algorithm
	Claims    Claims
}
