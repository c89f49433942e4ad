package dto

import (
	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// DecodeTokenResponse holds a token's readable header and payload.
type DecodeTokenResponse struct {
	Algorithm string `json:"algorithm"`
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// VerifyTokenResponse reports whether a key verifies a token.
type VerifyTokenResponse struct {
	Valid     bool               `json:"valid"`
	Algorithm string             `json:"algorithm"`
	Claims    tokenDomain.Claims `json:"claims,omitempty"`
}

// SignTokenResponse holds a newly signed token.
type SignTokenResponse struct {
	Token string `json:"token"`
}

// MapDecodedToResponse converts a decoded token to an API response.
func MapDecodedToResponse(decoded *tokenDomain.DecodedToken) DecodeTokenResponse {
	return DecodeTokenResponse{
		Algorithm: string(decoded.Algorithm),
		Header:    decoded.Header,
		Payload:   decoded.Payload,
		Signature: decoded.Signature,
	}
}

// MapVerifyResultToResponse converts a verification result to an API response.
func MapVerifyResultToResponse(result *tokenDomain.VerifyResult) VerifyTokenResponse {
	return VerifyTokenResponse{
		Valid:     result.Valid,
		Algorithm: string(result.Algorithm),
		Claims:    result.Claims,
	}
}
