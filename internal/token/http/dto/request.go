// Package dto provides data transfer objects for the token HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/jwtcrack/internal/validation"
)

// DecodeTokenRequest contains the token to decode.
type DecodeTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the decode request is valid.
func (r *DecodeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.SignedToken,
		),
	)
}

// VerifyTokenRequest contains a token and the key to check against it.
type VerifyTokenRequest struct {
	Token string `json:"token"`
	Key   string `json:"key"`
}

// Validate checks if the verify request is valid.
func (r *VerifyTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.SignedToken,
		),
		validation.Field(&r.Key, validation.Required),
	)
}

// SignTokenRequest contains header and payload JSON documents and the signing key.
type SignTokenRequest struct {
	Header  string `json:"header"`
	Payload string `json:"payload"`
	Key     string `json:"key"`
}

// Validate checks if the sign request is valid.
func (r *SignTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Header, validation.Required, customValidation.JSONObject),
		validation.Field(&r.Payload, validation.Required, customValidation.JSONObject),
		validation.Field(&r.Key, validation.Required),
	)
}
