package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/allisson/jwtcrack/internal/errors"
	"github.com/allisson/jwtcrack/internal/token/domain"
)

// Parse splits text into its header, payload and signature segments.
// Returns ErrMalformedToken unless there are exactly three non-empty segments.
func Parse(text string) (*domain.Token, error) {
	header, rest, ok := strings.Cut(text, ".")
	if !ok {
		return nil, domain.ErrMalformedToken
	}
	payload, signature, ok := strings.Cut(rest, ".")
	if !ok || strings.Contains(signature, ".") {
		return nil, domain.ErrMalformedToken
	}
	if header == "" || payload == "" || signature == "" {
		return nil, domain.ErrMalformedToken
	}

	return &domain.Token{
		Raw:       text,
		Header:    header,
		Payload:   payload,
		Signature: signature,
	}, nil
}

// DecodeSegment decodes an unpadded base64url segment.
func DecodeSegment(segment string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidSegment, err.Error())
	}
	return decoded, nil
}

// EncodeSegment encodes data as unpadded base64url.
func EncodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeObject decodes a segment and parses it as a JSON object, keeping numbers as json.Number.
func decodeObject(segment string) (domain.Claims, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var claims domain.Claims
	if err := decoder.Decode(&claims); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidJSON, err.Error())
	}
	if claims == nil {
		return nil, domain.ErrInvalidJSON
	}
	return claims, nil
}

// headerAlgorithm reads "alg" from an encoded header. Anything missing,
// unreadable or outside the HMAC family resolves to HS256.
func headerAlgorithm(segment string) domain.Algorithm {
	header, err := decodeObject(segment)
	if err != nil {
		return domain.HS256
	}
	name, _ := header[domain.AlgorithmHeader].(string)
	alg, err := domain.ParseAlgorithm(name)
	if err != nil {
		return domain.HS256
	}
	return alg
}
