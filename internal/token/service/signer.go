package service

import (
	"bytes"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/jwtcrack/internal/errors"
	"github.com/allisson/jwtcrack/internal/token/domain"
)

type signer struct{}

// NewSigner creates a TokenSigner that signs with HS256, HS384 or HS512
// depending on the "alg" field of the supplied header.
func NewSigner() TokenSigner {
	return &signer{}
}

// Sign builds a token from header and payload JSON and signs it with key.
// Only "alg" and "typ" are taken from the header; a missing "typ" is omitted.
func (s *signer) Sign(header, payload, key string) (string, error) {
	if key == "" {
		return "", domain.ErrEmptyKey
	}

	headerFields, err := parseJSONObject(header)
	if err != nil {
		return "", errors.Wrap(err, "header")
	}
	claims, err := parseJSONObject(payload)
	if err != nil {
		return "", errors.Wrap(err, "payload")
	}

	algName, _ := headerFields[domain.AlgorithmHeader].(string)
	alg, err := domain.ParseAlgorithm(algName)
	if err != nil {
		return "", errors.Wrapf(err, "algorithm %q", algName)
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(string(alg)), jwt.MapClaims(claims))
	if typ, ok := headerFields[domain.TypeHeader].(string); ok {
		token.Header[domain.TypeHeader] = typ
	} else {
		delete(token.Header, domain.TypeHeader)
	}

	signed, err := token.SignedString([]byte(key))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func parseJSONObject(text string) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidJSON, err.Error())
	}
	if fields == nil {
		return nil, domain.ErrInvalidJSON
	}
	return fields, nil
}
