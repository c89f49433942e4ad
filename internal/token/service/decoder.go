package service

import (
	"bytes"
	"encoding/json"

	"github.com/allisson/jwtcrack/internal/token/domain"
)

type decoder struct{}

// NewDecoder creates a TokenDecoder.
func NewDecoder() TokenDecoder {
	return &decoder{}
}

// Decode parses text and returns its header and payload as indented JSON.
// Segments that decode but are not JSON are returned verbatim.
func (d *decoder) Decode(text string) (*domain.DecodedToken, error) {
	token, err := Parse(text)
	if err != nil {
		return nil, err
	}

	header, err := DecodeSegment(token.Header)
	if err != nil {
		return nil, err
	}
	payload, err := DecodeSegment(token.Payload)
	if err != nil {
		return nil, err
	}

	return &domain.DecodedToken{
		Header:    prettyJSON(header),
		Payload:   prettyJSON(payload),
		Algorithm: headerAlgorithm(token.Header),
		Signature: token.Signature,
	}, nil
}

func prettyJSON(raw []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
