// Package dto provides data transfer objects for the search HTTP API.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	customValidation "github.com/allisson/jwtcrack/internal/validation"
)

// MaxKeyLength bounds the longest key length a search request may ask for.
const MaxKeyLength = 64

// CreateSearchRequest contains the parameters for starting a background search.
// Zero lengths and workers and an empty alphabet fall back to server defaults.
type CreateSearchRequest struct {
	Token     string   `json:"token"`
	MinLength int      `json:"min_length"`
	MaxLength int      `json:"max_length"`
	Charset   string   `json:"charset"`
	Classes   []string `json:"classes"`
	Workers   int      `json:"workers"`
}

// Validate checks if the create search request is valid.
func (r *CreateSearchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			customValidation.SignedToken,
		),
		validation.Field(&r.MinLength, validation.Min(0), validation.Max(MaxKeyLength)),
		validation.Field(&r.MaxLength, validation.Min(0), validation.Max(MaxKeyLength)),
		validation.Field(&r.Classes,
			validation.Each(validation.In("lower", "upper", "digits", "special")),
		),
		validation.Field(&r.Workers, validation.Min(0)),
	)
}

// Defaults holds the values applied to fields a request leaves empty.
type Defaults struct {
	MinLength int
	MaxLength int
	Workers   int
	Charset   string
}

// ToSearchInput converts the request into a search input, filling empty fields from defaults.
// When neither charset nor classes are given the default charset is used, falling back to
// digits and letters.
func (r *CreateSearchRequest) ToSearchInput(defaults Defaults) (*searchDomain.SearchInput, error) {
	classes, err := searchDomain.ParseCharClasses(strings.Join(r.Classes, ","))
	if err != nil {
		return nil, err
	}

	input := &searchDomain.SearchInput{
		Token:     r.Token,
		MinLength: r.MinLength,
		MaxLength: r.MaxLength,
		Charset:   r.Charset,
		Classes:   classes,
		Workers:   r.Workers,
	}
	if input.MinLength == 0 {
		input.MinLength = defaults.MinLength
	}
	if input.MaxLength == 0 {
		input.MaxLength = defaults.MaxLength
	}
	if input.Workers == 0 {
		input.Workers = defaults.Workers
	}
	if input.Charset == "" && input.Classes == 0 {
		input.Charset = defaults.Charset
		if input.Charset == "" {
			input.Charset = searchDomain.DefaultCharset
		}
	}
	return input, nil
}
