package dto

import (
	"time"

	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// ResultResponse represents the outcome of a finished search.
type ResultResponse struct {
	Outcome   string             `json:"outcome"`
	Key       string             `json:"key,omitempty"`
	Claims    tokenDomain.Claims `json:"claims,omitempty"`
	Attempts  uint64             `json:"attempts"`
	ElapsedMS int64              `json:"elapsed_ms"`
}

// SearchResponse represents a background search in API responses.
type SearchResponse struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	MinLength  int             `json:"min_length"`
	MaxLength  int             `json:"max_length"`
	Alphabet   string          `json:"alphabet"`
	SpaceSize  string          `json:"space_size"`
	Attempts   uint64          `json:"attempts"`
	Current    string          `json:"current,omitempty"`
	Result     *ResultResponse `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// ListSearchesResponse represents a paginated list of searches in API responses.
type ListSearchesResponse struct {
	Data []SearchResponse `json:"data"`
}

// MapSearchToResponse converts a domain search to an API response.
func MapSearchToResponse(search *searchDomain.Search) SearchResponse {
	response := SearchResponse{
		ID:         search.ID.String(),
		Status:     string(search.Status),
		MinLength:  search.MinLength,
		MaxLength:  search.MaxLength,
		Alphabet:   search.Alphabet,
		SpaceSize:  search.SpaceSize,
		Attempts:   search.Attempts,
		Current:    search.Current,
		Error:      search.Error,
		CreatedAt:  search.CreatedAt,
		FinishedAt: search.FinishedAt,
	}
	if search.Result != nil {
		response.Result = &ResultResponse{
			Outcome:   string(search.Result.Outcome),
			Key:       search.Result.Key,
			Claims:    search.Result.Claims,
			Attempts:  search.Result.Attempts,
			ElapsedMS: search.Result.Elapsed.Milliseconds(),
		}
	}
	return response
}

// MapSearchesToListResponse converts a slice of domain searches to a list response.
func MapSearchesToListResponse(searches []*searchDomain.Search) ListSearchesResponse {
	data := make([]SearchResponse, 0, len(searches))
	for _, search := range searches {
		data = append(data, MapSearchToResponse(search))
	}

	return ListSearchesResponse{
		Data: data,
	}
}
