// Package http provides HTTP handlers for running key searches in the background.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/jwtcrack/internal/httputil"
	"github.com/allisson/jwtcrack/internal/search/http/dto"
	searchUseCase "github.com/allisson/jwtcrack/internal/search/usecase"
	customValidation "github.com/allisson/jwtcrack/internal/validation"
)

// SearchHandler handles HTTP requests for background searches.
type SearchHandler struct {
	manager  searchUseCase.SearchManager
	defaults dto.Defaults
	logger   *slog.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(
	manager searchUseCase.SearchManager,
	defaults dto.Defaults,
	logger *slog.Logger,
) *SearchHandler {
	return &SearchHandler{
		manager:  manager,
		defaults: defaults,
		logger:   logger,
	}
}

// CreateHandler starts a background search.
// POST /v1/searches
// Returns 202 Accepted with the running search.
func (h *SearchHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateSearchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToSearchInput(h.defaults)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	search, err := h.manager.Start(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.MapSearchToResponse(search))
}

// ListHandler lists searches, oldest first.
// GET /v1/searches?offset=0&limit=50
func (h *SearchHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	searches, err := h.manager.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSearchesToListResponse(httputil.Paginate(searches, offset, limit)))
}

// GetHandler returns a search with its latest progress.
// GET /v1/searches/:id
func (h *SearchHandler) GetHandler(c *gin.Context) {
	searchID, ok := h.parseID(c)
	if !ok {
		return
	}

	search, err := h.manager.Get(c.Request.Context(), searchID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSearchToResponse(search))
}

// DeleteHandler requests that a running search stop.
// DELETE /v1/searches/:id
// Returns 202 Accepted; the search reaches its final state asynchronously.
func (h *SearchHandler) DeleteHandler(c *gin.Context) {
	searchID, ok := h.parseID(c)
	if !ok {
		return
	}

	search, err := h.manager.Stop(c.Request.Context(), searchID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.MapSearchToResponse(search))
}

func (h *SearchHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	searchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid search id: %w", err), h.logger)
		return uuid.Nil, false
	}
	return searchID, true
}
