// Package http provides HTTP handlers for single-token operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/jwtcrack/internal/httputil"
	"github.com/allisson/jwtcrack/internal/token/http/dto"
	tokenUseCase "github.com/allisson/jwtcrack/internal/token/usecase"
	customValidation "github.com/allisson/jwtcrack/internal/validation"
)

// TokenHandler handles HTTP requests for decoding, verifying and signing tokens.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokenUseCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// bind parses and validates a JSON request body, writing the error response on failure.
func (h *TokenHandler) bind(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}

// DecodeHandler returns a token's header and payload as readable JSON.
// POST /v1/tokens/decode
func (h *TokenHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeTokenRequest
	if !h.bind(c, &req) {
		return
	}

	decoded, err := h.tokenUseCase.Decode(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDecodedToResponse(decoded))
}

// VerifyHandler checks a key against a token.
// POST /v1/tokens/verify
// Returns 200 OK with valid=false for a wrong key or an expired token.
func (h *TokenHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyTokenRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.tokenUseCase.Verify(c.Request.Context(), req.Token, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVerifyResultToResponse(result))
}

// SignHandler signs a header and payload with a key.
// POST /v1/tokens/sign
// Returns 201 Created with the new token.
func (h *TokenHandler) SignHandler(c *gin.Context) {
	var req dto.SignTokenRequest
	if !h.bind(c, &req) {
		return
	}

	signed, err := h.tokenUseCase.Sign(c.Request.Context(), req.Header, req.Payload, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.SignTokenResponse{Token: signed})
}
