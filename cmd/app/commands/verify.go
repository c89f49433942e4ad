package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tokenUseCase "github.com/allisson/jwtcrack/internal/token/usecase"
)

// ErrSignatureInvalid is returned when the key does not verify the token.
var ErrSignatureInvalid = errors.New("signature verification failed")

// RunVerify checks a single key against a token. A wrong key or an expired
// token prints the negative result and returns ErrSignatureInvalid.
func RunVerify(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	token, key string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := useCase.Verify(ctx, token, key)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	if format == "json" {
		output := map[string]any{
			"valid":     result.Valid,
			"algorithm": result.Algorithm,
		}
		if result.Valid {
			output["claims"] = result.Claims
		}
		if err := writeJSON(writer, output); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		if result.Valid {
			_, _ = fmt.Fprintf(writer, "Signature valid (%s)\n", result.Algorithm)
			if len(result.Claims) > 0 {
				_, _ = fmt.Fprintf(writer, "Claims:\n")
				_ = writeJSON(writer, result.Claims)
			}
		} else {
			_, _ = fmt.Fprintf(writer, "Signature invalid (%s)\n", result.Algorithm)
		}
	}

	logger.Info("token verified", slog.Bool("valid", result.Valid))

	if !result.Valid {
		return ErrSignatureInvalid
	}

	return nil
}
