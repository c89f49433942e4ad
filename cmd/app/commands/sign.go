package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tokenUseCase "github.com/allisson/jwtcrack/internal/token/usecase"
)

// RunSign signs an edited header and payload with key and prints the token.
func RunSign(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	header, payload, key string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := useCase.Sign(ctx, header, payload, key)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]string{"token": token}); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(writer, token)
	}

	logger.Info("token signed")

	return nil
}
