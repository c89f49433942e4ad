package commands

import (
	"context"
	"fmt"
	"io"

	tokenUseCase "github.com/allisson/jwtcrack/internal/token/usecase"
)

// RunDecode prints the header and payload of a token without verifying it.
func RunDecode(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	writer io.Writer,
	token string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	decoded, err := useCase.Decode(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	if format == "json" {
		output := map[string]string{
			"header":    decoded.Header,
			"payload":   decoded.Payload,
			"algorithm": string(decoded.Algorithm),
			"signature": decoded.Signature,
		}
		if err := writeJSON(writer, output); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
		return nil
	}

	_, _ = fmt.Fprintf(writer, "Header:\n%s\n\n", decoded.Header)
	_, _ = fmt.Fprintf(writer, "Payload:\n%s\n\n", decoded.Payload)
	_, _ = fmt.Fprintf(writer, "Algorithm: %s\n", decoded.Algorithm)
	_, _ = fmt.Fprintf(writer, "Signature: %s\n", decoded.Signature)

	return nil
}
