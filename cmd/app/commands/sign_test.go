package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
	tokenMocks "github.com/allisson/jwtcrack/internal/token/usecase/mocks"
)

func TestRunSign(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	header := `{"alg":"HS256","typ":"JWT"}`
	payload := `{"sub":"alice","admin":true}`

	t.Run("text", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Sign", ctx, header, payload, "secret").Return("a.b.c", nil)

		var out bytes.Buffer
		err := RunSign(ctx, mockUseCase, logger, &out, header, payload, "secret", "text")
		require.NoError(t, err)
		require.Equal(t, "a.b.c\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Sign", ctx, header, payload, "secret").Return("a.b.c", nil)

		var out bytes.Buffer
		err := RunSign(ctx, mockUseCase, logger, &out, header, payload, "secret", "json")
		require.NoError(t, err)

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, "a.b.c", result["token"])
	})

	t.Run("unsupported-algorithm", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Sign", ctx, `{"alg":"RS256"}`, payload, "secret").
			Return("", tokenDomain.ErrUnsupportedAlgorithm)

		var out bytes.Buffer
		err := RunSign(ctx, mockUseCase, logger, &out, `{"alg":"RS256"}`, payload, "secret", "text")
		require.ErrorIs(t, err, tokenDomain.ErrUnsupportedAlgorithm)
		require.Empty(t, out.String())
	})
}
