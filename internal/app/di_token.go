package app

import (
	"fmt"

	tokenHTTP "github.com/allisson/jwtcrack/internal/token/http"
	tokenService "github.com/allisson/jwtcrack/internal/token/service"
	tokenUseCase "github.com/allisson/jwtcrack/internal/token/usecase"
)

// TokenDecoder returns the decoder that pretty-prints token segments.
func (c *Container) TokenDecoder() tokenService.TokenDecoder {
	c.tokenDecoderInit.Do(func() {
		c.tokenDecoder = tokenService.NewDecoder()
	})
	return c.tokenDecoder
}

// TokenSigner returns the signer used to re-sign edited tokens.
func (c *Container) TokenSigner() tokenService.TokenSigner {
	c.tokenSignerInit.Do(func() {
		c.tokenSigner = tokenService.NewSigner()
	})
	return c.tokenSigner
}

// TokenUseCase returns the token use case, wrapped with metrics when enabled.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the HTTP handler for token operations.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

func (c *Container) initTokenUseCase() (tokenUseCase.TokenUseCase, error) {
	useCase := tokenUseCase.NewTokenUseCase(c.TokenDecoder(), c.TokenSigner())

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}

	return tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initTokenHandler() (*tokenHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}

	return tokenHTTP.NewTokenHandler(useCase, c.Logger()), nil
}
