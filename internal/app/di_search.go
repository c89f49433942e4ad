package app

import (
	"fmt"

	searchHTTP "github.com/allisson/jwtcrack/internal/search/http"
	"github.com/allisson/jwtcrack/internal/search/http/dto"
	searchUseCase "github.com/allisson/jwtcrack/internal/search/usecase"
)

// SearchUseCase returns the blocking search use case, wrapped with metrics when enabled.
func (c *Container) SearchUseCase() (searchUseCase.SearchUseCase, error) {
	var err error
	c.searchUseCaseInit.Do(func() {
		c.searchUseCase, err = c.initSearchUseCase()
		if err != nil {
			c.initErrors["searchUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["searchUseCase"]; exists {
		return nil, storedErr
	}
	return c.searchUseCase, nil
}

// SearchManager returns the manager that runs searches in the background.
func (c *Container) SearchManager() (searchUseCase.SearchManager, error) {
	var err error
	c.searchManagerInit.Do(func() {
		c.searchManager, err = c.initSearchManager()
		if err != nil {
			c.initErrors["searchManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["searchManager"]; exists {
		return nil, storedErr
	}
	return c.searchManager, nil
}

// SearchHandler returns the HTTP handler for background searches.
func (c *Container) SearchHandler() (*searchHTTP.SearchHandler, error) {
	var err error
	c.searchHandlerInit.Do(func() {
		c.searchHandler, err = c.initSearchHandler()
		if err != nil {
			c.initErrors["searchHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["searchHandler"]; exists {
		return nil, storedErr
	}
	return c.searchHandler, nil
}

func (c *Container) initSearchUseCase() (searchUseCase.SearchUseCase, error) {
	useCase := searchUseCase.NewSearchUseCase(c.Logger())

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for search use case: %w", err)
	}

	return searchUseCase.NewSearchUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initSearchManager() (searchUseCase.SearchManager, error) {
	useCase, err := c.SearchUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get search use case for search manager: %w", err)
	}

	return searchUseCase.NewSearchManager(useCase, searchUseCase.ManagerConfig{
		MaxConcurrent:  c.config.SearchMaxConcurrent,
		ProgressBuffer: c.config.SearchProgressBuffer,
		PollInterval:   c.config.SearchProgressInterval,
	}, c.Logger()), nil
}

func (c *Container) initSearchHandler() (*searchHTTP.SearchHandler, error) {
	manager, err := c.SearchManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get search manager for search handler: %w", err)
	}

	defaults := dto.Defaults{
		MinLength: c.config.SearchMinLength,
		MaxLength: c.config.SearchMaxLength,
		Workers:   c.config.SearchWorkers,
		Charset:   c.config.SearchCharset,
	}

	return searchHTTP.NewSearchHandler(manager, defaults, c.Logger()), nil
}
