package ports

import "go.trai.ch/vigil/internal/core/domain"

// ConfigLoader defines the interface for loading the vigil configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration that applies to cwd.
	// It returns the defaults when no config file is found.
	Load(cwd string) (*domain.Config, error)
}
