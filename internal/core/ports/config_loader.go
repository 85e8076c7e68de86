package ports

import "go.trai.ch/packsync/internal/core/domain"

// ConfigLoader defines the interface for loading runtime settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings, applying defaults for anything not configured.
	Load() (domain.Settings, error)
}
