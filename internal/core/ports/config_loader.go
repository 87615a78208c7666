package ports

import "go.trai.ch/pali/internal/core/domain"

// ConfigLoader defines the interface for loading the target graph from
// external configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the validated target graph.
	Load(cwd string) (*domain.Graph, error)
}
