package ports

import "go.trai.ch/rig/internal/core/domain"

// ConfigLoader loads the harness configuration. It is called at run time,
// not at construction, so the task list always reflects current settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (*domain.Config, error)
}
