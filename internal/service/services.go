package service

import (
	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/store"
)

// Services aggregates the application services consumed by the HTTP layer.
type Services struct {
	AuthService    AuthService
	ElementService ElementService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ElementService: NewElementService(storages.ElementRepository, logger),
	}
}
