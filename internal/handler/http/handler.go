package http

import (
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}
}
