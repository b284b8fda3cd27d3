package handler

import (
	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/handler/http"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, logger),
	}, nil
}
