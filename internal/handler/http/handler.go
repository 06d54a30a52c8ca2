package http

import (
	"time"

	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every inbound request; store calls inherit the
	// deadline through the request context.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
