package http

import (
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the application version reported by /api/version.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
