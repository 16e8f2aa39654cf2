package http

import (
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/service"
)

type Handler struct {
	services  *service.Services
	accessKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, accessKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		accessKey: accessKey,
		logger:    logger,
	}
}
