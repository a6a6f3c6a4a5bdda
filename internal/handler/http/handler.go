package http

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// Pinger reports whether the backing store is reachable. Implemented by
// store.Storages; declared here so the handler does not depend on the
// concrete storage type.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	pinger    Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		pinger:    pinger,
		logger:    logger,
	}
}
