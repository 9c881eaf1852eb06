package handler

import (
	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/handler/http"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gate *auth.Gate, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if gate == nil {
		return nil, errNoAccessGate
	}

	return &Handlers{
		HTTP: http.NewHandler(services, gate, cfg, logger),
	}, nil
}
