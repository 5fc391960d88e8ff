// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/handler/grpc"
	"github.com/MKhiriev/trustme/internal/handler/http"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every configured address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
