// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/trustme/internal/config"
	myGRPC "github.com/MKhiriev/trustme/internal/handler/grpc"
	"github.com/MKhiriev/trustme/internal/logger"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, handler)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
