package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/handler"
	"github.com/MKhiriev/trustme/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish
// after a stop signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a server for every handler in handlers. The gRPC listener
// is bound here so a taken port fails startup instead of the first request.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gRPCServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = gRPCServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, then shuts down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx is done or one of the servers stops on its own.
func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		go func() {
			s.httpServer.RunServer()
			cancel()
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.listener.Addr().String()).Msg("launching gRPC server")
		go func() {
			s.gRPCServer.RunServer()
			cancel()
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server shut down gracefully")
}
