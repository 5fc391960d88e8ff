package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/client"
	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewClientLogger("trustme-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fail(log, err, "error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fail(log, err, "create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fail(log, err, "create local storage")
	}
	defer localStorage.Close()

	services, err := service.NewClientServices(localStorage, serverAdapter, cfg.Crypto)
	if err != nil {
		return fail(log, err, "create client services")
	}

	app := client.NewApp(services, serverAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, client.FormatError(err))
		return 1
	}
	return 0
}

func fail(log *logger.Logger, err error, msg string) int {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintln(os.Stderr, client.FormatError(fmt.Errorf("%s: %w", msg, err)))
	return 1
}
