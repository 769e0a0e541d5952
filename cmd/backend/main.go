package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/carlmjohnson/versioninfo"

	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/handler/http"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/server"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

var (
	buildVersion = "0.0.1-src"
	buildDate    string
	buildCommit  string
)

func main() {
	if buildCommit == "" {
		buildCommit = versioninfo.Short()
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	flagCfg := config.RegisterBackendFlags(flag.CommandLine)
	flag.Parse()

	log := logger.NewLogger("w3s-stub-backend")
	cfg, err := config.GetBackendConfig(flagCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Dur("token_duration", cfg.TokenDuration).
		Dur("wallet_creation_delay", cfg.WalletCreationDelay).
		Msg("received configs")

	storages := store.NewStorages(store.DefaultMemoryCapacity, log)

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := http.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
