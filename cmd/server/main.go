package main

import (
	"context"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/config"
	handlerhttp "github.com/fincaudita/agroconsole/internal/handler/http"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/server"
	"github.com/fincaudita/agroconsole/internal/service"
	"github.com/fincaudita/agroconsole/internal/store"
	"github.com/fincaudita/agroconsole/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agroconsole-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(db, cfg, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
