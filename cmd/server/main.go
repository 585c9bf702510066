package main

import (
	"context"
	"fmt"

	"github.com/xiecchuot/player-server/internal/config"
	"github.com/xiecchuot/player-server/internal/content"
	handlerhttp "github.com/xiecchuot/player-server/internal/handler/http"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/server"
	"github.com/xiecchuot/player-server/internal/service"
	"github.com/xiecchuot/player-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("player-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	contentStore, err := content.NewMinioStore(ctx, cfg.Storage.Content, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating content store")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, contentStore, cfg.App, log)
	handler := handlerhttp.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
