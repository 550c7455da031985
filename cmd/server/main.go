package main

import (
	"context"
	"fmt"

	"github.com/dkurilov/flashdeck/internal/auth"
	"github.com/dkurilov/flashdeck/internal/config"
	"github.com/dkurilov/flashdeck/internal/handler/http"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/server"
	"github.com/dkurilov/flashdeck/internal/service"
	"github.com/dkurilov/flashdeck/internal/store"
	"github.com/dkurilov/flashdeck/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("flashdeck-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db)
	services := service.NewServices(storages, log)
	authProvider := auth.NewJWTProvider(cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	handlers := http.NewHandler(services, authProvider, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
