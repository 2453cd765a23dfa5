// Package main runs the ledger API to manage clients, accounts and money transfers.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/demo"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	registry := ledger.NewRegistry(ledger.WithInterestTerms(config.InterestTerms()))

	if config.SeedDemoClient {
		if _, err := demo.Seed(logger.WithContext(context.Background()), registry); err != nil {
			logger.Fatal().Err(err).Msg("cannot seed demo client")
		}
	}

	server, err := httpserver.New(registry, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
