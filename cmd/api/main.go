package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/server"
)

// @title Student Portal API
// @version 1.0
// @description Authentication and record registration API fronting the portal DB service.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	// .env is optional, deployments usually inject real env vars
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("loaded environment from .env file")
	}

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("server execution failed")
		os.Exit(1)
	}
}
