package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/server"
)

// @title Campus Course & Enrollment API
// @version 1.0
// @description Course catalog and enrollment services
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@campus.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey ServiceAuth
// @in header
// @name Authorization
// @description Service token for the seat-count endpoint

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	role := flag.String("role", "", "process role: catalog, enrollment or all (overrides server.role)")
	flag.Parse()

	srv, err := server.NewServer(*configPath, *role)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
