package main

import (
	"os"

	"github.com/kaiwen/acadhub/internal/pkg/logger"
	"github.com/kaiwen/acadhub/internal/server"
)

// @title AcadHub API
// @version 1.0
// @description Student records backend covering courses, grades, credits, schedules, certificates and the academic calendar

// @contact.name API Support
// @contact.email support@acadhub.cn

// @host localhost:4000
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
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
