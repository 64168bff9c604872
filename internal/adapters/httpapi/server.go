// Package httpapi is the HTTP adapter: routing, auth and rate-limit
// middleware, DTO mapping, and the uniform error envelope. Behavior lives in
// the app services; handlers here only translate.
package httpapi

import (
	"log/slog"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/areas"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/teams"
)

// Server holds the application services the handlers delegate to.
type Server struct {
	Areas  *areas.Service
	Teams  *teams.Service
	Logger *slog.Logger
}

func NewServer(areasSvc *areas.Service, teamsSvc *teams.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Areas:  areasSvc,
		Teams:  teamsSvc,
		Logger: logger,
	}
}
