package app

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"pokeproxy/internal/handlers"
	"pokeproxy/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application
func SetupRoutes(router *mux.Router, h *handlers.Handlers) {
	// Request IDs are assigned first so the logging middleware can
	// include them.
	router.Use(middleware.RequestIDMiddleware, middleware.LoggingMiddleware)

	// Stream ingestion
	router.HandleFunc("/stream", h.HandleStream).Methods("POST")

	// Statistics
	router.HandleFunc("/stats", h.GetStats).Methods("GET")

	// Health check
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}
