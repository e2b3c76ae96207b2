package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"pokeproxy/internal/handlers"
	"pokeproxy/internal/server"
)

// RunServer builds the HTTP server with all handlers configured.
// The router is returned alongside the server so tests can drive the
// full handler stack without binding a port.
func (app *App) RunServer() (*server.Server, http.Handler) {
	h := handlers.New(app.Config, app.Verifier, app.Engine, app.Collector, app.Forwarder, app.Logger)

	router := mux.NewRouter()
	SetupRoutes(router, h)

	srv := server.New(router, app.Config.Port)

	return srv, router
}
