package handlers

import (
	"encoding/json"
	"net/http"

	"pokeproxy/internal/common/logging"
	"pokeproxy/internal/config"
	"pokeproxy/internal/proxy"
	"pokeproxy/internal/routing"
	"pokeproxy/internal/signature"
	"pokeproxy/internal/stats"
)

// Handlers bundles the HTTP handlers with their dependencies. The
// verifier, engine and forwarder may be nil when startup wiring failed;
// the stream handler answers 500 in that case instead of panicking.
type Handlers struct {
	config    *config.Config
	verifier  *signature.Verifier
	engine    *routing.Engine
	collector *stats.Collector
	forwarder *proxy.Forwarder
	logger    logging.Logger
}

func New(cfg *config.Config, verifier *signature.Verifier, engine *routing.Engine, collector *stats.Collector, forwarder *proxy.Forwarder, logger logging.Logger) *Handlers {
	if collector == nil {
		collector = stats.NewCollector(0)
	}
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	return &Handlers{
		config:    cfg,
		verifier:  verifier,
		engine:    engine,
		collector: collector,
		forwarder: forwarder,
		logger:    logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
