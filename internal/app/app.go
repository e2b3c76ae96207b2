package app

import (
	"net/http"

	apperrors "pokeproxy/internal/common/errors"
	commonhttp "pokeproxy/internal/common/http"
	"pokeproxy/internal/common/logging"
	"pokeproxy/internal/config"
	"pokeproxy/internal/proxy"
	"pokeproxy/internal/routing"
	"pokeproxy/internal/signature"
	"pokeproxy/internal/stats"
)

// App holds all the application dependencies
type App struct {
	Config    *config.Config
	Verifier  *signature.Verifier
	Engine    *routing.Engine
	Collector *stats.Collector
	Forwarder *proxy.Forwarder
	Logger    logging.Logger

	httpClient *http.Client
}

// New creates a new application instance with all dependencies
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "app"}),
	}

	// Initialize components in order of dependency
	if err := app.initializeVerifier(); err != nil {
		return nil, err
	}

	if err := app.initializeRouting(); err != nil {
		return nil, err
	}

	app.initializeStats()
	app.initializeForwarder()

	return app, nil
}

func (app *App) initializeVerifier() error {
	secret, err := app.Config.SecretBytes()
	if err != nil {
		return apperrors.ConfigError("POKEPROXY_SECRET is not valid base64").
			WithContext("error", err.Error())
	}

	app.Verifier = signature.NewVerifier(secret, app.Config.SignatureConfig())
	app.Logger.Info("Signature verification: enabled",
		logging.Field{Key: "header", Value: app.Config.SignatureHeader},
		logging.Field{Key: "encoding", Value: app.Config.SignatureEncoding},
	)
	return nil
}

func (app *App) initializeRouting() error {
	rs, err := routing.LoadRuleSet(app.Config.RulesPath)
	if err != nil {
		return apperrors.ConfigError("failed to load routing rules").
			WithContext("path", app.Config.RulesPath).
			WithContext("error", err.Error())
	}

	engine, err := routing.NewEngine(rs)
	if err != nil {
		return apperrors.ConfigError("invalid routing rules").
			WithContext("path", app.Config.RulesPath).
			WithContext("error", err.Error())
	}

	app.Engine = engine
	app.Logger.Info("Routing engine: started", logging.Field{Key: "rules", Value: engine.Len()})
	return nil
}

func (app *App) initializeStats() {
	app.Collector = stats.NewCollector(app.Config.StatsCapacity())
	app.Logger.Info("Stats collector: started",
		logging.Field{Key: "max_endpoints", Value: app.Config.StatsCapacity()})
}

func (app *App) initializeForwarder() {
	app.httpClient = commonhttp.NewHTTPClientWithTimeout(app.Config.ForwardTimeoutDuration())
	app.Forwarder = proxy.NewForwarder(app.httpClient, app.Config.SignatureHeader)
	app.Logger.Info("Forwarder: started",
		logging.Field{Key: "timeout", Value: app.Config.ForwardTimeoutDuration().String()})
}

// Cleanup releases all resources
func (app *App) Cleanup() {
	if app.httpClient != nil {
		app.httpClient.CloseIdleConnections()
	}
}
