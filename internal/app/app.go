package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/programstile/studio/internal/config"
	"github.com/programstile/studio/internal/rest"
	log "github.com/sirupsen/logrus"
)

const ConfigPath = "./config/application.yaml"

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication loads the configuration from ConfigPath and builds the HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

func New(cfg config.Application) *Application {
	r := mux.NewRouter()

	deps := BuildDependencies(cfg)

	SetupMiddleware(r, deps, cfg)

	RegisterRoutes(r, deps, cfg)

	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler(cfg.Frontend.Dir, "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Server.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}
}

func (a *Application) Handler() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks until it fails or is shut down.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests, then
// detaches the event bus subscribers.
func (a *Application) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server")
	err := a.srv.Shutdown(ctx)
	a.deps.Close()
	return err
}
