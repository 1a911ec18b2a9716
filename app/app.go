package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	hermes "github.com/hermes-io/hermes"
	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/deliverer"
	"github.com/hermes-io/hermes/dispatcher"
	"github.com/hermes-io/hermes/pkg/accesslog"
	"github.com/hermes-io/hermes/pkg/log"
	"github.com/hermes-io/hermes/proxy"
)

var (
	ErrApplicationStarted = errors.New("already started")
	ErrApplicationStopped = errors.New("already stopped")
)

type Application struct {
	cfg *config.Config

	mux     sync.Mutex
	started bool

	stop chan struct{}

	log      *zap.SugaredLogger
	registry *dispatcher.Registry
	gateway  *proxy.Gateway
}

func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		cfg:  cfg,
		stop: make(chan struct{}, 1),
	}

	err := app.initialize()
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) initialize() error {
	cfg := app.cfg

	log, err := log.NewZapLogger(&cfg.Log)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(log.Desugar())
	app.log = log

	// registry (compiles templates; a bad template aborts startup)
	registry, err := dispatcher.NewRegistry(cfg)
	if err != nil {
		return err
	}
	app.registry = registry

	d := deliverer.NewHTTPDeliverer(deliverer.Options{
		DefaultTimeout: time.Duration(cfg.Proxy.RequestTimeout) * time.Second,
	})

	opts := proxy.Options{
		Cfg:       &cfg.Proxy,
		Registry:  registry,
		Deliverer: d,
	}
	if cfg.AccessLog.Enabled() {
		accessLogger, err := accesslog.NewAccessLogger("proxy", accesslog.Options{
			File:    cfg.AccessLog.File,
			Format:  string(cfg.AccessLog.Format),
			Colored: cfg.Log.Colored,
		})
		if err != nil {
			return err
		}
		opts.Middlewares = append(opts.Middlewares, mux.MiddlewareFunc(accesslog.NewMiddleware(accessLogger)))
	}
	app.gateway = proxy.NewGateway(opts)

	return nil
}

func (app *Application) Registry() *dispatcher.Registry {
	return app.registry
}

func (app *Application) Config() *config.Config {
	return app.cfg
}

// Start starts application
func (app *Application) Start() error {
	app.mux.Lock()
	defer app.mux.Unlock()

	if app.started {
		return ErrApplicationStarted
	}

	app.log.Infof("starting Hermes %s", hermes.VERSION)

	for _, rule := range app.registry.Rules() {
		app.log.Infof("registered: %s %s -> %s %s",
			rule.Method, rule.Endpoint, rule.Target.Method, rule.Target.URL)
	}

	app.gateway.Start()
	app.started = true

	return nil
}

func (app *Application) Wait() {
	<-app.stop
}

// Stop stops application
func (app *Application) Stop() error {
	app.mux.Lock()
	defer app.mux.Unlock()

	if !app.started {
		return ErrApplicationStopped
	}

	app.log.Info("exiting")

	defer func() {
		app.log.Info("exit")
		_ = app.log.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.gateway.Stop(ctx); err != nil {
		return err
	}

	app.started = false
	app.stop <- struct{}{}

	return nil
}
