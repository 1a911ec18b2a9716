// Package helper boots a full application for integration tests.
package helper

import (
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hermes-io/hermes/app"
	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/utils"
)

var defaultEnvs = map[string]string{
	"HERMES_LOG__LEVEL":  "debug",
	"HERMES_LOG__FORMAT": "text",
}

// Start writes configYAML to a temp file, applies envs on top of the
// defaults, and boots the application. The caller owns the returned
// application and must Stop it.
func Start(configYAML string, envs map[string]string) (*app.Application, error) {
	for name, value := range defaultEnvs {
		if _, ok := envs[name]; !ok {
			if err := os.Setenv(name, value); err != nil {
				return nil, err
			}
		}
	}
	for name, value := range envs {
		if err := os.Setenv(name, value); err != nil {
			return nil, err
		}
	}

	filename := ""
	if configYAML != "" {
		f, err := os.CreateTemp("", "hermes-*.yml")
		if err != nil {
			return nil, err
		}
		if _, err := f.WriteString(configYAML); err != nil {
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		filename = f.Name()
	}

	cfg := config.New()
	if err := config.Load(filename, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := application.Start(); err != nil {
		return nil, err
	}

	go application.Wait()

	time.Sleep(time.Second)
	return application, nil
}

// Client returns a resty client pointed at the given listen address.
func Client(listen string) *resty.Client {
	c := resty.New()
	c.SetBaseURL(utils.ListenAddrToURL(listen))
	return c
}
