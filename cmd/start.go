package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hermes-io/hermes/app"
	"github.com/hermes-io/hermes/config"
)

func newStartCmd() *cobra.Command {
	var (
		listen         string
		logLevel       string
		logFormat      string
		requestTimeout int64
		maxConcurrent  int64
		healthCheck    bool
	)

	start := &cobra.Command{
		Use:   "start",
		Short: "Start server",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configurationFile)
			if err != nil {
				return err
			}
			applyStartFlags(cmd, cfg, startFlags{
				listen:         listen,
				logLevel:       logLevel,
				logFormat:      logFormat,
				requestTimeout: requestTimeout,
				maxConcurrent:  maxConcurrent,
				healthCheck:    healthCheck,
			})
			if err := cfg.Validate(); err != nil {
				return err
			}

			app, err := app.New(cfg)
			if err != nil {
				return err
			}

			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-ctx.Done()
				err = app.Stop()
				if err != nil {
					os.Exit(1)
				}
			}()

			if err := app.Start(); err != nil {
				return err
			}

			app.Wait()

			return nil
		},
	}

	start.PersistentFlags().StringVarP(&configurationFile, "config", "", "", "The configuration filename")
	start.Flags().StringVarP(&listen, "listen", "", "", "Bind address and port, e.g. 0.0.0.0:3000")
	start.Flags().StringVarP(&logLevel, "log-level", "", "", "Log level (debug, info, warn, error)")
	start.Flags().StringVarP(&logFormat, "log-format", "", "", "Log format (text, json)")
	start.Flags().Int64VarP(&requestTimeout, "request-timeout", "", 0, "Outbound request timeout in seconds")
	start.Flags().Int64VarP(&maxConcurrent, "max-concurrent-requests", "", 0, "Maximum concurrent requests")
	start.Flags().BoolVarP(&healthCheck, "health-check", "", true, "Serve /health and /ready endpoints")

	return start
}

type startFlags struct {
	listen         string
	logLevel       string
	logFormat      string
	requestTimeout int64
	maxConcurrent  int64
	healthCheck    bool
}

// Flags set on the command line beat both the file and the environment.
func applyStartFlags(cmd *cobra.Command, cfg *config.Config, flags startFlags) {
	if cmd.Flags().Changed("listen") {
		cfg.Proxy.Listen = flags.listen
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = config.LogLevel(flags.logLevel)
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = config.LogFormat(flags.logFormat)
	}
	if cmd.Flags().Changed("request-timeout") {
		cfg.Proxy.RequestTimeout = flags.requestTimeout
	}
	if cmd.Flags().Changed("max-concurrent-requests") {
		cfg.Proxy.MaxConcurrentRequests = flags.maxConcurrent
	}
	if cmd.Flags().Changed("health-check") {
		cfg.Proxy.HealthCheck = flags.healthCheck
	}
}
