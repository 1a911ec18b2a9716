package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/deliverer"
	"github.com/hermes-io/hermes/pkg/template"
)

func newAdminValidateCmd() *cobra.Command {
	validate := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate configuration file",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configurationFile)
			if err != nil {
				return err
			}
			if err := validateRegistersStrict(cfg); err != nil {
				return err
			}
			cmd.Printf("Configuration is valid (%d webhook registers)\n", len(cfg.Registers))
			return nil
		},
	}
	return validate
}

// validateRegistersStrict goes beyond the load-time checks: it verifies
// the declared HTTP methods against the supported verb set and compiles
// every template. The running server only surfaces a bad target method
// per request; this catches it ahead of deployment.
func validateRegistersStrict(cfg *config.Config) error {
	for i, register := range cfg.Registers {
		if !slices.Contains(deliverer.SupportedMethods, strings.ToUpper(register.Method)) {
			return fmt.Errorf("register #%d: invalid HTTP method '%s'", i, register.Method)
		}
		if !slices.Contains(deliverer.SupportedMethods, strings.ToUpper(register.Target.Method)) {
			return fmt.Errorf("register #%d: invalid target HTTP method '%s'", i, register.Target.Method)
		}
		if _, err := template.Compile(register.Template); err != nil {
			return fmt.Errorf("register #%d: template error: %s", i, err)
		}
	}
	return nil
}
