package cmd

import (
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAdminListEndpointsCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list-endpoints",
		Short: "List all registered endpoints",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configurationFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = w.Write([]byte("METHOD\tENDPOINT\tTARGET\tURL\n"))
			for _, register := range cfg.Registers {
				row := []string{
					register.Method,
					register.Endpoint,
					register.Target.Method,
					register.Target.URL,
				}
				_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
			}
			return w.Flush()
		},
	}
	return list
}
