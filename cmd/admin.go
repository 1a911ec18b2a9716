package cmd

import (
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
		Long:  ``,
	}

	admin.PersistentFlags().StringVarP(&configurationFile, "config", "", "", "The configuration filename")

	admin.AddCommand(newAdminValidateCmd())
	admin.AddCommand(newAdminTestTemplateCmd())
	admin.AddCommand(newAdminListEndpointsCmd())

	return admin
}
