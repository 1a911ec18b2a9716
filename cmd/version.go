package cmd

import (
	"github.com/spf13/cobra"

	hermes "github.com/hermes-io/hermes"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Long:  `Print the version with a short commit hash.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("Hermes %s (%s)\n", hermes.VERSION, hermes.COMMIT)
		},
	}
}
