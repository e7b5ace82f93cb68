package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "riskmate version %s\n", version)
		},
	}
}
