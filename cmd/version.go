package cmd

import (
	"fmt"

	"github.com/VoxDroid/mealr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mealr %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
