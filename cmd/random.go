package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/match"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random food from the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		outFlag, _ := cmd.Flags().GetString("output")
		format, err := outputFormat(outFlag)
		if err != nil {
			return err
		}
		c, _ := loadCatalog(cmd.Context())
		e, err := match.Random(c, nil)
		if err != nil {
			return err
		}
		return printPick(cmd.OutOrStdout(), e, format)
	},
}

func init() {
	randomCmd.Flags().StringP("output", "o", "", "Output format: table or json (default display.output)")
	rootCmd.AddCommand(randomCmd)
}
