package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/config"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show a catalog item and its tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		outFlag, _ := cmd.Flags().GetString("output")
		format, err := outputFormat(outFlag)
		if err != nil {
			return err
		}

		c, origin := loadCatalog(cmd.Context())
		e, ok := c.Get(name)
		if !ok {
			return fmt.Errorf("food not found: %s", name)
		}
		if format == config.OutputJSON {
			return writeJSON(cmd.OutOrStdout(), e)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Name: %s\n", sanitize.Display(e.Name))
		_, _ = fmt.Fprintf(out, "Source: %s\n", origin)
		_, _ = fmt.Fprintln(out, "Tags:")
		for _, t := range e.Tags {
			_, _ = fmt.Fprintf(out, "- %s (%s)\n", sanitize.Display(t), categoryOf(t))
		}
		return nil
	},
}

// categoryOf names the vocabulary group a tag belongs to.
func categoryOf(tag string) string {
	for _, g := range catalog.Categories() {
		for _, t := range g.Tags {
			if t == tag {
				return g.Name
			}
		}
	}
	return catalog.Uncategorized
}

func init() {
	describeCmd.Flags().StringP("output", "o", "", "Output format: table or json (default display.output)")
	rootCmd.AddCommand(describeCmd)
}
