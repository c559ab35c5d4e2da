package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the tag vocabulary with item counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, _ := loadCatalog(cmd.Context())
		counts := c.TagCounts()
		out := cmd.OutOrStdout()
		for i, g := range catalog.GroupTags(c) {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "%s\n", g.Name)
			for _, t := range g.Tags {
				_, _ = fmt.Fprintf(out, "  %s %d\n", runewidth.FillRight(sanitize.Display(t), 12), counts[t])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
