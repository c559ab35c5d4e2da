package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/logging"
	"github.com/VoxDroid/mealr/internal/match"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [tag...]",
	Short: "Recommend food matching the given tags",
	Long: "Score every catalog item by how many of the given tags it carries and list\n" +
		"the best matches. Example:\n  mealr recommend 점심 매움 -t 혼자",
	Aliases: []string{"rec"},
	RunE: func(cmd *cobra.Command, args []string) error {
		flagTags, _ := cmd.Flags().GetStringSlice("tag")
		top, _ := cmd.Flags().GetInt("top")
		random, _ := cmd.Flags().GetBool("random")
		outFlag, _ := cmd.Flags().GetString("output")

		format, err := outputFormat(outFlag)
		if err != nil {
			return err
		}
		if top <= 0 {
			top = settings.Display.Top
		}

		c, origin := loadCatalog(cmd.Context())
		sel := match.NewSelection(slices.Concat(args, flagTags)...)
		lg := logging.Logger()
		lg.Debug().Str("source", origin).Strs("tags", sel.Tags()).Msg("recommend")

		if sel.Len() == 0 {
			if !random {
				return fmt.Errorf("no tags given, pass tags or --random: %w", match.ErrNoSelection)
			}
			e, err := match.Random(c, nil)
			if err != nil {
				return err
			}
			return printPick(cmd.OutOrStdout(), e, format)
		}

		results, err := match.Match(c, sel)
		if err != nil {
			return err
		}
		return printResults(cmd.OutOrStdout(), sel.Tags(), results, top, format)
	},
}

func init() {
	recommendCmd.Flags().StringSliceP("tag", "t", nil, "Tag to match (repeatable, comma separated)")
	recommendCmd.Flags().Int("top", 0, "Number of results to show (default display.top)")
	recommendCmd.Flags().Bool("random", false, "Pick at random when no tags are given")
	recommendCmd.Flags().StringP("output", "o", "", "Output format: table or json (default display.output)")
	rootCmd.AddCommand(recommendCmd)
}
