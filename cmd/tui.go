package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/cmd/tui/ui"
	modelpkg "github.com/VoxDroid/mealr/internal/tui/model"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive tag picker",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTUI(cmd)
	},
}

// runTUI keeps the catalog session open for the life of the program so the
// UI can reload from the same sources.
func runTUI(cmd *cobra.Command) error {
	s := newSession()
	defer s.Close()

	uiModel := modelpkg.New(cmd.Context(), s, nil)
	p := ui.NewProgram(uiModel)
	_, err := p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
