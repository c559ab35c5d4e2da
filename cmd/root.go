package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/VoxDroid/mealr/internal/config"
	"github.com/VoxDroid/mealr/internal/logging"
)

var (
	catalogFlag  string
	sourceFlag   string
	configFlag   string
	logLevelFlag string

	// settings is filled by the root PersistentPreRunE before any command runs.
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mealr",
	Short: "mealr recommends food from tags you pick",
	Long: "mealr scores a food catalog against the tags you select (meal time, company,\n" +
		"taste, broth, ...) and lists the best matches. With no tags it picks at random.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if isInteractive() {
			return runTUI(cmd)
		}
		cmd.Println("mealr: run 'mealr --help' to see available commands")
		return nil
	},
}

// setup loads settings, applies global flag overrides and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if sourceFlag != "" {
		cfg.Catalog.Source = sourceFlag
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})
	settings = cfg
	return nil
}

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&catalogFlag, "catalog", "", "Text catalog file to use (overrides catalog.path)")
	pf.StringVar(&sourceFlag, "source", "", "Catalog source: auto, file, db or builtin")
	pf.StringVar(&configFlag, "config", "", "Settings file (default $MEALR_HOME/config.yaml)")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error or off")
}
