package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/config"
	"github.com/VoxDroid/mealr/internal/exporter"
	"github.com/VoxDroid/mealr/internal/importer"
	"github.com/VoxDroid/mealr/internal/logging"
	"github.com/VoxDroid/mealr/internal/registry"
	"github.com/VoxDroid/mealr/internal/utils"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the stored food catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a text catalog into the store",
	Long: "Import a text catalog (two header lines, then 'name: tag1, tag2' per line).\n" +
		"Policies: replace (default) wipes the store first, merge overwrites the tags of\n" +
		"existing items, skip keeps existing items untouched.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, _ := cmd.Flags().GetString("policy")
		yes, _ := cmd.Flags().GetBool("yes")

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()

		if policy == registry.PolicyReplace && !yes {
			n, err := repo.CountFoods(cmd.Context())
			if err != nil {
				return err
			}
			if n > 0 && !utils.ConfirmReader(fmt.Sprintf("Replace the %d stored items?", n), cmd.InOrStdin(), cmd.OutOrStdout()) {
				cmd.Println("aborted")
				return nil
			}
		}

		rep, err := importer.ImportFile(cmd.Context(), repo, args[0], importer.Options{Policy: policy, Logger: logging.Logger()})
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

func printReport(w io.Writer, rep importer.Report) {
	_, _ = fmt.Fprintf(w, "imported: %d added, %d updated, %d skipped\n", rep.Added, rep.Updated, rep.Skipped)
	if rep.DroppedTags > 0 {
		_, _ = fmt.Fprintf(w, "dropped %d empty or invalid tags\n", rep.DroppedTags)
	}
	for _, r := range rep.Rejected {
		_, _ = fmt.Fprintf(w, "rejected %q: %s\n", r.Name, r.Reason)
	}
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [dest]",
	Short: "Write the active catalog in the text format",
	Long:  "Write the active catalog to dest, or to stdout when dest is omitted or '-'.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, origin := loadCatalog(cmd.Context())
		if len(args) == 0 || args[0] == "-" {
			return exporter.Write(cmd.OutOrStdout(), c)
		}
		if err := exporter.WriteFile(args[0], c); err != nil {
			return err
		}
		cmd.Printf("exported %d items from %s to %s\n", c.Len(), origin, args[0])
		return nil
	},
}

var catalogEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the stored catalog in $EDITOR",
	Long: "Write the stored catalog (or the active one when the store is empty) to a\n" +
		"temporary file, open it in $EDITOR and import the result with the replace policy.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		repo, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()

		c, err := repo.LoadCatalog(ctx)
		if errors.Is(err, catalog.ErrEmpty) {
			c, _ = loadCatalog(ctx)
		} else if err != nil {
			return err
		}

		dir, err := os.MkdirTemp("", "mealr-edit-")
		if err != nil {
			return err
		}
		defer func() { _ = os.RemoveAll(dir) }()
		tmp := filepath.Join(dir, "catalog.txt")
		if err := exporter.WriteFile(tmp, c); err != nil {
			return err
		}
		if err := utils.OpenEditor(tmp); err != nil {
			return err
		}

		rep, err := importer.ImportFile(ctx, repo, tmp, importer.Options{Policy: registry.PolicyReplace, Logger: logging.Logger()})
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

var catalogResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every item from the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !utils.ConfirmReader("Remove every stored item?", cmd.InOrStdin(), cmd.OutOrStdout()) {
			cmd.Println("aborted")
			return nil
		}
		repo, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()
		if err := repo.Clear(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("catalog store cleared")
		return nil
	},
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where the active catalog comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		s := newSession()
		defer s.Close()
		c, origin := s.Load(ctx)

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Active:   %s (%d items, %d tags)\n", origin, c.Len(), len(c.Tags()))
		_, _ = fmt.Fprintf(out, "Mode:     %s\n", settings.Catalog.Source)
		_, _ = fmt.Fprintf(out, "File:     %s\n", settings.Catalog.Path)
		if p, err := config.DBPath(); err == nil {
			_, _ = fmt.Fprintf(out, "Store:    %s\n", p)
		}
		if s.repo != nil {
			n, err := s.repo.CountFoods(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Stored:   %d items\n", n)
			if src, ok, _ := s.repo.GetMeta(ctx, registry.MetaSource); ok {
				at, _, _ := s.repo.GetMeta(ctx, registry.MetaImportedAt)
				_, _ = fmt.Fprintf(out, "Imported: %s at %s\n", src, formatStamp(at))
			}
		}
		return nil
	},
}

// formatStamp renders an RFC 3339 stamp in local time, or as stored when it
// does not parse.
func formatStamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Local().Format("2006-01-02 15:04")
}

func init() {
	catalogImportCmd.Flags().String("policy", registry.PolicyReplace, "Conflict policy: replace, merge or skip")
	catalogImportCmd.Flags().Bool("yes", false, "Do not ask before replacing stored items")
	catalogResetCmd.Flags().Bool("yes", false, "Do not ask for confirmation")

	catalogCmd.AddCommand(catalogImportCmd, catalogExportCmd, catalogEditCmd, catalogResetCmd, catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}
