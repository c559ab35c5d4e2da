package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/registry"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Long:  "List catalog items. Examples:\n  mealr list\n  mealr list --tag 야식\n  mealr list --filter 찌개 --fuzzy",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tagFilter, _ := cmd.Flags().GetString("tag")
		textFilter, _ := cmd.Flags().GetString("filter")
		fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy")

		s := newSession()
		defer s.Close()
		c, origin := s.Load(cmd.Context())

		var entries []catalog.Entry
		if s.repo != nil && origin == s.repo.Describe() {
			foods, err := listStored(cmd, s.repo, tagFilter, textFilter, fuzzyFlag)
			if err != nil {
				return err
			}
			for _, f := range foods {
				entries = append(entries, catalog.Entry{Name: f.Name, Tags: f.Tags})
			}
		} else {
			entries = filterEntries(c, tagFilter, textFilter, fuzzyFlag)
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "- %s: %s\n", sanitize.Display(e.Name), strings.Join(sanitize.Tags(e.Tags), ", "))
		}
		return nil
	},
}

// listStored runs the filters as store queries.
func listStored(cmd *cobra.Command, r *registry.Repository, tag, text string, fuzzyMatch bool) ([]registry.Food, error) {
	ctx := cmd.Context()
	switch {
	case tag != "":
		return r.ListFoodsByTag(ctx, tag)
	case text != "" && fuzzyMatch:
		return r.FuzzySearchFoods(ctx, text)
	case text != "":
		return r.SearchFoods(ctx, text)
	default:
		return r.ListFoods(ctx)
	}
}

// entrySource exposes entries to fuzzy.FindFrom by name and tags.
type entrySource []catalog.Entry

func (s entrySource) String(i int) string {
	return s[i].Name + " " + strings.Join(s[i].Tags, " ")
}

func (s entrySource) Len() int { return len(s) }

// filterEntries applies the list filters to an in-memory catalog.
func filterEntries(c *catalog.Catalog, tag, text string, fuzzyMatch bool) []catalog.Entry {
	all := c.Entries()
	switch {
	case tag != "":
		var out []catalog.Entry
		for _, e := range all {
			if e.HasTag(tag) {
				out = append(out, e)
			}
		}
		return out
	case text != "" && fuzzyMatch:
		var out []catalog.Entry
		for _, m := range fuzzy.FindFrom(text, entrySource(all)) {
			out = append(out, all[m.Index])
		}
		return out
	case text != "":
		var out []catalog.Entry
		for _, e := range all {
			if containsText(e, text) {
				out = append(out, e)
			}
		}
		return out
	default:
		return all
	}
}

// containsText reports whether text occurs in the name or in any tag.
func containsText(e catalog.Entry, text string) bool {
	if strings.Contains(e.Name, text) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(t, text) {
			return true
		}
	}
	return false
}

func init() {
	listCmd.Flags().String("tag", "", "Filter by tag name")
	listCmd.Flags().String("filter", "", "Filter by text search on names and tags")
	listCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for text filter")
	rootCmd.AddCommand(listCmd)
}
