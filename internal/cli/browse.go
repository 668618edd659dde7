package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/rank"
)

var (
	browseSort     string
	browseCategory string
	browseSearch   string
	browseLimit    int
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the skill catalog",
	Long: `Browse the skill catalog with optional category, search, and sort.

Sort modes: trending (upvotes + views/10), newest, popular (upvotes),
quick (shortest first).`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseSort, "sort", "s", "", "sort mode: trending|newest|popular|quick")
	browseCmd.Flags().StringVarP(&browseCategory, "category", "c", "", "filter by category")
	browseCmd.Flags().StringVarP(&browseSearch, "search", "q", "", "filter by search query")
	browseCmd.Flags().IntVarP(&browseLimit, "limit", "n", 0, "limit number of results (0 = config page size)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	mode, err := resolveSort(a, browseSort)
	if err != nil {
		return err
	}

	if browseCategory != "" {
		a.store.SetCategory(browseCategory)
	}
	if browseSearch != "" {
		a.store.SetSearchQuery(browseSearch)
	}

	skills := rank.Sorted(a.store.FilteredSkills(), mode)

	limit := browseLimit
	if limit <= 0 {
		limit = a.cfg.PageSize
	}
	if limit > 0 && limit < len(skills) {
		skills = skills[:limit]
	}

	fmt.Printf("SKILLS (%d shown, sorted by %s)\n", len(skills), mode)
	fmt.Println("──────────────────────────────────────────────────")
	printSkillList(a, skills)
	return nil
}
