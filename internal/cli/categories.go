package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/models"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Long: `List the distinct categories currently in the catalog, preceded by
the "All" sentinel used for filtering.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	skills := a.store.Skills()
	counts := make(map[string]int)
	for _, sk := range skills {
		counts[sk.Category]++
	}

	for _, cat := range a.store.Categories() {
		if cat == models.CategoryAll {
			fmt.Printf("  %-12s (%d skills)\n", cat, len(skills))
			continue
		}
		fmt.Printf("  %-12s (%d skills)\n", cat, counts[cat])
	}
	return nil
}
