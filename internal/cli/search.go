package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by title, description, or tag",
	Long: `Search the catalog with a case-insensitive substring match over
skill titles, descriptions, and tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.SetSearchQuery(args[0])
	results := a.store.FilteredSkills()

	fmt.Printf("SEARCH RESULTS for %q (%d)\n", args[0], len(results))
	fmt.Println("──────────────────────────────────────────────────")
	printSkillList(a, results)
	return nil
}
