package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog and profile statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stats := a.store.Stats()
	paths := config.GetPaths(a.cfg)

	fmt.Println("CATALOG")
	fmt.Printf("  Skills: %d across %d categories\n", stats.TotalSkills, stats.TotalCategories)
	fmt.Printf("  Upvotes: %d  Views: %d\n", stats.TotalUpvotes, stats.TotalViews)
	fmt.Printf("  Average learning time: %.1f min\n", stats.AvgMinutes)

	fmt.Println("\nYOU")
	fmt.Printf("  Completed: %d  Bookmarked: %d\n",
		len(a.store.CompletedIDs()), len(a.store.BookmarkedIDs()))
	if user, ok := a.store.CurrentUser(); ok {
		fmt.Printf("  Logged in as: %s\n", user.Username)
	} else {
		fmt.Println("  Logged in as: (nobody)")
	}
	fmt.Printf("  Profile id: %s\n", a.db.GetOrCreateProfileID())

	fmt.Println("\nSTORAGE")
	fmt.Printf("  Database: %s\n", paths.Database)
	return nil
}
