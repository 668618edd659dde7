package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/recommend"
)

var recommendLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills based on your learning history",
	Long: `Suggest uncompleted skills ranked by how well they match the
categories and tags of skills you have completed. New users get the
community's trending skills.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 3, "number of recommendations")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	completed := a.store.CompletedIDs()
	skills := a.store.Skills()
	recs := recommend.Recommend(skills, completed, recommendLimit)

	fmt.Println("RECOMMENDED FOR YOU")
	fmt.Println("──────────────────────────────────────────────────")
	for i, rec := range recs {
		fmt.Printf("  #%d [%3d] %s\n", i+1, rec.Skill.ID, rec.Skill.Title)
		fmt.Printf("     %s\n", rec.Reason)
	}
	if len(recs) == 0 {
		fmt.Println("  You've completed everything. Create a new skill!")
		return nil
	}

	profile := recommend.BuildProfile(skills, completed)
	if cats := profile.TopCategories(2); len(cats) > 0 && len(completed) > 0 {
		fmt.Println("\nYour learning insights:")
		fmt.Printf("  Preferred categories: %s\n", strings.Join(cats, ", "))
		fmt.Printf("  Average time: %.0f minutes\n", profile.AvgMinutes)
		fmt.Printf("  Skills completed: %d\n", len(completed))
	}
	return nil
}
