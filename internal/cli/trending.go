package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/rank"
)

var trendingLimit int

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the top trending skills",
	Long:  `Show skills ranked by trending score (upvotes + views/10).`,
	Args:  cobra.NoArgs,
	RunE:  runTrending,
}

func init() {
	trendingCmd.Flags().IntVarP(&trendingLimit, "limit", "n", 3, "number of skills to show")
}

func runTrending(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	top := rank.TopTrending(a.store.Skills(), trendingLimit)

	fmt.Printf("TRENDING NOW (top %d)\n", len(top))
	fmt.Println("──────────────────────────────────────────────────")
	for i, sk := range top {
		fmt.Printf("  %d. [%3d] %-40s score %.1f\n",
			i+1, sk.ID, truncate(sk.Title, 40), rank.TrendingScore(sk))
	}
	return nil
}
