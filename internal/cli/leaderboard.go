package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/leaderboard"
	"github.com/skilllet/skilllet/internal/rank"
)

var leaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [contributors|skills|trending]",
	Short: "Show community leaderboards",
	Long: `Show community leaderboards.

  contributors  top authors by total upvotes (default)
  skills        top skills by upvotes
  trending      top skills by trending score`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVarP(&leaderboardLimit, "limit", "n", 10, "number of entries")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	board := "contributors"
	if len(args) == 1 {
		board = args[0]
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	skills := a.store.Skills()

	switch board {
	case "contributors":
		top := leaderboard.TopContributors(skills, leaderboardLimit)
		fmt.Println("TOP CONTRIBUTORS")
		fmt.Println("──────────────────────────────────────────────────")
		for i, c := range top {
			fmt.Printf("  %2d. %-20s %d skills  ▲%-5d 👁 %d\n",
				i+1, c.Username, c.SkillsCreated, c.TotalUpvotes, c.TotalViews)
		}
	case "skills":
		top := leaderboard.TopSkills(skills, leaderboardLimit)
		fmt.Println("TOP SKILLS")
		fmt.Println("──────────────────────────────────────────────────")
		for i, sk := range top {
			fmt.Printf("  %2d. [%3d] %-40s ▲%d\n", i+1, sk.ID, truncate(sk.Title, 40), sk.Upvotes)
		}
	case "trending":
		top := leaderboard.TopTrending(skills, leaderboardLimit)
		fmt.Println("TRENDING SKILLS")
		fmt.Println("──────────────────────────────────────────────────")
		for i, sk := range top {
			fmt.Printf("  %2d. [%3d] %-40s score %.1f\n",
				i+1, sk.ID, truncate(sk.Title, 40), rank.TrendingScore(sk))
		}
	default:
		return fmt.Errorf("unknown leaderboard %q (valid: contributors, skills, trending)", board)
	}
	return nil
}
