package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/assess"
	"github.com/skilllet/skilllet/internal/models"
)

var (
	assessDifficulty string
	assessTime       string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Vote on and review skill difficulty",
	Long: `Vote on skill difficulty and time estimates, and review the
community consensus.

Subcommands:
  vote <id>   Cast a difficulty and/or time vote
  report      Show the catalog-wide difficulty distribution`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var assessVoteCmd = &cobra.Command{
	Use:   "vote <skill-id>",
	Short: "Vote on a skill's difficulty or time estimate",
	Long: `Vote on a skill's difficulty or time estimate. Requires login.

Difficulty levels: Very Easy, Easy, Medium, Hard, Very Hard
Time buckets: Under 5 min, 5-10 min, 10-15 min, 15-20 min, Over 20 min`,
	Args: cobra.ExactArgs(1),
	RunE: runAssessVote,
}

var assessReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the difficulty distribution across assessed skills",
	Args:  cobra.NoArgs,
	RunE:  runAssessReport,
}

func init() {
	assessVoteCmd.Flags().StringVarP(&assessDifficulty, "difficulty", "d", "", "difficulty vote")
	assessVoteCmd.Flags().StringVarP(&assessTime, "time", "t", "", "time-estimate vote")
	assessCmd.AddCommand(assessVoteCmd)
	assessCmd.AddCommand(assessReportCmd)
}

func runAssessVote(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if assessDifficulty == "" && assessTime == "" {
		return fmt.Errorf("nothing to vote on: pass --difficulty and/or --time")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.store.IsAuthenticated() {
		return fmt.Errorf("please log in to vote (skilllet login <username>)")
	}

	if assessDifficulty != "" {
		if err := a.store.VoteDifficulty(id, assessDifficulty); err != nil {
			return err
		}
		fmt.Printf("Recorded difficulty vote %q\n", assessDifficulty)
	}
	if assessTime != "" {
		if err := a.store.VoteTime(id, assessTime); err != nil {
			return err
		}
		fmt.Printf("Recorded time vote %q\n", assessTime)
	}

	if tally, ok := a.store.Votes(id); ok {
		if level, ok := assess.AverageDifficulty(tally.Difficulty); ok {
			fmt.Printf("Community difficulty is now: %s\n", level)
		}
		if bucket, ok := assess.AverageTime(tally.Time); ok {
			fmt.Printf("Community time estimate is now: %s\n", bucket)
		}
	}
	return nil
}

func runAssessReport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tallies := make(map[int64]models.VoteTally)
	totalVotes := 0
	for _, sk := range a.store.Skills() {
		if tally, ok := a.store.Votes(sk.ID); ok {
			tallies[sk.ID] = tally
			totalVotes += tally.Total()
		}
	}

	dist := assess.Distribution(tallies)

	fmt.Println("DIFFICULTY DISTRIBUTION")
	fmt.Println("──────────────────────────────────────────────────")
	for _, level := range models.DifficultyLevels() {
		fmt.Printf("  %-10s %d skills\n", level, dist[level])
	}
	fmt.Printf("\n%d skills assessed, %d total votes\n", len(tallies), totalVotes)
	return nil
}
