package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <skill-id>",
	Short: "Mark a skill as completed",
	Long: `Mark a skill as completed. Completion is a one-way transition;
there is no uncomplete. Completing an already completed skill refreshes
the completion timestamp.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your completed skills",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.CompleteSkill(id); err != nil {
		return err
	}

	sk, _ := a.store.SkillByID(id)
	fmt.Printf("Completed %q 🎉\n", sk.Title)
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ids := a.store.CompletedIDs()
	total := len(a.store.Skills())

	fmt.Printf("PROGRESS: %d of %d skills completed\n", len(ids), total)
	fmt.Println("──────────────────────────────────────────────────")
	for _, id := range ids {
		sk, ok := a.store.SkillByID(id)
		if !ok {
			continue
		}
		rec, _ := a.store.Progress(id)
		fmt.Printf("  ✓ [%3d] %-40s completed %s\n",
			sk.ID, truncate(sk.Title, 40), rec.CompletedAt.Format("2006-01-02"))
	}
	if len(ids) == 0 {
		fmt.Println("  Nothing completed yet. Try 'skilllet browse'.")
	}
	return nil
}
