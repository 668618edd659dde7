package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upvoteCmd = &cobra.Command{
	Use:   "upvote <skill-id>",
	Short: "Upvote a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpvote,
}

func runUpvote(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.UpvoteSkill(id); err != nil {
		return err
	}

	sk, _ := a.store.SkillByID(id)
	fmt.Printf("Upvoted %q (now %d upvotes)\n", sk.Title, sk.Upvotes)
	return nil
}
