package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <skill-id>",
	Short: "Toggle a skill bookmark",
	Long:  `Toggle a skill's membership in your bookmark set.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmark,
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List your bookmarked skills",
	Args:  cobra.NoArgs,
	RunE:  runBookmarks,
}

func runBookmark(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	bookmarked, err := a.store.ToggleBookmark(id)
	if err != nil {
		return err
	}

	sk, _ := a.store.SkillByID(id)
	if bookmarked {
		fmt.Printf("Bookmarked %q\n", sk.Title)
	} else {
		fmt.Printf("Removed bookmark from %q\n", sk.Title)
	}
	return nil
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ids := a.store.BookmarkedIDs()
	fmt.Printf("BOOKMARKS (%d)\n", len(ids))
	fmt.Println("──────────────────────────────────────────────────")
	for _, id := range ids {
		if sk, ok := a.store.SkillByID(id); ok {
			printSkillLine(a, sk)
		}
	}
	if len(ids) == 0 {
		fmt.Println("  No bookmarks yet. Use 'skilllet bookmark <id>'.")
	}
	return nil
}
