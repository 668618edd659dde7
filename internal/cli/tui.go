package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/config"
	"github.com/skilllet/skilllet/internal/log"
	"github.com/skilllet/skilllet/internal/tui"
	"github.com/skilllet/skilllet/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Initialize logger
	if err := log.Init(a.cfg.BaseDir); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	// Print banner
	printBanner()

	// Print config info
	paths := config.GetPaths(a.cfg)
	log.Printf("\n\U0001F4C1 Base directory: %s\n", a.cfg.BaseDir)
	log.Printf("\U0001F4C1 Database: %s\n", paths.Database)
	log.Printf("\U0001F4C1 Log file: %s/skilllet.log\n", a.cfg.BaseDir)

	stats := a.store.Stats()
	log.Printf("\n\U0001F4CA Catalog: %d skills across %d categories\n",
		stats.TotalSkills, stats.TotalCategories)
	log.Printf("   Completed: %d   Bookmarked: %d\n",
		len(a.store.CompletedIDs()), len(a.store.BookmarkedIDs()))

	if user, ok := a.store.CurrentUser(); ok {
		log.Printf("\U0001F464 Logged in as: %s\n", user.Username)
	} else {
		log.Println("\U0001F464 Not logged in (run `skilllet login <username>` to vote on skills)")
	}

	log.Println("\n\U0001F373 Launching SkillLet TUI...")
	log.Println("   Press / to search, ↓ to browse, q to quit")

	return tui.Run(a.store, a.cfg.DefaultSort)
}

func printBanner() {
	banner := `
   ███████╗██╗  ██╗██╗██╗     ██╗     ██╗     ███████╗████████╗
   ██╔════╝██║ ██╔╝██║██║     ██║     ██║     ██╔════╝╚══██╔══╝
   ███████╗█████╔╝ ██║██║     ██║     ██║     █████╗     ██║
   ╚════██║██╔═██╗ ██║██║     ██║     ██║     ██╔══╝     ██║
   ███████║██║  ██╗██║███████╗███████╗███████╗███████╗   ██║
   ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚══════╝╚══════╝   ╚═╝

   LEARN SOMETHING NEW IN 10 MINUTES
`
	fmt.Print(banner)
	fmt.Printf("   Version: %s\n", version.Short())
}
