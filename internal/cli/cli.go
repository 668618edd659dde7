// Package cli provides the command-line interface for SkillLet.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/config"
	"github.com/skilllet/skilllet/internal/log"
	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/rank"
	"github.com/skilllet/skilllet/internal/seed"
	"github.com/skilllet/skilllet/internal/state"
	"github.com/skilllet/skilllet/internal/store"
	"github.com/skilllet/skilllet/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "skilllet",
	Short: "Bite-sized skills, learned locally",
	Long: `SkillLet - bite-sized skills, learned locally

A local-first tool for browsing, creating, and interacting with
micro-skill learning content. Your progress, bookmarks, and votes
persist across sessions; the catalog restarts from its seed.

Run without arguments to launch the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(upvoteCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// app bundles the per-command environment: config, the state database, and
// a store rehydrated from it.
type app struct {
	cfg   *config.Config
	db    *state.DB
	store *store.Store
}

// openApp loads configuration, opens the state database, and constructs a
// store seeded with the built-in catalog.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	db, err := state.New(state.Config{
		Path:        paths.Database,
		Debug:       cfg.Debug,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	st, err := store.New(store.Options{
		Seed:      seed.Skills(),
		Persister: db,
		Logger:    persistLogger{},
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return &app{cfg: cfg, db: db, store: st}, nil
}

// Close releases the database connection.
func (a *app) Close() {
	_ = a.db.Close()
}

// persistLogger routes store persistence failures to the shared logger.
type persistLogger struct{}

func (persistLogger) Errorf(format string, args ...interface{}) {
	log.Errorf(format+"\n", args...)
}

// parseID parses a skill id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid skill id %q", arg)
	}
	return id, nil
}

// printSkillLine prints one catalog row with completion/bookmark markers.
func printSkillLine(a *app, sk models.Skill) {
	marker := " "
	if a.store.IsCompleted(sk.ID) {
		marker = "✓"
	}
	bookmark := " "
	if a.store.IsBookmarked(sk.ID) {
		bookmark = "★"
	}
	fmt.Printf("  %s%s [%3d] %-40s %-10s %2d min  ▲%-4d 👁 %d\n",
		marker, bookmark, sk.ID, truncate(sk.Title, 40), sk.Category,
		sk.EstimatedTime, sk.Upvotes, sk.Views)
}

func printSkillList(a *app, skills []models.Skill) {
	if len(skills) == 0 {
		fmt.Println("No skills found.")
		return
	}
	for _, sk := range skills {
		printSkillLine(a, sk)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// resolveSort validates a sort mode flag, falling back to the configured
// default when empty.
func resolveSort(a *app, mode string) (string, error) {
	if mode == "" {
		mode = a.cfg.DefaultSort
	}
	if !rank.IsValidMode(mode) {
		return "", fmt.Errorf("unknown sort mode %q (valid: %s)",
			mode, strings.Join(rank.Modes(), ", "))
	}
	return mode, nil
}
