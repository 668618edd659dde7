// SkillLet - bite-sized skills, learned locally
//
// A local-first CLI and TUI for browsing, creating, and interacting with
// micro-skill learning content. Progress, bookmarks, and community votes
// persist across sessions.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skilllet/skilllet/internal/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
