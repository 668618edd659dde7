package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/assess"
	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/rank"
)

var infoCopy bool

var infoCmd = &cobra.Command{
	Use:     "info <skill-id>",
	Aliases: []string{"view"},
	Short:   "Show detailed information about a skill",
	Long: `Display detailed information about a specific skill, including its
content, community assessment, and your own state. Viewing a skill counts
as a view.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoCopy, "copy", false, "copy skill content to the clipboard")
}

func runInfo(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, ok := a.store.SkillByID(id); !ok {
		return fmt.Errorf("skill %d not found", id)
	}

	// Reading the detail view counts as a view.
	_ = a.store.RecordView(id)
	skill, _ := a.store.SkillByID(id)

	fmt.Printf("Skill: %s\n", skill.Title)
	fmt.Printf("Category: %s\n", skill.Category)
	fmt.Printf("Type: %s (%d min)\n", skill.Type, skill.EstimatedTime)
	fmt.Printf("Author: %s\n", skill.Author)
	fmt.Printf("Created: %s\n", skill.CreatedAt.Format("2006-01-02"))
	fmt.Printf("Upvotes: %d  Views: %d  Comments: %d  (trending score %.1f)\n",
		skill.Upvotes, skill.Views, skill.Comments, rank.TrendingScore(skill))

	if skill.Description != "" {
		fmt.Printf("\nDescription:\n  %s\n", skill.Description)
	}
	if len(skill.Tags) > 0 {
		fmt.Printf("\nTags: %s\n", strings.Join(skill.Tags, ", "))
	}

	if tally, ok := a.store.Votes(id); ok {
		if level, ok := assess.AverageDifficulty(tally.Difficulty); ok {
			fmt.Printf("\nCommunity difficulty: %s\n", level)
		}
		if bucket, ok := assess.AverageTime(tally.Time); ok {
			fmt.Printf("Community time estimate: %s\n", bucket)
		}
	}

	fmt.Printf("\nCompleted: %v\n", a.store.IsCompleted(id))
	fmt.Printf("Bookmarked: %v\n", a.store.IsBookmarked(id))

	if skill.Content != "" && skill.Type == models.TypeText {
		fmt.Println("\nContent:")
		fmt.Println(renderContent(skill.Content))
	} else if skill.Content != "" {
		fmt.Printf("\nContent: %s\n", skill.Content)
	}

	if infoCopy {
		if err := clipboard.WriteAll(skill.Content); err != nil {
			fmt.Printf("\nCould not copy to clipboard: %v\n", err)
		} else {
			fmt.Println("\nContent copied to clipboard.")
		}
	}

	return nil
}

// renderContent renders text content as markdown for the terminal,
// falling back to the raw text if rendering fails.
func renderContent(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
