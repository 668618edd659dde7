package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/skillfile"
)

var (
	createTitle       string
	createDescription string
	createCategory    string
	createMinutes     int
	createType        string
	createTags        []string
	createContent     string
	createThumbnail   string
	createFromFile    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new skill",
	Long: `Create a new skill and prepend it to the catalog.

Fields can be given as flags, or loaded from a markdown file with YAML
frontmatter via --from-file (frontmatter keys: title, description,
category, estimated_time, type, tags, thumbnail; the body becomes the
skill content).

The catalog itself is session-scoped: created skills live until the
process exits.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "skill title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "short description")
	createCmd.Flags().StringVar(&createCategory, "category", "", "category (e.g. Tech, Health)")
	createCmd.Flags().IntVar(&createMinutes, "time", 5, "estimated learning time in minutes")
	createCmd.Flags().StringVar(&createType, "type", models.TypeText, "content type: video|text|infographic")
	createCmd.Flags().StringSliceVar(&createTags, "tag", nil, "tag (repeatable)")
	createCmd.Flags().StringVar(&createContent, "content", "", "skill content or URL")
	createCmd.Flags().StringVar(&createThumbnail, "thumbnail", "", "thumbnail URL")
	createCmd.Flags().StringVarP(&createFromFile, "from-file", "f", "", "load the skill from a markdown file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var draft models.Draft
	if createFromFile != "" {
		draft, err = skillfile.NewParser().ParseFile(createFromFile)
		if err != nil {
			return err
		}
	}

	// Flags override file-provided fields.
	if createTitle != "" {
		draft.Title = createTitle
	}
	if createDescription != "" {
		draft.Description = createDescription
	}
	if createCategory != "" {
		draft.Category = createCategory
	}
	if cmd.Flags().Changed("time") || draft.EstimatedTime == 0 {
		draft.EstimatedTime = createMinutes
	}
	if cmd.Flags().Changed("type") || draft.Type == "" {
		draft.Type = createType
	}
	if len(createTags) > 0 {
		draft.Tags = createTags
	}
	if createContent != "" {
		draft.Content = createContent
	}
	if createThumbnail != "" {
		draft.Thumbnail = createThumbnail
	}

	if draft.Author == "" {
		if user, ok := a.store.CurrentUser(); ok {
			draft.Author = user.Username
		} else {
			draft.Author = a.cfg.DefaultAuthor
		}
	}

	skill, err := a.store.AddSkill(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created skill [%d] %s\n", skill.ID, skill.Title)
	fmt.Printf("  Category: %s\n", skill.Category)
	fmt.Printf("  Type: %s, %d min\n", skill.Type, skill.EstimatedTime)
	if len(skill.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(skill.Tags, ", "))
	}
	fmt.Println("\nNote: the catalog is session-scoped; created skills are not persisted.")
	return nil
}
