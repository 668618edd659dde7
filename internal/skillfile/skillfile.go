// Package skillfile parses skill drafts from markdown files with YAML
// frontmatter, so skills can be authored in an editor and imported with
// `skilllet create --from-file`.
package skillfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/skilllet/skilllet/internal/models"
)

// Parser parses skill markdown files and extracts metadata and content.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a parser with frontmatter support.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Parser{md: md}
}

// ParseFile reads and parses a skill draft from the given path.
func (p *Parser) ParseFile(path string) (models.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Draft{}, fmt.Errorf("read skill file: %w", err)
	}
	return p.Parse(string(data))
}

// Parse extracts a skill draft from markdown content. Frontmatter supplies
// the metadata fields; the body (everything after the frontmatter block)
// becomes the skill content. Missing title falls back to the first heading;
// missing type defaults to text.
func (p *Parser) Parse(content string) (models.Draft, error) {
	var buf bytes.Buffer
	context := parser.NewContext()

	if err := p.md.Convert([]byte(content), &buf, parser.WithContext(context)); err != nil {
		return models.Draft{}, fmt.Errorf("parse markdown: %w", err)
	}

	frontmatter := meta.Get(context)

	draft := models.Draft{
		Type:    models.TypeText,
		Content: stripFrontmatter(content),
	}

	if title, ok := frontmatter["title"].(string); ok && title != "" {
		draft.Title = strings.TrimSpace(title)
	} else {
		draft.Title = extractFirstHeading(content)
	}

	if desc, ok := frontmatter["description"].(string); ok {
		draft.Description = strings.TrimSpace(desc)
	}
	if category, ok := frontmatter["category"].(string); ok {
		draft.Category = strings.TrimSpace(category)
	}
	if author, ok := frontmatter["author"].(string); ok {
		draft.Author = strings.TrimSpace(author)
	}
	if thumb, ok := frontmatter["thumbnail"].(string); ok {
		draft.Thumbnail = strings.TrimSpace(thumb)
	}
	if t, ok := frontmatter["type"].(string); ok && t != "" {
		draft.Type = strings.ToLower(strings.TrimSpace(t))
	}
	if minutes, ok := toInt(frontmatter["estimated_time"]); ok {
		draft.EstimatedTime = minutes
	}
	draft.Tags = models.NormalizeTags(toStrings(frontmatter["tags"]))

	return draft, nil
}

// toInt handles the numeric types goldmark-meta may produce from YAML.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// toStrings handles the list types goldmark-meta may produce from YAML.
func toStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// extractFirstHeading finds the first H1 or H2 heading in the markdown.
func extractFirstHeading(content string) string {
	inFrontmatter := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "---" {
			inFrontmatter = !inFrontmatter
			continue
		}
		if inFrontmatter {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
		if strings.HasPrefix(line, "## ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "## "))
		}
	}
	return ""
}

// stripFrontmatter returns the markdown body without the leading YAML
// frontmatter block.
func stripFrontmatter(content string) string {
	trimmed := strings.TrimLeft(content, "\n")
	if !strings.HasPrefix(trimmed, "---") {
		return strings.TrimSpace(content)
	}
	rest := trimmed[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return strings.TrimSpace(content)
	}
	body := rest[idx+len("\n---"):]
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	}
	return strings.TrimSpace(body)
}
