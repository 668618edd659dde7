package skillfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/models"
)

const sampleSkill = `---
title: Knife Sharpening Basics
description: Keep your kitchen knives sharp with a whetstone
category: Lifestyle
author: ChefTone
type: text
estimated_time: 12
tags:
  - Cooking
  - knives
  - cooking
---

# Knife Sharpening Basics

Hold the blade at a 20 degree angle and draw it across the stone.
`

func TestParse(t *testing.T) {
	draft, err := NewParser().Parse(sampleSkill)
	require.NoError(t, err)

	assert.Equal(t, "Knife Sharpening Basics", draft.Title)
	assert.Equal(t, "Keep your kitchen knives sharp with a whetstone", draft.Description)
	assert.Equal(t, "Lifestyle", draft.Category)
	assert.Equal(t, "ChefTone", draft.Author)
	assert.Equal(t, models.TypeText, draft.Type)
	assert.Equal(t, 12, draft.EstimatedTime)
	assert.Equal(t, []string{"cooking", "knives"}, draft.Tags)
	assert.Contains(t, draft.Content, "20 degree angle")
	assert.NotContains(t, draft.Content, "estimated_time", "frontmatter stripped from body")
}

func TestParse_TitleFallsBackToHeading(t *testing.T) {
	content := `---
description: No explicit title here
---

## Morning Pages

Write three pages by hand, first thing.
`
	draft, err := NewParser().Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "Morning Pages", draft.Title)
}

func TestParse_NoFrontmatter(t *testing.T) {
	content := "# Just a Heading\n\nSome body text.\n"

	draft, err := NewParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "Just a Heading", draft.Title)
	assert.Equal(t, models.TypeText, draft.Type, "type defaults to text")
	assert.Empty(t, draft.Category)
	assert.Zero(t, draft.EstimatedTime)
	assert.Contains(t, draft.Content, "Some body text.")
}

func TestParse_TypeNormalized(t *testing.T) {
	content := `---
title: Quick Stretch
type: VIDEO
---
body
`
	draft, err := NewParser().Parse(content)
	require.NoError(t, err)
	assert.Equal(t, models.TypeVideo, draft.Type)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleSkill), 0644))

	draft, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Knife Sharpening Basics", draft.Title)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestStripFrontmatter(t *testing.T) {
	assert.Equal(t, "body", stripFrontmatter("---\nkey: value\n---\nbody"))
	assert.Equal(t, "plain text", stripFrontmatter("plain text"))
	assert.Equal(t, "---\nunterminated", stripFrontmatter("---\nunterminated"))
}
