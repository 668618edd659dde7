// Package tui implements the interactive catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/skilllet/skilllet/internal/assess"
	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/rank"
	"github.com/skilllet/skilllet/internal/store"
)

type viewMode int

const (
	modeBrowse viewMode = iota
	modeSearch
	modeDetail
)

// Model is the top-level bubbletea model for the catalog browser.
type Model struct {
	store  *store.Store
	keys   Keymap
	styles Styles

	mode     viewMode
	skills   []models.Skill
	cursor   int
	sortMode string
	catIdx   int

	search   textinput.Model
	viewport viewport.Model
	detail   models.Skill
	status   string

	width  int
	height int
}

// NewModel constructs the browser model over a shared store.
func NewModel(st *store.Store, defaultSort string) Model {
	search := textinput.New()
	search.Placeholder = "Search skills, tags, or topics..."
	search.CharLimit = 80

	if !rank.IsValidMode(defaultSort) {
		defaultSort = rank.SortTrending
	}

	m := Model{
		store:    st,
		keys:     DefaultKeymap(),
		styles:   DefaultStyles(),
		sortMode: defaultSort,
		search:   search,
		viewport: viewport.New(80, 20),
	}
	m.reload()
	return m
}

// reload recomputes the visible skill list from the store.
func (m *Model) reload() {
	m.skills = rank.Sorted(m.store.FilteredSkills(), m.sortMode)
	if m.cursor >= len(m.skills) {
		m.cursor = len(m.skills) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.skills)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Category):
		cats := m.store.Categories()
		m.catIdx = (m.catIdx + 1) % len(cats)
		m.store.SetCategory(cats[m.catIdx])
		m.cursor = 0
		m.reload()

	case key.Matches(msg, m.keys.Sort):
		modes := rank.Modes()
		for i, mode := range modes {
			if mode == m.sortMode {
				m.sortMode = modes[(i+1)%len(modes)]
				break
			}
		}
		m.reload()

	case key.Matches(msg, m.keys.Upvote):
		if sk, ok := m.selected(); ok {
			if err := m.store.UpvoteSkill(sk.ID); err == nil {
				m.status = fmt.Sprintf("Upvoted %q", sk.Title)
			}
			m.reload()
		}

	case key.Matches(msg, m.keys.Bookmark):
		if sk, ok := m.selected(); ok {
			if on, err := m.store.ToggleBookmark(sk.ID); err == nil {
				if on {
					m.status = fmt.Sprintf("Bookmarked %q", sk.Title)
				} else {
					m.status = fmt.Sprintf("Removed bookmark from %q", sk.Title)
				}
			}
		}

	case key.Matches(msg, m.keys.Complete):
		if sk, ok := m.selected(); ok {
			if err := m.store.CompleteSkill(sk.ID); err == nil {
				m.status = fmt.Sprintf("Completed %q 🎉", sk.Title)
			}
		}

	case key.Matches(msg, m.keys.Select):
		if sk, ok := m.selected(); ok {
			_ = m.store.RecordView(sk.ID)
			m.detail, _ = m.store.SkillByID(sk.ID)
			m.viewport.SetContent(m.renderDetail())
			m.viewport.GotoTop()
			m.mode = modeDetail
			m.reload()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.mode = modeBrowse
		m.search.Blur()
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
		}
		m.store.SetSearchQuery(m.search.Value())
		m.cursor = 0
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchQuery(m.search.Value())
	m.cursor = 0
	m.reload()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.mode = modeBrowse
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Upvote):
		if err := m.store.UpvoteSkill(m.detail.ID); err == nil {
			m.detail, _ = m.store.SkillByID(m.detail.ID)
			m.viewport.SetContent(m.renderDetail())
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		_, _ = m.store.ToggleBookmark(m.detail.ID)
		m.viewport.SetContent(m.renderDetail())
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		_ = m.store.CompleteSkill(m.detail.ID)
		m.viewport.SetContent(m.renderDetail())
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.detail.Content); err == nil {
			m.status = "Content copied to clipboard"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) selected() (models.Skill, bool) {
	if m.cursor < 0 || m.cursor >= len(m.skills) {
		return models.Skill{}, false
	}
	return m.skills[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("SkillLet — learn something new in 10 minutes"))
	b.WriteString("\n")

	cats := m.store.Categories()
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"Category: %s   Sort: %s   %d skills",
		cats[m.catIdx%len(cats)], m.sortMode, len(m.skills))))
	b.WriteString("\n")

	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.height - 8
	if visible < 3 {
		visible = len(m.skills)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < len(m.skills) && i < start+visible; i++ {
		sk := m.skills[i]
		marks := ""
		if m.store.IsCompleted(sk.ID) {
			marks += m.styles.BadgeDone.Render("✓")
		}
		if m.store.IsBookmarked(sk.ID) {
			marks += m.styles.BadgeMark.Render("★")
		}

		line := fmt.Sprintf("%-36s %-10s %2dm ▲%-4d %s",
			clip(sk.Title, 36), sk.Category, sk.EstimatedTime, sk.Upvotes, marks)
		if i == m.cursor {
			b.WriteString(m.styles.ListSelected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.skills) == 0 {
		b.WriteString(m.styles.Muted.Render("  No skills match your filters."))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(
		"↑/↓ move · enter open · / search · tab category · s sort · u upvote · b bookmark · c complete · q quit"))
	return b.String()
}

func (m Model) viewDetail() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.detail.Title))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s · %d min · by %s · ▲%d · 👁 %d",
		m.detail.Category, m.detail.Type, m.detail.EstimatedTime,
		m.detail.Author, m.detail.Upvotes, m.detail.Views)
	b.WriteString(m.styles.Subtitle.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(
		"esc back · u upvote · b bookmark · c complete · y copy · ↑/↓ scroll"))
	return b.String()
}

// renderDetail builds the scrollable detail body.
func (m Model) renderDetail() string {
	var b strings.Builder

	if m.detail.Description != "" {
		b.WriteString(m.detail.Description)
		b.WriteString("\n\n")
	}
	if len(m.detail.Tags) > 0 {
		b.WriteString("Tags: " + strings.Join(m.detail.Tags, ", "))
		b.WriteString("\n\n")
	}

	if tally, ok := m.store.Votes(m.detail.ID); ok {
		if level, ok := assess.AverageDifficulty(tally.Difficulty); ok {
			b.WriteString("Community difficulty: " + level + "\n")
		}
		if bucket, ok := assess.AverageTime(tally.Time); ok {
			b.WriteString("Community time estimate: " + bucket + "\n")
		}
		b.WriteString("\n")
	}

	status := []string{}
	if m.store.IsCompleted(m.detail.ID) {
		status = append(status, "completed ✓")
	}
	if m.store.IsBookmarked(m.detail.ID) {
		status = append(status, "bookmarked ★")
	}
	if len(status) > 0 {
		b.WriteString(strings.Join(status, " · "))
		b.WriteString("\n\n")
	}

	if m.detail.Type == models.TypeText {
		b.WriteString(renderMarkdown(m.detail.Content, m.viewport.Width))
	} else if m.detail.Content != "" {
		b.WriteString("Content: " + m.detail.Content)
	}
	return b.String()
}

// renderMarkdown renders markdown for terminal display, falling back to
// the raw text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

// Run starts the TUI program over a shared store.
func Run(st *store.Store, defaultSort string) error {
	p := tea.NewProgram(NewModel(st, defaultSort), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
