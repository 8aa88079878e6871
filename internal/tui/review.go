package tui

import (
	"strings"

	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReviewModel lets the user walk a section's entries and delete the ones
// added by mistake before rendering.
type ReviewModel struct {
	Section *docstring.Section
	List    list.Model
	Width   int
	Height  int
	Done    bool
	Aborted bool
}

type entryItem struct {
	name string
	desc string
}

func (i entryItem) Title() string {
	if i.name == "" {
		return "(no name)"
	}
	return i.name
}

func (i entryItem) Description() string {
	if i.desc == "" {
		return "(no description)"
	}
	first, _, _ := strings.Cut(i.desc, "\n")
	return first
}

func (i entryItem) FilterValue() string { return i.name }

func NewReviewModel(section *docstring.Section) ReviewModel {
	l := list.New(entryItems(section), list.NewDefaultDelegate(), 0, 0)
	l.Title = section.Label()
	l.Styles.Title = StyleTitle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return ReviewModel{
		Section: section,
		List:    l,
	}
}

func entryItems(section *docstring.Section) []list.Item {
	entries := section.Collect()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{name: e.Name, desc: e.Description}
	}
	return items
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "d", "delete":
			if err := m.Section.RemoveEntry(m.List.Index()); err == nil {
				cmd = m.List.SetItems(entryItems(m.Section))
			}
			return m, cmd

		case "enter", "q":
			m.Done = true
			return m, tea.Quit

		case "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width-4, msg.Height-6)
	}

	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m ReviewModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		StyleHeader.Render("REVIEW "+strings.ToUpper(m.Section.Label())),
		StyleSubtitle.Render("d delete entry · enter continue · esc abort"),
		StyleCard.Render(m.List.View()),
	)
}
