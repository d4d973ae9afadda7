package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shellmarks/shellmarks/internal/bookmark"
)

// item adapts a bookmark to the list component
type item struct {
	mark bookmark.Bookmark
}

func (i item) Title() string       { return i.mark.Alias }
func (i item) Description() string { return i.mark.Path }
func (i item) FilterValue() string { return i.mark.Alias + " " + i.mark.Path }

// Model is the Bubbletea model for the interactive bookmark browser.
// Enter selects the highlighted bookmark; the chosen path is exposed via
// Choice so the command layer can print it to stdout for shell capture.
type Model struct {
	list     list.Model
	choice   string
	quitting bool
}

// NewModel creates a browser over the given bookmarks, in file order
func NewModel(marks []bookmark.Bookmark) Model {
	items := make([]list.Item, 0, len(marks))
	for _, m := range marks {
		items = append(items, item{mark: m})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedTitleStyle
	delegate.Styles.SelectedDesc = SelectedDescStyle

	l := list.New(items, delegate, 0, 0)
	l.Title = "bookmarks"
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)

	return Model{list: l}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := AppStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// While the filter input is active, every key belongs to it
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.mark.Path
			}
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return AppStyle.Render(m.list.View())
}

// Choice returns the path selected with Enter, or "" if the browser was
// cancelled
func (m Model) Choice() string {
	return m.choice
}
