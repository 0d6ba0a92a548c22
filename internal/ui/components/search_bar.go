package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

// QueryChangedMsg is sent whenever the search text changes. The app
// debounces these before recomputing the displayed cards.
type QueryChangedMsg struct {
	Query string
}

// CloseSearchMsg is sent when search should be closed and the query cleared
type CloseSearchMsg struct{}

// SearchBar provides the card search input box
type SearchBar struct {
	Input   textinput.Model
	Theme   theme.Theme
	Width   int
	Visible bool
}

// NewSearchBar creates a new search bar
func NewSearchBar(th theme.Theme) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search cards..."
	ti.CharLimit = 256
	ti.Width = 40

	return &SearchBar{
		Input: ti,
		Theme: th,
	}
}

// Open shows the bar and focuses the input
func (s *SearchBar) Open() {
	s.Visible = true
	s.Input.Focus()
}

// Reset clears and hides the search bar
func (s *SearchBar) Reset() {
	s.Input.SetValue("")
	s.Input.Blur()
	s.Visible = false
}

// Value returns the current query text
func (s *SearchBar) Value() string {
	return s.Input.Value()
}

// Update handles messages while the bar is focused
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return CloseSearchMsg{}
			}
		}
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)

	if s.Input.Value() != before {
		query := s.Input.Value()
		return s, tea.Batch(cmd, func() tea.Msg {
			return QueryChangedMsg{Query: query}
		})
	}

	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.BorderFocused).
		Padding(0, 1).
		Width(s.Width)

	helpStyle := lipgloss.NewStyle().
		Foreground(s.Theme.Comment).
		Italic(true)

	// Reserve space for the icon
	inputWidth := s.Width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.Input.Width = inputWidth

	content := "🔍 " + s.Input.View()
	helpText := helpStyle.Render("Enter: keep filter │ Esc: clear")

	return boxStyle.Render(content + "\n" + helpText)
}
