package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

// ErrorOverlay displays an error message centered over the UI
type ErrorOverlay struct {
	Title   string
	Message string
	Theme   theme.Theme
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Theme: th}
}

// SetError sets the error to display
func (e *ErrorOverlay) SetError(title, message string) {
	e.Title = title
	e.Message = message
}

// View renders the overlay
func (e *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(e.Theme.Error)

	messageStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground).
		Width(56)

	hintStyle := lipgloss.NewStyle().Faint(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(60)

	content := titleStyle.Render(e.Title) + "\n\n" +
		messageStyle.Render(e.Message) + "\n\n" +
		hintStyle.Render("Press Esc or Enter to dismiss")

	return boxStyle.Render(content)
}
