package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/highlight"
	"github.com/rebeliceyang/lazydeck/internal/models"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

// CardModal shows a single card's front and back markup. When a search
// query is active, term occurrences are wrapped by the highlight
// formatter before display.
type CardModal struct {
	Card     models.Card
	DeckPath string
	Query    string
	Width    int
	Height   int
	Theme    theme.Theme
}

// NewCardModal creates a new card modal
func NewCardModal(th theme.Theme) *CardModal {
	return &CardModal{
		Width:  70,
		Height: 24,
		Theme:  th,
	}
}

// SetCard sets the inspected card
func (cm *CardModal) SetCard(card models.Card, deckPath, query string) {
	cm.Card = card
	cm.DeckPath = deckPath
	cm.Query = query
}

// View renders the modal
func (cm *CardModal) View() string {
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(cm.Theme.Info)

	deckStyle := lipgloss.NewStyle().
		Foreground(cm.Theme.Comment).
		Italic(true)

	bodyStyle := lipgloss.NewStyle().
		Foreground(cm.Theme.Foreground).
		Width(cm.Width - 6)

	front := cm.Card.Front
	back := cm.Card.Back
	if cm.Query != "" {
		front = highlight.Highlight(front, cm.Query)
		back = highlight.Highlight(back, cm.Query)
	}

	var b strings.Builder
	if cm.DeckPath != "" {
		b.WriteString(deckStyle.Render(cm.DeckPath))
		b.WriteString("\n\n")
	}
	b.WriteString(labelStyle.Render("Front"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(front))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Back"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(back))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("y: copy JSON │ Esc: close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cm.Theme.BorderFocused).
		Padding(1, 2).
		Width(cm.Width)

	return boxStyle.Render(b.String())
}
