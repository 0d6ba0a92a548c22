package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/deckindex"
	"github.com/rebeliceyang/lazydeck/internal/models"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

// CardSelectedMsg is sent when a card is chosen for inspection (Enter key).
// Index is the position within the full displayed set.
type CardSelectedMsg struct {
	Index int
}

// CardList renders the displayed card set in the right panel. The filter
// engine hands over the full matching set; this component caps how many
// rows are rendered, which is purely a presentation concern.
type CardList struct {
	Cards       []models.Card
	Index       *deckindex.Index
	MaxVisible  int // render cap; 0 means no cap
	SelectedRow int
	Width       int
	Height      int
	Theme       theme.Theme
	ScrollOffset int
}

// NewCardList creates a new card list component
func NewCardList(th theme.Theme, maxVisible int) *CardList {
	return &CardList{
		MaxVisible: maxVisible,
		Width:      60,
		Height:     20,
		Theme:      th,
	}
}

// SetCards replaces the displayed set and resets the cursor
func (cl *CardList) SetCards(cards []models.Card, idx *deckindex.Index) {
	cl.Cards = cards
	cl.Index = idx
	cl.SelectedRow = 0
	cl.ScrollOffset = 0
}

// visibleCount returns how many cards are actually rendered
func (cl *CardList) visibleCount() int {
	n := len(cl.Cards)
	if cl.MaxVisible > 0 && n > cl.MaxVisible {
		n = cl.MaxVisible
	}
	return n
}

// Footer describes the cap for the panel footer, empty when nothing is cut
func (cl *CardList) Footer() string {
	if n := cl.visibleCount(); n < len(cl.Cards) {
		return fmt.Sprintf("Showing %d of %d cards", n, len(cl.Cards))
	}
	return ""
}

// Update handles keyboard input for list navigation
func (cl *CardList) Update(msg tea.KeyMsg) (*CardList, tea.Cmd) {
	n := cl.visibleCount()
	if n == 0 {
		return cl, nil
	}

	var cmd tea.Cmd

	switch msg.String() {
	case "up", "k":
		if cl.SelectedRow > 0 {
			cl.SelectedRow--
		}

	case "down", "j":
		if cl.SelectedRow < n-1 {
			cl.SelectedRow++
		}

	case "g":
		cl.SelectedRow = 0
		cl.ScrollOffset = 0

	case "G":
		cl.SelectedRow = n - 1

	case "ctrl+u":
		cl.SelectedRow -= cl.pageSize()
		if cl.SelectedRow < 0 {
			cl.SelectedRow = 0
		}

	case "ctrl+d":
		cl.SelectedRow += cl.pageSize()
		if cl.SelectedRow > n-1 {
			cl.SelectedRow = n - 1
		}

	case "enter":
		row := cl.SelectedRow
		cmd = func() tea.Msg {
			return CardSelectedMsg{Index: row}
		}
	}

	return cl, cmd
}

// View renders the card list as a string
func (cl *CardList) View() string {
	n := cl.visibleCount()
	if n == 0 {
		return cl.emptyState()
	}

	if cl.SelectedRow < 0 {
		cl.SelectedRow = 0
	}
	if cl.SelectedRow >= n {
		cl.SelectedRow = n - 1
	}

	viewHeight := cl.pageSize()
	cl.adjustScrollOffset(n, viewHeight)

	startIdx := cl.ScrollOffset
	endIdx := cl.ScrollOffset + viewHeight
	if endIdx > n {
		endIdx = n
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, cl.renderRow(cl.Cards[i], i == cl.SelectedRow))
	}

	for len(lines) < viewHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (cl *CardList) pageSize() int {
	// Subtract 2 for borders, 2 for title/footer
	h := cl.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// renderRow renders one card row: deck name, then the card's clean front
func (cl *CardList) renderRow(card models.Card, selected bool) string {
	deckName := "?"
	if cl.Index != nil {
		if deck := cl.Index.Deck(card.DeckId); deck != nil {
			deckName = deck.Name
		}
	}

	front := card.FrontClean
	if front == "" {
		front = card.Front
	}
	front = strings.Join(strings.Fields(front), " ")

	dimStyle := lipgloss.NewStyle().Foreground(cl.Theme.Comment)
	content := dimStyle.Render(deckName) + " │ " + front

	maxWidth := cl.Width - 2
	if maxWidth < 1 {
		maxWidth = 1
	}

	var style lipgloss.Style
	if selected {
		style = lipgloss.NewStyle().
			Background(cl.Theme.Selection).
			Foreground(cl.Theme.Foreground).
			Bold(true).
			Width(maxWidth).
			MaxHeight(1)
	} else {
		style = lipgloss.NewStyle().
			Foreground(cl.Theme.Foreground).
			Width(maxWidth).
			MaxHeight(1)
	}

	return style.Render(content)
}

// emptyState returns the empty state view
func (cl *CardList) emptyState() string {
	style := lipgloss.NewStyle().
		Foreground(cl.Theme.Comment).
		Italic(true).
		Width(cl.Width - 2).
		Align(lipgloss.Center)

	return style.Render("No cards match")
}

// adjustScrollOffset adjusts the scroll offset to keep the cursor visible
func (cl *CardList) adjustScrollOffset(totalRows, viewHeight int) {
	if cl.SelectedRow < cl.ScrollOffset {
		cl.ScrollOffset = cl.SelectedRow
	}
	if cl.SelectedRow >= cl.ScrollOffset+viewHeight {
		cl.ScrollOffset = cl.SelectedRow - viewHeight + 1
	}

	if cl.ScrollOffset < 0 {
		cl.ScrollOffset = 0
	}
	maxScroll := totalRows - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if cl.ScrollOffset > maxScroll {
		cl.ScrollOffset = maxScroll
	}
}
