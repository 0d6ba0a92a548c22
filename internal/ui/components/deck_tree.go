package components

// DeckTree renders the hierarchical deck forest with keyboard navigation,
// expand/collapse, and viewport scrolling. A synthetic "All Cards" row is
// pinned above the forest; it is never part of the indexed tree and
// selecting it clears deck filtering.

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/models"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

// DeckSelectedMsg is sent when a deck is selected (Enter key).
// Path is empty for the "All Cards" row.
type DeckSelectedMsg struct {
	Path string
	Name string
}

// DeckTree is the navigation component for the deck forest
type DeckTree struct {
	Roots        []*models.Deck
	AllCards     int // total card count shown on the "All Cards" row
	SelectedPath string
	CursorIndex  int
	Width        int
	Height       int
	Theme        theme.Theme
	ScrollOffset int
}

// NewDeckTree creates a new deck tree component
func NewDeckTree(th theme.Theme) *DeckTree {
	return &DeckTree{
		Width:  40,
		Height: 20,
		Theme:  th,
	}
}

// SetForest replaces the rendered forest and resets the viewport
func (dt *DeckTree) SetForest(roots []*models.Deck, allCards int) {
	dt.Roots = roots
	dt.AllCards = allCards
	dt.CursorIndex = 0
	dt.ScrollOffset = 0
}

// rows returns the renderable rows: the pinned "All Cards" entry followed
// by the visible decks. A nil deck marks the pinned row.
func (dt *DeckTree) rows() []*models.Deck {
	visible := models.FlattenVisible(dt.Roots)
	rows := make([]*models.Deck, 0, len(visible)+1)
	rows = append(rows, nil)
	rows = append(rows, visible...)
	return rows
}

// View renders the tree as a string
func (dt *DeckTree) View() string {
	if len(dt.Roots) == 0 {
		return dt.emptyState()
	}

	rows := dt.rows()

	if dt.CursorIndex < 0 {
		dt.CursorIndex = 0
	}
	if dt.CursorIndex >= len(rows) {
		dt.CursorIndex = len(rows) - 1
	}

	// Subtract 2 for borders, 2 for title/help
	viewHeight := dt.Height - 4
	if viewHeight < 1 {
		viewHeight = 1
	}

	dt.adjustScrollOffset(len(rows), viewHeight)

	startIdx := dt.ScrollOffset
	endIdx := dt.ScrollOffset + viewHeight
	if endIdx > len(rows) {
		endIdx = len(rows)
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, dt.renderRow(rows[i], i == dt.CursorIndex))
	}

	for len(lines) < viewHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// Update handles keyboard input for tree navigation
func (dt *DeckTree) Update(msg tea.KeyMsg) (*DeckTree, tea.Cmd) {
	rows := dt.rows()
	if len(rows) == 0 {
		return dt, nil
	}

	var cmd tea.Cmd

	switch msg.String() {
	case "up", "k":
		if dt.CursorIndex > 0 {
			dt.CursorIndex--
		}

	case "down", "j":
		if dt.CursorIndex < len(rows)-1 {
			dt.CursorIndex++
		}

	case "g":
		dt.CursorIndex = 0
		dt.ScrollOffset = 0

	case "G":
		dt.CursorIndex = len(rows) - 1

	case "right", "l", " ":
		if deck := rows[dt.CursorIndex]; deck != nil {
			deck.Toggle()
		}

	case "left", "h":
		deck := rows[dt.CursorIndex]
		if deck == nil {
			break
		}
		if deck.Expanded {
			deck.Toggle()
		} else if deck.Parent != nil {
			// Move to parent if collapsed
			if parentIndex := indexOf(rows, deck.Parent); parentIndex >= 0 {
				dt.CursorIndex = parentIndex
			}
		}

	case "enter":
		deck := rows[dt.CursorIndex]
		if deck == nil {
			cmd = func() tea.Msg {
				return DeckSelectedMsg{Path: "", Name: "All Cards"}
			}
		} else {
			selected := deck
			cmd = func() tea.Msg {
				return DeckSelectedMsg{Path: selected.FullPath, Name: selected.Name}
			}
		}
	}

	return dt, cmd
}

// GetCurrentDeck returns the deck under the cursor, or nil on the
// "All Cards" row
func (dt *DeckTree) GetCurrentDeck() *models.Deck {
	rows := dt.rows()
	if dt.CursorIndex < 0 || dt.CursorIndex >= len(rows) {
		return nil
	}
	return rows[dt.CursorIndex]
}

// renderRow renders a single row with appropriate styling
func (dt *DeckTree) renderRow(deck *models.Deck, underCursor bool) string {
	var content string

	dimStyle := lipgloss.NewStyle().Foreground(dt.Theme.Comment)

	if deck == nil {
		icon := "●"
		content = fmt.Sprintf("%s All Cards %s", icon, dimStyle.Render(fmt.Sprintf("(%d)", dt.AllCards)))
		if dt.SelectedPath == "" {
			content = lipgloss.NewStyle().Foreground(dt.Theme.Success).Render(icon) + content[len(icon):]
		}
	} else {
		indent := strings.Repeat("  ", deck.Depth())
		icon := dt.getDeckIcon(deck)
		count := dimStyle.Render(fmt.Sprintf("(%d)", deck.TotalCards))
		marker := ""
		if deck.FullPath == dt.SelectedPath {
			marker = " " + lipgloss.NewStyle().Foreground(dt.Theme.Success).Render("◂")
		}
		content = fmt.Sprintf("%s%s %s %s%s", indent, icon, deck.Name, count, marker)
	}

	maxWidth := dt.Width - 2
	if maxWidth < 1 {
		maxWidth = 1
	}

	var style lipgloss.Style
	if underCursor {
		style = lipgloss.NewStyle().
			Background(dt.Theme.Selection).
			Foreground(dt.Theme.Foreground).
			Bold(true).
			Width(maxWidth)
	} else {
		style = lipgloss.NewStyle().
			Foreground(dt.Theme.Foreground).
			Width(maxWidth)
	}

	return style.Render(content)
}

// getDeckIcon returns the appropriate icon for a deck
func (dt *DeckTree) getDeckIcon(deck *models.Deck) string {
	if len(deck.Children) == 0 {
		return "•"
	}
	if deck.Expanded {
		return "▾"
	}
	return "▸"
}

// adjustScrollOffset adjusts the scroll offset to keep the cursor visible
func (dt *DeckTree) adjustScrollOffset(totalRows, viewHeight int) {
	if dt.CursorIndex < dt.ScrollOffset {
		dt.ScrollOffset = dt.CursorIndex
	}
	if dt.CursorIndex >= dt.ScrollOffset+viewHeight {
		dt.ScrollOffset = dt.CursorIndex - viewHeight + 1
	}

	if dt.ScrollOffset < 0 {
		dt.ScrollOffset = 0
	}
	maxScroll := totalRows - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if dt.ScrollOffset > maxScroll {
		dt.ScrollOffset = maxScroll
	}
}

// emptyState returns the empty state view
func (dt *DeckTree) emptyState() string {
	style := lipgloss.NewStyle().
		Foreground(dt.Theme.Comment).
		Italic(true).
		Width(dt.Width - 2).
		Align(lipgloss.Center)

	return style.Render("No collection loaded")
}

// indexOf finds the index of a deck in the row list
func indexOf(rows []*models.Deck, target *models.Deck) int {
	for i, deck := range rows {
		if deck == target {
			return i
		}
	}
	return -1
}
