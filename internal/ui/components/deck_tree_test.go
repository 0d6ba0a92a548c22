package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rebeliceyang/lazydeck/internal/models"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testForest() []*models.Deck {
	cells := &models.Deck{Id: "2", Name: "Cells", FullPath: "Bio::Cells", Children: []*models.Deck{}}
	genetics := &models.Deck{Id: "3", Name: "Genetics", FullPath: "Bio::Genetics", Children: []*models.Deck{}}
	bio := &models.Deck{Id: "1", Name: "Bio", FullPath: "Bio"}
	bio.AddChild(cells)
	bio.AddChild(genetics)
	chem := &models.Deck{Id: "4", Name: "Chem", FullPath: "Chem", Children: []*models.Deck{}}
	return []*models.Deck{bio, chem}
}

func newTestTree() *DeckTree {
	dt := NewDeckTree(theme.GetTheme("default"))
	dt.SetForest(testForest(), 10)
	return dt
}

func TestDeckTree_AllCardsRowPinnedFirst(t *testing.T) {
	dt := newTestTree()

	if dt.CursorIndex != 0 {
		t.Fatalf("expected cursor on the pinned row, got %d", dt.CursorIndex)
	}
	if deck := dt.GetCurrentDeck(); deck != nil {
		t.Errorf("expected nil deck for the pinned row, got %v", deck)
	}
}

func TestDeckTree_EnterOnAllCardsRow(t *testing.T) {
	dt := newTestTree()

	_, cmd := dt.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(DeckSelectedMsg)
	if !ok {
		t.Fatalf("expected DeckSelectedMsg, got %T", cmd())
	}
	if msg.Path != "" || msg.Name != "All Cards" {
		t.Errorf("expected empty path for All Cards, got %+v", msg)
	}
}

func TestDeckTree_NavigateAndSelect(t *testing.T) {
	dt := newTestTree()

	// Down past the pinned row onto Bio
	dt.Update(keyMsg("j"))
	deck := dt.GetCurrentDeck()
	if deck == nil || deck.Name != "Bio" {
		t.Fatalf("expected cursor on Bio, got %v", deck)
	}

	_, cmd := dt.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg := cmd().(DeckSelectedMsg)
	if msg.Path != "Bio" || msg.Name != "Bio" {
		t.Errorf("unexpected selection: %+v", msg)
	}
}

func TestDeckTree_CollapsedChildrenHidden(t *testing.T) {
	dt := newTestTree()

	// Collapsed Bio: rows are [All Cards, Bio, Chem]
	if got := len(dt.rows()); got != 3 {
		t.Fatalf("expected 3 rows with Bio collapsed, got %d", got)
	}

	// Expand Bio: children become visible
	dt.Update(keyMsg("j"))
	dt.Update(keyMsg("right"))
	if got := len(dt.rows()); got != 5 {
		t.Fatalf("expected 5 rows with Bio expanded, got %d", got)
	}

	dt.Update(keyMsg("j"))
	deck := dt.GetCurrentDeck()
	if deck == nil || deck.Name != "Cells" {
		t.Errorf("expected cursor on Cells after expanding, got %v", deck)
	}
}

func TestDeckTree_ToggleLeafIsNoop(t *testing.T) {
	dt := newTestTree()

	// Move to Chem (a leaf) and try to expand it
	dt.Update(keyMsg("G"))
	deck := dt.GetCurrentDeck()
	if deck == nil || deck.Name != "Chem" {
		t.Fatalf("expected cursor on Chem, got %v", deck)
	}

	dt.Update(keyMsg("right"))
	if deck.Expanded {
		t.Error("toggling a leaf must not mark it expanded")
	}
	if got := len(dt.rows()); got != 3 {
		t.Errorf("row count changed after toggling a leaf: %d", got)
	}
}

func TestDeckTree_LeftJumpsToParent(t *testing.T) {
	dt := newTestTree()

	// Expand Bio, move onto Cells (a collapsed leaf), press left
	dt.Update(keyMsg("j"))
	dt.Update(keyMsg("right"))
	dt.Update(keyMsg("j"))

	dt.Update(keyMsg("left"))
	deck := dt.GetCurrentDeck()
	if deck == nil || deck.Name != "Bio" {
		t.Errorf("expected cursor back on Bio, got %v", deck)
	}
}

func TestDeckTree_LeftCollapsesExpanded(t *testing.T) {
	dt := newTestTree()

	dt.Update(keyMsg("j"))
	dt.Update(keyMsg("right"))
	if got := len(dt.rows()); got != 5 {
		t.Fatalf("expected Bio expanded, got %d rows", got)
	}

	dt.Update(keyMsg("left"))
	if got := len(dt.rows()); got != 3 {
		t.Errorf("expected Bio collapsed again, got %d rows", got)
	}
}

func TestDeckTree_CursorBounds(t *testing.T) {
	dt := newTestTree()

	dt.Update(keyMsg("k"))
	if dt.CursorIndex != 0 {
		t.Errorf("cursor moved above the first row: %d", dt.CursorIndex)
	}

	for i := 0; i < 10; i++ {
		dt.Update(keyMsg("j"))
	}
	if dt.CursorIndex != 2 {
		t.Errorf("cursor moved past the last row: %d", dt.CursorIndex)
	}

	dt.Update(keyMsg("g"))
	if dt.CursorIndex != 0 {
		t.Errorf("g did not jump to top: %d", dt.CursorIndex)
	}
}

func TestDeckTree_SetForestResetsViewport(t *testing.T) {
	dt := newTestTree()
	dt.Update(keyMsg("G"))
	dt.ScrollOffset = 1

	dt.SetForest(testForest(), 5)
	if dt.CursorIndex != 0 || dt.ScrollOffset != 0 {
		t.Errorf("expected viewport reset, got cursor %d offset %d", dt.CursorIndex, dt.ScrollOffset)
	}
	if dt.AllCards != 5 {
		t.Errorf("expected AllCards 5, got %d", dt.AllCards)
	}
}
