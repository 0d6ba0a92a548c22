package collection

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rebeliceyang/lazydeck/internal/models"
)

// MaxDeckDepth caps deck nesting. The converter produces trees at most a
// few tens of levels deep; anything deeper is truncated rather than risking
// unbounded recursion in rendering code.
const MaxDeckDepth = 128

// Collection is the input document produced by the external converter:
// a deck forest plus a flat card list.
type Collection struct {
	Decks []*models.Deck `json:"decks"`
	Cards []models.Card  `json:"cards"`
}

// Load reads and parses a collection document from disk.
// A missing or unreadable file is fatal to producing a view (the caller
// shows an empty state), never fatal to the process.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	return Parse(data)
}

// Parse decodes a collection document and normalizes it. The converter is
// trusted, so malformed fields are defaulted locally instead of rejected:
// a missing children list becomes empty, missing clean-text variants stay
// empty strings.
func Parse(data []byte) (*Collection, error) {
	var col Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}

	if col.Decks == nil {
		col.Decks = make([]*models.Deck, 0)
	}
	if col.Cards == nil {
		col.Cards = make([]models.Card, 0)
	}

	normalizeDecks(col.Decks)

	return &col, nil
}

// normalizeDecks walks the forest iteratively, defaulting missing children
// lists, wiring parent pointers, and truncating past MaxDeckDepth.
func normalizeDecks(roots []*models.Deck) {
	type frame struct {
		deck  *models.Deck
		depth int
	}

	stack := make([]frame, 0, len(roots))
	for _, root := range roots {
		if root != nil {
			stack = append(stack, frame{root, 0})
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.deck.Children == nil {
			f.deck.Children = make([]*models.Deck, 0)
		}

		// Drop nil entries and anything past the depth cap
		children := f.deck.Children[:0]
		for _, child := range f.deck.Children {
			if child == nil {
				continue
			}
			if f.depth+1 >= MaxDeckDepth {
				continue
			}
			child.Parent = f.deck
			children = append(children, child)
			stack = append(stack, frame{child, f.depth + 1})
		}
		f.deck.Children = children
	}
}
