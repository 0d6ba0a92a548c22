// Package deckindex builds the flat lookup and card-count aggregation
// over a deck forest. Counts are derived wholesale from the full card
// collection; they are never patched incrementally.
package deckindex

import (
	"github.com/rebeliceyang/lazydeck/internal/models"
)

// Index is the derived view over a deck forest: flat lookups by id and
// by full path, plus per-deck direct and total card counts written onto
// the decks themselves.
type Index struct {
	Roots  []*models.Deck
	ById   map[string]*models.Deck
	ByPath map[string]*models.Deck

	// AllCards is the size of the whole card collection, including cards
	// whose deckId references no indexed deck
	AllCards int
}

// Build indexes the forest and computes card counts. Traversal uses an
// explicit stack so arbitrarily deep input cannot exhaust the call stack.
// Orphan decks (never referenced by a card) simply carry zero counts;
// cards with an unknown deckId are uncounted, not rejected.
func Build(decks []*models.Deck, cards []models.Card) *Index {
	idx := &Index{
		Roots:    decks,
		ById:     make(map[string]*models.Deck),
		ByPath:   make(map[string]*models.Deck),
		AllCards: len(cards),
	}

	// Pre-order walk populating the flat lookups. preorder keeps the
	// visit order so totals can be folded bottom-up afterwards.
	preorder := make([]*models.Deck, 0, len(decks))
	stack := make([]*models.Deck, 0, len(decks))
	for i := len(decks) - 1; i >= 0; i-- {
		if decks[i] != nil {
			stack = append(stack, decks[i])
		}
	}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx.ById[d.Id] = d
		idx.ByPath[d.FullPath] = d
		preorder = append(preorder, d)

		for i := len(d.Children) - 1; i >= 0; i-- {
			if d.Children[i] != nil {
				stack = append(stack, d.Children[i])
			}
		}
	}

	// Histogram of direct card ownership
	counts := make(map[string]int)
	for _, card := range cards {
		if _, ok := idx.ById[card.DeckId]; ok {
			counts[card.DeckId]++
		}
	}

	// In pre-order every parent precedes its children, so walking the
	// list backwards sees children before parents: totals fold up in
	// one pass.
	for i := len(preorder) - 1; i >= 0; i-- {
		d := preorder[i]
		d.CardCount = counts[d.Id]
		d.TotalCards = d.CardCount
		for _, child := range d.Children {
			d.TotalCards += child.TotalCards
		}
	}

	return idx
}

// Deck returns the deck with the given id, or nil
func (idx *Index) Deck(id string) *models.Deck {
	return idx.ById[id]
}

// DeckByPath returns the deck with the given full path, or nil
func (idx *Index) DeckByPath(path string) *models.Deck {
	return idx.ByPath[path]
}
