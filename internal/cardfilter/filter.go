// Package cardfilter selects the ordered subsequence of a card
// collection that matches the current deck scope and search query.
package cardfilter

import (
	"strings"

	"github.com/rebeliceyang/lazydeck/internal/deckindex"
	"github.com/rebeliceyang/lazydeck/internal/models"
)

// Terms splits a query into lowercase search terms. Whitespace separates
// terms and empty terms are discarded.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Filter returns the cards that pass both the deck-scope filter and the
// search filter, preserving collection order. It always recomputes from
// the full collection; results are never chained onto a previous result.
//
// An empty scopePath (the synthetic "all cards" selection) disables deck
// filtering. Otherwise a card passes iff its owning deck's full path
// equals the scope or sits below it in the subtree. An empty query passes
// all cards; a non-empty query requires every term to appear in the
// card's clean text (AND semantics).
func Filter(cards []models.Card, idx *deckindex.Index, scopePath string, query string) []models.Card {
	terms := Terms(query)

	matched := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if !inScope(card, idx, scopePath) {
			continue
		}
		if !matchesAll(card, terms) {
			continue
		}
		matched = append(matched, card)
	}

	return matched
}

func inScope(card models.Card, idx *deckindex.Index, scopePath string) bool {
	if scopePath == "" {
		return true
	}
	if idx == nil {
		return false
	}

	deck := idx.Deck(card.DeckId)
	if deck == nil {
		// Unknown owning deck: the card belongs to no scope
		return false
	}

	return deck.InScope(scopePath)
}

func matchesAll(card models.Card, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	text := card.SearchText()
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}

	return true
}
