package models

import "strings"

// PathSeparator is the reserved sequence that separates nesting levels in
// a deck's full path, e.g. "Biology::Cells::Organelles".
const PathSeparator = "::"

// Deck represents a node in the hierarchical deck forest
type Deck struct {
	Id       string  `json:"id"`       // Unique identifier across the whole forest
	Name     string  `json:"name"`     // Display text for this level only
	FullPath string  `json:"fullPath"` // Full hierarchical path using PathSeparator
	Children []*Deck `json:"children"` // Child decks, owned by this deck

	Parent   *Deck `json:"-"` // Parent deck (nil for roots), set after load
	Expanded bool  `json:"-"` // Whether the node is expanded in the tree view

	CardCount  int `json:"-"` // Cards owned directly by this deck (derived)
	TotalCards int `json:"-"` // Direct cards plus all descendant cards (derived)
}

// AddChild adds a child deck to this deck
func (d *Deck) AddChild(child *Deck) {
	child.Parent = d
	d.Children = append(d.Children, child)
}

// Toggle toggles the expanded state of the deck.
// Leaf decks have nothing to expand and stay collapsed.
func (d *Deck) Toggle() {
	if len(d.Children) > 0 {
		d.Expanded = !d.Expanded
	}
}

// Depth returns the depth of this deck in the forest (roots = 0)
func (d *Deck) Depth() int {
	depth := 0
	current := d.Parent

	for current != nil {
		depth++
		current = current.Parent
	}

	return depth
}

// IsAncestorOf checks if this deck is an ancestor of the given deck
func (d *Deck) IsAncestorOf(other *Deck) bool {
	current := other.Parent

	for current != nil {
		if current == d {
			return true
		}
		current = current.Parent
	}

	return false
}

// InScope reports whether this deck falls inside the subtree rooted at the
// deck with the given full path. An empty scope matches every deck. The
// separator suffix check is what keeps "Foo2" out of scope "Foo".
func (d *Deck) InScope(scopePath string) bool {
	if scopePath == "" {
		return true
	}
	return d.FullPath == scopePath || strings.HasPrefix(d.FullPath, scopePath+PathSeparator)
}

// FlattenVisible returns the decks of a forest that should be rendered,
// in display order, honoring each deck's expansion state.
func FlattenVisible(roots []*Deck) []*Deck {
	result := make([]*Deck, 0)

	for _, root := range roots {
		result = appendVisible(result, root)
	}

	return result
}

func appendVisible(result []*Deck, d *Deck) []*Deck {
	result = append(result, d)

	if d.Expanded {
		for _, child := range d.Children {
			result = appendVisible(result, child)
		}
	}

	return result
}

// Card is an atomic flashcard record. Cards are immutable once loaded;
// their identity is the (position, deckId) pair within the collection.
type Card struct {
	DeckId     string `json:"deckId"` // Owning deck id; unknown ids are uncounted, not rejected
	Front      string `json:"front"`  // Raw markup, may contain math-delimited spans
	Back       string `json:"back"`   // Raw markup
	FrontClean string `json:"frontClean"` // Markup-stripped text used for search matching
	BackClean  string `json:"backClean"`
}

// SearchText returns the text a search query is matched against
func (c Card) SearchText() string {
	return strings.ToLower(c.FrontClean + " " + c.BackClean)
}
