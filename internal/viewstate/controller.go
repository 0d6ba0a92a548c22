// Package viewstate holds the current selection (deck scope, search
// query) and the derived displayed-card list. There is no ambient
// singleton: the controller is an owned value and every transition is a
// full recompute against the authoritative collection, so the displayed
// set can never drift from the inputs.
package viewstate

import (
	"strings"

	"github.com/rebeliceyang/lazydeck/internal/cardfilter"
	"github.com/rebeliceyang/lazydeck/internal/collection"
	"github.com/rebeliceyang/lazydeck/internal/deckindex"
	"github.com/rebeliceyang/lazydeck/internal/models"
)

// Controller owns the view state. All methods are total: empty
// collections, absent decks, and empty queries degrade to "no filter"
// rather than failing.
type Controller struct {
	col   *collection.Collection
	index *deckindex.Index

	selectedPath string
	query        string
	displayed    []models.Card
}

// New creates a controller with no collection loaded
func New() *Controller {
	return &Controller{}
}

// SetCollection replaces the backing collection, rebuilds the deck index,
// and recomputes the displayed set. Passing nil clears the view (used for
// load failure). Selection and query survive a reload.
func (c *Controller) SetCollection(col *collection.Collection) {
	c.col = col
	if col != nil {
		c.index = deckindex.Build(col.Decks, col.Cards)
	} else {
		c.index = nil
	}
	c.recompute()
}

// Index returns the current deck index, or nil when nothing is loaded
func (c *Controller) Index() *deckindex.Index {
	return c.index
}

// SelectDeck sets the deck scope by full path and recomputes. An empty
// path is the synthetic "all cards" selection and clears deck filtering.
func (c *Controller) SelectDeck(path string) {
	c.selectedPath = path
	c.recompute()
}

// SetQuery sets the search query (trimmed) and recomputes
func (c *Controller) SetQuery(text string) {
	c.query = strings.TrimSpace(text)
	c.recompute()
}

// SelectedPath returns the current deck scope ("" = all cards)
func (c *Controller) SelectedPath() string {
	return c.selectedPath
}

// Query returns the current search query
func (c *Controller) Query() string {
	return c.query
}

// Displayed returns the current displayed-card list. The slice is the
// recompute result; callers must not mutate it.
func (c *Controller) Displayed() []models.Card {
	return c.displayed
}

// CardAt returns the displayed card at position i
func (c *Controller) CardAt(i int) (models.Card, bool) {
	if i < 0 || i >= len(c.displayed) {
		return models.Card{}, false
	}
	return c.displayed[i], true
}

func (c *Controller) recompute() {
	if c.col == nil {
		c.displayed = nil
		return
	}
	c.displayed = cardfilter.Filter(c.col.Cards, c.index, c.selectedPath, c.query)
}
