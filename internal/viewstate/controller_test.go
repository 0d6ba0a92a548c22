package viewstate

import (
	"reflect"
	"testing"

	"github.com/rebeliceyang/lazydeck/internal/collection"
	"github.com/rebeliceyang/lazydeck/internal/models"
)

func testCollection() *collection.Collection {
	cells := &models.Deck{Id: "2", Name: "Cells", FullPath: "Bio::Cells", Children: []*models.Deck{}}
	bio := &models.Deck{Id: "1", Name: "Bio", FullPath: "Bio"}
	bio.AddChild(cells)

	return &collection.Collection{
		Decks: []*models.Deck{bio},
		Cards: []models.Card{
			{DeckId: "1", FrontClean: "Mitochondria produce ATP", BackClean: "powerhouse"},
			{DeckId: "2", FrontClean: "Ribosome", BackClean: "protein synthesis"},
		},
	}
}

func TestController_EmptyStateIsTotal(t *testing.T) {
	c := New()

	if got := c.Displayed(); len(got) != 0 {
		t.Errorf("expected no cards before a collection is set, got %v", got)
	}

	// Transitions on an empty controller must not panic and must stick
	c.SelectDeck("Bio")
	c.SetQuery("mito")

	if c.SelectedPath() != "Bio" || c.Query() != "mito" {
		t.Errorf("selection/query lost: %q %q", c.SelectedPath(), c.Query())
	}
	if _, ok := c.CardAt(0); ok {
		t.Error("CardAt must miss on an empty controller")
	}
}

func TestController_SetCollectionShowsEverything(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())

	if len(c.Displayed()) != 2 {
		t.Fatalf("expected 2 displayed cards, got %d", len(c.Displayed()))
	}
	if c.Index() == nil {
		t.Fatal("expected an index after SetCollection")
	}
	if c.Index().AllCards != 2 {
		t.Errorf("expected AllCards 2, got %d", c.Index().AllCards)
	}
}

func TestController_SelectDeckRecomputes(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())

	c.SelectDeck("Bio::Cells")
	if len(c.Displayed()) != 1 || c.Displayed()[0].DeckId != "2" {
		t.Errorf("expected only the Cells card, got %v", c.Displayed())
	}

	// Empty path returns to the full collection
	c.SelectDeck("")
	if len(c.Displayed()) != 2 {
		t.Errorf("expected full collection after clearing scope, got %v", c.Displayed())
	}
}

func TestController_SetQueryTrimsAndRecomputes(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())

	c.SetQuery("  mito  ")
	if c.Query() != "mito" {
		t.Errorf("expected trimmed query, got %q", c.Query())
	}
	if len(c.Displayed()) != 1 || c.Displayed()[0].DeckId != "1" {
		t.Errorf("expected only the mitochondria card, got %v", c.Displayed())
	}

	c.SetQuery("")
	if len(c.Displayed()) != 2 {
		t.Errorf("expected full collection after clearing query, got %v", c.Displayed())
	}
}

func TestController_TransitionsAreIdempotent(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())
	c.SelectDeck("Bio")
	c.SetQuery("mito")

	once := c.Displayed()
	c.SelectDeck("Bio")
	c.SetQuery("mito")
	twice := c.Displayed()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeating the same transitions changed the result: %v vs %v", once, twice)
	}
}

func TestController_SelectionSurvivesReload(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())
	c.SelectDeck("Bio::Cells")
	c.SetQuery("ribo")

	// A fresh document arrives from the watcher
	c.SetCollection(testCollection())

	if c.SelectedPath() != "Bio::Cells" || c.Query() != "ribo" {
		t.Errorf("selection/query did not survive reload: %q %q", c.SelectedPath(), c.Query())
	}
	if len(c.Displayed()) != 1 || c.Displayed()[0].DeckId != "2" {
		t.Errorf("expected recomputed Cells card after reload, got %v", c.Displayed())
	}
}

func TestController_NilCollectionClears(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())
	c.SetCollection(nil)

	if c.Index() != nil {
		t.Error("expected nil index after clearing")
	}
	if len(c.Displayed()) != 0 {
		t.Errorf("expected no displayed cards after clearing, got %v", c.Displayed())
	}
}

func TestController_CardAt(t *testing.T) {
	c := New()
	c.SetCollection(testCollection())

	card, ok := c.CardAt(1)
	if !ok || card.DeckId != "2" {
		t.Errorf("CardAt(1) = %v, %v", card, ok)
	}
	if _, ok := c.CardAt(-1); ok {
		t.Error("CardAt(-1) must miss")
	}
	if _, ok := c.CardAt(2); ok {
		t.Error("CardAt past the end must miss")
	}
}
