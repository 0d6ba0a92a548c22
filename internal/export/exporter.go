package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	json "github.com/goccy/go-json"
	"github.com/rebeliceyang/lazydeck/internal/deckindex"
	"github.com/rebeliceyang/lazydeck/internal/models"
)

// ExportToJSON exports cards to a JSON file. The output is a verbatim
// serialization of the Card entities with no transformation.
func ExportToJSON(cards []models.Card, path string) error {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cards to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// ExportToCSV exports cards to a CSV file. The deck index resolves owning
// deck paths; cards with an unknown deckId get an empty deck column.
func ExportToCSV(cards []models.Card, idx *deckindex.Index, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Deck", "Front", "Back", "Front (clean)", "Back (clean)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, card := range cards {
		deckPath := ""
		if idx != nil {
			if deck := idx.Deck(card.DeckId); deck != nil {
				deckPath = deck.FullPath
			}
		}

		row := []string{
			deckPath,
			card.Front,
			card.Back,
			card.FrontClean,
			card.BackClean,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// CardJSON serializes a single card for clipboard copy
func CardJSON(card models.Card) ([]byte, error) {
	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal card to JSON: %w", err)
	}
	return data, nil
}

// CopyCard copies the card's JSON serialization to the system clipboard.
// Failure is surfaced to the caller as a notice; in-memory state is not
// affected.
func CopyCard(card models.Card) error {
	data, err := CardJSON(card)
	if err != nil {
		return err
	}

	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy card to clipboard: %w", err)
	}

	return nil
}
