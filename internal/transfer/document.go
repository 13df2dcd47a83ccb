package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cardflow/internal/model"
)

// DefaultImportedBoardName names an imported board whose document has no name.
const DefaultImportedBoardName = "Imported Board"

// Document is the portable snapshot of one board.
type Document struct {
	Board      model.Board  `json:"board"`
	Cards      []model.Card `json:"cards"`
	Links      []model.Link `json:"links"`
	ExportedAt time.Time    `json:"exported_at"`
}

// ParseDocument decodes a board document, typically from an export file.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse board document: %w", err)
	}
	return &doc, nil
}

// WriteDocument encodes doc as indented JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write board document: %w", err)
	}
	return nil
}
