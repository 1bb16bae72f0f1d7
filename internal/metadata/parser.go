// Package metadata ingests content-addressed collection metadata.
package metadata

import (
	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

// maxTextLength caps free-form text fields persisted from untrusted documents
const maxTextLength = 2000

// Parser normalizes fetched metadata documents into collection metadata
// records. Fields with unexpected types are dropped rather than coerced.
type Parser struct {
	json adapter.JSON
}

func NewParser(json adapter.JSON) *Parser {
	return &Parser{json: json}
}

// Parse decodes a raw metadata document for the given content hash.
// Returns (nil, nil) when the document is valid JSON but not an object;
// such documents produce no record.
func (p *Parser) Parse(hash string, raw []byte) (*schema.CollectionMetadata, error) {
	var decoded interface{}
	if err := p.json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	doc, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	record := &schema.CollectionMetadata{
		ID:           hash,
		Image:        stringField(doc, "image"),
		Description:  truncate(stringField(doc, "description")),
		Title:        stringField(doc, "title"),
		Tags:         stringField(doc, "tags"),
		Npcs:         stringField(doc, "npcs"),
		Locales:      stringField(doc, "locales"),
		Instructions: truncate(stringField(doc, "instructions")),
		Tipo:         stringField(doc, "tipo"),
		Gallery:      stringField(doc, "gallery"),
		Images:       stringListField(doc, "images"),
		Colors:       stringListField(doc, "colors"),
	}

	return record, nil
}

func stringField(doc map[string]interface{}, key string) *string {
	if v, ok := doc[key].(string); ok {
		return &v
	}
	return nil
}

// stringListField extracts an array field keeping only its string elements
func stringListField(doc map[string]interface{}, key string) datatypes.JSONSlice[string] {
	list, ok := doc[key].([]interface{})
	if !ok {
		return nil
	}

	var out datatypes.JSONSlice[string]
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s *string) *string {
	if s == nil {
		return nil
	}
	runes := []rune(*s)
	if len(runes) <= maxTextLength {
		return s
	}
	truncated := string(runes[:maxTextLength])
	return &truncated
}
