package menu

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bingyoan/sausage-menu-ai/internal/currency"
)

// ParseResult is the wire shape returned by the external menu parser.
// Optional fields are pointers so "absent" and "zero" stay distinguishable
// at the boundary.
type ParseResult struct {
	OriginalCurrency string            `json:"originalCurrency"`
	ExchangeRate     float64           `json:"exchangeRate"`
	DetectedLanguage string            `json:"detectedLanguage"`
	Items            []ParseResultItem `json:"items"`
}

type ParseResultItem struct {
	OriginalName   string    `json:"originalName"`
	TranslatedName string    `json:"translatedName"`
	Price          *float64  `json:"price"`
	Category       string    `json:"category"`
	AllergyWarning *bool     `json:"allergyWarning"`
	DietaryTags    *[]string `json:"dietaryTags"`
	Description    string    `json:"description"`
}

// Ingest validates a raw parse payload and builds a Catalog from it,
// all-or-nothing: a single bad item rejects the whole payload. Each item
// gets a fresh synthetic id; optional fields get explicit defaults. The
// returned catalog carries the parser's rate estimate until the caller
// resolves a live rate.
func Ingest(payload []byte) (*Catalog, error) {
	var parsed ParseResult
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, errors.New("invalid menu parse payload")
	}
	return FromParseResult(&parsed)
}

// FromParseResult builds a Catalog from an already-decoded parse result.
func FromParseResult(parsed *ParseResult) (*Catalog, error) {
	if parsed == nil {
		return nil, errors.New("nil parse result")
	}
	if len(parsed.Items) == 0 {
		return nil, errors.New("parse result has no items")
	}

	items := make([]Item, 0, len(parsed.Items))
	for i, raw := range parsed.Items {
		if raw.OriginalName == "" && raw.TranslatedName == "" {
			return nil, fmt.Errorf("item %d has no name", i)
		}
		if raw.Price == nil {
			return nil, fmt.Errorf("item %d has no price", i)
		}
		if *raw.Price < 0 {
			return nil, fmt.Errorf("item %d has negative price", i)
		}

		item := Item{
			ID:             uuid.New().String(),
			OriginalName:   raw.OriginalName,
			TranslatedName: raw.TranslatedName,
			Price:          *raw.Price,
			Category:       raw.Category,
			Description:    raw.Description,
			DietaryTags:    []string{},
		}
		if item.Category == "" {
			item.Category = "General"
		}
		if raw.AllergyWarning != nil {
			item.AllergyWarning = *raw.AllergyWarning
		}
		if raw.DietaryTags != nil && *raw.DietaryTags != nil {
			item.DietaryTags = *raw.DietaryTags
		}

		items = append(items, item)
	}

	originalCurrency := parsed.OriginalCurrency
	if originalCurrency == "" {
		originalCurrency = currency.DefaultCode
	}

	detectedLanguage := parsed.DetectedLanguage
	if detectedLanguage == "" {
		detectedLanguage = "Unknown"
	}

	return &Catalog{
		Items:            items,
		OriginalCurrency: originalCurrency,
		ExchangeRate:     parsed.ExchangeRate,
		DetectedLanguage: detectedLanguage,
	}, nil
}
