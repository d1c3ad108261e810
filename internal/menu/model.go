package menu

// Item is one parsed, translated menu line. Immutable after ingestion;
// prices are tax-inclusive in the menu's original currency.
type Item struct {
	ID             string   `json:"id"`
	OriginalName   string   `json:"originalName"`
	TranslatedName string   `json:"translatedName"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	AllergyWarning bool     `json:"allergyWarning"`
	DietaryTags    []string `json:"dietaryTags"`
	Description    string   `json:"description"`
}

// Catalog is the menu snapshot for one scan session. It is replaced
// wholesale on a new scan and never partially mutated.
type Catalog struct {
	Items            []Item  `json:"items"`
	OriginalCurrency string  `json:"originalCurrency"`
	TargetCurrency   string  `json:"targetCurrency"`
	ExchangeRate     float64 `json:"exchangeRate"`
	DetectedLanguage string  `json:"detectedLanguage"`
}

// Find resolves an item by id.
func (c *Catalog) Find(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
