package currency

// Target currency per UI language, mirroring the client's language picker.
var languageCurrencies = map[string]string{
	"ChineseTW":  "TWD",
	"English":    "USD",
	"Korean":     "KRW",
	"French":     "EUR",
	"Spanish":    "EUR",
	"Thai":       "THB",
	"Filipino":   "PHP",
	"Vietnamese": "VND",
}

// TargetForLanguage returns the conversion target for a client language,
// defaulting to USD for anything unrecognized.
func TargetForLanguage(lang string) string {
	if code, ok := languageCurrencies[lang]; ok {
		return code
	}
	return "USD"
}
