package currency

import "strings"

// DefaultCode is used when the parsing service reports no currency at all.
// Carried over from the original app's behavior; revisit if we ever ship
// outside the Japan-first market.
const DefaultCode = "JPY"

// tokenGroup maps any of a set of labels (ISO codes, symbols, local words)
// to one canonical code. Groups are tested in order; first match wins.
type tokenGroup struct {
	code   string
	tokens []string
}

// Order matters: region-specific symbols before the generic "$"-style ones.
var tokenGroups = []tokenGroup{
	{"JPY", []string{"JPY", "JP", "YEN", "¥", "円"}},
	{"KRW", []string{"KRW", "KR", "WON", "₩", "원"}},
	{"THB", []string{"THB", "TH", "BAHT", "฿", "บาท"}},
	{"EUR", []string{"EUR", "EU", "EURO", "€"}},
	{"USD", []string{"USD", "US", "DOLLAR", "$"}},
	{"GBP", []string{"GBP", "UK", "POUND", "£"}},
	{"TWD", []string{"TWD", "TW", "NT"}},
	{"VND", []string{"VND", "DONG", "₫", "Đ"}},
}

// Normalize maps an arbitrary currency label from the parsing service to a
// canonical code. The extraction is noisy ("JPN", "circa ¥", "日本円"), so
// matching is contains-any, not equality. Never fails: unknown labels fall
// through to a best-effort letters-only code and the rate lookup degrades
// from there.
func Normalize(raw string) string {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if c == "" {
		return DefaultCode
	}

	for _, g := range tokenGroups {
		for _, tok := range g.tokens {
			if strings.Contains(c, tok) {
				return g.code
			}
		}
	}

	// Keep only A-Z and let the rate service try its luck.
	var b strings.Builder
	for _, r := range c {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultCode
	}
	return b.String()
}
