package currency

import (
	"context"
	"math"

	"github.com/bingyoan/sausage-menu-ai/internal/logger"
)

// FallbackRate is the last-resort conversion rate when both the live lookup
// and the estimate shipped with the parse result are unusable.
const FallbackRate = 0.22

// Resolver turns a raw menu currency label and a target code into a usable
// exchange rate. It never fails: every failure mode degrades to the next
// tier (live rate, then the parser's estimate, then FallbackRate).
type Resolver struct {
	source RateSource
}

func NewResolver(source RateSource) *Resolver {
	return &Resolver{source: source}
}

// ResolveRate resolves baseLabel -> targetCode. estimate is the rate the
// parsing service guessed alongside the menu; zero means no estimate.
func (r *Resolver) ResolveRate(ctx context.Context, baseLabel, targetCode string, estimate float64) float64 {
	base := Normalize(baseLabel)
	target := Normalize(targetCode)

	if base == target {
		return 1
	}

	rates, err := r.source.Rates(ctx, base)
	if err == nil {
		if rate, ok := rates[target]; ok && usable(rate) {
			return rate
		}
		logger.L.Warn("rate table missing target, falling back to estimate",
			"base", base, "target", target)
	} else {
		logger.L.Warn("live rate lookup failed, falling back to estimate",
			"base", base, "target", target, "error", err)
	}

	if usable(estimate) {
		return estimate
	}

	logger.L.Warn("no rate estimate available, using fixed fallback",
		"base", base, "target", target, "rate", FallbackRate)
	return FallbackRate
}

func usable(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1) && !math.IsNaN(rate)
}
