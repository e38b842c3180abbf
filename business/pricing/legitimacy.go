package pricing

import (
	"strings"

	"pricepilot/domain"
)

// reputable marketplace channels get a trust head start
var reputableSources = map[string]struct{}{
	"amazon":    {},
	"flipkart":  {},
	"bigbasket": {},
	"reliance":  {},
	"dmart":     {},
}

// ScoreLegitimacy assigns an additive trust score to a normalized offer.
// Pure per-offer heuristic; no cross-offer comparison. Practical maximum is
// 50 for an unknown source and 70 for a reputable one, but no cap is
// enforced.
func ScoreLegitimacy(n domain.NormalizedOffer) int {
	score := 0

	if _, ok := reputableSources[strings.ToLower(n.Source)]; ok {
		score += 20
	}
	if n.HTTPS {
		score += 5
	}
	if n.DomainAgeYears >= 1 {
		score += 10
	}
	if n.DomainAgeYears >= 5 {
		score += 5
	}
	// rating bonus only when a rating exists and has any volume behind it
	if n.HasRating && n.RatingCount > 0 {
		if n.Rating >= 4.0 && n.RatingCount >= 100 {
			score += 10
		} else if n.Rating >= 3.5 && n.RatingCount >= 20 {
			score += 5
		}
	}
	if n.HasPolicyPages {
		score += 5
	}
	if n.InStock {
		score += 10
	}

	return score
}
