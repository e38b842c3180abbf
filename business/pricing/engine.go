package pricing

import (
	"fmt"
	"math"
	"sort"

	"pricepilot/domain"
)

// MarginFloor is the minimum price satisfying the seller's required margin
// over cost.
func MarginFloor(costPrice, minMarginPct float64) float64 {
	return costPrice * (1 + minMarginPct/100.0)
}

// PsychologicalRound rounds to the nearest integer and pulls prices at or
// above 100 down by one, producing "...99" style endings. 100 becomes 99;
// values below 100 keep their rounded value.
func PsychologicalRound(price float64) float64 {
	p := math.Round(price)
	if p >= 100 {
		return p - 1
	}
	return p
}

// ChoosePrice runs the pricing decision over already-normalized offers.
// Pure and synchronous: no I/O, no shared state, deterministic for a given
// input. Offers failing deliverability, the legitimacy threshold, or stock
// are excluded from the anchor set; with no anchors left the margin floor
// (or cost, whichever is higher) wins.
func ChoosePrice(offers []domain.NormalizedOffer, req domain.PricingRequest, cfg Config) domain.Decision {
	if cfg.TopNForEnvelope <= 0 {
		cfg.TopNForEnvelope = defaultTopNForEnvelope
	}
	if cfg.SmallDelta <= 0 {
		cfg.SmallDelta = defaultSmallDelta
	}

	mfloor := MarginFloor(req.CostPrice, req.MinMarginPct)

	eligible := make([]domain.NormalizedOffer, 0, len(offers))
	for _, o := range offers {
		if o.DeliversToLocation && o.LegitimacyScore >= cfg.LegitThreshold && o.InStock {
			eligible = append(eligible, o)
		}
	}

	notes := []string{}

	if len(eligible) == 0 {
		rec := PsychologicalRound(math.Max(mfloor, req.CostPrice))
		notes = append(notes, "no eligible competitor anchors; used margin floor / cost")
		return domain.Decision{
			RecommendedPrice: rec,
			MarginFloor:      mfloor,
			Notes:            notes,
			Anchors:          []domain.Anchor{},
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].ComparablePrice < eligible[j].ComparablePrice
	})

	pLowest := eligible[0].ComparablePrice

	// envelope index clamps to the highest available anchor when fewer than
	// TopNForEnvelope offers survived filtering
	envIdx := cfg.TopNForEnvelope - 1
	if envIdx > len(eligible)-1 {
		envIdx = len(eligible) - 1
	}
	pTop3 := eligible[envIdx].ComparablePrice

	var candidate float64
	switch domain.ParseStrategy(string(req.Target)) {
	case domain.StrategyMatchLowest:
		candidate = math.Max(mfloor, pLowest)
		notes = append(notes, "strategy: match_lowest")
	case domain.StrategyBeatLowestPct:
		candidate = math.Max(mfloor, pLowest*(1-req.BeatPct/100.0))
		notes = append(notes, fmt.Sprintf("strategy: beat_lowest_by_pct (%g%%)", req.BeatPct))
	case domain.StrategyWithinTop3:
		candidate = math.Max(mfloor, pTop3)
		notes = append(notes, "strategy: within_top3 (upper bound)")
	default:
		// margin_first, and the explicit landing spot for unknown tags
		candidate = math.Max(mfloor, math.Min(pLowest+cfg.SmallDelta, pTop3))
		notes = append(notes, "strategy: margin_first")
	}

	anchors := make([]domain.Anchor, 0, len(eligible))
	for _, o := range eligible {
		anchors = append(anchors, domain.Anchor{
			Source:          o.Source,
			ComparablePrice: o.ComparablePrice,
			URL:             o.URL,
		})
	}

	pl, pt := pLowest, pTop3
	return domain.Decision{
		RecommendedPrice: PsychologicalRound(candidate),
		MarginFloor:      mfloor,
		PLowest:          &pl,
		PTop3:            &pt,
		Notes:            notes,
		Anchors:          anchors,
	}
}
