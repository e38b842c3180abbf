package domain

// Strategy selects how the engine positions the recommended price against
// competitor anchors.
type Strategy string

const (
	StrategyMatchLowest   Strategy = "match_lowest"
	StrategyBeatLowestPct Strategy = "beat_lowest_by_pct"
	StrategyWithinTop3    Strategy = "within_top3"
	StrategyMarginFirst   Strategy = "margin_first"
)

// ParseStrategy maps a raw tag to a Strategy. Unknown tags fall back to
// margin_first on purpose; an unrecognized strategy must never fail a
// pricing request.
func ParseStrategy(s string) Strategy {
	switch Strategy(s) {
	case StrategyMatchLowest, StrategyBeatLowestPct, StrategyWithinTop3, StrategyMarginFirst:
		return Strategy(s)
	default:
		return StrategyMarginFirst
	}
}

// PricingRequest carries the product and strategy parameters for one
// decision. Currency, TaxRatePct and Channels are pass-through metadata;
// the decision math never reads them.
type PricingRequest struct {
	ProductID    uint64   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	Brand        string   `json:"brand"`
	Location     string   `json:"location"`
	CostPrice    float64  `json:"cost_price"`
	MinMarginPct float64  `json:"min_margin_pct"`
	Target       Strategy `json:"target_position"`
	BeatPct      float64  `json:"beat_pct"`
	Channels     []string `json:"channels_to_consider"`
	TaxRatePct   float64  `json:"tax_rate_pct"`
	Currency     string   `json:"currency"`
}

// Anchor is one eligible competitor offer reduced to what the report layer
// needs.
type Anchor struct {
	Source          string  `json:"source"`
	ComparablePrice float64 `json:"comparable_price"`
	URL             string  `json:"url"`
}

// Decision is the engine output for one request. PLowest and PTop3 are nil
// when no offer was eligible; Anchors is empty exactly in that case.
type Decision struct {
	RecommendedPrice float64  `json:"recommended_price"`
	MarginFloor      float64  `json:"margin_floor"`
	PLowest          *float64 `json:"p_lowest,omitempty"`
	PTop3            *float64 `json:"p_top3,omitempty"`
	Notes            []string `json:"notes"`
	Anchors          []Anchor `json:"anchors"`
}
