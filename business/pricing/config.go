package pricing

import (
	"context"
	"pricepilot/domain"
)

// Config holds the engine tunables. Callers pass it into ChoosePrice; the
// engine itself hardcodes nothing.
type Config struct {
	// minimum legitimacy score an offer needs to act as a price anchor
	LegitThreshold int

	// how many of the cheapest eligible offers bound the price envelope
	TopNForEnvelope int

	// fixed nudge above the lowest anchor used by the margin_first strategy
	SmallDelta float64
}

const (
	defaultLegitThreshold  = 60
	defaultTopNForEnvelope = 3
	defaultSmallDelta      = 1.0
)

func DefaultConfig() Config {
	return Config{
		LegitThreshold:  defaultLegitThreshold,
		TopNForEnvelope: defaultTopNForEnvelope,
		SmallDelta:      defaultSmallDelta,
	}
}

// read engine config overrides from DB, per scope ("" = global).
type ConfigRepository interface {
	GetConfig(ctx context.Context, scope string) (domain.PricingConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.PricingConfig) error
}
