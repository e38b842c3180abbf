package pricing

import (
	"context"
)

// loadConfig reads the stored override for a scope, falling back to the
// service defaults for missing rows or unusable values.
func (s *PricingService) loadConfig(ctx context.Context, scope string) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, scope)
	if err != nil || !ok {
		return s.defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := s.defaultCfg

	if dbCfg.LegitThreshold > 0 {
		cfg.LegitThreshold = dbCfg.LegitThreshold
	}
	if dbCfg.TopNForEnvelope > 0 {
		cfg.TopNForEnvelope = dbCfg.TopNForEnvelope
	}
	if dbCfg.SmallDelta > 0 {
		cfg.SmallDelta = dbCfg.SmallDelta
	}

	return cfg
}
