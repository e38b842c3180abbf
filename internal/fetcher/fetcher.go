package fetcher

import (
	"context"

	"pricepilot/business/pricing"
	"pricepilot/domain"
)

// Fetcher pulls competitor offers for one marketplace channel. Implementations
// satisfy pricing.OfferFetcher.
type Fetcher interface {
	Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error)
}

// Registry builds the channel -> fetcher map the pricing service consumes.
// Real marketplace integrations replace the stubs one channel at a time
// without touching the service.
func Registry(sampleCSVPath string) map[string]pricing.OfferFetcher {
	reg := map[string]pricing.OfferFetcher{
		"amazon":   AmazonFetcher{},
		"flipkart": FlipkartFetcher{},
		"dmart":    DmartFetcher{},
	}

	if sampleCSVPath != "" {
		reg["local"] = &CSVFetcher{Path: sampleCSVPath}
	}

	return reg
}
