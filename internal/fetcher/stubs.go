package fetcher

import (
	"context"

	"pricepilot/domain"
)

// Marketplace fetchers are stubs until the real scraping/API integrations
// land; each returns no offers so the pipeline falls back to stored data.

type AmazonFetcher struct{}

func (AmazonFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	return nil, nil
}

type FlipkartFetcher struct{}

func (FlipkartFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	return nil, nil
}

type DmartFetcher struct{}

func (DmartFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	return nil, nil
}
