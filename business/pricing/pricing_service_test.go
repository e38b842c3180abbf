//go:build !integration

package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"pricepilot/domain"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// sampleOffers mirrors the canonical dry-run dataset: two solid anchors,
// one undeliverable source, one out-of-stock source.
func sampleOffers() []domain.Offer {
	return []domain.Offer{
		{
			ProductID: 1, Source: "amazon", BasePrice: 112, InStock: true,
			Rating: floatPtr(4.4), RatingCount: 2200, HTTPS: boolPtr(true),
			DomainAgeYears: 28, HasPolicyPages: boolPtr(true),
			URL: "https://www.example.com/amazon-d",
		},
		{
			ProductID: 1, Source: "flipkart", BasePrice: 115, InStock: true,
			Rating: floatPtr(4.3), RatingCount: 1500, HTTPS: boolPtr(true),
			DomainAgeYears: 17, HasPolicyPages: boolPtr(true),
			URL: "https://www.example.com/flipkart-d",
		},
		{
			ProductID: 1, Source: "dmart", BasePrice: 98, InStock: true,
			Rating: floatPtr(4.1), RatingCount: 300, HTTPS: boolPtr(true),
			DomainAgeYears: 10, HasPolicyPages: boolPtr(true),
			URL: "https://www.example.com/dmart-d",
		},
		{
			ProductID: 1, Source: "bigbasket", BasePrice: 118, CouponValue: 5, InStock: false,
			Rating: floatPtr(4.2), RatingCount: 900, HTTPS: boolPtr(true),
			DomainAgeYears: 15, HasPolicyPages: boolPtr(true),
			URL: "https://www.example.com/bigbasket-d",
		},
	}
}

// ---- fakes ----

type fakeOfferRepo struct {
	offers []domain.Offer
	err    error
}

func (f *fakeOfferRepo) FindByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Offer
	for _, o := range f.offers {
		if o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeDecisionRepo struct {
	saved []domain.DecisionRecord
}

func (f *fakeDecisionRepo) Save(ctx context.Context, rec *domain.DecisionRecord) error {
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeDecisionRepo) FindLatest(ctx context.Context, productID uint64, location string) (domain.DecisionRecord, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].ProductID == productID && f.saved[i].Location == location {
			return f.saved[i], nil
		}
	}
	return domain.DecisionRecord{}, errors.New("pricing decision not found")
}

type fakeCache struct {
	stored map[string]domain.DecisionRecord
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string]domain.DecisionRecord)}
}

func (f *fakeCache) Store(ctx context.Context, rec domain.DecisionRecord, ttl time.Duration) error {
	f.stored[rec.Location] = rec
	return nil
}

func (f *fakeCache) Latest(ctx context.Context, productID uint64, location string) (*domain.DecisionRecord, error) {
	if rec, ok := f.stored[location]; ok {
		return &rec, nil
	}
	return nil, nil
}

type failingFetcher struct{}

func (failingFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	return nil, errors.New("marketplace unreachable")
}

type staticFetcher struct {
	offers []domain.Offer
}

func (f staticFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	return f.offers, nil
}

// ---- tests ----

func TestPriceProduct_EndToEnd(t *testing.T) {
	offerRepo := &fakeOfferRepo{offers: sampleOffers()}
	decisionRepo := &fakeDecisionRepo{}
	cache := newFakeCache()

	svc := NewPricingService(offerRepo, decisionRepo, cache, nil, nil, nil, DefaultConfig())

	req := domain.PricingRequest{
		ProductID:    1,
		ProductName:  "Dettol Liquid Handwash Refill 750ml",
		Location:     "Bidar, KA, IN",
		CostPrice:    92,
		MinMarginPct: 15,
		Target:       domain.StrategyWithinTop3,
	}

	d, err := svc.PriceProduct(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceProduct returned error: %v", err)
	}

	// dmart is excluded by deliverability in Bidar, bigbasket by stock
	if len(d.Anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d: %+v", len(d.Anchors), d.Anchors)
	}
	if d.Anchors[0].Source != "amazon" || d.Anchors[1].Source != "flipkart" {
		t.Errorf("unexpected anchors: %+v", d.Anchors)
	}
	if d.PLowest == nil || *d.PLowest != 112 {
		t.Errorf("PLowest = %v, want 112", d.PLowest)
	}
	if d.PTop3 == nil || *d.PTop3 != 115 {
		t.Errorf("PTop3 = %v, want 115", d.PTop3)
	}
	if d.RecommendedPrice != 114 {
		t.Errorf("RecommendedPrice = %v, want 114", d.RecommendedPrice)
	}

	if len(decisionRepo.saved) != 1 {
		t.Fatalf("expected 1 persisted decision, got %d", len(decisionRepo.saved))
	}
	if decisionRepo.saved[0].ID == "" {
		t.Error("persisted decision must carry an id")
	}
	if _, ok := cache.stored[req.Location]; !ok {
		t.Error("decision was not written through to the cache")
	}
}

func TestPriceProduct_RejectsInvalidRequests(t *testing.T) {
	svc := NewPricingService(&fakeOfferRepo{}, &fakeDecisionRepo{}, nil, nil, nil, nil, DefaultConfig())

	cases := []struct {
		name string
		req  domain.PricingRequest
	}{
		{"zero cost", domain.PricingRequest{ProductID: 1, CostPrice: 0}},
		{"negative cost", domain.PricingRequest{ProductID: 1, CostPrice: -5}},
		{"negative margin", domain.PricingRequest{ProductID: 1, CostPrice: 10, MinMarginPct: -1}},
		{"beat pct out of range", domain.PricingRequest{ProductID: 1, CostPrice: 10, BeatPct: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.PriceProduct(context.Background(), tc.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestPriceProduct_FetchFailuresAreSkipped(t *testing.T) {
	fetchers := map[string]OfferFetcher{
		"broken": failingFetcher{},
		"local": staticFetcher{offers: []domain.Offer{
			{Source: "amazon", BasePrice: 100, InStock: true, Rating: floatPtr(4.5), RatingCount: 500, DomainAgeYears: 20},
		}},
	}

	svc := NewPricingService(&fakeOfferRepo{}, &fakeDecisionRepo{}, nil, nil, nil, fetchers, DefaultConfig())

	req := domain.PricingRequest{
		ProductID:    7,
		ProductName:  "anything",
		CostPrice:    50,
		MinMarginPct: 10,
		Target:       domain.StrategyMatchLowest,
		Channels:     []string{"broken", "local", "unregistered"},
	}

	d, err := svc.PriceProduct(context.Background(), req)
	if err != nil {
		t.Fatalf("fetch failure must not fail the decision: %v", err)
	}
	if len(d.Anchors) != 1 {
		t.Fatalf("expected the offer from the healthy channel, got %+v", d.Anchors)
	}
}

func TestPriceProduct_NoOffersFallsBackToFloor(t *testing.T) {
	svc := NewPricingService(&fakeOfferRepo{}, &fakeDecisionRepo{}, nil, nil, nil, nil, DefaultConfig())

	req := domain.PricingRequest{ProductID: 9, CostPrice: 92, MinMarginPct: 15, Target: domain.StrategyWithinTop3}

	d, err := svc.PriceProduct(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceProduct returned error: %v", err)
	}
	if len(d.Anchors) != 0 {
		t.Fatalf("expected no anchors, got %d", len(d.Anchors))
	}
	if d.RecommendedPrice != 105 { // round(105.8) = 106, then the ...99 pull-down
		t.Errorf("RecommendedPrice = %v, want 105", d.RecommendedPrice)
	}
}

func TestEvaluateOffers_CheckerErrorExcludesOffer(t *testing.T) {
	svc := NewPricingService(nil, nil, nil, erroringChecker{}, nil, nil, DefaultConfig())

	evaluated := svc.EvaluateOffers(context.Background(), sampleOffers()[:1], "Mumbai")
	if len(evaluated) != 1 {
		t.Fatalf("expected 1 evaluated offer, got %d", len(evaluated))
	}
	if evaluated[0].DeliversToLocation {
		t.Error("checker errors must mark the offer as not deliverable")
	}
}

type erroringChecker struct{}

func (erroringChecker) Delivers(ctx context.Context, source, location, pincode string) (bool, error) {
	return true, errors.New("serviceability lookup down")
}

func TestLatestDecision_PrefersCache(t *testing.T) {
	decisionRepo := &fakeDecisionRepo{}
	cache := newFakeCache()
	cache.stored["Mumbai"] = domain.DecisionRecord{ID: "cached", ProductID: 1, Location: "Mumbai"}
	decisionRepo.saved = append(decisionRepo.saved, domain.DecisionRecord{ID: "stored", ProductID: 1, Location: "Mumbai"})

	svc := NewPricingService(nil, decisionRepo, cache, nil, nil, nil, DefaultConfig())

	rec, err := svc.LatestDecision(context.Background(), 1, "Mumbai")
	if err != nil {
		t.Fatalf("LatestDecision returned error: %v", err)
	}
	if rec.ID != "cached" {
		t.Errorf("expected the cached record, got %q", rec.ID)
	}
}

func TestLatestDecision_FallsBackToRepository(t *testing.T) {
	decisionRepo := &fakeDecisionRepo{}
	decisionRepo.saved = append(decisionRepo.saved, domain.DecisionRecord{ID: "stored", ProductID: 1, Location: "Mumbai"})

	svc := NewPricingService(nil, decisionRepo, newFakeCache(), nil, nil, nil, DefaultConfig())

	rec, err := svc.LatestDecision(context.Background(), 1, "Mumbai")
	if err != nil {
		t.Fatalf("LatestDecision returned error: %v", err)
	}
	if rec.ID != "stored" {
		t.Errorf("expected the stored record, got %q", rec.ID)
	}
}
