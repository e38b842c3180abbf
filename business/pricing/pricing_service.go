package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pricepilot/domain"
	"pricepilot/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type OfferRepository interface {
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error)
}

type DecisionRepository interface {
	Save(ctx context.Context, rec *domain.DecisionRecord) error
	FindLatest(ctx context.Context, productID uint64, location string) (domain.DecisionRecord, error)
}

// DecisionCache is the write-through cache of the latest decision per
// (product, location). Cache failures are logged, never surfaced.
type DecisionCache interface {
	Store(ctx context.Context, rec domain.DecisionRecord, ttl time.Duration) error
	Latest(ctx context.Context, productID uint64, location string) (*domain.DecisionRecord, error)
}

// OfferFetcher pulls competitor offers for one marketplace channel.
type OfferFetcher interface {
	Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error)
}

// ---- Usecase / Service ----

type PricingService struct {
	offerRepo    OfferRepository
	decisionRepo DecisionRepository
	cache        DecisionCache
	checker      DeliveryChecker
	cfgRepo      ConfigRepository
	fetchers     map[string]OfferFetcher
	defaultCfg   Config
	cacheTTL     time.Duration
}

func NewPricingService(
	offerRepo OfferRepository,
	decisionRepo DecisionRepository,
	cache DecisionCache,
	checker DeliveryChecker,
	cfgRepo ConfigRepository,
	fetchers map[string]OfferFetcher,
	defaultCfg Config,
) *PricingService {
	if checker == nil {
		checker = HeuristicDeliveryChecker{}
	}
	return &PricingService{
		offerRepo:    offerRepo,
		decisionRepo: decisionRepo,
		cache:        cache,
		checker:      checker,
		cfgRepo:      cfgRepo,
		fetchers:     fetchers,
		defaultCfg:   defaultCfg,
		cacheTTL:     15 * time.Minute,
	}
}

// validateRequest rejects out-of-contract parameters before the engine
// runs. The engine itself stays permissive; unknown strategy tags are not
// an error.
func validateRequest(req domain.PricingRequest) error {
	if req.CostPrice <= 0 {
		return errors.New("cost price must be greater than 0")
	}
	if req.MinMarginPct < 0 {
		return errors.New("min margin pct cannot be negative")
	}
	if req.BeatPct < 0 || req.BeatPct >= 100 {
		return errors.New("beat pct must be in [0, 100)")
	}
	return nil
}

// EvaluateOffers runs the normalization, legitimacy scoring and
// deliverability pass over raw offers. A checker error marks the offer as
// not deliverable rather than failing the evaluation.
func (s *PricingService) EvaluateOffers(ctx context.Context, offers []domain.Offer, location string) []domain.NormalizedOffer {
	out := make([]domain.NormalizedOffer, 0, len(offers))
	for _, o := range offers {
		n := Normalize(o)

		ok, err := s.checker.Delivers(ctx, o.Source, location, o.Pincode)
		if err != nil {
			logger.Warn("delivery check failed, excluding offer", "source", o.Source, "error", err)
			ok = false
		}
		n.DeliversToLocation = ok

		out = append(out, n)
	}
	return out
}

// PriceProduct is the full pipeline for one request: gather stored and
// freshly fetched offers, evaluate them, run the decision engine, persist
// and cache the result.
func (s *PricingService) PriceProduct(ctx context.Context, req domain.PricingRequest) (domain.Decision, error) {
	if err := ctx.Err(); err != nil {
		return domain.Decision{}, fmt.Errorf("context error: %w", err)
	}
	if err := validateRequest(req); err != nil {
		return domain.Decision{}, err
	}

	offers, err := s.gatherOffers(ctx, req)
	if err != nil {
		return domain.Decision{}, err
	}

	evaluated := s.EvaluateOffers(ctx, offers, req.Location)

	cfg := s.loadConfig(ctx, "")
	decision := ChoosePrice(evaluated, req, cfg)

	strategy := string(domain.ParseStrategy(string(req.Target)))

	tid := TraceIDFromContext(ctx)
	logger.Debug("pricing_decision",
		"trace_id", tid,
		"product_id", req.ProductID,
		"location", req.Location,
		"strategy", strategy,
		"offer_count", len(offers),
		"anchor_count", len(decision.Anchors),
		"recommended_price", decision.RecommendedPrice,
	)

	if err := s.persistDecision(ctx, req, strategy, decision); err != nil {
		return domain.Decision{}, err
	}

	outcome := "anchored"
	if len(decision.Anchors) == 0 {
		outcome = "floor_fallback"
	}
	DecisionsTotal.WithLabelValues(strategy, outcome).Inc()

	return decision, nil
}

// LatestDecision serves the most recent stored decision, preferring the
// cache over the database.
func (s *PricingService) LatestDecision(ctx context.Context, productID uint64, location string) (domain.DecisionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.DecisionRecord{}, fmt.Errorf("context error: %w", err)
	}
	if productID == 0 {
		return domain.DecisionRecord{}, errors.New("invalid product id")
	}

	if s.cache != nil {
		if rec, err := s.cache.Latest(ctx, productID, location); err == nil && rec != nil {
			return *rec, nil
		}
	}

	rec, err := s.decisionRepo.FindLatest(ctx, productID, location)
	if err != nil {
		return domain.DecisionRecord{}, err
	}

	return rec, nil
}

// gatherOffers merges stored offers for the product with offers fetched
// from the requested channels. Fetch failures are logged and skipped; a
// decision must never fail because one marketplace was unreachable.
func (s *PricingService) gatherOffers(ctx context.Context, req domain.PricingRequest) ([]domain.Offer, error) {
	var offers []domain.Offer

	if s.offerRepo != nil {
		stored, err := s.offerRepo.FindByProduct(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load stored offers: %w", err)
		}
		offers = append(offers, stored...)
	}

	for _, ch := range req.Channels {
		f, ok := s.fetchers[ch]
		if !ok {
			continue
		}
		fetched, err := f.Fetch(ctx, req.ProductName, req.Brand)
		if err != nil {
			logger.Warn("offer fetch failed", "channel", ch, "error", err)
			FetchFailuresTotal.WithLabelValues(ch).Inc()
			continue
		}
		offers = append(offers, fetched...)
	}

	return offers, nil
}

func (s *PricingService) persistDecision(ctx context.Context, req domain.PricingRequest, strategy string, decision domain.Decision) error {
	notesJSON, err := json.Marshal(decision.Notes)
	if err != nil {
		return fmt.Errorf("marshal decision notes: %w", err)
	}
	anchorsJSON, err := json.Marshal(decision.Anchors)
	if err != nil {
		return fmt.Errorf("marshal decision anchors: %w", err)
	}

	rec := domain.DecisionRecord{
		ID:               uuid.NewString(),
		ProductID:        req.ProductID,
		Location:         req.Location,
		Strategy:         strategy,
		RecommendedPrice: decision.RecommendedPrice,
		MarginFloor:      decision.MarginFloor,
		PLowest:          decision.PLowest,
		PTop3:            decision.PTop3,
		Notes:            datatypes.JSON(notesJSON),
		Anchors:          datatypes.JSON(anchorsJSON),
		CreatedAt:        time.Now(),
	}

	if s.decisionRepo != nil {
		if err := s.decisionRepo.Save(ctx, &rec); err != nil {
			return fmt.Errorf("failed to save pricing decision: %w", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, rec, s.cacheTTL); err != nil {
			logger.Warn("failed to cache pricing decision", "product_id", req.ProductID, "error", err)
		}
	}

	return nil
}
