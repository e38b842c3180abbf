package offers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pricepilot/domain"
	"pricepilot/pkg/logger"
)

// OfferRepository contract interface
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	FindByID(ctx context.Context, id uint64) (domain.Offer, error)
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error)
	FindAll(ctx context.Context) ([]domain.Offer, error)
	Delete(ctx context.Context, id uint64) error
}

type offersService struct {
	offerRepo OfferRepository
}

func NewOffersService(offerRepo OfferRepository) *offersService {
	return &offersService{
		offerRepo: offerRepo,
	}
}

func (s *offersService) GetAllOffers(ctx context.Context) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all offers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	offers, err := s.offerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all offers", err)
		return nil, err
	}

	return offers, nil
}

func (s *offersService) GetOffersByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error) {
	if productID == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get offers by product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	offers, err := s.offerRepo.FindByProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to find offers by product", err)
		return nil, err
	}

	return offers, nil
}

func (s *offersService) CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create offer")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateOffer(offer); err != nil {
		logger.Error("invalid offer data", err)
		return nil, err
	}

	if offer.FetchedAt.IsZero() {
		offer.FetchedAt = time.Now()
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		logger.Error("failed to create offer", err)
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	logger.Info("offer created successfully", "source", offer.Source, "product_id", offer.ProductID)

	return offer, nil
}

func (s *offersService) DeleteOffer(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid offer id when deleting offer")
		return errors.New("invalid offer id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting offer")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify offer exists
	_, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("offer not found", err)
		return errors.New("offer not found")
	}

	if err := s.offerRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete offer", err)
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	logger.Info("offer deleted success")

	return nil
}

// ImportOffers stores a batch of already-parsed competitor offers for the
// given product. Invalid rows are logged and skipped; the import never
// fails half-way because one row was bad. Returns the number of stored
// offers.
func (s *offersService) ImportOffers(ctx context.Context, productID uint64, batch []domain.Offer) (int, error) {
	if productID == 0 {
		logger.Error("invalid product id when importing offers")
		return 0, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	imported := 0
	for i := range batch {
		offer := batch[i]
		offer.ProductID = productID

		if _, err := s.CreateOffer(ctx, &offer); err != nil {
			logger.Warn("skipping invalid imported offer", "source", offer.Source, "error", err)
			continue
		}
		imported++
	}

	return imported, nil
}

func validateOffer(offer *domain.Offer) error {
	if offer.Source == "" {
		return errors.New("offer source is required")
	}
	if offer.ProductID == 0 {
		return errors.New("offer product id is required")
	}
	if offer.BasePrice < 0 {
		return errors.New("base price cannot be negative")
	}
	if offer.ShippingFee < 0 || offer.CODFee < 0 || offer.CouponValue < 0 {
		return errors.New("fees and coupon value cannot be negative")
	}
	if offer.Rating != nil && (*offer.Rating < 0 || *offer.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	if offer.RatingCount < 0 {
		return errors.New("rating count cannot be negative")
	}
	if offer.DomainAgeYears < 0 {
		return errors.New("domain age cannot be negative")
	}
	return nil
}
