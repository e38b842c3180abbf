package postgres

import (
	"context"
	"errors"
	"fmt"

	"pricepilot/domain"

	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{
		DB: db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uint64) (domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Offer{}, fmt.Errorf("context error: %w", err)
	}

	var offer domain.Offer

	err := r.DB.WithContext(ctx).First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Offer{}, errors.New("offer not found")
		}
		return domain.Offer{}, fmt.Errorf("failed to find offer: %w", err)
	}

	return offer, nil
}

func (r *OfferRepository) FindByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.Offer
	err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	return offers, nil
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.Offer
	err := r.DB.WithContext(ctx).Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	return offers, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Offer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("offer not found or already deleted")
	}

	return nil
}
