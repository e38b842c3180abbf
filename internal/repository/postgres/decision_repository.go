package postgres

import (
	"context"
	"errors"
	"fmt"

	"pricepilot/domain"

	"gorm.io/gorm"
)

type DecisionRepository struct {
	DB *gorm.DB
}

func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{
		DB: db,
	}
}

func (r *DecisionRepository) Save(ctx context.Context, rec *domain.DecisionRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to save pricing decision: %w", err)
	}

	return nil
}

func (r *DecisionRepository) FindLatest(ctx context.Context, productID uint64, location string) (domain.DecisionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.DecisionRecord{}, fmt.Errorf("context error: %w", err)
	}

	var rec domain.DecisionRecord

	err := r.DB.WithContext(ctx).
		Where("product_id = ? AND location = ?", productID, location).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DecisionRecord{}, errors.New("pricing decision not found")
		}
		return domain.DecisionRecord{}, fmt.Errorf("failed to find pricing decision: %w", err)
	}

	return rec, nil
}

func (r *DecisionRepository) FindByProduct(ctx context.Context, productID uint64, limit int) ([]domain.DecisionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	var recs []domain.DecisionRecord
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing decisions: %w", err)
	}

	return recs, nil
}
