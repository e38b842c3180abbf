package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pricepilot/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PricingConfigRepository struct {
	DB *gorm.DB
}

func NewPricingConfigRepository(db *gorm.DB) *PricingConfigRepository {
	return &PricingConfigRepository{
		DB: db,
	}
}

func (r *PricingConfigRepository) GetConfig(ctx context.Context, scope string) (domain.PricingConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.PricingConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.PricingConfig

	err := r.DB.WithContext(ctx).Where("scope = ?", scope).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PricingConfig{}, false, nil
		}
		return domain.PricingConfig{}, false, fmt.Errorf("failed to load pricing config: %w", err)
	}

	return cfg, true, nil
}

func (r *PricingConfigRepository) UpsertConfig(ctx context.Context, cfg domain.PricingConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	cfg.UpdatedAt = time.Now()

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}},
		DoUpdates: clause.AssignmentColumns([]string{"legit_threshold", "top_n_for_envelope", "small_delta", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert pricing config: %w", err)
	}

	return nil
}
