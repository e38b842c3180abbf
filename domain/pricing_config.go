package domain

import "time"

// PricingConfig is the stored override for the engine tunables. A single
// row per channel scope; scope "" is the global default.
type PricingConfig struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Scope           string    `gorm:"column:scope;type:text;uniqueIndex" json:"scope"`
	LegitThreshold  int       `gorm:"column:legit_threshold" json:"legit_threshold"`
	TopNForEnvelope int       `gorm:"column:top_n_for_envelope" json:"top_n_for_envelope"`
	SmallDelta      float64   `gorm:"column:small_delta;type:numeric" json:"small_delta"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PricingConfig) TableName() string {
	return "pricing_configs"
}
