package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.pricing_decisions (
//     id                UUID PRIMARY KEY,
//     product_id        BIGINT,
//     location          TEXT,
//     strategy          TEXT,
//     recommended_price NUMERIC,
//     margin_floor      NUMERIC,
//     p_lowest          NUMERIC,
//     p_top3            NUMERIC,
//     notes             JSONB,
//     anchors           JSONB,
//     created_at        TIMESTAMPTZ DEFAULT NOW()
// );

// DecisionRecord is a persisted pricing decision, one row per engine
// invocation.
type DecisionRecord struct {
	ID               string         `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	ProductID        uint64         `gorm:"column:product_id" json:"product_id"`
	Location         string         `gorm:"column:location;type:text" json:"location"`
	Strategy         string         `gorm:"column:strategy;type:text" json:"strategy"`
	RecommendedPrice float64        `gorm:"column:recommended_price;type:numeric" json:"recommended_price"`
	MarginFloor      float64        `gorm:"column:margin_floor;type:numeric" json:"margin_floor"`
	PLowest          *float64       `gorm:"column:p_lowest;type:numeric" json:"p_lowest,omitempty"`
	PTop3            *float64       `gorm:"column:p_top3;type:numeric" json:"p_top3,omitempty"`
	Notes            datatypes.JSON `gorm:"column:notes;type:jsonb" json:"notes"`
	Anchors          datatypes.JSON `gorm:"column:anchors;type:jsonb" json:"anchors"`
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (DecisionRecord) TableName() string {
	return "pricing_decisions"
}
