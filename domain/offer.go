package domain

import (
	"time"
)

// CREATE TABLE public.offers (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id       BIGINT,
//     source           TEXT,
//     product_title    TEXT,
//     base_price       NUMERIC,
//     shipping_fee     NUMERIC,
//     cod_fee          NUMERIC,
//     coupon_value     NUMERIC,
//     in_stock         BOOLEAN,
//     rating           NUMERIC,
//     rating_count     BIGINT,
//     https            BOOLEAN,
//     domain_age_years NUMERIC,
//     has_policy_pages BOOLEAN,
//     pincode          TEXT,
//     url              TEXT,
//     fetched_at       TIMESTAMPTZ DEFAULT NOW()
// );

// Offer is one competitor listing for a product as it arrives from a
// fetcher, a CSV import, or the API. Rating, HTTPS and HasPolicyPages are
// pointers because the upstream records may omit them; defaulting happens
// once, in normalization, never at read sites.
type Offer struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint64    `gorm:"column:product_id" json:"product_id"`
	Source         string    `gorm:"column:source;type:text" json:"source"`
	ProductTitle   string    `gorm:"column:product_title;type:text" json:"product_title"`
	BasePrice      float64   `gorm:"column:base_price;type:numeric" json:"base_price"`
	ShippingFee    float64   `gorm:"column:shipping_fee;type:numeric" json:"shipping_fee"`
	CODFee         float64   `gorm:"column:cod_fee;type:numeric" json:"cod_fee"`
	CouponValue    float64   `gorm:"column:coupon_value;type:numeric" json:"coupon_value"`
	InStock        bool      `gorm:"column:in_stock" json:"in_stock"`
	Rating         *float64  `gorm:"column:rating;type:numeric" json:"rating,omitempty"`
	RatingCount    int       `gorm:"column:rating_count" json:"rating_count"`
	HTTPS          *bool     `gorm:"column:https" json:"https,omitempty"`
	DomainAgeYears float64   `gorm:"column:domain_age_years;type:numeric" json:"domain_age_years"`
	HasPolicyPages *bool     `gorm:"column:has_policy_pages" json:"has_policy_pages,omitempty"`
	Pincode        string    `gorm:"column:pincode;type:text" json:"pincode"`
	URL            string    `gorm:"column:url;type:text" json:"url"`
	FetchedAt      time.Time `gorm:"column:fetched_at" json:"fetched_at"`
}

func (Offer) TableName() string {
	return "offers"
}

// NormalizedOffer is an Offer after the defaulting/derivation pass. All
// optional fields are resolved and the derived fields are filled in; it is
// never written back to an Offer.
type NormalizedOffer struct {
	Source         string  `json:"source"`
	ProductTitle   string  `json:"product_title"`
	BasePrice      float64 `json:"base_price"`
	ShippingFee    float64 `json:"shipping_fee"`
	CODFee         float64 `json:"cod_fee"`
	CouponValue    float64 `json:"coupon_value"`
	InStock        bool    `json:"in_stock"`
	Rating         float64 `json:"rating"`
	HasRating      bool    `json:"has_rating"`
	RatingCount    int     `json:"rating_count"`
	HTTPS          bool    `json:"https"`
	DomainAgeYears float64 `json:"domain_age_years"`
	HasPolicyPages bool    `json:"has_policy_pages"`
	Pincode        string  `json:"pincode"`
	URL            string  `json:"url"`

	ComparablePrice    float64 `json:"comparable_price"`
	LegitimacyScore    int     `json:"legitimacy_score"`
	DeliversToLocation bool    `json:"delivers_to_location"`
}
