package pricing

import (
	"math"
	"pricepilot/domain"
)

// ComparablePrice is the total cost to the buyer for one offer:
// base + shipping + COD fee - coupon, floored at zero. Missing numeric
// fields arrive as zero values, so no defaulting is needed here.
func ComparablePrice(o domain.Offer) float64 {
	total := o.BasePrice + o.ShippingFee + o.CODFee - o.CouponValue
	return math.Max(total, 0)
}

// Normalize resolves every optional field of an Offer into a fully-defaulted
// NormalizedOffer and fills in the comparable price and legitimacy score.
// Downstream logic never branches on absence again. DeliversToLocation is
// left false; the service fills it from the injected DeliveryChecker.
func Normalize(o domain.Offer) domain.NormalizedOffer {
	n := domain.NormalizedOffer{
		Source:         o.Source,
		ProductTitle:   o.ProductTitle,
		BasePrice:      o.BasePrice,
		ShippingFee:    o.ShippingFee,
		CODFee:         o.CODFee,
		CouponValue:    o.CouponValue,
		InStock:        o.InStock,
		RatingCount:    o.RatingCount,
		DomainAgeYears: o.DomainAgeYears,
		Pincode:        o.Pincode,
		URL:            o.URL,

		// absent attributes default permissively, never error
		HTTPS:          true,
		HasPolicyPages: true,
	}

	if o.HTTPS != nil {
		n.HTTPS = *o.HTTPS
	}
	if o.HasPolicyPages != nil {
		n.HasPolicyPages = *o.HasPolicyPages
	}
	if o.Rating != nil {
		n.Rating = *o.Rating
		n.HasRating = true
	}

	n.ComparablePrice = ComparablePrice(o)
	n.LegitimacyScore = ScoreLegitimacy(n)

	return n
}
