package fetcher

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"pricepilot/domain"
)

// CSVFetcher reads competitor offers from a local header-mapped CSV file
// (the sample_offers.csv layout). Used as the "local" channel for dry runs
// without any marketplace integration.
type CSVFetcher struct {
	Path string
}

func (f *CSVFetcher) Fetch(ctx context.Context, query, brand string) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open offers csv: %w", err)
	}
	defer file.Close()

	return ParseOffers(file)
}

// ParseOffers decodes a header-mapped offers CSV stream. Columns beyond
// source may be absent; missing values stay at their zero value and are
// defaulted later by normalization.
func ParseOffers(r io.Reader) ([]domain.Offer, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["source"]; !ok {
		return nil, fmt.Errorf("csv is missing the source column")
	}

	var offers []domain.Offer
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		offers = append(offers, offerFromRow(col, row))
	}

	return offers, nil
}

func offerFromRow(col map[string]int, row []string) domain.Offer {
	get := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	getFloat := func(name string) float64 {
		v, err := strconv.ParseFloat(get(name), 64)
		if err != nil {
			return 0
		}
		return v
	}
	getBool := func(name string, defaultVal bool) bool {
		switch strings.ToLower(get(name)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		default:
			return defaultVal
		}
	}

	offer := domain.Offer{
		Source:         get("source"),
		ProductTitle:   get("product_title"),
		BasePrice:      getFloat("base_price"),
		ShippingFee:    getFloat("shipping_fee"),
		CODFee:         getFloat("cod_fee"),
		CouponValue:    getFloat("coupon_value"),
		InStock:        getBool("in_stock", false),
		DomainAgeYears: getFloat("domain_age_years"),
		Pincode:        get("pincode"),
		URL:            get("url"),
		FetchedAt:      time.Now(),
	}

	if v := get("rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			offer.Rating = &rating
		}
	}
	if v := get("rating_count"); v != "" {
		if count, err := strconv.Atoi(v); err == nil {
			offer.RatingCount = count
		}
	}
	if v := get("https"); v != "" {
		https := getBool("https", true)
		offer.HTTPS = &https
	}
	if v := get("has_policy_pages"); v != "" {
		policy := getBool("has_policy_pages", true)
		offer.HasPolicyPages = &policy
	}

	return offer
}
