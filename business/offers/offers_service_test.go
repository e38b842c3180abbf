//go:build !integration

package offers

import (
	"context"
	"errors"
	"testing"

	"pricepilot/domain"
)

type fakeOfferRepo struct {
	offers  map[uint64]domain.Offer
	nextID  uint64
	deleted []uint64
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[uint64]domain.Offer), nextID: 1}
}

func (f *fakeOfferRepo) Create(ctx context.Context, offer *domain.Offer) error {
	offer.ID = f.nextID
	f.nextID++
	f.offers[offer.ID] = *offer
	return nil
}

func (f *fakeOfferRepo) FindByID(ctx context.Context, id uint64) (domain.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return domain.Offer{}, errors.New("offer not found")
	}
	return o, nil
}

func (f *fakeOfferRepo) FindByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error) {
	var out []domain.Offer
	for _, o := range f.offers {
		if o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferRepo) FindAll(ctx context.Context) ([]domain.Offer, error) {
	var out []domain.Offer
	for _, o := range f.offers {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOfferRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.offers[id]; !ok {
		return errors.New("offer not found")
	}
	delete(f.offers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateOffer(t *testing.T) {
	repo := newFakeOfferRepo()
	svc := NewOffersService(repo)

	created, err := svc.CreateOffer(context.Background(), &domain.Offer{
		Source:    "amazon",
		ProductID: 1,
		BasePrice: 112,
		InStock:   true,
	})
	if err != nil {
		t.Fatalf("CreateOffer returned error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected the repository to assign an id")
	}
	if created.FetchedAt.IsZero() {
		t.Error("expected a default fetched_at timestamp")
	}
}

func TestCreateOffer_Validation(t *testing.T) {
	svc := NewOffersService(newFakeOfferRepo())
	badRating := 6.0

	cases := []struct {
		name  string
		offer domain.Offer
	}{
		{"missing source", domain.Offer{ProductID: 1, BasePrice: 10}},
		{"missing product id", domain.Offer{Source: "amazon", BasePrice: 10}},
		{"negative base price", domain.Offer{Source: "amazon", ProductID: 1, BasePrice: -1}},
		{"negative shipping fee", domain.Offer{Source: "amazon", ProductID: 1, ShippingFee: -5}},
		{"rating out of range", domain.Offer{Source: "amazon", ProductID: 1, Rating: &badRating}},
		{"negative rating count", domain.Offer{Source: "amazon", ProductID: 1, RatingCount: -2}},
		{"negative domain age", domain.Offer{Source: "amazon", ProductID: 1, DomainAgeYears: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer := tc.offer
			if _, err := svc.CreateOffer(context.Background(), &offer); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestDeleteOffer(t *testing.T) {
	repo := newFakeOfferRepo()
	svc := NewOffersService(repo)

	created, err := svc.CreateOffer(context.Background(), &domain.Offer{Source: "amazon", ProductID: 1})
	if err != nil {
		t.Fatalf("CreateOffer returned error: %v", err)
	}

	if err := svc.DeleteOffer(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteOffer returned error: %v", err)
	}
	if err := svc.DeleteOffer(context.Background(), created.ID); err == nil {
		t.Error("deleting a missing offer must fail")
	}
	if err := svc.DeleteOffer(context.Background(), 0); err == nil {
		t.Error("deleting id 0 must fail")
	}
}

func TestImportOffers_SkipsInvalidRows(t *testing.T) {
	repo := newFakeOfferRepo()
	svc := NewOffersService(repo)

	batch := []domain.Offer{
		{Source: "amazon", BasePrice: 112, InStock: true},
		{Source: "", BasePrice: 115}, // no source, skipped
		{Source: "dmart", BasePrice: -10},
		{Source: "flipkart", BasePrice: 115, InStock: true},
	}

	imported, err := svc.ImportOffers(context.Background(), 42, batch)
	if err != nil {
		t.Fatalf("ImportOffers returned error: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2", imported)
	}

	stored, _ := repo.FindByProduct(context.Background(), 42)
	if len(stored) != 2 {
		t.Errorf("stored %d offers for product 42, want 2", len(stored))
	}
	for _, o := range stored {
		if o.ProductID != 42 {
			t.Errorf("imported offer kept product id %d, want 42", o.ProductID)
		}
	}
}

func TestImportOffers_RequiresProductID(t *testing.T) {
	svc := NewOffersService(newFakeOfferRepo())

	if _, err := svc.ImportOffers(context.Background(), 0, []domain.Offer{{Source: "amazon"}}); err == nil {
		t.Error("expected an error for product id 0")
	}
}
