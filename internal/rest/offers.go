package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"pricepilot/domain"
	"pricepilot/internal/fetcher"
	"pricepilot/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OffersService interface {
	GetAllOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffersByProduct(ctx context.Context, productID uint64) ([]domain.Offer, error)
	CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id uint64) error
	ImportOffers(ctx context.Context, productID uint64, batch []domain.Offer) (int, error)
}

type OffersHandler struct {
	offersService OffersService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewOffersHandler(offersService OffersService) *OffersHandler {
	return &OffersHandler{
		offersService: offersService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateOfferRequest struct {
	ProductID      uint64   `json:"product_id" validate:"required"`
	Source         string   `json:"source" validate:"required"`
	ProductTitle   string   `json:"product_title"`
	BasePrice      float64  `json:"base_price" validate:"gte=0"`
	ShippingFee    float64  `json:"shipping_fee" validate:"gte=0"`
	CODFee         float64  `json:"cod_fee" validate:"gte=0"`
	CouponValue    float64  `json:"coupon_value" validate:"gte=0"`
	InStock        bool     `json:"in_stock"`
	Rating         *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	RatingCount    int      `json:"rating_count" validate:"gte=0"`
	HTTPS          *bool    `json:"https"`
	DomainAgeYears float64  `json:"domain_age_years" validate:"gte=0"`
	HasPolicyPages *bool    `json:"has_policy_pages"`
	Pincode        string   `json:"pincode"`
	URL            string   `json:"url"`
}

func (h *OffersHandler) GetAllOffers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offers, err := h.offersService.GetAllOffers(ctx)
	if err != nil {
		logger.Error("failed to find all offers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(offers))
}

func (h *OffersHandler) GetOffersByProduct(c echo.Context) error {
	productIDStr := c.Param("productId")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		logger.Error("invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offers, err := h.offersService.GetOffersByProduct(ctx, productID)
	if err != nil {
		if err.Error() == "invalid product id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(offers))
}

func (h *OffersHandler) CreateOffer(c echo.Context) error {
	var req CreateOfferRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate offer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offer := &domain.Offer{
		ProductID:      req.ProductID,
		Source:         req.Source,
		ProductTitle:   req.ProductTitle,
		BasePrice:      req.BasePrice,
		ShippingFee:    req.ShippingFee,
		CODFee:         req.CODFee,
		CouponValue:    req.CouponValue,
		InStock:        req.InStock,
		Rating:         req.Rating,
		RatingCount:    req.RatingCount,
		HTTPS:          req.HTTPS,
		DomainAgeYears: req.DomainAgeYears,
		HasPolicyPages: req.HasPolicyPages,
		Pincode:        req.Pincode,
		URL:            req.URL,
	}

	newOffer, err := h.offersService.CreateOffer(ctx, offer)
	if err != nil {
		logger.Error("failed to create offer", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newOffer))
}

func (h *OffersHandler) DeleteOffer(c echo.Context) error {
	offerIDStr := c.Param("id")

	offerID, err := strconv.ParseUint(offerIDStr, 10, 64)
	if err != nil {
		logger.Error("invalid offer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.offersService.DeleteOffer(ctx, offerID)
	if err != nil {
		logger.Error("failed to delete offer", err)
		if err.Error() == "offer not found" || err.Error() == "invalid offer id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "offer successfully deleted",
		"offer_id": offerID,
	})
}

// POST /api/v1/offers/import/:productId
// Body: offers CSV (sample_offers.csv layout).
func (h *OffersHandler) ImportOffers(c echo.Context) error {
	productIDStr := c.Param("productId")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		logger.Error("invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	batch, err := fetcher.ParseOffers(c.Request().Body)
	if err != nil {
		logger.Error("failed to parse offers csv", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	imported, err := h.offersService.ImportOffers(ctx, productID, batch)
	if err != nil {
		logger.Error("failed to import offers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "offers imported",
		"imported": imported,
	})
}
