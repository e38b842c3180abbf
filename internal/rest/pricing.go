package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"pricepilot/domain"
	"pricepilot/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PricingHandler struct {
		validate       *validator.Validate
		pricingService PricingService
		timeout        time.Duration
	}

	PricingService interface {
		PriceProduct(ctx context.Context, req domain.PricingRequest) (domain.Decision, error)
		EvaluateOffers(ctx context.Context, offers []domain.Offer, location string) []domain.NormalizedOffer
		LatestDecision(ctx context.Context, productID uint64, location string) (domain.DecisionRecord, error)
	}

	DecideRequest struct {
		ProductID      uint64   `json:"product_id" validate:"required"`
		ProductName    string   `json:"product_name" validate:"required"`
		Brand          string   `json:"brand"`
		Location       string   `json:"location"`
		CostPrice      float64  `json:"cost_price" validate:"required,gt=0"`
		MinMarginPct   float64  `json:"min_margin_pct" validate:"gte=0"`
		TargetPosition string   `json:"target_position"`
		BeatPct        float64  `json:"beat_pct" validate:"gte=0,lt=100"`
		Channels       []string `json:"channels_to_consider"`
		TaxRatePct     float64  `json:"tax_rate_pct" validate:"gte=0"`
		Currency       string   `json:"currency"`
	}

	EvaluateRequest struct {
		Location string         `json:"location"`
		Offers   []domain.Offer `json:"offers" validate:"required,min=1"`
	}
)

func NewPricingHandler(svc PricingService) *PricingHandler {
	return &PricingHandler{
		validate:       validator.New(),
		pricingService: svc,
		timeout:        10 * time.Second,
	}
}

// POST /api/v1/pricing/decide
func (h *PricingHandler) Decide(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.PricingDecideLatency.Observe(time.Since(timer).Seconds())
	}()
	metrics.PricingDecideRequests.Inc()

	var req DecideRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	decision, err := h.pricingService.PriceProduct(ctx, domain.PricingRequest{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		Brand:        req.Brand,
		Location:     req.Location,
		CostPrice:    req.CostPrice,
		MinMarginPct: req.MinMarginPct,
		Target:       domain.ParseStrategy(req.TargetPosition),
		BeatPct:      req.BeatPct,
		Channels:     req.Channels,
		TaxRatePct:   req.TaxRatePct,
		Currency:     req.Currency,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(decision))
}

// POST /api/v1/pricing/evaluate
// Dry run: normalize, score and filter caller-supplied offers without
// storing anything.
func (h *PricingHandler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	evaluated := h.pricingService.EvaluateOffers(ctx, req.Offers, req.Location)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(evaluated))
}

// GET /api/v1/pricing/decisions/:productId?location=...
func (h *PricingHandler) LatestDecision(c echo.Context) error {
	productIDStr := c.Param("productId")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.pricingService.LatestDecision(ctx, productID, c.QueryParam("location"))
	if err != nil {
		if err.Error() == "pricing decision not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}
