package rest

import (
	"net/http"

	"pricepilot/business/pricing"
	"pricepilot/domain"

	"github.com/labstack/echo/v4"
)

type PricingAdminHandler struct {
	cfgRepo pricing.ConfigRepository
}

func NewPricingAdminHandler(cfgRepo pricing.ConfigRepository) *PricingAdminHandler {
	return &PricingAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/admin/pricing/config?scope=
func (h *PricingAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	scope := c.QueryParam("scope")

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, scope)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/pricing/config
// body: PricingConfig JSON
func (h *PricingAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.PricingConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.LegitThreshold < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "legit_threshold cannot be negative",
		})
	}
	if body.TopNForEnvelope < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "top_n_for_envelope cannot be negative",
		})
	}

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
