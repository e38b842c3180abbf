package router

import (
	"pricepilot/internal/middleware"
	"pricepilot/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupPricingRoutes(api *echo.Group, handler *rest.PricingHandler) {
	pricing := api.Group("/pricing")

	pricing.POST("/decide", handler.Decide)
	pricing.POST("/evaluate", handler.Evaluate)
	pricing.GET("/decisions/:productId", handler.LatestDecision)
}

func SetupOffersRoutes(api *echo.Group, handler *rest.OffersHandler) {
	offers := api.Group("/offers")

	offers.GET("", handler.GetAllOffers)
	offers.GET("/product/:productId", handler.GetOffersByProduct)
	offers.POST("", handler.CreateOffer)
	offers.POST("/import/:productId", handler.ImportOffers)
	offers.DELETE("/:id", handler.DeleteOffer)
}

func SetPricingAdminRoutes(api *echo.Group, handler *rest.PricingAdminHandler) {
	admin := api.Group("/admin/pricing", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
