package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the API routes with the standard middleware chain.
func NewRouter(handler *Handler, logger *zap.Logger, newSessionID func() string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(Logger(logger))
	router.Use(Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(SessionID(newSessionID))
	{
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.POST("/products/:id/selection", handler.SelectVariant)

		api.GET("/cart", handler.ViewCart)
		api.POST("/cart/items", handler.AddToCart)
		api.DELETE("/cart/items/:variantId", handler.RemoveItem)
		api.PATCH("/cart/items/:variantId", handler.UpdateQuantity)
		api.POST("/cart/items/:variantId/selection", handler.ToggleSelection)
		api.PUT("/cart/selection", handler.SetAllSelection)
		api.POST("/cart/drawer", handler.ToggleDrawer)

		api.GET("/checkout", handler.CheckoutSummary)
		api.POST("/checkout/orders", handler.PlaceOrder)
	}

	return router
}
