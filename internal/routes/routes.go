package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-manager/internal/handlers"
	"catalog-manager/internal/metrics"
)

func RegisterRoutes(router *gin.Engine, h *handlers.ProductHandler, m *metrics.Metrics) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/products", h.ListProducts)
		v1.POST("/products", h.CreateProduct)
		v1.DELETE("/products", h.DeleteProducts)
		v1.GET("/products/:sku", h.GetProduct)
		v1.GET("/products/:sku/form", h.GetProductForm)
		v1.PUT("/products/:sku", h.UpdateProduct)

		v1.GET("/selection", h.GetSelection)
		v1.POST("/selection/delete", h.DeleteSelected)
		v1.POST("/selection/:sku", h.ToggleSelection)
	}
}
