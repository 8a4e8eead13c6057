package cartControllers

import (
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/cart"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Items []cart.Item `json:"items"`
}

// QuoteCart prices a client-held cart server-side. Quantities are re-clamped
// against each line's stock snapshot, so the response is also the normalized
// cart the client should store.
func QuoteCart(cfg config.Config) gin.HandlerFunc {
	pricing := cart.Pricing{
		FlatFee:       cfg.ShippingFlatFee,
		FreeThreshold: cfg.FreeShippingThreshold,
	}

	return func(c *gin.Context) {
		var req quoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		basket := cart.New()
		for _, item := range req.Items {
			basket.Add(item)
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       basket.Items(),
			"count":       basket.Count(),
			"subtotal":    basket.Subtotal(),
			"shippingFee": basket.ShippingFee(pricing),
			"total":       basket.Total(pricing),
		})
	}
}
