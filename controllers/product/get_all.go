package productcontroller

import (
	"log"
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/catalog"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts serves the public catalog listing with category/search/featured
// filters and pagination. Bad pagination input is coerced, never rejected; a
// store failure degrades to an empty list with a generic message.
func GetProducts(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.ParseListParams(c.Request.URL.Query(), cfg.DefaultPageSize, cfg.MaxPageSize)

		products, pagination, err := catalog.ListProducts(db, params)
		if err != nil {
			log.Printf("❌ Error fetching products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":  "Internal server error",
				"products": []catalog.ProductView{},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"pagination": pagination,
		})
	}
}
