package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/catalog"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductBySlug serves the product detail page. Inactive products are
// invisible here, same as in the listing.
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		product, err := catalog.FindActiveProductBySlug(db, slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		if err != nil {
			log.Printf("❌ Error fetching product %q: %v", slug, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": catalog.TransformProduct(product)})
	}
}
