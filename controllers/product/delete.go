package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct hard-deletes a product. Orders are unaffected: they hold a
// denormalized copy of name/price/image from purchase time.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			log.Printf("❌ Error loading product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting product"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			log.Printf("❌ Error deleting product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting product"})
			return
		}

		log.Printf("🗑️ Product deleted: %s", product.Name)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
