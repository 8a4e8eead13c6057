package productcontroller

import (
	"log"
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminProducts lists every product for the dashboard, inactive ones
// included, newest first.
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Preload("Category").Order("created_at DESC, id DESC").Find(&products).Error
		if err != nil {
			log.Printf("❌ Error fetching products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}
