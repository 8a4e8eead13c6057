package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type updateProductRequest struct {
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice"`
	Category       uint              `json:"category"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	Brand          string            `json:"brand"`
	IsFeatured     bool              `json:"isFeatured"`
	IsActive       bool              `json:"isActive"`
}

// UpdateProduct replaces a product's mutable fields. Slug and SKU conflicts
// against other products are rejected before the write.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			log.Printf("❌ Error loading product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating product"})
			return
		}

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		if req.Name == "" || req.Description == "" || req.Price <= 0 || req.Category == 0 || req.Brand == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Name, description, price, category, and brand are required",
			})
			return
		}

		var category models.Category
		if err := db.First(&category, req.Category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		slug := strings.ToLower(strings.TrimSpace(req.Slug))
		if slug != "" {
			var other models.Product
			err := db.Where("slug = ? AND id <> ?", slug, product.ID).First(&other).Error
			if err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product slug already exists"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ Error checking slug uniqueness: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating product"})
				return
			}
			product.Slug = slug
		}

		sku := strings.ToUpper(strings.TrimSpace(req.SKU))
		if sku != "" {
			var other models.Product
			err := db.Where("sku = ? AND id <> ?", sku, product.ID).First(&other).Error
			if err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ Error checking SKU uniqueness: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating product"})
				return
			}
			product.SKU = sku
		}

		product.Name = strings.TrimSpace(req.Name)
		product.Description = strings.TrimSpace(req.Description)
		product.Price = req.Price
		product.OriginalPrice = req.OriginalPrice
		product.CategoryID = category.ID
		product.Images = req.Images
		product.Specifications = req.Specifications
		product.Features = req.Features
		product.Stock = req.Stock
		product.Brand = strings.TrimSpace(req.Brand)
		product.IsFeatured = req.IsFeatured
		product.IsActive = req.IsActive

		if err := db.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product slug or SKU already exists"})
				return
			}
			log.Printf("❌ Error updating product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating product"})
			return
		}

		product.Category = &category
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
