package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/identifier"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createProductRequest struct {
	Name           string            `json:"name"`
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
}

// CreateProduct creates a product with an auto-generated slug and SKU. An
// explicit SKU override is uppercased and checked for uniqueness first.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		if req.Name == "" || req.Description == "" || req.Price <= 0 || req.Category == 0 || req.Brand == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Name, description, price, category, and brand are required",
			})
			return
		}

		var category models.Category
		if err := db.First(&category, req.Category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}

		slug := identifier.Slugify(req.Name)

		var existing models.Product
		err := db.Where("name = ? OR slug = ?", req.Name, slug).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product with this name already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Error checking product uniqueness: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product"})
			return
		}

		sku := strings.ToUpper(strings.TrimSpace(req.SKU))
		if sku == "" {
			sku = identifier.NewSKU()
		} else {
			err := db.Where("sku = ?", sku).First(&existing).Error
			if err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "SKU already exists"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ Error checking SKU uniqueness: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product"})
				return
			}
		}

		product := models.Product{
			Name:           strings.TrimSpace(req.Name),
			Slug:           slug,
			Description:    req.Description,
			Price:          req.Price,
			OriginalPrice:  req.OriginalPrice,
			CategoryID:     category.ID,
			Images:         req.Images,
			Specifications: req.Specifications,
			Features:       req.Features,
			Stock:          req.Stock,
			SKU:            sku,
			Brand:          strings.TrimSpace(req.Brand),
			IsFeatured:     req.IsFeatured,
			IsActive:       true,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product with this name or SKU already exists"})
				return
			}
			log.Printf("❌ Error creating product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product"})
			return
		}

		product.Category = &category
		log.Printf("✅ Product created successfully: %s", product.Name)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": product,
		})
	}
}
