package productcontroller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/catalog"
	"github.com/HafizBasit7/ZES-Admin/identifier"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategories serves the public category listing: active categories by
// name, optionally with per-category product counts.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		withCounts := c.Query("includeProductsCount") == "true"

		categories, err := catalog.ActiveCategories(db, withCounts)
		if err != nil {
			log.Printf("❌ Error fetching categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":    "Internal server error",
				"categories": []models.Category{},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// GetAdminCategories lists all categories for the dashboard, newest first.
func GetAdminCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("created_at DESC").Find(&categories).Error; err != nil {
			log.Printf("❌ Error fetching categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateCategory creates a category with a slug derived from its name.
// Duplicate names or slugs are conflicts, not generic failures.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" || req.Description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and description are required"})
			return
		}

		slug := identifier.Slugify(name)

		var existing models.Category
		err := db.Where("name = ? OR slug = ?", name, slug).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category with this name already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Error checking category uniqueness: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating category"})
			return
		}

		category := models.Category{
			Name:        name,
			Slug:        slug,
			Description: req.Description,
			Image:       req.Image,
			IsActive:    true,
		}

		if err := db.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Category with this name or slug already exists"})
				return
			}
			log.Printf("❌ Error creating category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating category"})
			return
		}

		log.Printf("✅ Category created successfully: %s", category.Name)
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Category created successfully",
			"category": category,
		})
	}
}

type updateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"isActive"`
}

// UpdateCategory fully replaces a category's mutable fields.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			log.Printf("❌ Error loading category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating category"})
			return
		}

		var req updateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		slug := strings.ToLower(strings.TrimSpace(req.Slug))
		if name == "" || slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and slug are required"})
			return
		}

		var other models.Category
		err := db.Where("slug = ? AND id <> ?", slug, category.ID).First(&other).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Slug already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Error checking slug uniqueness: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating category"})
			return
		}

		category.Name = name
		category.Slug = slug
		category.Description = strings.TrimSpace(req.Description)
		category.Image = req.Image
		category.IsActive = req.IsActive

		if err := db.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category with this name or slug already exists"})
				return
			}
			log.Printf("❌ Error updating category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}

type patchCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

// PatchCategory applies a partial update; only fields present in the body
// are touched. The dashboard uses it to flip the active flag.
func PatchCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			log.Printf("❌ Error loading category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating category"})
			return
		}

		var req patchCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		if req.Name != nil {
			category.Name = strings.TrimSpace(*req.Name)
		}
		if req.Slug != nil {
			category.Slug = strings.ToLower(strings.TrimSpace(*req.Slug))
		}
		if req.Description != nil {
			category.Description = strings.TrimSpace(*req.Description)
		}
		if req.Image != nil {
			category.Image = *req.Image
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}

		if err := db.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category with this name or slug already exists"})
				return
			}
			log.Printf("❌ Error updating category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}

// DeleteCategory removes a category, but only when no products reference it.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			log.Printf("❌ Error loading category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting category"})
			return
		}

		productCount, err := catalog.CountProductsInCategory(db, category.ID)
		if err != nil {
			log.Printf("❌ Error counting products for category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting category"})
			return
		}

		if productCount > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Cannot delete category. It has %d product(s) associated.", productCount),
			})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			log.Printf("❌ Error deleting category %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting category"})
			return
		}

		log.Printf("🗑️ Category deleted: %s", category.Name)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
	}
}
