package catalog

import (
	"github.com/HafizBasit7/ZES-Admin/models"
	"gorm.io/gorm"
)

// ActiveCategories returns the active categories sorted by name. When
// withCounts is set, per-category active-product counts are computed with a
// single grouped query instead of one count per category.
func ActiveCategories(db *gorm.DB, withCounts bool) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	if !withCounts || len(categories) == 0 {
		return categories, nil
	}

	ids := make([]uint, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}

	type categoryCount struct {
		CategoryID uint
		Count      int
	}
	var counts []categoryCount
	err = db.Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IN ? AND is_active = ?", ids, true).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByID := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByID[c.CategoryID] = c.Count
	}
	for i := range categories {
		categories[i].ProductsCount = countByID[categories[i].ID]
	}
	return categories, nil
}

// CountProductsInCategory returns the number of products referencing the
// category, active or not. Deletion is refused while this is non-zero.
func CountProductsInCategory(db *gorm.DB, categoryID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
