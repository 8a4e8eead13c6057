package catalog

import (
	"errors"
	"strconv"

	"github.com/HafizBasit7/ZES-Admin/models"
	"gorm.io/gorm"
)

// Listing sort: featured products first, then newest. The trailing id makes
// the order fully deterministic for rows created in the same millisecond.
const productSort = "is_featured DESC, created_at DESC, id DESC"

// CategoryRef is the reduced category shape embedded in listing results.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductView is a product as the storefront sees it: string id, reduced
// category, optional fields defaulted.
type ProductView struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Images         []string          `json:"images"`
	Category       *CategoryRef      `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	Brand          string            `json:"brand"`
	IsFeatured     bool              `json:"isFeatured"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	CreatedAt      string            `json:"createdAt"`
}

// TransformProduct shapes a product record for the public listing, filling
// the defaults the storefront relies on.
func TransformProduct(p models.Product) ProductView {
	view := ProductView{
		ID:             strconv.FormatUint(uint64(p.ID), 10),
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Images:         p.Images,
		Specifications: p.Specifications,
		Features:       p.Features,
		Stock:          p.Stock,
		SKU:            p.SKU,
		Brand:          p.Brand,
		IsFeatured:     p.IsFeatured,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		CreatedAt:      p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if view.Images == nil {
		view.Images = []string{}
	}
	if view.Specifications == nil {
		view.Specifications = map[string]string{}
	}
	if view.Features == nil {
		view.Features = []string{}
	}
	if p.Category != nil {
		view.Category = &CategoryRef{
			ID:   strconv.FormatUint(uint64(p.Category.ID), 10),
			Name: p.Category.Name,
			Slug: p.Category.Slug,
		}
	}
	return view
}

// ListProducts runs the public catalog query. Only active products are
// eligible. A category slug that matches no active category yields an empty
// page, not an error.
func ListProducts(db *gorm.DB, params ListParams) ([]ProductView, Pagination, error) {
	query := db.Model(&models.Product{}).Where("is_active = ?", true)

	if params.Category != "" {
		var category models.Category
		err := db.Where("slug = ? AND is_active = ?", params.Category, true).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ProductView{}, paginate(params.Page, params.Limit, 0), nil
		}
		if err != nil {
			return nil, Pagination{}, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern)
	}

	if params.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Order(productSort).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&products).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, TransformProduct(p))
	}
	return views, paginate(params.Page, params.Limit, total), nil
}

// FindActiveProductBySlug loads one active product for the detail page.
func FindActiveProductBySlug(db *gorm.DB, slug string) (models.Product, error) {
	var product models.Product
	err := db.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	return product, err
}
