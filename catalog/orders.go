package catalog

import (
	"net/url"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/models"
	"gorm.io/gorm"
)

// OrderListParams are the admin order-list filters.
type OrderListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ParseOrderListParams normalizes the admin order-list query. The admin
// table uses a smaller default page size than the public catalog; "all" is
// the UI's no-filter status value.
func ParseOrderListParams(query url.Values, defaultLimit, maxLimit int) OrderListParams {
	status := strings.TrimSpace(query.Get("status"))
	if status == "all" {
		status = ""
	}
	return OrderListParams{
		Status: status,
		Search: strings.TrimSpace(query.Get("search")),
		Page:   parsePage(query.Get("page")),
		Limit:  parseLimit(query.Get("limit"), defaultLimit, maxLimit),
	}
}

// ListOrders returns a page of orders for the admin dashboard, newest first,
// filtered by status and a search over order number, customer name and
// customer email.
func ListOrders(db *gorm.DB, params OrderListParams) ([]models.Order, Pagination, error) {
	query := db.Model(&models.Order{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"order_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var orders []models.Order
	err := query.
		Preload("Items").
		Order("created_at DESC, id DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return orders, paginate(params.Page, params.Limit, total), nil
}
