// Package catalog turns storefront query parameters into filtered, sorted,
// paginated listings over the products, categories and orders tables.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams are the recognized product-listing parameters. Malformed values
// are coerced to defaults, never rejected.
type ListParams struct {
	Category string
	Search   string
	Page     int
	Limit    int
	Featured bool
}

// Pagination describes one result page.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ParseListParams normalizes the public product-listing query: page defaults
// to 1, limit defaults to defaultLimit and is hard-capped at maxLimit.
func ParseListParams(query url.Values, defaultLimit, maxLimit int) ListParams {
	return ListParams{
		Category: strings.TrimSpace(query.Get("category")),
		Search:   strings.TrimSpace(query.Get("search")),
		Page:     parsePage(query.Get("page")),
		Limit:    parseLimit(query.Get("limit"), defaultLimit, maxLimit),
		Featured: query.Get("featured") == "true",
	}
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseLimit(raw string, fallback, max int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

// Pages computes the page count for a total and limit, rounding up.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func paginate(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: Pages(total, limit),
	}
}
