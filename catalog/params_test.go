package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParamsDefaults(t *testing.T) {
	params := ParseListParams(url.Values{}, 24, 50)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 24, params.Limit)
	assert.Empty(t, params.Category)
	assert.Empty(t, params.Search)
	assert.False(t, params.Featured)
}

func TestParseListParamsCoercion(t *testing.T) {
	cases := []struct {
		name      string
		query     url.Values
		wantPage  int
		wantLimit int
	}{
		{"negative page", url.Values{"page": {"-3"}}, 1, 24},
		{"zero page", url.Values{"page": {"0"}}, 1, 24},
		{"garbage page", url.Values{"page": {"abc"}}, 1, 24},
		{"valid page", url.Values{"page": {"7"}}, 7, 24},
		{"limit over cap", url.Values{"limit": {"500"}}, 1, 50},
		{"limit at cap", url.Values{"limit": {"50"}}, 1, 50},
		{"garbage limit", url.Values{"limit": {"x"}}, 1, 24},
		{"zero limit", url.Values{"limit": {"0"}}, 1, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := ParseListParams(tc.query, 24, 50)
			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantLimit, params.Limit)
		})
	}
}

func TestParseListParamsFields(t *testing.T) {
	query := url.Values{
		"category": {" wires-cables "},
		"search":   {" breaker "},
		"featured": {"true"},
	}
	params := ParseListParams(query, 24, 50)

	assert.Equal(t, "wires-cables", params.Category)
	assert.Equal(t, "breaker", params.Search)
	assert.True(t, params.Featured)

	params = ParseListParams(url.Values{"featured": {"yes"}}, 24, 50)
	assert.False(t, params.Featured, "only the literal \"true\" enables the filter")
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 24, 0},
		{1, 24, 1},
		{24, 24, 1},
		{25, 24, 2},
		{100, 10, 10},
		{101, 10, 11},
		{49, 50, 1},
		{51, 50, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Pages(tc.total, tc.limit), "Pages(%d, %d)", tc.total, tc.limit)
	}
}

func TestParseOrderListParams(t *testing.T) {
	params := ParseOrderListParams(url.Values{}, 10, 50)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Empty(t, params.Status)

	params = ParseOrderListParams(url.Values{
		"status": {"all"},
		"search": {" ORD123 "},
		"page":   {"2"},
	}, 10, 50)
	assert.Empty(t, params.Status, "\"all\" means no status filter")
	assert.Equal(t, "ORD123", params.Search)
	assert.Equal(t, 2, params.Page)

	params = ParseOrderListParams(url.Values{"status": {"shipped"}}, 10, 50)
	assert.Equal(t, "shipped", params.Status)
}
