package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{ShippingFlatFee: 200, FreeShippingThreshold: 5000}
	r := gin.New()
	r.POST("/api/cart/quote", QuoteCart(cfg))
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestQuoteCart(t *testing.T) {
	r := quoteRouter()

	code, resp := postQuote(t, r, `{"items":[
		{"id":"1","name":"Item A","price":100,"quantity":2,"stock":10},
		{"id":"2","name":"Item B","price":50,"quantity":1,"stock":10}
	]}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 250.0, resp["subtotal"])
	assert.Equal(t, 200.0, resp["shippingFee"])
	assert.Equal(t, 450.0, resp["total"])
	assert.Equal(t, 3.0, resp["count"])
}

func TestQuoteCartClampsQuantities(t *testing.T) {
	r := quoteRouter()

	// Same product twice, each add within stock but cumulatively over it.
	code, resp := postQuote(t, r, `{"items":[
		{"id":"1","name":"Breaker","price":100,"quantity":3,"stock":5},
		{"id":"1","name":"Breaker","price":100,"quantity":4,"stock":5}
	]}`)

	require.Equal(t, http.StatusOK, code)
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 5.0, items[0].(map[string]any)["quantity"])
	assert.Equal(t, 500.0, resp["subtotal"])
}

func TestQuoteCartFreeShipping(t *testing.T) {
	r := quoteRouter()

	code, resp := postQuote(t, r, `{"items":[
		{"id":"1","name":"Generator","price":5200,"quantity":1,"stock":2}
	]}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, resp["shippingFee"])
	assert.Equal(t, 5200.0, resp["total"])
}

func TestQuoteCartEmpty(t *testing.T) {
	r := quoteRouter()

	code, resp := postQuote(t, r, `{"items":[]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, resp["subtotal"])
	assert.Equal(t, 200.0, resp["shippingFee"], "empty cart is still below the threshold")
}

func TestQuoteCartRejectsBadBody(t *testing.T) {
	r := quoteRouter()

	code, _ := postQuote(t, r, `{"items": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
