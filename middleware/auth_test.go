package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HafizBasit7/ZES-Admin/auth"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		CookieName:    "admin-token",
		TokenValidity: 7 * 24 * time.Hour,
	}
}

func gatedRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/admin")
	group.Use(RequireAdmin(cfg))
	group.GET("/auth/me", func(c *gin.Context) {
		claims := c.MustGet(ContextAdminKey).(*auth.AdminClaims)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestRequireAdminWithoutCookie(t *testing.T) {
	r := gatedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestRequireAdminWithInvalidCookie(t *testing.T) {
	r := gatedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-token", Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String(), "invalid and absent cookies answer identically")
}

func TestRequireAdminWithValidCookie(t *testing.T) {
	cfg := testConfig()
	r := gatedRouter(cfg)

	token, err := auth.SignAdminToken(cfg, models.Admin{
		ID:       1,
		Username: "superadmin",
		Email:    "admin@zahidelectric.com",
		Role:     models.AdminRoleSuperAdmin,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"admin@zahidelectric.com"}`, w.Body.String())
}

func TestRequireAdminWithExpiredCookie(t *testing.T) {
	cfg := testConfig()

	expired := cfg
	expired.TokenValidity = -time.Hour
	token, err := auth.SignAdminToken(expired, models.Admin{ID: 1, Email: "admin@zahidelectric.com"})
	require.NoError(t, err)

	r := gatedRouter(cfg)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
