package auth

import (
	"testing"
	"time"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		TokenValidity: 7 * 24 * time.Hour,
	}
}

func testAdmin() models.Admin {
	return models.Admin{
		ID:       1,
		Username: "superadmin",
		Email:    "admin@zahidelectric.com",
		Role:     models.AdminRoleSuperAdmin,
	}
}

func TestSignAndParseRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := SignAdminToken(cfg, testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.AdminID)
	assert.Equal(t, "superadmin", claims.Username)
	assert.Equal(t, "admin@zahidelectric.com", claims.Email)
	assert.Equal(t, models.AdminRoleSuperAdmin, claims.Role)
}

func TestParseRejectsBadTokens(t *testing.T) {
	cfg := testConfig()

	token, err := SignAdminToken(cfg, testAdmin())
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
		cfg   config.Config
	}{
		{"garbage", "not-a-token", cfg},
		{"empty", "", cfg},
		{"wrong secret", token, config.Config{JWTSecret: "other-secret", TokenValidity: cfg.TokenValidity}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAdminToken(tc.cfg, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenValidity = -time.Hour

	token, err := SignAdminToken(cfg, testAdmin())
	require.NoError(t, err)

	_, err = ParseAdminToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired tokens collapse into the same error")
}
