// Package auth issues and verifies the signed admin session credential.
// Tokens are stateless HS256 JWTs carried in an HTTP-only cookie; logout is
// purely client-side, so a token stays valid until its natural expiry.
package auth

import (
	"errors"
	"time"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AdminClaims is the payload embedded in the session token.
type AdminClaims struct {
	AdminID  uint             `json:"id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Role     models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// SignAdminToken issues a session token for admin, valid for the configured
// window (7 days).
func SignAdminToken(cfg config.Config, admin models.Admin) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseAdminToken verifies a session token and returns its claims. Every
// failure mode (malformed, bad signature, expired) collapses into
// ErrInvalidToken; callers must not distinguish them.
func ParseAdminToken(cfg config.Config, tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
