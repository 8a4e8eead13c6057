package adminController

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/auth"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/middleware"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies email + password against the active admin record and sets
// the session cookie. An unknown email and a wrong password produce the
// identical response so the endpoint cannot be used to enumerate accounts.
func Login(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}

		var admin models.Admin
		err := db.Where("email = ? AND is_active = ?", email, true).First(&admin).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ Login lookup error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := auth.SignAdminToken(cfg, admin)
		if err != nil {
			log.Printf("❌ Failed to sign session token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		setSessionCookie(c, cfg, token, int(cfg.TokenValidity.Seconds()))

		log.Printf("✅ Login successful for: %s", admin.Email)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"admin": gin.H{
				"id":       admin.ID,
				"username": admin.Username,
				"email":    admin.Email,
				"role":     admin.Role,
			},
		})
	}
}

// Logout clears the session cookie. Tokens are stateless, so this only
// removes the client's copy; the token stays valid until expiry.
func Logout(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, cfg, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// Me returns the claims of the current session; the admin middleware has
// already verified them.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(middleware.ContextAdminKey)
		claims, ok := value.(*auth.AdminClaims)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"admin": gin.H{
				"id":       claims.AdminID,
				"username": claims.Username,
				"email":    claims.Email,
				"role":     claims.Role,
			},
		})
	}
}

func setSessionCookie(c *gin.Context, cfg config.Config, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, maxAge, "/", "", cfg.IsProduction(), true)
}
