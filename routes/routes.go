package routes

import (
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public storefront
// API and the cookie-gated admin API.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	api := r.Group("/api")

	SetupPublicRoutes(api, db, cfg)
	SetupAdminRoutes(api, db, cfg)
}
