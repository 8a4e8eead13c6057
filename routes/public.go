package routes

import (
	"github.com/HafizBasit7/ZES-Admin/config"
	cartControllers "github.com/HafizBasit7/ZES-Admin/controllers/cart"
	orderControllers "github.com/HafizBasit7/ZES-Admin/controllers/order"
	productcontroller "github.com/HafizBasit7/ZES-Admin/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront endpoints. No auth: these serve
// anonymous shoppers.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	api.GET("/categories", productcontroller.GetCategories(db))
	api.GET("/products", productcontroller.GetProducts(db, cfg))
	api.GET("/products/:slug", productcontroller.GetProductBySlug(db))

	api.POST("/cart/quote", cartControllers.QuoteCart(cfg))
	api.POST("/orders", orderControllers.CreateOrder(db, cfg))
}
