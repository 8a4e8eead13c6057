package routes

import (
	"github.com/HafizBasit7/ZES-Admin/config"
	adminController "github.com/HafizBasit7/ZES-Admin/controllers/admin"
	orderControllers "github.com/HafizBasit7/ZES-Admin/controllers/order"
	productcontroller "github.com/HafizBasit7/ZES-Admin/controllers/product"
	"github.com/HafizBasit7/ZES-Admin/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Login is the only
// ungated route; everything else sits behind the session middleware, so no
// mutation can ship without the gate.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	api.POST("/admin/auth/login", adminController.Login(db, cfg))

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg))
	{
		// ─────────── Session ───────────
		adminGroup.POST("/auth/logout", adminController.Logout(cfg))
		adminGroup.GET("/auth/me", adminController.Me())

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAdminCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.PATCH("/:id", productcontroller.PatchCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetOrders(db, cfg))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/:id", orderControllers.GetOrder(db))
			orderAdmin.PATCH("/:id/status", orderControllers.UpdateOrderStatus(db))
		}

		// ─────────── Uploads ───────────
		adminGroup.POST("/upload", adminController.UploadImage(cfg))
	}
}
