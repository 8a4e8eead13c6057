package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/HafizBasit7/ZES-Admin/catalog"
	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrders lists orders for the dashboard with status/search filters.
func GetOrders(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.ParseOrderListParams(c.Request.URL.Query(), cfg.AdminOrdersPageSize, cfg.MaxPageSize)

		orders, pagination, err := catalog.ListOrders(db, params)
		if err != nil {
			log.Printf("❌ Error fetching orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"orders":     orders,
			"pagination": pagination,
		})
	}
}

// GetOrder returns one order with its line items.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			log.Printf("❌ Error fetching order %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

type updateOrderStatusRequest struct {
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// UpdateOrderStatus sets the order status and/or payment status. Any known
// enum value may be set at any time; there is no transition state machine.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			log.Printf("❌ Error loading order %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating order"})
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		if req.Status == "" && req.PaymentStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nothing to update"})
			return
		}

		if req.Status != "" {
			if !models.ValidOrderStatus(req.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
				return
			}
			order.Status = req.Status
		}

		if req.PaymentStatus != "" {
			if !models.ValidPaymentStatus(req.PaymentStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment status"})
				return
			}
			order.PaymentStatus = req.PaymentStatus
		}

		if err := db.Save(&order).Error; err != nil {
			log.Printf("❌ Error updating order %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating order"})
			return
		}

		log.Printf("📦 Order %s updated: status=%s payment=%s", order.OrderNumber, order.Status, order.PaymentStatus)
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}
