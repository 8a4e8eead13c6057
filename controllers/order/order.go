package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/identifier"
	"github.com/HafizBasit7/ZES-Admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	Product  uint    `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type CreateOrderRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
	ShippingAddress struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zipCode"`
		Country string `json:"country"`
	} `json:"shippingAddress"`
	Items         []OrderItemRequest   `json:"items"`
	TotalAmount   float64              `json:"totalAmount"`
	ShippingFee   float64              `json:"shippingFee"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
}

// ValidateCreateOrder runs the intake presence checks. The message names
// which group of fields is incomplete, matching what the checkout form shows.
// Totals are NOT cross-checked against the items; intake trusts the
// client-computed amount (see DESIGN.md).
func ValidateCreateOrder(req CreateOrderRequest) (string, bool) {
	cust := req.Customer
	if strings.TrimSpace(cust.Name) == "" || strings.TrimSpace(cust.Email) == "" ||
		strings.TrimSpace(cust.Phone) == "" || strings.TrimSpace(cust.Address) == "" {
		return "Missing required customer information", false
	}

	addr := req.ShippingAddress
	if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" ||
		strings.TrimSpace(addr.State) == "" || strings.TrimSpace(addr.ZipCode) == "" {
		return "Missing required shipping address", false
	}

	if len(req.Items) == 0 {
		return "No items in order", false
	}

	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return "Invalid payment method", false
	}

	return "", true
}

// PaymentStatusFor maps the payment method to the initial payment status:
// cash on delivery starts pending, anything else is recorded as paid. There
// is no gateway behind this; the mapping mirrors the store's manual process.
func PaymentStatusFor(method models.PaymentMethod) models.PaymentStatus {
	if method == models.PaymentMethodCOD {
		return models.PaymentStatusPending
	}
	return models.PaymentStatusPaid
}

// BuildOrder assembles the persistable order from a validated request:
// fresh order number, pending status, defaulted country.
func BuildOrder(req CreateOrderRequest, defaultCountry string) models.Order {
	country := strings.TrimSpace(req.ShippingAddress.Country)
	if country == "" {
		country = defaultCountry
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.Product,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	return models.Order{
		OrderNumber: identifier.NewOrderNumber(),
		Customer: models.Customer{
			Name:    strings.TrimSpace(req.Customer.Name),
			Email:   strings.ToLower(strings.TrimSpace(req.Customer.Email)),
			Phone:   strings.TrimSpace(req.Customer.Phone),
			Address: strings.TrimSpace(req.Customer.Address),
		},
		ShippingAddress: models.ShippingAddress{
			Street:  strings.TrimSpace(req.ShippingAddress.Street),
			City:    strings.TrimSpace(req.ShippingAddress.City),
			State:   strings.TrimSpace(req.ShippingAddress.State),
			ZipCode: strings.TrimSpace(req.ShippingAddress.ZipCode),
			Country: country,
		},
		Items:         items,
		TotalAmount:   req.TotalAmount,
		ShippingFee:   req.ShippingFee,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Status:        models.OrderStatusPending,
		PaymentStatus: PaymentStatusFor(req.PaymentMethod),
	}
}

// CreateOrder is the public checkout intake: validate, assign an order
// number, persist in a single insert and confirm. Stock is not decremented
// here; it is display data maintained by staff.
func CreateOrder(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		if msg, ok := ValidateCreateOrder(req); !ok {
			log.Printf("❌ Order rejected: %s", msg)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		order := BuildOrder(req, cfg.DefaultCountry)
		log.Printf("🔢 Generated order number: %s", order.OrderNumber)

		if err := db.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("❌ Duplicate order number: %s", order.OrderNumber)
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Duplicate order detected. Please try again.",
				})
				return
			}
			log.Printf("❌ Error creating order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating order"})
			return
		}

		log.Printf("✅ Order saved successfully: %s", order.OrderNumber)
		broadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order created successfully",
			"order": gin.H{
				"orderNumber": order.OrderNumber,
				"totalAmount": order.TotalAmount,
				"status":      order.Status,
				"createdAt":   order.CreatedAt,
			},
		})
	}
}
