package handlers

import (
	"errors"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// OrderItemRequest is one cart line in a checkout payload
type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest defines the structure for placing an order. TotalAmount
// is optional: when the client declares one it must match the
// server-computed sum, when omitted the server total is used as-is.
type OrderRequest struct {
	CustomerName   string             `json:"customer_name" validate:"required"`
	CustomerPhone  string             `json:"customer_phone" validate:"required"`
	CustomerEmail  string             `json:"customer_email" validate:"required,email"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1"`
	TotalAmount    *float64           `json:"total_amount"`
	ShippingMethod string             `json:"shipping_method"`
	ShippingFee    float64            `json:"shipping_fee"`
}

// OrderSummary is an order row joined with its owner and item count
type OrderSummary struct {
	models.Order
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	ItemCount int    `json:"item_count"`
}

// OrderItemDetail is an order line joined with its product
type OrderItemDetail struct {
	models.OrderItem
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
}

// validateOrderRequest runs all checks that do not need the database.
// Returns an empty string when the payload is acceptable.
func validateOrderRequest(req *OrderRequest) string {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.CustomerEmail == "" {
		return "Customer information and items are required"
	}
	if len(req.Items) == 0 {
		return "Customer information and items are required"
	}
	for _, item := range req.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return "Invalid item data"
		}
	}
	if req.ShippingFee < 0 {
		return "Invalid shipping fee"
	}
	return ""
}

// totalMatches compares the client-declared total against the
// server-computed one, tolerating float rounding only.
func totalMatches(declared, computed float64) bool {
	return math.Abs(declared-computed) < 0.01
}

// PlaceOrder runs the checkout transaction: validate the payload, price
// every line from the current catalog price, then write the order header
// and all items atomically. On failure nothing is persisted. Returns the
// created order, or an HTTP status + client message.
func PlaceOrder(db *gorm.DB, req *OrderRequest, userID *uint) (*models.Order, int, string) {
	if msg := validateOrderRequest(req); msg != "" {
		return nil, fiber.StatusBadRequest, msg
	}

	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return nil, fiber.StatusInternalServerError, "Internal server error"
	}

	// Harga tiap baris diambil dari katalog SAAT INI, bukan dari client
	type pricedLine struct {
		productID uint
		quantity  int
		subtotal  float64
	}
	var lines []pricedLine
	for _, item := range req.Items {
		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.StatusNotFound, "Product not found"
			}
			log.Printf("Error loading product %d: %v", item.ProductID, err)
			return nil, fiber.StatusInternalServerError, "Internal server error"
		}
		lines = append(lines, pricedLine{
			productID: product.ID,
			quantity:  item.Quantity,
			subtotal:  product.Price * float64(item.Quantity),
		})
	}

	computedTotal := lo.SumBy(lines, func(l pricedLine) float64 { return l.subtotal })

	// Total dari client hanya dipakai untuk verifikasi; yang disimpan
	// selalu hasil hitungan server.
	if req.TotalAmount != nil && !totalMatches(*req.TotalAmount, computedTotal) {
		tx.Rollback()
		return nil, fiber.StatusBadRequest, "Declared total does not match item prices"
	}

	order := models.Order{
		UserID:         userID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		TotalAmount:    computedTotal,
		Status:         models.StatusPending,
		ShippingMethod: req.ShippingMethod,
		ShippingFee:    req.ShippingFee,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating order: %v", err)
		return nil, fiber.StatusInternalServerError, "Internal server error"
	}

	for _, line := range lines {
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.productID,
			Quantity:  line.quantity,
			Price:     line.subtotal,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating order item: %v", err)
			return nil, fiber.StatusInternalServerError, "Internal server error"
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing order: %v", err)
		return nil, fiber.StatusInternalServerError, "Internal server error"
	}

	return &order, fiber.StatusCreated, "Order created successfully"
}

// CreateOrder handles the checkout API endpoint
func CreateOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req OrderRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		// Kalau request membawa token yang valid, order ditautkan ke user.
		// Checkout tanpa login tetap boleh (guest order).
		var userID *uint
		if id, _, err := middleware.GetUserFromContext(c); err == nil {
			userID = &id
		}

		order, status, msg := PlaceOrder(db, &req, userID)
		if order == nil {
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		}

		return c.Status(status).JSON(fiber.Map{
			"success": true,
			"message": msg,
			"order":   order,
		})
	}
}

// GetOrders handles fetching all orders for the back-office (admin only)
func GetOrders(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []OrderSummary
		err := db.Table("orders o").
			Select("o.*, u.name as user_name, u.email as user_email, count(oi.id) as item_count").
			Joins("left join users u on o.user_id = u.id").
			Joins("left join order_items oi on o.id = oi.order_id").
			Group("o.id, u.name, u.email").
			Order("o.created_at desc").
			Scan(&orders).Error
		if err != nil {
			log.Printf("Error fetching orders: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if orders == nil {
			orders = []OrderSummary{}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"orders":  orders,
		})
	}
}

// GetOrder handles fetching a single order with its items. Customers can
// only see orders linked to their own account.
func GetOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid order ID",
			})
		}

		userID, role, err := middleware.GetUserFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}

		query := db.Table("orders o").
			Select("o.*, u.name as user_name, u.email as user_email").
			Joins("left join users u on o.user_id = u.id").
			Where("o.id = ?", id)
		if role == models.RoleCustomer {
			query = query.Where("o.user_id = ?", userID)
		}

		var order OrderSummary
		result := query.Scan(&order)
		if result.Error != nil {
			log.Printf("Error fetching order: %v", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}

		var items []OrderItemDetail
		db.Table("order_items oi").
			Select("oi.*, p.name as product_name, p.image_url as product_image").
			Joins("join products p on oi.product_id = p.id").
			Where("oi.order_id = ?", order.ID).
			Scan(&items)

		if items == nil {
			items = []OrderItemDetail{}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"order": fiber.Map{
				"id":              order.ID,
				"user_id":         order.UserID,
				"user_name":       order.UserName,
				"user_email":      order.UserEmail,
				"customer_name":   order.CustomerName,
				"customer_phone":  order.CustomerPhone,
				"customer_email":  order.CustomerEmail,
				"total_amount":    order.TotalAmount,
				"status":          order.Status,
				"shipping_method": order.ShippingMethod,
				"shipping_fee":    order.ShippingFee,
				"created_at":      order.CreatedAt,
				"items":           items,
			},
		})
	}
}

// GetMyOrders handles fetching the logged-in customer's own orders
func GetMyOrders(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := middleware.GetUserFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}

		var orders []OrderSummary
		dbErr := db.Table("orders o").
			Select("o.*, count(oi.id) as item_count").
			Joins("left join order_items oi on o.id = oi.order_id").
			Where("o.user_id = ?", userID).
			Group("o.id").
			Order("o.created_at desc").
			Scan(&orders).Error
		if dbErr != nil {
			log.Printf("Error fetching user orders: %v", dbErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if orders == nil {
			orders = []OrderSummary{}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"orders":  orders,
		})
	}
}

// UpdateOrderStatusRequest carries the new status for an order
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// ParseOrderStatus validates a status value against the known set.
// Tidak ada graf transisi yang di-enforce: admin boleh set status apa saja.
func ParseOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPending, models.StatusPacking, models.StatusShipped,
		models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}

// UpdateOrderStatus handles changing an order's status (admin only)
func UpdateOrderStatus(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid order ID",
			})
		}

		var req UpdateOrderStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if !ParseOrderStatus(req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid status",
			})
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}

		order.Status = req.Status
		if err := db.Save(&order).Error; err != nil {
			log.Printf("Error updating order status: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}
