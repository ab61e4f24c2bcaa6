package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// InvoiceSummary is an invoice row joined with its order's customer info
type InvoiceSummary struct {
	models.Invoice
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerEmail string             `json:"customer_email"`
	TotalAmount   float64            `json:"total_amount"`
	OrderStatus   models.OrderStatus `json:"order_status"`
}

// GetInvoices handles fetching all invoices (admin only)
func GetInvoices(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var invoices []InvoiceSummary
		err := db.Table("invoices i").
			Select("i.*, o.customer_name, o.customer_phone, o.customer_email, o.total_amount, o.status as order_status").
			Joins("join orders o on i.order_id = o.id").
			Order("i.created_at desc").
			Scan(&invoices).Error
		if err != nil {
			log.Printf("Error fetching invoices: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if invoices == nil {
			invoices = []InvoiceSummary{}
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"invoices": invoices,
		})
	}
}

// GetInvoice handles fetching a single invoice with its order items.
// Customers can only see invoices for their own orders.
func GetInvoice(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid invoice ID",
			})
		}

		userID, role, err := middleware.GetUserFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}

		query := db.Table("invoices i").
			Select("i.*, o.customer_name, o.customer_phone, o.customer_email, o.total_amount, o.status as order_status").
			Joins("join orders o on i.order_id = o.id").
			Where("i.id = ?", id)
		if role == models.RoleCustomer {
			query = query.Where("o.user_id = ?", userID)
		}

		var invoice InvoiceSummary
		result := query.Scan(&invoice)
		if result.Error != nil {
			log.Printf("Error fetching invoice: %v", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Invoice not found",
			})
		}

		var items []OrderItemDetail
		db.Table("order_items oi").
			Select("oi.*, p.name as product_name, p.image_url as product_image").
			Joins("join products p on oi.product_id = p.id").
			Where("oi.order_id = ?", invoice.OrderID).
			Scan(&items)

		if items == nil {
			items = []OrderItemDetail{}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"invoice": fiber.Map{
				"id":             invoice.ID,
				"order_id":       invoice.OrderID,
				"invoice_number": invoice.InvoiceNumber,
				"whatsapp_link":  invoice.WhatsAppLink,
				"status":         invoice.Status,
				"created_at":     invoice.CreatedAt,
				"customer_name":  invoice.CustomerName,
				"customer_phone": invoice.CustomerPhone,
				"customer_email": invoice.CustomerEmail,
				"total_amount":   invoice.TotalAmount,
				"order_status":   invoice.OrderStatus,
				"items":          items,
			},
		})
	}
}

// GenerateInvoiceRequest carries the inputs for invoice generation
type GenerateInvoiceRequest struct {
	OrderID       uint   `json:"order_id"`
	CustomerPhone string `json:"customer_phone"`
}

// GenerateInvoice handles creating an invoice + WhatsApp deep link for an
// existing order (admin only)
func GenerateInvoice(db *gorm.DB, cfg config.InvoiceConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req GenerateInvoiceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if req.OrderID == 0 || req.CustomerPhone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Order ID and customer phone number are required",
			})
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
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

		message := BuildWhatsAppMessage(cfg, &order, items)
		link := BuildWhatsAppLink(req.CustomerPhone, message)

		invoice := models.Invoice{
			OrderID:       order.ID,
			InvoiceNumber: GenerateInvoiceNumber(),
			WhatsAppLink:  link,
			Status:        "sent",
		}

		if err := db.Create(&invoice).Error; err != nil {
			log.Printf("Error creating invoice: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Invoice generated successfully",
			"invoice": InvoiceSummary{
				Invoice:       invoice,
				CustomerName:  order.CustomerName,
				CustomerPhone: order.CustomerPhone,
				CustomerEmail: order.CustomerEmail,
				TotalAmount:   order.TotalAmount,
				OrderStatus:   order.Status,
			},
			"whatsapp_link": link,
		})
	}
}

// UpdateWhatsAppLinkRequest carries the phone for link regeneration
type UpdateWhatsAppLinkRequest struct {
	CustomerPhone string `json:"customer_phone"`
}

// UpdateWhatsAppLink handles regenerating an invoice's deep link, e.g.
// after the customer changes phone number (admin only)
func UpdateWhatsAppLink(db *gorm.DB, cfg config.InvoiceConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid invoice ID",
			})
		}

		var req UpdateWhatsAppLinkRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if req.CustomerPhone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Customer phone number is required",
			})
		}

		var invoice models.Invoice
		if err := db.First(&invoice, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Invoice not found",
			})
		}

		var order models.Order
		if err := db.First(&order, invoice.OrderID).Error; err != nil {
			log.Printf("Invoice %d references missing order %d", invoice.ID, invoice.OrderID)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		message := BuildWhatsAppUpdateMessage(cfg, invoice.InvoiceNumber, order.CustomerName, order.TotalAmount, order.Status)
		link := BuildWhatsAppLink(req.CustomerPhone, message)

		invoice.WhatsAppLink = link
		if err := db.Save(&invoice).Error; err != nil {
			log.Printf("Error updating invoice link: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"message":       "WhatsApp link updated successfully",
			"whatsapp_link": link,
		})
	}
}
