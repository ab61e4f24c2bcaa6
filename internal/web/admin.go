package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/URTS404/UMKM-AWP-UAS/internal/handlers"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
	"github.com/URTS404/UMKM-AWP-UAS/internal/webstate"
)

// requireAdmin loads the session and bounces non-admins to the login page
func (h *Handler) requireAdmin(c *fiber.Ctx) (*webstate.State, error) {
	st, err := h.State.Load(c)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if !st.Auth.IsAdmin() {
		return nil, c.Redirect("/login")
	}
	return st, nil
}

// Dashboard renders the admin landing page with headline numbers
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	st, err := h.requireAdmin(c)
	if st == nil {
		return err
	}

	var orderCount, pendingCount, productCount int64
	h.DB.Model(&models.Order{}).Count(&orderCount)
	h.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingCount)
	h.DB.Model(&models.Product{}).Count(&productCount)

	var revenue float64
	h.DB.Model(&models.Order{}).
		Where("status != ?", models.StatusCancelled).
		Select("coalesce(sum(total_amount), 0)").
		Row().Scan(&revenue)

	return c.Render("admin/dashboard", h.pageData(st, fiber.Map{
		"Title":        "Admin Dashboard",
		"PageTitle":    "Dashboard",
		"OrderCount":   orderCount,
		"PendingCount": pendingCount,
		"ProductCount": productCount,
		"Revenue":      revenue,
	}), "layouts/admin")
}

// AdminOrders renders the order management table
func (h *Handler) AdminOrders(c *fiber.Ctx) error {
	st, err := h.requireAdmin(c)
	if st == nil {
		return err
	}

	var orders []handlers.OrderSummary
	h.DB.Table("orders o").
		Select("o.*, u.name as user_name, u.email as user_email, count(oi.id) as item_count").
		Joins("left join users u on o.user_id = u.id").
		Joins("left join order_items oi on o.id = oi.order_id").
		Group("o.id, u.name, u.email").
		Order("o.created_at desc").
		Scan(&orders)

	return c.Render("admin/orders", h.pageData(st, fiber.Map{
		"Title":     "Manajemen Pesanan",
		"PageTitle": "Pesanan",
		"Orders":    orders,
		"Statuses": []models.OrderStatus{
			models.StatusPending, models.StatusPacking, models.StatusShipped,
			models.StatusCompleted, models.StatusCancelled,
		},
	}), "layouts/admin")
}

// AdminInvoices renders the invoice list with WhatsApp links
func (h *Handler) AdminInvoices(c *fiber.Ctx) error {
	st, err := h.requireAdmin(c)
	if st == nil {
		return err
	}

	var invoices []handlers.InvoiceSummary
	h.DB.Table("invoices i").
		Select("i.*, o.customer_name, o.customer_phone, o.customer_email, o.total_amount, o.status as order_status").
		Joins("join orders o on i.order_id = o.id").
		Order("i.created_at desc").
		Scan(&invoices)

	return c.Render("admin/invoices", h.pageData(st, fiber.Map{
		"Title":     "Invoice",
		"PageTitle": "Invoice",
		"Invoices":  invoices,
	}), "layouts/admin")
}

// AdminFinance renders the ledger with totals
func (h *Handler) AdminFinance(c *fiber.Ctx) error {
	st, err := h.requireAdmin(c)
	if st == nil {
		return err
	}

	var records []models.FinanceRecord
	h.DB.Order("created_at desc").Find(&records)

	var totalIncome, totalExpense float64
	h.DB.Model(&models.FinanceRecord{}).
		Where("type = ?", models.FinanceIncome).
		Select("coalesce(sum(amount), 0)").Row().Scan(&totalIncome)
	h.DB.Model(&models.FinanceRecord{}).
		Where("type = ?", models.FinanceExpense).
		Select("coalesce(sum(amount), 0)").Row().Scan(&totalExpense)

	return c.Render("admin/finance", h.pageData(st, fiber.Map{
		"Title":        "Keuangan",
		"PageTitle":    "Keuangan",
		"Records":      records,
		"TotalIncome":  totalIncome,
		"TotalExpense": totalExpense,
		"Profit":       totalIncome - totalExpense,
	}), "layouts/admin")
}
