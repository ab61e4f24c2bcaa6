package web

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/URTS404/UMKM-AWP-UAS/internal/handlers"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
	"github.com/URTS404/UMKM-AWP-UAS/internal/webstate"
)

// CartPage renders the cart with the checkout form
func (h *Handler) CartPage(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("cart", h.pageData(st, fiber.Map{
		"Title": "Keranjang",
		"Items": st.Cart.Items,
		"Total": st.Cart.Total(),
		"Error": c.Query("error"),
	}))
}

// CartAdd puts a product in the cart (form: product_id, quantity)
func (h *Handler) CartAdd(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	productID, err := strconv.Atoi(c.FormValue("product_id"))
	if err != nil || productID <= 0 {
		return fiber.ErrBadRequest
	}
	qty, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || qty <= 0 {
		qty = 1
	}

	// Snapshot nama+harga katalog ke dalam cart
	var product models.Product
	if err := h.DB.First(&product, productID).Error; err != nil {
		return fiber.ErrNotFound
	}

	st.Cart.AddItem(webstate.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	}, qty)

	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/cart")
}

// CartUpdate changes a line's quantity (zero removes it)
func (h *Handler) CartUpdate(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	productID, err := strconv.Atoi(c.FormValue("product_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	qty, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	st.Cart.UpdateQuantity(uint(productID), qty)

	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/cart")
}

// CartRemove drops a line from the cart
func (h *Handler) CartRemove(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	productID, err := strconv.Atoi(c.FormValue("product_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	st.Cart.RemoveItem(uint(productID))

	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/cart")
}

// Checkout converts the cart into an order through the same transaction
// the JSON API uses, then clears the cart
func (h *Handler) Checkout(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	req := handlers.OrderRequest{
		CustomerName:   c.FormValue("customer_name"),
		CustomerPhone:  c.FormValue("customer_phone"),
		CustomerEmail:  c.FormValue("customer_email"),
		ShippingMethod: c.FormValue("shipping_method"),
		Items: lo.Map(st.Cart.Items, func(item webstate.CartItem, _ int) handlers.OrderItemRequest {
			return handlers.OrderItemRequest{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
		}),
	}

	var userID *uint
	if st.Auth.LoggedIn() {
		id := st.Auth.UserID
		userID = &id
	}

	order, _, msg := handlers.PlaceOrder(h.DB, &req, userID)
	if order == nil {
		return c.Redirect("/cart?error=" + url.QueryEscape(msg))
	}

	st.Cart.Clear()
	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/?ordered=1")
}
