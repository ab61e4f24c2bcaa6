package web

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
	"github.com/URTS404/UMKM-AWP-UAS/internal/webstate"
)

// Handler serves the server-rendered storefront and back-office pages.
// Per-visitor state (cart, login, calculator) comes from the injected
// webstate.Manager, loaded at the top of a handler and saved before the
// response goes out.
type Handler struct {
	DB    *gorm.DB
	State *webstate.Manager
	Cfg   *config.Config
}

func NewHandler(db *gorm.DB, state *webstate.Manager, cfg *config.Config) *Handler {
	return &Handler{DB: db, State: state, Cfg: cfg}
}

// pageData merges the common view state (cart badge, login identity) with
// page-specific entries.
func (h *Handler) pageData(st *webstate.State, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["CartCount"] = st.Cart.ItemCount()
	data["Auth"] = st.Auth
	data["Calculator"] = st.Calc
	return data
}

// Home renders the catalog with optional type/search filters
func (h *Handler) Home(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	query := h.DB.Model(&models.Product{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", term, term)
	}

	var products []models.Product
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		log.Printf("Error loading catalog: %v", err)
		return fiber.ErrInternalServerError
	}

	return c.Render("index", h.pageData(st, fiber.Map{
		"Title":    h.Cfg.Invoice.StoreName,
		"Products": products,
		"Type":     c.Query("type"),
		"Search":   c.Query("search"),
		"Ordered":  c.Query("ordered") == "1",
	}))
}

// ProductDetail renders a single product page
func (h *Handler) ProductDetail(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return fiber.ErrNotFound
	}

	return c.Render("product", h.pageData(st, fiber.Map{
		"Title":   product.Name,
		"Product": product,
	}))
}

// Gallery renders the unboxing photo wall
func (h *Handler) Gallery(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	type photoRow struct {
		models.UnboxingPhoto
		UserName string
	}
	var photos []photoRow
	h.DB.Table("unboxing_photos up").
		Select("up.*, u.name as user_name").
		Joins("join users u on up.user_id = u.id").
		Order("up.created_at desc").
		Scan(&photos)

	return c.Render("gallery", h.pageData(st, fiber.Map{
		"Title":  "Unboxing Gallery",
		"Photos": photos,
	}))
}
