package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// ProductRequest defines the structure for creating/updating a product
type ProductRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Price       float64            `json:"price" validate:"required,gt=0"`
	Type        models.ProductType `json:"type" validate:"required,oneof=PO Ready"`
	Stock       int                `json:"stock" validate:"gte=0"`
	ImageURL    string             `json:"image_url"`
}

func validProductType(t models.ProductType) bool {
	return t == models.ProductTypePO || t == models.ProductTypeReady
}

// GetProducts handles fetching the catalog (public), with optional
// ?type= and ?search= filters
func GetProducts(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Model(&models.Product{})

		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}
		if search := c.Query("search"); search != "" {
			term := "%" + search + "%"
			query = query.Where("(name ILIKE ? OR description ILIKE ?)", term, term)
		}

		var products []models.Product
		if err := query.Order("created_at desc").Find(&products).Error; err != nil {
			log.Printf("Error fetching products: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if products == nil {
			products = []models.Product{}
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"products": products,
		})
	}
}

// GetProduct handles fetching a single product by ID (public)
func GetProduct(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid product ID",
			})
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"product": product,
		})
	}
}

// CreateProduct handles creating a new product (admin only)
func CreateProduct(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ProductRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if req.Name == "" || req.Price <= 0 || req.Type == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Name, price, and type are required",
			})
		}
		if !validProductType(req.Type) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Type must be PO or Ready",
			})
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Type:        req.Type,
			Stock:       req.Stock,
			ImageURL:    req.ImageURL,
		}

		if err := db.Create(&product).Error; err != nil {
			log.Printf("Error creating product: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Product created successfully",
			"product": product,
		})
	}
}

// UpdateProduct handles updating a product (admin only)
func UpdateProduct(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid product ID",
			})
		}

		var req ProductRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if req.Type != "" && !validProductType(req.Type) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Type must be PO or Ready",
			})
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price
		product.Type = req.Type
		product.Stock = req.Stock
		product.ImageURL = req.ImageURL

		if err := db.Save(&product).Error; err != nil {
			log.Printf("Error updating product: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Product updated successfully",
			"product": product,
		})
	}
}

// DeleteProduct handles deleting a product (admin only)
func DeleteProduct(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid product ID",
			})
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			log.Printf("Error deleting product: %v", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Product deleted successfully",
		})
	}
}
