package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// UnboxingPhotoResponse is a gallery row joined with the uploader's name
type UnboxingPhotoResponse struct {
	models.UnboxingPhoto
	UserName string `json:"user_name"`
}

// GetUnboxingPhotos handles fetching the gallery (public)
func GetUnboxingPhotos(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var photos []UnboxingPhotoResponse
		err := db.Table("unboxing_photos up").
			Select("up.*, u.name as user_name").
			Joins("join users u on up.user_id = u.id").
			Order("up.created_at desc").
			Scan(&photos).Error
		if err != nil {
			log.Printf("Error fetching unboxing photos: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if photos == nil {
			photos = []UnboxingPhotoResponse{}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"photos":  photos,
		})
	}
}

// UploadUnboxingPhoto handles a multipart gallery upload (admin only)
func UploadUnboxingPhoto(db *gorm.DB, cfg config.UploadConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := middleware.GetUserFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}

		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Image file is required",
			})
		}

		if msg := ValidateImageUpload(file, cfg.MaxFileSize); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		}

		filename, err := SaveUploadedImage(file, cfg.Dir, "unboxing")
		if err != nil {
			log.Printf("Error saving unboxing photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		photo := models.UnboxingPhoto{
			UserID:   userID,
			ImageURL: "/uploads/unboxing/" + filename,
			Caption:  c.FormValue("caption"),
		}

		if err := db.Create(&photo).Error; err != nil {
			log.Printf("Error creating unboxing photo: %v", err)
			RemoveUploadedImage(cfg, photo.ImageURL)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		var response UnboxingPhotoResponse
		db.Table("unboxing_photos up").
			Select("up.*, u.name as user_name").
			Joins("join users u on up.user_id = u.id").
			Where("up.id = ?", photo.ID).
			Scan(&response)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Unboxing photo uploaded successfully",
			"photo":   response,
		})
	}
}

// DeleteUnboxingPhoto handles removing a gallery photo (admin only)
func DeleteUnboxingPhoto(db *gorm.DB, cfg config.UploadConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid photo ID",
			})
		}

		var photo models.UnboxingPhoto
		if err := db.First(&photo, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Unboxing photo not found",
			})
		}

		if err := db.Delete(&photo).Error; err != nil {
			log.Printf("Error deleting unboxing photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		// File di disk dihapus best-effort; row DB yang otoritatif
		RemoveUploadedImage(cfg, photo.ImageURL)

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Unboxing photo deleted successfully",
		})
	}
}
