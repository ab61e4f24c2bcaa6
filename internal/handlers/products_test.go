package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	app := fiber.New()
	app.Delete("/products/:id", DeleteProduct(db))

	t.Run("unknown id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/products/9999", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/products/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("existing product", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", album.ID), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var count int64
		db.Model(&models.Product{}).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("second delete is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", album.ID), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
