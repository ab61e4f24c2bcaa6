package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPassword("rahasia123", hash))
	assert.Error(t, CheckPassword("salah", hash))
}

// protectedApp wires the middleware under test in front of a trivial handler.
func protectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{JWTProtected()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		userID, role, err := GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": userID, "role": role})
	})
	app.Get("/secret", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJWTProtected(t *testing.T) {
	Init("test-secret")
	app := protectedApp()

	token, err := GenerateJWT(7, "cust@example.com", models.RoleCustomer)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		resp := doRequest(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("not bearer", func(t *testing.T) {
		resp := doRequest(t, app, "Basic abc123")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, app, "Bearer not.a.token")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		Init("other-secret")
		badToken, err := GenerateJWT(7, "cust@example.com", models.RoleCustomer)
		require.NoError(t, err)
		Init("test-secret")

		resp := doRequest(t, app, "Bearer "+badToken)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		resp := doRequest(t, app, "Bearer "+token)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestAdminOnly(t *testing.T) {
	Init("test-secret")
	app := protectedApp(AdminOnly())

	custToken, err := GenerateJWT(7, "cust@example.com", models.RoleCustomer)
	require.NoError(t, err)
	adminToken, err := GenerateJWT(1, "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	t.Run("customer forbidden", func(t *testing.T) {
		resp := doRequest(t, app, "Bearer "+custToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		resp := doRequest(t, app, "Bearer "+adminToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
