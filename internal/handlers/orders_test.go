package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// setupTestDB opens an in-memory sqlite database with the same schema the
// app migrates. Satu koneksi saja supaya :memory: tidak ke-reset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Type: models.ProductTypeReady, Stock: 10}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func validRequest() OrderRequest {
	return OrderRequest{
		CustomerName:  "Rina",
		CustomerPhone: "+6281234",
		CustomerEmail: "r@x.com",
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2},
		},
	}
}

func TestValidateOrderRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OrderRequest)
		want   string
	}{
		{"valid", func(r *OrderRequest) {}, ""},
		{"missing name", func(r *OrderRequest) { r.CustomerName = "" }, "Customer information and items are required"},
		{"missing phone", func(r *OrderRequest) { r.CustomerPhone = "" }, "Customer information and items are required"},
		{"missing email", func(r *OrderRequest) { r.CustomerEmail = "" }, "Customer information and items are required"},
		{"empty items", func(r *OrderRequest) { r.Items = nil }, "Customer information and items are required"},
		{"zero quantity", func(r *OrderRequest) { r.Items[0].Quantity = 0 }, "Invalid item data"},
		{"negative quantity", func(r *OrderRequest) { r.Items[0].Quantity = -1 }, "Invalid item data"},
		{"missing product id", func(r *OrderRequest) { r.Items[0].ProductID = 0 }, "Invalid item data"},
		{"negative shipping fee", func(r *OrderRequest) { r.ShippingFee = -5000 }, "Invalid shipping fee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, validateOrderRequest(&req))
		})
	}
}

func TestTotalMatches(t *testing.T) {
	assert.True(t, totalMatches(200000, 200000))
	assert.True(t, totalMatches(200000.004, 200000))
	assert.False(t, totalMatches(200000, 210000))
	assert.False(t, totalMatches(199999, 200000))
}

func TestPlaceOrderPersistsOrderAndItems(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)
	lightstick := seedProduct(t, db, "ARMY Bomb Ver.4", 850000)

	req := validRequest()
	req.Items = []OrderItemRequest{
		{ProductID: album.ID, Quantity: 2},
		{ProductID: lightstick.ID, Quantity: 1},
	}

	order, status, _ := PlaceOrder(db, &req, nil)
	require.NotNil(t, order)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 1550000.0, order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 1, orderCount)
	assert.EqualValues(t, 2, itemCount)

	// Price per baris = subtotal yang di-snapshot saat checkout
	var items []models.OrderItem
	db.Where("order_id = ?", order.ID).Order("product_id").Find(&items)
	require.Len(t, items, 2)
	assert.Equal(t, 700000.0, items[0].Price)
	assert.Equal(t, 850000.0, items[1].Price)
}

func TestPlaceOrderSnapshotSurvivesPriceChange(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	req := validRequest()
	req.Items = []OrderItemRequest{{ProductID: album.ID, Quantity: 1}}
	order, _, _ := PlaceOrder(db, &req, nil)
	require.NotNil(t, order)

	// Harga katalog naik setelah order dibuat
	require.NoError(t, db.Model(&album).Update("price", 500000).Error)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, 350000.0, stored.TotalAmount)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.Equal(t, 350000.0, item.Price)
}

func TestPlaceOrderUnknownProductRollsBack(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	req := validRequest()
	req.Items = []OrderItemRequest{
		{ProductID: album.ID, Quantity: 1},
		{ProductID: 9999, Quantity: 1},
	}

	order, status, msg := PlaceOrder(db, &req, nil)
	assert.Nil(t, order)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Product not found", msg)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestPlaceOrderDeclaredTotal(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	newRequest := func(declared *float64) *OrderRequest {
		req := validRequest()
		req.Items = []OrderItemRequest{{ProductID: album.ID, Quantity: 2}}
		req.TotalAmount = declared
		return &req
	}
	ptr := func(v float64) *float64 { return &v }

	t.Run("mismatch rejected", func(t *testing.T) {
		order, status, msg := PlaceOrder(db, newRequest(ptr(111111)), nil)
		assert.Nil(t, order)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Declared total does not match item prices", msg)

		var orderCount int64
		db.Model(&models.Order{}).Count(&orderCount)
		assert.EqualValues(t, 0, orderCount)
	})

	t.Run("declared zero is a mismatch too", func(t *testing.T) {
		order, status, _ := PlaceOrder(db, newRequest(ptr(0)), nil)
		assert.Nil(t, order)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("matching total accepted", func(t *testing.T) {
		order, status, _ := PlaceOrder(db, newRequest(ptr(700000)), nil)
		require.NotNil(t, order)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, 700000.0, order.TotalAmount)
	})

	t.Run("omitted total uses server sum", func(t *testing.T) {
		order, status, _ := PlaceOrder(db, newRequest(nil), nil)
		require.NotNil(t, order)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, 700000.0, order.TotalAmount)
	})
}

// orderDetailApp mounts GetOrder behind a stub that plants the identity
// the JWT middleware would have set.
func orderDetailApp(db *gorm.DB, userID uint, role models.Role) *fiber.App {
	app := fiber.New()
	app.Get("/orders/:id", func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("userRole", role)
		return c.Next()
	}, GetOrder(db))
	return app
}

func TestGetOrderIncludesAccountColumns(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	user := models.User{Email: "rina@example.com", Password: "x", Name: "Rina", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	req := validRequest()
	req.Items = []OrderItemRequest{{ProductID: album.ID, Quantity: 1}}
	order, _, _ := PlaceOrder(db, &req, &user.ID)
	require.NotNil(t, order)

	app := orderDetailApp(db, user.ID, models.RoleCustomer)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Order struct {
			UserName  string `json:"user_name"`
			UserEmail string `json:"user_email"`
			Items     []struct {
				ProductName string `json:"product_name"`
			} `json:"items"`
		} `json:"order"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Rina", body.Order.UserName)
	assert.Equal(t, "rina@example.com", body.Order.UserEmail)
	require.Len(t, body.Order.Items, 1)
	assert.Equal(t, "NewJeans - Get Up", body.Order.Items[0].ProductName)
}

func TestGetOrderHidesOtherCustomersOrders(t *testing.T) {
	db := setupTestDB(t)
	album := seedProduct(t, db, "NewJeans - Get Up", 350000)

	owner := models.User{Email: "rina@example.com", Password: "x", Name: "Rina", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&owner).Error)

	req := validRequest()
	req.Items = []OrderItemRequest{{ProductID: album.ID, Quantity: 1}}
	order, _, _ := PlaceOrder(db, &req, &owner.ID)
	require.NotNil(t, order)

	// Customer lain tidak boleh lihat
	app := orderDetailApp(db, owner.ID+1, models.RoleCustomer)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Admin boleh
	admin := orderDetailApp(db, owner.ID+1, models.RoleAdmin)
	resp, err = admin.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusPacking, models.StatusShipped,
		models.StatusCompleted, models.StatusCancelled,
	} {
		assert.True(t, ParseOrderStatus(s), string(s))
	}

	assert.False(t, ParseOrderStatus("delivered"))
	assert.False(t, ParseOrderStatus(""))
	assert.False(t, ParseOrderStatus("PENDING"))
}
