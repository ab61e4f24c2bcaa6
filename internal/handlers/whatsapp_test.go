package handlers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

var testInvoiceCfg = config.InvoiceConfig{
	StoreName:   "K-Pop Merchandise Store",
	BankName:    "BCA",
	BankAccount: "1234567890",
	BankHolder:  "K-Pop Merchandise Store",
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{200000, "Rp 200.000"},
		{1234567, "Rp 1.234.567"},
		{850000.75, "Rp 850.000"},
		{-15000, "Rp -15.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount))
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "6281234", NormalizePhone("+62 812-34"))
	assert.Equal(t, "6281234567", NormalizePhone("(62) 8123.4567"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestGenerateInvoiceNumber(t *testing.T) {
	n1 := GenerateInvoiceNumber()
	n2 := GenerateInvoiceNumber()

	assert.True(t, strings.HasPrefix(n1, "INV-"))
	assert.NotEqual(t, n1, n2)

	parts := strings.Split(n1, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 8) // tanggal YYYYMMDD
	assert.Len(t, parts[2], 8) // fragmen uuid
}

func TestBuildWhatsAppMessage(t *testing.T) {
	order := &models.Order{
		ID:           12,
		CustomerName: "Rina",
		TotalAmount:  200000,
		Status:       models.StatusPending,
	}
	items := []OrderItemDetail{
		{
			OrderItem:   models.OrderItem{Quantity: 2, Price: 200000},
			ProductName: "NewJeans - Get Up",
		},
	}

	msg := BuildWhatsAppMessage(testInvoiceCfg, order, items)

	assert.Contains(t, msg, "Halo Rina!")
	assert.Contains(t, msg, "No. Order: #12")
	assert.Contains(t, msg, "• NewJeans - Get Up x2 - Rp 200.000")
	assert.Contains(t, msg, "Total: Rp 200.000")
	assert.Contains(t, msg, "Status: PENDING")
	assert.Contains(t, msg, "BCA: 1234567890")
}

func TestBuildWhatsAppUpdateMessage(t *testing.T) {
	msg := BuildWhatsAppUpdateMessage(testInvoiceCfg, "INV-20260831-a1b2c3d4", "Rina", 350000, models.StatusShipped)

	assert.Contains(t, msg, "No. Invoice: INV-20260831-a1b2c3d4")
	assert.Contains(t, msg, "Status: SHIPPED")
	// varian pendek: tanpa daftar item
	assert.NotContains(t, msg, "Item Pesanan")
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("+62 812-34", "Halo Rina! Total: Rp 200.000")

	require.True(t, strings.HasPrefix(link, "https://wa.me/6281234?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Halo Rina! Total: Rp 200.000", parsed.Query().Get("text"))
}
