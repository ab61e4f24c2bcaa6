package handlers

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// GenerateInvoiceNumber membuat nomor invoice unik, contoh:
// INV-20260831-a1b2c3d4
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%s",
		time.Now().Format("20060102"),
		uuid.New().String()[:8])
}

// FormatRupiah renders an amount the way the store writes prices in chat,
// e.g. 1234567.0 -> "Rp 1.234.567"
func FormatRupiah(amount float64) string {
	n := int64(amount)
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	formatted := strings.Join(parts, ".")
	if n < 0 {
		formatted = "-" + formatted
	}
	return "Rp " + formatted
}

// NormalizePhone keeps only the digits of a phone number, as wa.me expects
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildWhatsAppMessage renders the full invoice text for a fresh invoice,
// including the per-item list and payment instructions.
func BuildWhatsAppMessage(cfg config.InvoiceConfig, order *models.Order, items []OrderItemDetail) string {
	itemsList := strings.Join(lo.Map(items, func(item OrderItemDetail, _ int) string {
		return fmt.Sprintf("• %s x%d - %s", item.ProductName, item.Quantity, FormatRupiah(item.Price))
	}), "\n")

	return fmt.Sprintf("Halo %s! 👋\n\n"+
		"Terima kasih atas pesanan Anda di %s! 🎵✨\n\n"+
		"📋 *Detail Pesanan:*\n"+
		"No. Order: #%d\n"+
		"Nama: %s\n"+
		"Total: %s\n\n"+
		"📦 *Item Pesanan:*\n%s\n\n"+
		"Status: %s\n\n"+
		"💳 *Pembayaran:*\n"+
		"Silakan lakukan pembayaran ke rekening berikut:\n"+
		"%s: %s\n"+
		"Atas Nama: %s\n\n"+
		"Setelah pembayaran, silakan kirim bukti transfer ke nomor ini.\n\n"+
		"Terima kasih! 🙏\n\n"+
		"Best regards,\n%s 💜",
		order.CustomerName, cfg.StoreName,
		order.ID, order.CustomerName, FormatRupiah(order.TotalAmount),
		itemsList,
		strings.ToUpper(string(order.Status)),
		cfg.BankName, cfg.BankAccount, cfg.BankHolder,
		cfg.StoreName)
}

// BuildWhatsAppUpdateMessage is the short variant used when regenerating a
// link for an existing invoice; no per-item list.
func BuildWhatsAppUpdateMessage(cfg config.InvoiceConfig, invoiceNumber, customerName string, totalAmount float64, orderStatus models.OrderStatus) string {
	return fmt.Sprintf("Halo %s! 👋\n\n"+
		"Terima kasih atas pesanan Anda di %s! 🎵✨\n\n"+
		"📋 *Detail Pesanan:*\n"+
		"No. Invoice: %s\n"+
		"Nama: %s\n"+
		"Total: %s\n\n"+
		"Status: %s\n\n"+
		"💳 *Pembayaran:*\n"+
		"Silakan lakukan pembayaran ke rekening berikut:\n"+
		"%s: %s\n"+
		"Atas Nama: %s\n\n"+
		"Terima kasih! 🙏\n\n"+
		"Best regards,\n%s 💜",
		customerName, cfg.StoreName,
		invoiceNumber, customerName, FormatRupiah(totalAmount),
		strings.ToUpper(string(orderStatus)),
		cfg.BankName, cfg.BankAccount, cfg.BankHolder,
		cfg.StoreName)
}

// BuildWhatsAppLink URL-encodes a message into a wa.me deep link. Tidak
// ada API call ke WhatsApp: link ini dibuka manual oleh admin.
func BuildWhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		NormalizePhone(phone), url.QueryEscape(message))
}
