package models

import "time"

// ==========================================
// AUTH & USERS
// ==========================================

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"not null;unique" json:"email"`

	// Field-nya "Password" biar enak dipanggil, tapi kolom di DB tetap
	// "password_hash". json:"-" supaya hash tidak pernah ikut ke response.
	Password string `gorm:"column:password_hash;not null" json:"-"`

	Name      string    `gorm:"not null" json:"name"`
	Role      Role      `gorm:"type:varchar(20);not null;default:customer" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ==========================================
// CATALOG
// ==========================================

type ProductType string

const (
	ProductTypePO    ProductType = "PO"
	ProductTypeReady ProductType = "Ready"
)

type Product struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Price       float64     `gorm:"not null" json:"price"`
	Type        ProductType `gorm:"type:varchar(10);not null" json:"type"`
	Stock       int         `gorm:"not null;default:0" json:"stock"`
	ImageURL    string      `json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ==========================================
// ORDERS
// ==========================================

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPacking   OrderStatus = "packing"
	StatusShipped   OrderStatus = "shipped"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         *uint       `json:"user_id"`
	User           *User       `gorm:"foreignKey:UserID" json:"-"`
	CustomerName   string      `gorm:"not null" json:"customer_name"`
	CustomerPhone  string      `gorm:"not null" json:"customer_phone"`
	CustomerEmail  string      `gorm:"not null" json:"customer_email"`
	TotalAmount    float64     `gorm:"not null" json:"total_amount"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ShippingMethod string      `json:"shipping_method"`
	ShippingFee    float64     `gorm:"not null;default:0" json:"shipping_fee"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`

	// Price = harga satuan x qty, di-snapshot saat checkout. Jangan dibaca
	// ulang dari Product: kalau harga katalog berubah, total order lama
	// tidak boleh ikut bergeser.
	Price float64 `gorm:"not null" json:"price"`
}

// ==========================================
// INVOICES & FINANCE
// ==========================================

type Invoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID" json:"-"`
	InvoiceNumber string    `gorm:"not null;unique" json:"invoice_number"`
	WhatsAppLink  string    `gorm:"column:whatsapp_link;type:text" json:"whatsapp_link"`
	Status        string    `gorm:"type:varchar(20);not null;default:sent" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type FinanceType string

const (
	FinanceIncome  FinanceType = "income"
	FinanceExpense FinanceType = "expense"
)

type FinanceRecord struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      *uint       `json:"user_id"`
	Type        FinanceType `gorm:"type:varchar(10);not null" json:"type"`
	Description string      `json:"description"`
	Amount      float64     `gorm:"not null" json:"amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ==========================================
// GALLERY
// ==========================================

type UnboxingPhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
