package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/database"
	"github.com/URTS404/UMKM-AWP-UAS/internal/handlers"
	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/web"
	"github.com/URTS404/UMKM-AWP-UAS/internal/webstate"
)

func main() {
	// 1. LOAD .ENV DULUAN!
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment system (jika ada)")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Connect Database
	database.Connect(cfg)
	middleware.Init(cfg.JWT.Secret)

	// ---------------------------------------------------------
	// 3. SETUP TEMPLATE ENGINE
	// ---------------------------------------------------------
	engine := html.New("./views", ".html")

	// Format harga ala toko: Rp 1.234.567
	engine.AddFunc("rupiah", handlers.FormatRupiah)

	// Untuk highlight menu sidebar admin yang sedang aktif
	engine.AddFunc("activeClass", func(currentTitle, menuTitle string) string {
		if currentTitle == menuTitle {
			return "bg-brand-purple text-white font-semibold"
		}
		return ""
	})

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: int(cfg.Upload.MaxFileSize) + 1024*1024,
	})

	app.Use(fiberlogger.New())

	// ---------------------------------------------------------
	// 4. STATIC FILES
	// ---------------------------------------------------------
	app.Static("/public", "./public")
	app.Static("/uploads", cfg.Upload.Dir)

	// ---------------------------------------------------------
	// 5. HALAMAN WEB (Render HTML)
	// ---------------------------------------------------------
	sessionStore := session.New(session.Config{
		CookieHTTPOnly: true,
	})
	stateManager := webstate.NewManager(sessionStore)
	pages := web.NewHandler(database.DB, stateManager, cfg)

	app.Get("/", pages.Home)
	app.Get("/products/:id", pages.ProductDetail)
	app.Get("/gallery", pages.Gallery)

	app.Get("/login", pages.LoginForm)
	app.Post("/login", pages.LoginSubmit)
	app.Get("/register", pages.RegisterForm)
	app.Post("/register", pages.RegisterSubmit)
	app.Post("/logout", pages.Logout)

	app.Get("/cart", pages.CartPage)
	app.Post("/cart/add", pages.CartAdd)
	app.Post("/cart/update", pages.CartUpdate)
	app.Post("/cart/remove", pages.CartRemove)
	app.Post("/checkout", pages.Checkout)

	app.Post("/calculator/key", pages.CalculatorKey)

	// Back-office
	app.Get("/admin", pages.Dashboard)
	app.Get("/admin/orders", pages.AdminOrders)
	app.Get("/admin/invoices", pages.AdminInvoices)
	app.Get("/admin/finance", pages.AdminFinance)

	// ---------------------------------------------------------
	// 6. API ENDPOINTS
	// ---------------------------------------------------------
	authHandler := handlers.NewAuthHandler(database.DB)

	api := app.Group("/api/v1")

	// === PUBLIC ROUTES ===
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Running", "message": "API Ready"})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", middleware.JWTProtected(), authHandler.GetProfile)

	// Katalog publik
	api.Get("/products", handlers.GetProducts(database.DB))
	api.Get("/products/:id", handlers.GetProduct(database.DB))

	// Galeri publik
	api.Get("/unboxing", handlers.GetUnboxingPhotos(database.DB))

	// Checkout publik (guest order boleh)
	api.Post("/orders", handlers.CreateOrder(database.DB))

	// === PROTECTED ROUTES (JWT) ===
	api.Get("/orders/user/my-orders", middleware.JWTProtected(), handlers.GetMyOrders(database.DB))
	api.Get("/orders/:id", middleware.JWTProtected(), handlers.GetOrder(database.DB))
	api.Get("/invoices/:id", middleware.JWTProtected(), handlers.GetInvoice(database.DB))

	// === ADMIN ROUTES ===
	admin := api.Group("", middleware.JWTProtected(), middleware.AdminOnly())

	admin.Post("/products", handlers.CreateProduct(database.DB))
	admin.Put("/products/:id", handlers.UpdateProduct(database.DB))
	admin.Delete("/products/:id", handlers.DeleteProduct(database.DB))

	admin.Get("/orders", handlers.GetOrders(database.DB))
	admin.Put("/orders/:id/status", handlers.UpdateOrderStatus(database.DB))

	admin.Get("/invoices", handlers.GetInvoices(database.DB))
	admin.Post("/invoices/generate", handlers.GenerateInvoice(database.DB, cfg.Invoice))
	admin.Put("/invoices/:id/whatsapp-link", handlers.UpdateWhatsAppLink(database.DB, cfg.Invoice))

	admin.Get("/finance", handlers.GetFinanceRecords(database.DB))
	admin.Post("/finance", handlers.CreateFinanceRecord(database.DB))
	admin.Get("/finance/summary", handlers.GetFinanceSummary(database.DB))
	admin.Delete("/finance/:id", handlers.DeleteFinanceRecord(database.DB))

	admin.Post("/unboxing/upload", handlers.UploadUnboxingPhoto(database.DB, cfg.Upload))
	admin.Delete("/unboxing/:id", handlers.DeleteUnboxingPhoto(database.DB, cfg.Upload))

	log.Printf("Server berjalan di %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}
