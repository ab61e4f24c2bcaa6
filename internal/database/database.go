package database

import (
	"log"
	"os"
	"path/filepath"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect hanya bertugas untuk KONEKSI saja
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		log.Fatal("Failed to connect to database. \nError: ", err)
	}

	log.Println("✅ Database connection successful!")
	DB = db
}

// Migrate menjalankan migrasi skema + seeding data awal
func Migrate(cfg *config.Config) {
	if DB == nil {
		Connect(cfg)
	}

	// --- 1. SKEMA (CREATE TABLE) DENGAN GORM ---
	log.Println("Running Schema Migrations (Gorm AutoMigrate)...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
		&models.FinanceRecord{},
		&models.UnboxingPhoto{},
	)

	if err != nil {
		log.Fatal("Schema Migration failed: ", err)
	}
	log.Println("✅ Schema Migrations completed.")

	// --- 2. SEEDING DATA DENGAN RAW SQL ---
	migrationFilePath := filepath.Join("migrations", "000001_initial_schema.up.sql")

	seederSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		log.Fatalf("❌ Failed to read migration/seeder file %s: %v", migrationFilePath, err)
	}

	log.Println("Running Data Seeding (Raw SQL INSERT)...")

	result := DB.Exec(string(seederSQL))
	if result.Error != nil {
		log.Fatalf("❌ Data Seeding (INSERT) failed: %v", result.Error)
	}

	log.Printf("Seeding completed. Rows affected: %d\n", result.RowsAffected)
	log.Println("✅ Migrations and Seeding completed successfully!")
}
