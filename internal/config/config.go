package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Invoice InvoiceConfig `mapstructure:"invoice"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN builds the postgres connection string for gorm.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type UploadConfig struct {
	Dir         string `mapstructure:"dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// InvoiceConfig holds the store identity printed on WhatsApp invoices.
type InvoiceConfig struct {
	StoreName   string `mapstructure:"store_name"`
	BankName    string `mapstructure:"bank_name"`
	BankAccount string `mapstructure:"bank_account"`
	BankHolder  string `mapstructure:"bank_holder"`
}

// LoadConfig reads configuration from environment variables. Call
// godotenv.Load() first so values from .env are visible here.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "kpop_store")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", "your-256-bit-secret")
	v.SetDefault("UPLOAD_DIR", "./public/uploads")
	v.SetDefault("MAX_FILE_SIZE", int64(5*1024*1024)) // 5MB
	v.SetDefault("STORE_NAME", "K-Pop Merchandise Store")
	v.SetDefault("BANK_NAME", "BCA")
	v.SetDefault("BANK_ACCOUNT", "1234567890")
	v.SetDefault("BANK_HOLDER", "K-Pop Merchandise Store")

	cfg := &Config{
		Server: ServerConfig{
			Addr: ":" + v.GetString("PORT"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Upload: UploadConfig{
			Dir:         v.GetString("UPLOAD_DIR"),
			MaxFileSize: v.GetInt64("MAX_FILE_SIZE"),
		},
		Invoice: InvoiceConfig{
			StoreName:   v.GetString("STORE_NAME"),
			BankName:    v.GetString("BANK_NAME"),
			BankAccount: v.GetString("BANK_ACCOUNT"),
			BankHolder:  v.GetString("BANK_HOLDER"),
		},
	}

	return cfg, nil
}
