package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
	"github.com/URTS404/UMKM-AWP-UAS/internal/database"
	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

var setAdminCmd = &cobra.Command{
	Use:   "set-admin",
	Short: "Create an admin account, or promote an existing user",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatal("Failed to load config: ", err)
		}

		database.Connect(cfg)
		middleware.Init(cfg.JWT.Secret)

		hashed, err := middleware.HashPassword(adminPassword)
		if err != nil {
			log.Fatal("Failed to hash password: ", err)
		}

		var user models.User
		err = database.DB.Where("email = ?", adminEmail).First(&user).Error
		switch {
		case err == nil:
			user.Password = hashed
			user.Name = adminName
			user.Role = models.RoleAdmin
			if err := database.DB.Save(&user).Error; err != nil {
				log.Fatal("Failed to update admin: ", err)
			}
			log.Println("Admin updated")
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Email:    adminEmail,
				Password: hashed,
				Name:     adminName,
				Role:     models.RoleAdmin,
			}
			if err := database.DB.Create(&user).Error; err != nil {
				log.Fatal("Failed to create admin: ", err)
			}
			log.Println("Admin created")
		default:
			log.Fatal("Database error: ", err)
		}
	},
}

func init() {
	setAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address")
	setAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	setAdminCmd.Flags().StringVar(&adminName, "name", "Admin User", "Admin display name")
	setAdminCmd.MarkFlagRequired("email")
	setAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(setAdminCmd)
}
