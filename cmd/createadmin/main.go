// Command createadmin seeds the initial admin account. Admins are never
// created through the public API.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/HafizBasit7/ZES-Admin/models"
)

const bcryptCost = 12

func main() {
	username := flag.String("username", "superadmin", "admin username")
	email := flag.String("email", "admin@zahidelectric.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	role := flag.String("role", string(models.AdminRoleSuperAdmin), "admin role (admin or super-admin)")
	flag.Parse()

	if *password == "" {
		log.Fatal("❌ -password is required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(*email))

	var existing models.Admin
	if err := db.Where("email = ?", normalizedEmail).First(&existing).Error; err == nil {
		log.Printf("✅ Admin user already exists: %s (%s)", existing.Email, existing.Role)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Username: strings.TrimSpace(*username),
		Email:    normalizedEmail,
		Password: string(hashed),
		Role:     models.AdminRole(*role),
		IsActive: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Error creating admin user: %v", err)
	}

	log.Printf("✅ Initial admin user created: %s", admin.Email)
	log.Println("⚠️ Please change the password after first login!")
}
