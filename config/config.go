package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the service reads from the
// environment. Loaded once in main and passed down explicitly.
type Config struct {
	Port        string
	Environment string // "development" or "production"
	DatabaseDSN string

	JWTSecret      string
	CookieName     string
	TokenValidity  time.Duration
	AllowedOrigins []string

	UploadDir        string
	UploadPublicPath string
	MaxUploadBytes   int64

	// Pricing rules shared by the cart quote endpoint and the storefront.
	ShippingFlatFee       float64
	FreeShippingThreshold float64
	DefaultCountry        string

	// Pagination limits for the public catalog and the admin order list.
	DefaultPageSize     int
	MaxPageSize         int
	AdminOrdersPageSize int
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=zes port=5432 sslmode=disable"),

		JWTSecret:      os.Getenv("ADMIN_JWT_SECRET"),
		CookieName:     getEnv("ADMIN_COOKIE_NAME", "admin-token"),
		TokenValidity:  7 * 24 * time.Hour,
		AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3001")},

		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		UploadPublicPath: "/uploads",
		MaxUploadBytes:   5 * 1024 * 1024,

		ShippingFlatFee:       getEnvFloat("SHIPPING_FLAT_FEE", 200),
		FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 5000),
		DefaultCountry:        getEnv("DEFAULT_COUNTRY", "Pakistan"),

		DefaultPageSize:     24,
		MaxPageSize:         50,
		AdminOrdersPageSize: 10,
	}

	if cfg.JWTSecret == "" {
		log.Fatal("❌ ADMIN_JWT_SECRET environment variable is not set")
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("⚠️ Invalid value for %s, using default %v", key, fallback)
	}
	return fallback
}
