package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	APIKey      string // /api rotaları için paylaşılan x-api-key değeri
	VendorName  string // webhook'ta güvenilen tedarikçi adı
	HubURL      string // hub bildirim servisinin taban URL'i
	CORSOrigins string
	AppEnv      string // development | production
}

func Load() *Config {
	// .env varsa yükle, yoksa sessizce ortam değişkenleriyle devam et
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=inventory_db port=5432 sslmode=disable"),
		APIKey:      getEnv("API_KEY", ""),
		VendorName:  getEnv("VENDOR_NAME", ""),
		HubURL:      getEnv("HUB_FOOMID_URL", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AppEnv:      getEnv("APP_ENV", "development"),
	}

	// Production güvenlik kontrolleri
	if cfg.APIKey == "" {
		log.Fatal("[FATAL] API_KEY environment değişkeni tanımlanmamış! /api rotaları korumasız kalamaz.")
	}
	if cfg.VendorName == "" {
		log.Println("[WARN] VENDOR_NAME tanımlanmamış, webhook tüm tedarikçileri reddedecek.")
	}
	if cfg.HubURL == "" {
		log.Println("[WARN] HUB_FOOMID_URL tanımlanmamış, PENDING bildirimleri gönderilmeyecek.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=inventory_db port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
