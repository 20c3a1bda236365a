package database

import (
	"fmt"

	"depo-backend/internal/config"
	"depo-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect: Postgres bağlantısını açar ve şemayı migrate eder.
// TranslateError açık; unique ihlalleri gorm.ErrDuplicatedKey olarak döner.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı açılamadı: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration başarısız: %w", err)
	}

	return db, nil
}

// Migrate: AutoMigrate ile tabloları oluşturur/günceller.
// Testlerde sqlite üzerinde de aynı şema kurulur.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Warehouse{},
		&models.Product{},
		&models.Stock{},
		&models.PurchaseRequest{},
		&models.PurchaseRequestItem{},
	)
}
