package database

import (
	"testing"

	"depo-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		t.Fatalf("migration başarısız: %v", err)
	}
	return db
}

func TestSeedIfEmpty(t *testing.T) {
	db := newTestDB(t)

	if err := SeedIfEmpty(db); err != nil {
		t.Fatalf("seed başarısız: %v", err)
	}

	var warehouses, products, stocks int64
	db.Model(&models.Warehouse{}).Count(&warehouses)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Stock{}).Count(&stocks)

	if warehouses != 3 {
		t.Errorf("depo sayısı = %d, 3 bekleniyordu", warehouses)
	}
	if products != 5 {
		t.Errorf("ürün sayısı = %d, 5 bekleniyordu", products)
	}
	if stocks != 15 {
		t.Errorf("stok sayısı = %d, 15 bekleniyordu", stocks)
	}

	var sample models.Stock
	if err := db.First(&sample).Error; err != nil {
		t.Fatal(err)
	}
	if sample.Quantity < 10 || sample.Quantity > 109 {
		t.Errorf("başlangıç stoğu aralık dışında: %d", sample.Quantity)
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := SeedIfEmpty(db); err != nil {
		t.Fatal(err)
	}
	if err := SeedIfEmpty(db); err != nil {
		t.Fatalf("ikinci çağrı hata döndü: %v", err)
	}

	var warehouses int64
	db.Model(&models.Warehouse{}).Count(&warehouses)
	if warehouses != 3 {
		t.Errorf("ikinci çağrı veri eklemiş, depo sayısı = %d", warehouses)
	}
}
