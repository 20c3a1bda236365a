package database

import (
	"log"
	"math/rand"

	"depo-backend/internal/models"

	"gorm.io/gorm"
)

// SeedIfEmpty: Depo tablosu boşsa başlangıç verisini yükler. İlk kurulum ve
// lokal geliştirme için; dolu veritabanında hiçbir şey yapmaz.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Warehouse{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	warehouses := []models.Warehouse{
		{Name: "Jakarta Warehouse"},
		{Name: "Surabaya Warehouse"},
		{Name: "Bandung Warehouse"},
	}
	if err := db.Create(&warehouses).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Icy Mint", SKU: "ICYMINT"},
		{Name: "Fresh Lemon", SKU: "FRESHLEMON"},
		{Name: "Strawberry Bliss", SKU: "STRAWBLISS"},
		{Name: "Vanilla Dream", SKU: "VANADREAM"},
		{Name: "Icy Watermelon", SKU: "ICYWATERMELON"},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	// Her (depo, ürün) çifti için rastgele başlangıç stoğu
	var stocks []models.Stock
	for _, w := range warehouses {
		for _, p := range products {
			stocks = append(stocks, models.Stock{
				WarehouseID: w.ID,
				ProductID:   p.ID,
				Quantity:    rand.Intn(100) + 10,
			})
		}
	}
	if err := db.Create(&stocks).Error; err != nil {
		return err
	}

	log.Printf("Başlangıç verisi yüklendi: %d depo, %d ürün, %d stok kaydı", len(warehouses), len(products), len(stocks))
	return nil
}
