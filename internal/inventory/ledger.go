package inventory

import (
	"time"

	"depo-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockFilter struct {
	WarehouseID *uuid.UUID
	ProductID   *uuid.UUID
}

// StockLevels: Stok kayıtlarını depo/ürün bilgisiyle birlikte listeler.
func StockLevels(db *gorm.DB, filter StockFilter) ([]models.Stock, error) {
	q := db.Preload("Warehouse").Preload("Product")
	if filter.WarehouseID != nil {
		q = q.Where("warehouse_id = ?", *filter.WarehouseID)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var stocks []models.Stock
	if err := q.Order("warehouse_id ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// IncrementStock: (depo, ürün) çifti için stok miktarını atomik olarak artırır,
// kayıt yoksa qty ile oluşturur. Artış tek bir upsert ile yapılır; aynı çifte
// eşzamanlı gelen artışlar kayıp güncelleme üretmez.
//
// tx çağıranın transaction kapsamıdır: webhook birden fazla kalemi ve talebin
// durum değişikliğini aynı transaction'da işler, hepsi birlikte commit olur
// ya da birlikte geri alınır. qty'nin pozitif olması çağıranın sorumluluğu.
func IncrementStock(tx *gorm.DB, warehouseID, productID uuid.UUID, qty int) (*models.Stock, error) {
	stock := models.Stock{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    qty,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("stocks.quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&stock).Error
	if err != nil {
		return nil, err
	}

	// Upsert sonrası güncel satırı oku (conflict durumunda stock.Quantity
	// eklenen miktarı taşır, toplamı değil)
	var fresh models.Stock
	if err := tx.Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).First(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}
