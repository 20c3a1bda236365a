package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock: (depo, ürün) başına tek miktar sayacı. İlk mal kabulünde oluşur,
// sonrasında sadece artırılır. Çift kayıt composite unique index ile engellenir.
type Stock struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_warehouse_product"`
	Warehouse   Warehouse
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_warehouse_product"`
	Product     Product
	Quantity    int `gorm:"not null;default:0;check:quantity >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
