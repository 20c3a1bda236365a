package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product: Ürün kaydı. SKU tedarikçinin kullandığı barkod/stok kodu.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	SKU       string    `gorm:"size:50;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
