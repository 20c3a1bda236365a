package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRequestStatus string

const (
	StatusDraft     PurchaseRequestStatus = "DRAFT"
	StatusPending   PurchaseRequestStatus = "PENDING"
	StatusCompleted PurchaseRequestStatus = "COMPLETED"
)

// PurchaseRequest: Satın alma talebi. Yaşam döngüsü DRAFT -> PENDING -> COMPLETED.
// COMPLETED'a geçiş sadece webhook (mal kabul) üzerinden olur.
// Reference tedarikçi tarafında eşleştirme anahtarıdır.
type PurchaseRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference   string    `gorm:"size:50;not null;unique"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Warehouse   Warehouse
	Status      PurchaseRequestStatus `gorm:"size:20;not null;default:'DRAFT';check:status IN ('DRAFT','PENDING','COMPLETED')"`
	Items       []PurchaseRequestItem `gorm:"foreignKey:PurchaseRequestID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *PurchaseRequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PurchaseRequestItem: Talebe bağlı kalem. Talep DRAFT'tayken item listesi
// komple silinip yeniden yazılır, tek tek güncellenmez.
type PurchaseRequestItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null"`
	Product           Product
	Quantity          int `gorm:"not null;check:quantity >= 1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (i *PurchaseRequestItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
