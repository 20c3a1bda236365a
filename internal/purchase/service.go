package purchase

import (
	"errors"
	"fmt"
	"log"

	"depo-backend/internal/models"
	"depo-backend/internal/notify"
	"depo-backend/internal/response"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service: Satın alma talebi yaşam döngüsü. Veritabanı ve bildirim istemcisi
// dışarıdan verilir; çok satırlı her mutasyon tek transaction içinde çalışır.
type Service struct {
	db       *gorm.DB
	notifier *notify.Client
}

func NewService(db *gorm.DB, notifier *notify.Client) *Service {
	return &Service{db: db, notifier: notifier}
}

type ItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type UpdateInput struct {
	Reference   string      `json:"reference"`
	WarehouseID *uuid.UUID  `json:"warehouse_id"`
	Status      string      `json:"status"`
	Items       []ItemInput `json:"items"`
}

// Create: Talebi DRAFT olarak, kalemleriyle birlikte tek seferde oluşturur.
func (s *Service) Create(warehouseID uuid.UUID, items []ItemInput) (*models.PurchaseRequest, error) {
	if warehouseID == uuid.Nil {
		return nil, response.Validation("Validation failed", "warehouse_id is required")
	}
	if len(items) == 0 {
		return nil, response.Validation("Validation failed", "items must be a non-empty array")
	}
	if err := s.validateItems(items); err != nil {
		return nil, err
	}

	var warehouse models.Warehouse
	if err := s.db.First(&warehouse, "id = ?", warehouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Warehouse")
		}
		return nil, err
	}

	request := models.PurchaseRequest{
		Reference:   GenerateReference(),
		WarehouseID: warehouseID,
		Status:      models.StatusDraft,
	}
	for _, it := range items {
		request.Items = append(request.Items, models.PurchaseRequestItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&request).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("Resource already exists", map[string]any{"reference": request.Reference})
		}
		return nil, err
	}

	return s.GetByID(request.ID)
}

// Update: DRAFT'taki talebin alanlarını günceller. status=PENDING geçişi
// commit sonrası hub bildirimini tetikler; bildirim hatası yutularak loglanır.
// DRAFT dışındaki taleplere her türlü düzenleme reddedilir.
func (s *Service) Update(id uuid.UUID, input UpdateInput) (*models.PurchaseRequest, error) {
	var request models.PurchaseRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Purchase Request")
		}
		return nil, err
	}

	if request.Status != models.StatusDraft && input.Status == "" {
		return nil, response.StateViolation(
			fmt.Sprintf("Cannot update purchase request with status %s", request.Status),
			"Only DRAFT requests can be updated",
		)
	}

	// Doğrulamalar mutasyondan önce: kısmi yazma olmaz
	if input.Items != nil {
		if err := s.validateItems(input.Items); err != nil {
			return nil, err
		}
	}
	if input.WarehouseID != nil {
		var warehouse models.Warehouse
		if err := s.db.First(&warehouse, "id = ?", *input.WarehouseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFound("Warehouse")
			}
			return nil, err
		}
	}

	var pending *notify.PurchaseRequestPayload

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			return err
		}
		if request.Status != models.StatusDraft {
			return response.StateViolation(
				fmt.Sprintf("Cannot update purchase request with status %s", request.Status),
				"Only DRAFT requests can be updated",
			)
		}

		if input.Reference != "" {
			request.Reference = input.Reference
		}
		if input.WarehouseID != nil {
			request.WarehouseID = *input.WarehouseID
		}

		if input.Status == string(models.StatusPending) {
			request.Status = models.StatusPending

			// Bildirim commit'ten sonra gönderilir; snapshot'ı şimdi al
			var items []models.PurchaseRequestItem
			if err := tx.Where("purchase_request_id = ?", id).Find(&items).Error; err != nil {
				return err
			}
			payload := notify.PurchaseRequestPayload{
				Reference:   request.Reference,
				WarehouseID: request.WarehouseID,
				Status:      string(models.StatusPending),
			}
			for _, it := range items {
				payload.Items = append(payload.Items, notify.ItemPayload{
					ProductID: it.ProductID,
					Quantity:  it.Quantity,
				})
			}
			pending = &payload
		} else if input.Status != "" && input.Status != string(request.Status) {
			// Bilinen gevşeklik: PENDING dışındaki durum değerleri doğrudan
			// yazılır. Geçersiz string'leri status kolonundaki CHECK kısıtı
			// durdurur.
			request.Status = models.PurchaseRequestStatus(input.Status)
		}

		if input.Items != nil {
			// Kalemler komple değiştirilir: önce hepsi silinir
			if err := tx.Where("purchase_request_id = ?", id).Delete(&models.PurchaseRequestItem{}).Error; err != nil {
				return err
			}
			for _, it := range input.Items {
				item := models.PurchaseRequestItem{
					PurchaseRequestID: id,
					ProductID:         it.ProductID,
					Quantity:          it.Quantity,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&request).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("Resource already exists", map[string]any{"reference": input.Reference})
		}
		return nil, err
	}

	if pending != nil && s.notifier != nil {
		if notifyErr := s.notifier.NotifyPurchaseRequest(*pending); notifyErr != nil {
			log.Printf("[WARN] Hub bildirimi başarısız, devam ediliyor: %v", notifyErr)
		}
	}

	return s.GetByID(id)
}

// Delete: Sadece DRAFT talepler silinebilir; kalemler birlikte silinir.
func (s *Service) Delete(id uuid.UUID) error {
	var request models.PurchaseRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Purchase Request")
		}
		return err
	}

	if request.Status != models.StatusDraft {
		return response.StateViolation(
			fmt.Sprintf("Cannot delete purchase request with status %s", request.Status),
			"Only DRAFT requests can be deleted",
		)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_request_id = ?", id).Delete(&models.PurchaseRequestItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PurchaseRequest{}, "id = ?", id).Error
	})
}

func (s *Service) GetByID(id uuid.UUID) (*models.PurchaseRequest, error) {
	var request models.PurchaseRequest
	err := s.db.
		Preload("Warehouse").
		Preload("Items.Product").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Purchase Request")
		}
		return nil, err
	}
	return &request, nil
}

func (s *Service) GetAll() ([]models.PurchaseRequest, error) {
	var requests []models.PurchaseRequest
	err := s.db.
		Preload("Warehouse").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// GetByReference: Webhook eşleştirmesi için; reference benzersizdir.
func (s *Service) GetByReference(reference string) (*models.PurchaseRequest, error) {
	var request models.PurchaseRequest
	err := s.db.
		Preload("Warehouse").
		Preload("Items.Product").
		First(&request, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound(fmt.Sprintf("Purchase Request with reference %s", reference))
		}
		return nil, err
	}
	return &request, nil
}

func (s *Service) validateItems(items []ItemInput) error {
	for _, it := range items {
		if it.ProductID == uuid.Nil || it.Quantity < 1 {
			return response.Validation("Validation failed", "Each item must have product_id and quantity")
		}
	}
	for _, it := range items {
		var product models.Product
		if err := s.db.First(&product, "id = ?", it.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound(fmt.Sprintf("Product with id %s", it.ProductID))
			}
			return err
		}
	}
	return nil
}
