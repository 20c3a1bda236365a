package webhook

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"depo-backend/internal/config"
	"depo-backend/internal/inventory"
	"depo-backend/internal/models"
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiveStockRequest struct {
	Vendor    string        `json:"vendor"`
	Reference string        `json:"reference"`
	QtyTotal  int           `json:"qty_total"`
	Details   []StockDetail `json:"details"`
}

type StockDetail struct {
	SKUBarcode string `json:"sku_barcode"`
	Qty        int    `json:"qty"`
}

type ProcessedItem struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	SKU           string    `json:"sku"`
	QuantityAdded int       `json:"quantity_added"`
	NewTotal      int       `json:"new_total"`
}

// POST /api/webhook/receive-stock
//
// Tedarikçiden gelen mal kabul bildirimi. x-api-key yerine gövdedeki vendor
// adıyla doğrulanır; uyuşmazlık 403'tür ki reference'ın var olup olmadığı
// dışarı sızmasın. Kalem artışları ve talebin COMPLETED'a geçişi tek
// transaction'da işlenir: herhangi bir SKU çözülemezse hiçbir stok değişmez.
func ReceiveStockHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReceiveStockRequest
		if err := c.BodyParser(&body); err != nil {
			return response.Validation("Validation failed", "invalid request body")
		}

		log.Printf("Webhook alındı: vendor=%s reference=%s detay=%d", body.Vendor, body.Reference, len(body.Details))

		if body.Vendor == "" || body.Reference == "" || body.Details == nil {
			return response.Validation("Validation failed", "Missing required fields: vendor, reference, details")
		}

		if body.Vendor != cfg.VendorName {
			log.Printf("Tedarikçi uyuşmazlığı: '%s' geldi, '%s' bekleniyordu", body.Vendor, cfg.VendorName)
			return response.Forbidden(fmt.Sprintf("Vendor %s is not authorized", body.Vendor))
		}

		if len(body.Details) == 0 {
			return response.Validation("Validation failed", "details must be a non-empty array")
		}
		for _, d := range body.Details {
			if strings.TrimSpace(d.SKUBarcode) == "" || d.Qty < 1 {
				return response.Validation("Validation failed", "Each detail must have sku_barcode and a positive qty")
			}
		}

		var request models.PurchaseRequest
		if err := db.First(&request, "reference = ?", body.Reference).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound(fmt.Sprintf("Purchase Request with reference %s", body.Reference))
			}
			return err
		}

		// Aynı teslimatın ikinci kez işlenmesine karşı koruma
		if request.Status == models.StatusCompleted {
			return response.Conflict("Stock for this Purchase Request has already been received", map[string]any{
				"reference": body.Reference,
				"status":    "Already processed",
			})
		}

		processed := make([]ProcessedItem, 0, len(body.Details))

		err := db.Transaction(func(tx *gorm.DB) error {
			// Kalemler gönderildikleri sırayla işlenir
			for _, d := range body.Details {
				var product models.Product
				if err := tx.First(&product, "sku = ?", d.SKUBarcode).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return response.NotFound(fmt.Sprintf("Product with SKU %s", d.SKUBarcode))
					}
					return err
				}

				stock, err := inventory.IncrementStock(tx, request.WarehouseID, product.ID, d.Qty)
				if err != nil {
					return err
				}

				processed = append(processed, ProcessedItem{
					ProductID:     product.ID,
					ProductName:   product.Name,
					SKU:           d.SKUBarcode,
					QuantityAdded: d.Qty,
					NewTotal:      stock.Quantity,
				})
			}

			request.Status = models.StatusCompleted
			return tx.Save(&request).Error
		})
		if err != nil {
			return err
		}

		return response.Success(c, fiber.StatusOK, "Stock received successfully", fiber.Map{
			"reference":       body.Reference,
			"warehouse_id":    request.WarehouseID,
			"status":          request.Status,
			"items_processed": processed,
			"total_quantity":  body.QtyTotal,
		})
	}
}
