package inventory

import (
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockResponse struct {
	ID          uuid.UUID     `json:"id"`
	WarehouseID uuid.UUID     `json:"warehouse_id"`
	ProductID   uuid.UUID     `json:"product_id"`
	Quantity    int           `json:"quantity"`
	Warehouse   WarehouseInfo `json:"warehouse"`
	Product     ProductInfo   `json:"product"`
}

type WarehouseInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProductInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	SKU  string    `json:"sku"`
}

// GET /api/stocks?warehouse_id=&product_id=
func ListStocksHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter StockFilter

		if raw := c.Query("warehouse_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return response.Validation("Validation failed", "warehouse_id must be a valid UUID")
			}
			filter.WarehouseID = &id
		}
		if raw := c.Query("product_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return response.Validation("Validation failed", "product_id must be a valid UUID")
			}
			filter.ProductID = &id
		}

		stocks, err := StockLevels(db, filter)
		if err != nil {
			return err
		}

		resp := make([]StockResponse, 0, len(stocks))
		for _, s := range stocks {
			resp = append(resp, StockResponse{
				ID:          s.ID,
				WarehouseID: s.WarehouseID,
				ProductID:   s.ProductID,
				Quantity:    s.Quantity,
				Warehouse:   WarehouseInfo{ID: s.Warehouse.ID, Name: s.Warehouse.Name},
				Product:     ProductInfo{ID: s.Product.ID, Name: s.Product.Name, SKU: s.Product.SKU},
			})
		}

		return response.Success(c, fiber.StatusOK, "Stock levels retrieved successfully", resp)
	}
}
