package inventory

import (
	"depo-backend/internal/models"
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	SKU  string    `json:"sku"`
}

// GET /api/products
func ListProductsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.Order("name ASC").Find(&products).Error; err != nil {
			return err
		}

		resp := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			resp = append(resp, ProductResponse{ID: p.ID, Name: p.Name, SKU: p.SKU})
		}

		return response.Success(c, fiber.StatusOK, "Products retrieved successfully", resp)
	}
}
