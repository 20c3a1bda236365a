package purchase

import (
	"time"

	"depo-backend/internal/models"
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateRequest struct {
	WarehouseID uuid.UUID   `json:"warehouse_id"`
	Items       []ItemInput `json:"items"`
}

type PurchaseRequestResponse struct {
	ID          uuid.UUID      `json:"id"`
	Reference   string         `json:"reference"`
	WarehouseID uuid.UUID      `json:"warehouse_id"`
	Status      string         `json:"status"`
	Warehouse   *WarehouseInfo `json:"warehouse,omitempty"`
	Items       []ItemResponse `json:"items"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type WarehouseInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemResponse struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Product   *ProductInfo `json:"product,omitempty"`
}

type ProductInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	SKU  string    `json:"sku"`
}

// GET /api/purchase/request
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := svc.GetAll()
		if err != nil {
			return err
		}

		resp := make([]PurchaseRequestResponse, 0, len(requests))
		for i := range requests {
			resp = append(resp, toResponse(&requests[i]))
		}

		return response.Success(c, fiber.StatusOK, "Purchase Requests retrieved successfully", resp)
	}
}

// GET /api/purchase/request/:id
func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		request, err := svc.GetByID(id)
		if err != nil {
			return err
		}

		return response.Success(c, fiber.StatusOK, "Purchase Request retrieved successfully", toResponse(request))
	}
}

// POST /api/purchase/request
func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return response.Validation("Validation failed", "invalid request body")
		}

		request, err := svc.Create(body.WarehouseID, body.Items)
		if err != nil {
			return err
		}

		return response.Success(c, fiber.StatusCreated, "Purchase Request created successfully", toResponse(request))
	}
}

// PUT /api/purchase/request/:id
func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateInput
		if err := c.BodyParser(&body); err != nil {
			return response.Validation("Validation failed", "invalid request body")
		}

		request, err := svc.Update(id, body)
		if err != nil {
			return err
		}

		return response.Success(c, fiber.StatusOK, "Purchase Request updated successfully", toResponse(request))
	}
}

// DELETE /api/purchase/request/:id
func DeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		if err := svc.Delete(id); err != nil {
			return err
		}

		return response.Success(c, fiber.StatusOK, "Purchase Request deleted successfully", nil)
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, response.Validation("Validation failed", "id must be a valid UUID")
	}
	return id, nil
}

func toResponse(r *models.PurchaseRequest) PurchaseRequestResponse {
	resp := PurchaseRequestResponse{
		ID:          r.ID,
		Reference:   r.Reference,
		WarehouseID: r.WarehouseID,
		Status:      string(r.Status),
		Items:       make([]ItemResponse, 0, len(r.Items)),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
	if r.Warehouse.ID != uuid.Nil {
		resp.Warehouse = &WarehouseInfo{ID: r.Warehouse.ID, Name: r.Warehouse.Name}
	}
	for _, it := range r.Items {
		item := ItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if it.Product.ID != uuid.Nil {
			item.Product = &ProductInfo{ID: it.Product.ID, Name: it.Product.Name, SKU: it.Product.SKU}
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
