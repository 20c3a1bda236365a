package inventory

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newHandlerApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: response.NewErrorHandler(true)})
	app.Get("/api/products", ListProductsHandler(db))
	app.Get("/api/stocks", ListStocksHandler(db))
	return app
}

func getEnvelope(t *testing.T, app *fiber.App, url string) (*http.Response, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	var envelope response.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("yanıt parse edilemedi: %v (%s)", err, data)
	}
	return resp, envelope
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)
	_, product := seedPair(t, db)
	app := newHandlerApp(db)

	resp, envelope := getEnvelope(t, app, "/api/products")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	items, ok := envelope.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("data yanlış: %v", envelope.Data)
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("ürün beklenen biçimde değil: %T", items[0])
	}
	if first["sku"] != product.SKU || first["name"] != product.Name {
		t.Errorf("ürün alanları yanlış: %v", first)
	}
}

func TestListStocksWithFilter(t *testing.T) {
	db := newTestDB(t)
	warehouse, product := seedPair(t, db)
	if _, err := IncrementStock(db, warehouse.ID, product.ID, 42); err != nil {
		t.Fatal(err)
	}
	app := newHandlerApp(db)

	resp, envelope := getEnvelope(t, app, "/api/stocks?warehouse_id="+warehouse.ID.String())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	items, ok := envelope.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("data yanlış: %v", envelope.Data)
	}
	stock, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("stok beklenen biçimde değil: %T", items[0])
	}
	if stock["quantity"] != float64(42) {
		t.Errorf("quantity = %v, 42 bekleniyordu", stock["quantity"])
	}
	warehouseInfo, ok := stock["warehouse"].(map[string]any)
	if !ok || warehouseInfo["name"] != warehouse.Name {
		t.Errorf("warehouse alanı yanlış: %v", stock["warehouse"])
	}
}

func TestListStocksInvalidFilter(t *testing.T) {
	db := newTestDB(t)
	app := newHandlerApp(db)

	resp, envelope := getEnvelope(t, app, "/api/stocks?warehouse_id=not-a-uuid")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, 400 bekleniyordu", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Type != response.TypeValidation {
		t.Errorf("error.type yanlış: %+v", envelope.Error)
	}
}

func TestListStocksEmpty(t *testing.T) {
	db := newTestDB(t)
	app := newHandlerApp(db)

	resp, envelope := getEnvelope(t, app, "/api/stocks")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if envelope.Status != "success" {
		t.Errorf("envelope.Status = %s", envelope.Status)
	}
}
