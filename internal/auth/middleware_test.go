package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"depo-backend/internal/config"
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{APIKey: "secret-key"}
	app := fiber.New(fiber.Config{ErrorHandler: response.NewErrorHandler(false)})
	app.Use(APIKeyMiddleware(cfg))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAPIKeyMissing(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, 401 bekleniyordu", resp.StatusCode)
	}
}

func TestAPIKeyWrong(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("x-api-key", "wrong-key")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, 403 bekleniyordu", resp.StatusCode)
	}
}

func TestAPIKeyValid(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("x-api-key", "secret-key")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, 200 bekleniyordu", resp.StatusCode)
	}
}
