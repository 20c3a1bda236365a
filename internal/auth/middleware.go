package auth

import (
	"crypto/subtle"

	"depo-backend/internal/config"
	"depo-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// APIKeyMiddleware: /api rotalarını x-api-key başlığıyla korur.
// Başlık yoksa 401, yanlışsa 403. Webhook bu middleware'in dışında kalır,
// orada doğrulama gövdedeki vendor adıyla yapılır.
func APIKeyMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("x-api-key")
		if key == "" {
			return response.Unauthorized("Missing API Key")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			return response.Forbidden("Invalid API Key")
		}
		return c.Next()
	}
}
