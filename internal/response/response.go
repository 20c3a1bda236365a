package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Envelope: Tüm API yanıtlarının ortak zarfı. Dış entegrasyonlar (hub, tedarikçi
// webhook'u) bu şemaya göre parse ettiği için alan adları sabittir.
type Envelope struct {
	Status     string     `json:"status"` // "success" | "error"
	StatusCode int        `json:"statusCode"`
	Message    string     `json:"message"`
	Data       any        `json:"data,omitempty"`
	Error      *ErrorBody `json:"error"`
	Timestamp  string     `json:"timestamp"`
}

type ErrorBody struct {
	Type     string `json:"type"`
	Resource string `json:"resource,omitempty"`
	Details  any    `json:"details,omitempty"`
}

func Success(c *fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(Envelope{
		Status:     "success",
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Error:      nil,
		Timestamp:  Timestamp(),
	})
}

// Timestamp: JS tarafındaki toISOString() ile aynı biçim (UTC, milisaniyeli).
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
